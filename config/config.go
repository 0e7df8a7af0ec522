// Package config loads training corpora for thoughtmodel from YAML. A corpus describes the
// Decisions of a Thought, the Examples to reinforce it with (in order) and the Checks to run
// afterwards.
//
// Example file:
//
//	seed: [1, 2]
//	initializer: estimate
//	decisions:
//	  - {id: 1, answer: "True", symbols: ["1", "1"]}
//	  - {id: 2, answer: "False", symbols: ["1", "0"]}
//	training:
//	  - {stimulus: ["1", "0"], target: 2}
//	checks:
//	  - {stimulus: ["1", "0"], expect: "False"}
package config

import (
	"bytes"
	"math/rand/v2"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pashkovdenis/thoughtmodel"
	"github.com/pashkovdenis/thoughtmodel/initializers"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// Corpus is the contents of a corpus file.
type Corpus struct {
	// Seed is the PCG seed pair for weight initialization. Without it, weights are random on
	// every run.
	Seed []uint64 `yaml:"seed,omitempty" validate:"omitempty,len=2"`

	// Initializer names the initializers.ByName Initializer to use. Defaults to "estimate".
	Initializer string `yaml:"initializer,omitempty" validate:"omitempty,oneof=estimate he lecun normal uniform"`

	Decisions []DecisionSpec `yaml:"decisions" validate:"required,min=1,dive"`
	Training  []ExampleSpec  `yaml:"training" validate:"dive"`
	Checks    []CheckSpec    `yaml:"checks" validate:"dive"`
}

type DecisionSpec struct {
	ID      int64    `yaml:"id"`
	Answer  string   `yaml:"answer" validate:"required"`
	Symbols []string `yaml:"symbols" validate:"required,min=1,dive,required"`
}

type ExampleSpec struct {
	Stimulus []string `yaml:"stimulus" validate:"required,min=1"`
	Target   int64    `yaml:"target"`
}

type CheckSpec struct {
	Stimulus []string `yaml:"stimulus" validate:"required,min=1"`
	Expect   string   `yaml:"expect" validate:"required"`
}

// Load reads and validates the corpus file at path.
func Load(path string) (*Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to read corpus file %q", path)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "Invalid corpus file %q", path)
	}

	return c, nil
}

// Parse decodes and validates a corpus. Unknown fields are rejected.
func Parse(data []byte) (*Corpus, error) {
	var c Corpus

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, errors.Wrap(err, "Failed to decode YAML")
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// Validate checks the field constraints of the corpus, that Decision ids are unique and that
// every training target refers to a Decision.
func (c *Corpus) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "Corpus failed validation")
	}

	ids := make(map[int64]bool, len(c.Decisions))
	for _, d := range c.Decisions {
		if ids[d.ID] {
			return thoughtmodel.DuplicateIDError{ID: d.ID}
		}
		ids[d.ID] = true
	}

	for i, ex := range c.Training {
		if !ids[ex.Target] {
			return errors.Wrapf(thoughtmodel.NotFoundError{ID: ex.Target}, "Training example %d", i)
		}
	}

	return nil
}

// Source returns the random source described by Seed, or nil if no seed was given.
func (c *Corpus) Source() initializers.Source {
	if len(c.Seed) != 2 {
		return nil
	}

	return rand.New(rand.NewPCG(c.Seed[0], c.Seed[1]))
}

// NewInitializer returns the Initializer named by the corpus, drawing from Source.
func (c *Corpus) NewInitializer() (thoughtmodel.Initializer, error) {
	name := c.Initializer
	if name == "" {
		name = "estimate"
	}

	return initializers.ByName(name, c.Source())
}

// Build creates the Thought described by the corpus and resets its weights. It does not train
// it.
func (c *Corpus) Build() (*thoughtmodel.Thought, error) {
	ds := make([]*thoughtmodel.Decision, len(c.Decisions))
	for i, d := range c.Decisions {
		ds[i] = thoughtmodel.NewDecision(d.ID, d.Answer, d.Symbols...)
	}

	t, err := thoughtmodel.New(ds...)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to create Thought")
	}

	in, err := c.NewInitializer()
	if err != nil {
		return nil, err
	}

	if err = t.ResetWeights(in); err != nil {
		return nil, errors.Wrap(err, "Failed to reset weights")
	}

	return t, nil
}

// Examples converts the training section of the corpus.
func (c *Corpus) Examples() []thoughtmodel.Example {
	exs := make([]thoughtmodel.Example, len(c.Training))
	for i, ex := range c.Training {
		exs[i] = thoughtmodel.Example{Stimulus: ex.Stimulus, Target: ex.Target}
	}

	return exs
}

// CheckList converts the checks section of the corpus.
func (c *Corpus) CheckList() []thoughtmodel.Check {
	cs := make([]thoughtmodel.Check, len(c.Checks))
	for i, ch := range c.Checks {
		cs[i] = thoughtmodel.Check{Stimulus: ch.Stimulus, Expect: ch.Expect}
	}

	return cs
}

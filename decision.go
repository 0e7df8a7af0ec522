package thoughtmodel

import (
	"github.com/pashkovdenis/thoughtmodel/mathutil"
	"github.com/pkg/errors"
)

// SymbolProbeCount is the fan-in given to the Initializer when resetting the weight of a single
// Symbol. The bias uses the number of Symbols instead.
const SymbolProbeCount int = 10

// Decision is one of the possible outcomes of a Thought. It is scored against a Stimulus by the
// weights of its matching Symbols plus a bias.
//
// A Decision is not safe for concurrent use on its own; the Thought that holds it serializes
// access.
type Decision struct {
	id      int64
	answer  string
	symbols []Symbol

	bias float64

	// scratch value for the current update step, applied by UpdateWeights
	delta float64
}

// NewDecision returns a Decision with one Symbol per word, in order. All weights start at zero
// and must be set with ResetWeights before the Decision gives meaningful scores.
func NewDecision(id int64, answer string, words ...string) *Decision {
	d := &Decision{
		id:      id,
		answer:  answer,
		symbols: make([]Symbol, len(words)),
	}

	for i, w := range words {
		d.symbols[i].word = w
	}

	return d
}

// String returns the answer of the Decision.
func (d *Decision) String() string {
	if d == nil {
		return "<nil>"
	}

	return d.answer
}

// ID returns the id of the Decision, unique within its Thought.
func (d *Decision) ID() int64 {
	return d.id
}

// Answer returns the label of the Decision.
func (d *Decision) Answer() string {
	return d.answer
}

func (d *Decision) Bias() float64 {
	return d.bias
}

func (d *Decision) Delta() float64 {
	return d.delta
}

// SetDelta sets the value that the next call to UpdateWeights will add.
func (d *Decision) SetDelta(delta float64) {
	d.delta = delta
}

// Symbols returns a copy of the Decision's Symbols.
func (d *Decision) Symbols() []Symbol {
	ss := make([]Symbol, len(d.symbols))
	copy(ss, d.symbols)
	return ss
}

// Words returns the words of the Decision's Symbols, in order.
func (d *Decision) Words() []string {
	ws := make([]string, len(d.symbols))
	for i := range d.symbols {
		ws[i] = d.symbols[i].word
	}

	return ws
}

// ResetWeights sets every Symbol weight and the bias to fresh values from the Initializer.
// Symbols are drawn first, in order, each with a fan-in of SymbolProbeCount; the bias is drawn last with a
// fan-in equal to the number of Symbols.
//
// A Decision without Symbols will fail here if the Initializer rejects a fan-in of zero, as
// initializers.Estimate does.
func (d *Decision) ResetWeights(in Initializer) error {
	if in == nil {
		return NilArgError{"Initializer"}
	}

	for i := range d.symbols {
		w, err := in.Weight(SymbolProbeCount)
		if err != nil {
			return errors.Wrapf(err, "Failed to reset weight of symbol %q in Decision %d", d.symbols[i].word, d.id)
		}

		d.symbols[i].weight = w
	}

	b, err := in.Weight(len(d.symbols))
	if err != nil {
		return errors.Wrapf(err, "Failed to reset bias of Decision %d", d.id)
	}

	d.bias = b
	return nil
}

// Stimulate returns the activation of the Decision for the given Stimulus: the sigmoid of the
// bias plus the weights of every Symbol whose word is in s. Each Symbol counts once. Stimulate
// does not modify the Decision.
func (d *Decision) Stimulate(s Stimulus) float64 {
	var sum float64
	for i := range d.symbols {
		if s.Has(d.symbols[i].word) {
			sum += d.symbols[i].weight
		}
	}

	return mathutil.Sigmoid(sum + d.bias)
}

// UpdateWeights adds the current delta to the bias and to every Symbol weight, matched or not.
// The delta is left as it is.
func (d *Decision) UpdateWeights() {
	d.bias += d.delta

	for i := range d.symbols {
		d.symbols[i].weight += d.delta
	}
}

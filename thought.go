package thoughtmodel

import (
	"log/slog"
	"sort"
	"sync"

	"github.com/pashkovdenis/thoughtmodel/mathutil"
	"github.com/pkg/errors"
)

// Thought is a group of competing Decisions. Given a Stimulus, it ranks its Decisions by score;
// the highest-ranked Decision is the Thought's answer.
//
// All methods on Thought are safe for concurrent use. They share a single lock, so a call to
// Reinforce blocks every other caller until it finishes. The lock does not cover Decisions
// obtained through Decisions or Decision: calling their mutating methods (ResetWeights,
// UpdateWeights, SetDelta) while the Thought is in use by another goroutine is a data race.
type Thought struct {
	mu sync.Mutex

	// in construction order, which is also the order ties are ranked in
	decisions []*Decision
	byID      map[int64]*Decision

	// total number of update cycles run by Reinforce
	cycles int

	log     *slog.Logger
	metrics *Metrics
}

// New returns a Thought made up of the given Decisions. The Thought takes ownership of the
// Decisions; they should not be modified afterwards except through the Thought.
//
// A nil Decision results in NilArgError, and two Decisions with the same id in a
// DuplicateIDError.
func New(decisions ...*Decision) (*Thought, error) {
	t := &Thought{
		decisions: make([]*Decision, 0, len(decisions)),
		byID:      make(map[int64]*Decision, len(decisions)),
		log:       slog.New(slog.DiscardHandler),
	}

	for i, d := range decisions {
		if d == nil {
			return nil, errors.Wrapf(NilArgError{"Decision"}, "Can't add Decision #%d", i)
		} else if _, ok := t.byID[d.id]; ok {
			return nil, DuplicateIDError{d.id}
		}

		t.decisions = append(t.decisions, d)
		t.byID[d.id] = d
	}

	return t, nil
}

// SetLogger sets the logger used for training messages. By default, nothing is logged. A nil
// logger restores the default.
func (t *Thought) SetLogger(l *slog.Logger) *Thought {
	t.mu.Lock()
	defer t.mu.Unlock()

	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}

	t.log = l
	return t
}

// SetMetrics sets the Metrics that the Thought reports to. nil disables reporting.
func (t *Thought) SetMetrics(m *Metrics) *Thought {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.metrics = m
	return t
}

// Len returns the number of Decisions in the Thought.
func (t *Thought) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.decisions)
}

// Decisions returns the Thought's Decisions in construction order. The slice is a copy, but the
// Decisions are not: they are live and unguarded by the Thought's lock, so they should only be
// modified while no other goroutine uses the Thought.
func (t *Thought) Decisions() []*Decision {
	t.mu.Lock()
	defer t.mu.Unlock()

	ds := make([]*Decision, len(t.decisions))
	copy(ds, t.decisions)
	return ds
}

// Decision returns the Decision with the given id, or NotFoundError. As with Decisions, the
// returned Decision is live and not guarded by the Thought's lock.
func (t *Thought) Decision(id int64) (*Decision, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	d, ok := t.byID[id]
	if !ok {
		return nil, NotFoundError{id}
	}

	return d, nil
}

// Cycles returns the total number of update cycles that Reinforce has run on the Thought.
func (t *Thought) Cycles() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.cycles
}

// ResetWeights resets the weights of every Decision, in construction order. If the Initializer
// is nil, the default set by SetDefaultInitializer is used. ResetWeights must be called before
// training; until then every score is Sigmoid(0).
func (t *Thought) ResetWeights(in Initializer) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if in == nil {
		if in = defaultInit; in == nil {
			return NilArgError{"Default Initializer"}
		}
	}

	for _, d := range t.decisions {
		if err := d.ResetWeights(in); err != nil {
			return err
		}
	}

	t.metrics.reset()
	return nil
}

// GetAnswers scores every Decision against the stimulus and returns the results from highest
// score to lowest. Decisions with equal scores keep their construction order, so repeated calls
// without training in between return identical results.
func (t *Thought) GetAnswers(stimulus []string) []Output {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.metrics.query("answers")
	return t.rank(NewStimulus(stimulus...))
}

// Answer returns the highest-ranked Output for the stimulus. ErrNoDecisions is returned if the
// Thought is empty.
func (t *Thought) Answer(stimulus []string) (Output, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.decisions) == 0 {
		return Output{}, ErrNoDecisions
	}

	t.metrics.query("answer")
	return t.rank(NewStimulus(stimulus...))[0], nil
}

// Score returns the Output of a single Decision for the stimulus, or NotFoundError if the id
// doesn't belong to the Thought.
func (t *Thought) Score(stimulus []string, id int64) (Output, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	d, ok := t.byID[id]
	if !ok {
		return Output{}, NotFoundError{id}
	}

	t.metrics.query("score")
	return Output{d.Stimulate(NewStimulus(stimulus...)), d.answer, d.id}, nil
}

// Distribution is like GetAnswers, but the scores are replaced by their softmax, so that they sum
// to 1. The ranking is the same as GetAnswers.
func (t *Thought) Distribution(stimulus []string) ([]Output, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.decisions) == 0 {
		return nil, ErrNoDecisions
	}

	t.metrics.query("distribution")
	outs := t.rank(NewStimulus(stimulus...))

	scores := make([]float64, len(outs))
	for i := range outs {
		scores[i] = outs[i].Score
	}

	probs, err := mathutil.Softmax(scores)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to normalize scores")
	}

	for i := range outs {
		outs[i].Score = probs[i]
	}

	return outs, nil
}

// rank does the work of GetAnswers. t.mu must be held.
func (t *Thought) rank(s Stimulus) []Output {
	outs := make([]Output, len(t.decisions))
	for i, d := range t.decisions {
		outs[i] = Output{d.Stimulate(s), d.answer, d.id}
	}

	sort.Stable(byScore(outs))
	return outs
}

package thoughtmodel

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestThought(t *testing.T) *Thought {
	th, err := New(
		NewDecision(1, "True", "1", "1"),
		NewDecision(2, "False", "1", "0"),
		NewDecision(3, "Hello", "Hi", "There"),
	)
	require.NoError(t, err)
	require.NoError(t, th.ResetWeights(constInit(0.1)))
	return th
}

func TestNew(t *testing.T) {
	_, err := New(NewDecision(1, "a"), NewDecision(1, "b"))
	assert.True(t, errors.Is(err, ErrDuplicateID))
	assert.Equal(t, DuplicateIDError{1}, err)

	_, err = New(NewDecision(1, "a"), nil)
	var nilErr NilArgError
	assert.True(t, errors.As(err, &nilErr))

	th, err := New()
	require.NoError(t, err)
	assert.Zero(t, th.Len())
	assert.Empty(t, th.GetAnswers([]string{"a"}))

	_, err = th.Answer([]string{"a"})
	assert.Equal(t, ErrNoDecisions, err)

	_, err = th.Distribution(nil)
	assert.Equal(t, ErrNoDecisions, err)
}

func TestThought_Lookup(t *testing.T) {
	th := newTestThought(t)

	d, err := th.Decision(2)
	require.NoError(t, err)
	assert.Equal(t, "False", d.Answer())

	_, err = th.Decision(9)
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = th.Score([]string{"1"}, 9)
	assert.Equal(t, NotFoundError{9}, err)

	out, err := th.Score([]string{"1"}, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.DecisionID)
	assert.InDelta(t, 1/(1+math.Exp(-0.3)), out.Score, 1e-15)

	ids := []int64{}
	for _, d := range th.Decisions() {
		ids = append(ids, d.ID())
	}
	assert.Equal(t, []int64{1, 2, 3}, ids)
}

func TestThought_Decisions(t *testing.T) {
	th := newTestThought(t)

	ds := th.Decisions()
	ds[0] = nil
	assert.Equal(t, int64(1), th.Decisions()[0].ID())

	d, err := th.Decision(3)
	require.NoError(t, err)
	assert.Same(t, d, th.Decisions()[2])
}

func TestThought_ResetWeights(t *testing.T) {
	th := newTestThought(t)

	prev := DefaultInitializer()
	defer SetDefaultInitializer(prev)

	SetDefaultInitializer(nil)
	assert.IsType(t, NilArgError{}, th.ResetWeights(nil))

	SetDefaultInitializer(constInit(2))
	require.NoError(t, th.ResetWeights(nil))
	d, _ := th.Decision(3)
	assert.Equal(t, 2.0, d.Bias())
}

func TestThought_GetAnswers(t *testing.T) {
	th := newTestThought(t)

	// "1" matches both symbols of 1 and one of 2, none of 3
	outs := th.GetAnswers([]string{"1"})
	require.Len(t, outs, 3)
	assert.Equal(t, []int64{1, 2, 3}, []int64{outs[0].DecisionID, outs[1].DecisionID, outs[2].DecisionID})
	assert.Equal(t, "True", outs[0].Answer)
	assert.True(t, outs[0].Score > outs[1].Score && outs[1].Score > outs[2].Score)

	// ties keep construction order
	outs = th.GetAnswers([]string{"unknown"})
	for i, o := range outs {
		assert.Equal(t, int64(i+1), o.DecisionID)
		assert.Equal(t, outs[0].Score, o.Score)
	}

	// repeatable without training in between
	assert.Equal(t, th.GetAnswers([]string{"Hi", "1"}), th.GetAnswers([]string{"1", "Hi"}))

	top, err := th.Answer([]string{"Hi", "There"})
	require.NoError(t, err)
	assert.Equal(t, "Hello", top.Answer)
	assert.Equal(t, "Id: 3 ; Hello(", top.String()[:len("Id: 3 ; Hello(")])
}

func TestThought_Distribution(t *testing.T) {
	th := newTestThought(t)

	dist, err := th.Distribution([]string{"Hi"})
	require.NoError(t, err)
	require.Len(t, dist, 3)

	var sum float64
	for _, o := range dist {
		sum += o.Score
	}
	assert.InDelta(t, 1, sum, 1e-12)

	ranked := th.GetAnswers([]string{"Hi"})
	for i := range ranked {
		assert.Equal(t, ranked[i].DecisionID, dist[i].DecisionID)
	}
}

func TestApplyUpdates(t *testing.T) {
	ds := []*Decision{
		NewDecision(1, "a", "x"),
		NewDecision(2, "b", "y", "z"),
		NewDecision(3, "c"),
	}

	target := Output{Score: 0.5, DecisionID: 1}
	best := Output{Score: 0.8, DecisionID: 2}

	delta := applyTargetUpdate(ds[0], target, best)
	assert.InDelta(t, 0.1, delta, 1e-15)
	assert.Equal(t, delta, ds[0].Delta())
	assert.Equal(t, delta, ds[0].Bias())
	assert.Equal(t, delta, ds[0].Symbols()[0].Weight())

	other := otherDelta(best, delta, target)
	assert.InDelta(t, 0.8*0.2*0.1*0.5, other, 1e-15)

	applyOtherUpdate(ds, 1, other)
	assert.Equal(t, delta, ds[0].Bias(), "target must not be touched")
	for _, d := range ds[1:] {
		assert.Equal(t, other, d.Delta())
		assert.Equal(t, other, d.Bias())
		for _, s := range d.Symbols() {
			assert.Equal(t, other, s.Weight())
		}
	}
}

func TestThought_Reinforce(t *testing.T) {
	th := newTestThought(t)
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	th.SetMetrics(m)

	var buf bytes.Buffer
	th.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	stimulus := []string{"1", "0"}
	before, err := th.Score(stimulus, 2)
	require.NoError(t, err)

	require.NoError(t, th.Reinforce(stimulus, 2))
	assert.Equal(t, 3*CyclesPerDecision, th.Cycles())

	top, err := th.Answer(stimulus)
	require.NoError(t, err)
	assert.Equal(t, int64(2), top.DecisionID)

	after, err := th.Score(stimulus, 2)
	require.NoError(t, err)
	assert.Greater(t, after.Score, before.Score)

	// target already on top: still the full count
	require.NoError(t, th.Reinforce(stimulus, 2))
	assert.Equal(t, 6*CyclesPerDecision, th.Cycles())

	assert.Equal(t, float64(6*CyclesPerDecision), testutil.ToFloat64(m.updateCycles))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.reinforceTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.queries.WithLabelValues("answer")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.queries.WithLabelValues("score")))

	assert.Contains(t, buf.String(), "reinforced decision")
	assert.Contains(t, buf.String(), "decision_id=2")
}

func TestThought_Reinforce_NotFound(t *testing.T) {
	th := newTestThought(t)
	before := th.GetAnswers([]string{"1"})

	err := th.Reinforce([]string{"1"}, 42)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Zero(t, th.Cycles())
	assert.Equal(t, before, th.GetAnswers([]string{"1"}))
}

func TestThought_Reinforce_Single(t *testing.T) {
	th, err := New(NewDecision(7, "only", "a", "b"))
	require.NoError(t, err)
	require.NoError(t, th.ResetWeights(constInit(0)))

	require.NoError(t, th.Reinforce([]string{"a"}, 7))
	assert.Equal(t, CyclesPerDecision, th.Cycles())

	d, err := th.Decision(7)
	require.NoError(t, err)
	assert.Greater(t, d.Bias(), 0.0)
	for _, sym := range d.Symbols() {
		assert.Equal(t, d.Bias(), sym.Weight())
	}
}

func TestMetrics_Nil(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.reinforced(1, 0)
		m.reset()
		m.query("answers")
	})

	th := newTestThought(t)
	th.SetMetrics(NewMetrics(nil))
	assert.NotPanics(t, func() { th.GetAnswers(nil) })
}

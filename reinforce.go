package thoughtmodel

import (
	"time"

	"github.com/pashkovdenis/thoughtmodel/mathutil"
)

// CyclesPerDecision is the number of update cycles that Reinforce runs per Decision in the
// Thought.
const CyclesPerDecision int = 1300

// Reinforce trains the Thought to favor the Decision with id target when given the stimulus. It
// always runs exactly Len()*CyclesPerDecision update cycles, even if the target is already
// ranked first.
//
// Each cycle ranks the Decisions, then nudges the target by
//
//	δt = s'(t) * t * b
//
// and every other Decision by
//
//	δo = s'(b) * δt * t
//
// where t is the target's score, b is the score of the current best Decision (which may be the
// target) and s'(y) = y * (1 - y). Both deltas are positive, so every weight grows; the target's
// grows fastest.
//
// NotFoundError is returned, without changing any weights, if target isn't in the Thought.
func (t *Thought) Reinforce(stimulus []string, target int64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	td, ok := t.byID[target]
	if !ok {
		return NotFoundError{target}
	}

	start := time.Now()
	s := NewStimulus(stimulus...)
	cycles := len(t.decisions) * CyclesPerDecision

	var best, out Output
	for i := 0; i < cycles; i++ {
		answers := t.rank(s)
		best = answers[0]
		// always found: target is in byID, and rank returns every Decision
		out, _ = findOutput(answers, target)

		delta := applyTargetUpdate(td, out, best)
		applyOtherUpdate(t.decisions, target, otherDelta(best, delta, out))
	}

	t.cycles += cycles
	t.metrics.reinforced(cycles, time.Since(start))

	t.log.Debug("reinforced decision",
		"decision_id", target,
		"cycles", cycles,
		"target_score", out.Score,
		"best_id", best.DecisionID,
		"best_score", best.Score,
		"duration", time.Since(start),
	)

	return nil
}

// targetDelta is the delta given to the target Decision for one cycle.
func targetDelta(target, best Output) float64 {
	return mathutil.SigmoidDerivative(target.Score) * (target.Score * best.Score)
}

// otherDelta is the delta given to every non-target Decision, derived from the target's delta
// for the same cycle.
func otherDelta(best Output, targetDelta float64, target Output) float64 {
	return mathutil.SigmoidDerivative(best.Score) * targetDelta * target.Score
}

// applyTargetUpdate sets and applies the delta of the target Decision, returning the delta.
func applyTargetUpdate(d *Decision, target, best Output) float64 {
	d.delta = targetDelta(target, best)
	d.UpdateWeights()
	return d.delta
}

// applyOtherUpdate sets and applies delta on every Decision except the target.
func applyOtherUpdate(ds []*Decision, target int64, delta float64) {
	for _, d := range ds {
		if d.id == target {
			continue
		}

		d.delta = delta
		d.UpdateWeights()
	}
}

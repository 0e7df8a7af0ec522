package thoughtmodel

import (
	"context"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("thoughtmodel")

// Example is a single training sample: the Decision with id Target should win for Stimulus.
type Example struct {
	Stimulus []string
	Target   int64
}

// Check is an expected answer for a Stimulus.
type Check struct {
	Stimulus []string
	Expect   string
}

// CheckResult is the outcome of a single Check.
type CheckResult struct {
	Check
	Got   Output
	Valid bool
}

// Train reinforces the Thought with each Example, in the order given. Order matters: later
// Examples shift the weights set by earlier ones.
//
// The context is checked between Examples, never during one, so each Reinforce always runs its
// full number of cycles. If the context is done, Train stops and returns its error wrapped.
func (t *Thought) Train(ctx context.Context, examples []Example) error {
	ctx, span := tracer.Start(ctx, "thoughtmodel.Train",
		trace.WithAttributes(
			attribute.Int("train.examples", len(examples)),
			attribute.Int("train.decisions", t.Len()),
		),
	)
	defer span.End()

	for i, ex := range examples {
		if err := ctx.Err(); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "training cancelled")
			return errors.Wrapf(err, "Training stopped before example %d", i)
		}

		if err := t.trainOne(ctx, i, ex); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "reinforce failed")
			return errors.Wrapf(err, "Failed to train on example %d", i)
		}
	}

	span.SetStatus(codes.Ok, "")
	return nil
}

func (t *Thought) trainOne(ctx context.Context, i int, ex Example) error {
	_, span := tracer.Start(ctx, "thoughtmodel.Reinforce",
		trace.WithAttributes(
			attribute.Int("train.example", i),
			attribute.Int64("train.target", ex.Target),
			attribute.StringSlice("train.stimulus", ex.Stimulus),
		),
	)
	defer span.End()

	if err := t.Reinforce(ex.Stimulus, ex.Target); err != nil {
		span.RecordError(err)
		return err
	}

	t.mu.Lock()
	log := t.log
	t.mu.Unlock()

	log.InfoContext(ctx, "trained example", "example", i, "target", ex.Target, "stimulus", ex.Stimulus)
	return nil
}

// Check runs every Check against the Thought's current answers. ErrNoDecisions is returned if
// the Thought is empty.
func (t *Thought) Check(checks []Check) ([]CheckResult, error) {
	results := make([]CheckResult, len(checks))
	for i, c := range checks {
		out, err := t.Answer(c.Stimulus)
		if err != nil {
			return nil, err
		}

		results[i] = CheckResult{
			Check: c,
			Got:   out,
			Valid: out.Answer == c.Expect,
		}
	}

	return results, nil
}

// Package thoughtmodel provides a small associative-memory classifier. A Thought holds a set of
// competing Decisions; each Decision has an answer, a list of Symbols (words with trainable
// weights) and a bias. Given a Stimulus, every Decision is scored by the sigmoid of the weights
// of its matching Symbols plus its bias, and the best-scoring Decision gives the Thought's
// answer.
//
// # Creating Thoughts
//
// Decisions are built with NewDecision and grouped with New:
//
//	t, err := thoughtmodel.New(
//		thoughtmodel.NewDecision(1, "True", "1", "1"),
//		thoughtmodel.NewDecision(2, "False", "1", "0"),
//	)
//	if err != nil {
//		return err
//	}
//
// Ids must be unique within a Thought. Before anything else, the weights must be set:
//
//	err = t.ResetWeights(initializers.Estimate(rand.New(rand.NewPCG(1, 2))))
//
// Passing nil uses the default Initializer, which is set by importing the subpackage
// "initializers". Giving an explicit seeded source makes training reproducible.
//
// # Training
//
// Training is done one Example at a time with Reinforce, which nudges the weights of every
// Decision so that the target comes out on top for the stimulus:
//
//	err = t.Reinforce([]string{"1", "0"}, 2)
//
// Reinforce runs a fixed number of update cycles (Len()*CyclesPerDecision) rather than stopping
// once the target wins. The order of Reinforce calls affects the final weights. Train does the
// same for a list of Examples, with tracing and cancellation between Examples.
//
// # Answering
//
// GetAnswers returns every Decision's Output ranked from highest score to lowest; Answer returns
// only the first. Distribution gives the same ranking with softmax-normalized scores.
package thoughtmodel

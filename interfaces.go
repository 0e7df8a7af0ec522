package thoughtmodel

// Initializer supplies the starting values of weights and biases. The "initializers" subpackage
// has the standard implementations.
type Initializer interface {
	// Weight returns a starting value for a weight that takes fanIn inputs. Implementations may
	// return an error for fanIn <= 0.
	Weight(fanIn int) (float64, error)
}

var defaultInit Initializer

// SetDefaultInitializer sets the Initializer used by *Thought.ResetWeights when it is given nil.
// Importing the "initializers" subpackage sets this to initializers.Estimate, backed by a
// process-wide random source.
func SetDefaultInitializer(in Initializer) {
	defaultInit = in
}

// DefaultInitializer returns the Initializer set by SetDefaultInitializer, which may be nil.
func DefaultInitializer() Initializer {
	return defaultInit
}

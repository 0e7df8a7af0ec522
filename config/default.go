package config

// DefaultSeed is the seed of the Default corpus.
var DefaultSeed = []uint64{1, 2}

// Default returns the built-in corpus: a truth table over "0" and "1" (true when both inputs are
// equal) and a greeting, with the seed fixed so that every run trains the same weights.
func Default() *Corpus {
	return &Corpus{
		Seed:        append([]uint64(nil), DefaultSeed...),
		Initializer: "estimate",
		Decisions: []DecisionSpec{
			{ID: 1, Answer: "True", Symbols: []string{"1", "1"}},
			{ID: 2, Answer: "False", Symbols: []string{"1", "0"}},
			{ID: 3, Answer: "True", Symbols: []string{"0", "0"}},
			{ID: 4, Answer: "False", Symbols: []string{"0", "1"}},
			{ID: 5, Answer: "Hello", Symbols: []string{"Hi", "There"}},
		},
		Training: []ExampleSpec{
			{Stimulus: []string{"0", "0"}, Target: 3},
			{Stimulus: []string{"1", "0"}, Target: 2},
			{Stimulus: []string{"0", "1"}, Target: 4},
			{Stimulus: []string{"1", "1"}, Target: 1},
			{Stimulus: []string{"Hi", "There"}, Target: 5},
		},
		Checks: []CheckSpec{
			{Stimulus: []string{"1", "1"}, Expect: "True"},
			{Stimulus: []string{"1", "0"}, Expect: "False"},
			{Stimulus: []string{"0", "1"}, Expect: "False"},
			{Stimulus: []string{"0", "0"}, Expect: "True"},
			{Stimulus: []string{"Hi", "There"}, Expect: "Hello"},
		},
	}
}

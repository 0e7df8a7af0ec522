package thoughtmodel

// Symbol is a single word that a Decision responds to, along with its trainable weight. Symbols
// belong to exactly one Decision; the same word in two Decisions is two separate Symbols.
type Symbol struct {
	word   string
	weight float64
}

// Word returns the text of the Symbol.
func (s Symbol) Word() string {
	return s.word
}

// Weight returns the current weight of the Symbol.
func (s Symbol) Weight() float64 {
	return s.weight
}

// Stimulus is a set of words presented to a Thought. Order and duplicates are irrelevant.
type Stimulus map[string]struct{}

// NewStimulus builds a Stimulus from a list of words.
func NewStimulus(words ...string) Stimulus {
	s := make(Stimulus, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}

	return s
}

// Has returns whether or not the word is part of the Stimulus. Matching is exact and
// case-sensitive.
func (s Stimulus) Has(word string) bool {
	_, ok := s[word]
	return ok
}

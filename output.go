package thoughtmodel

import "fmt"

// Output is the score given to one Decision for a Stimulus.
type Output struct {
	Score      float64
	Answer     string
	DecisionID int64
}

func (o Output) String() string {
	return fmt.Sprintf("Id: %d ; %s(%v)", o.DecisionID, o.Answer, o.Score)
}

// byScore sorts Outputs from highest score to lowest. It should only be used with sort.Stable,
// which keeps Outputs with equal scores in their original order.
type byScore []Output

func (o byScore) Len() int {
	return len(o)
}

func (o byScore) Less(i, j int) bool {
	return o[i].Score > o[j].Score
}

func (o byScore) Swap(i, j int) {
	o[i], o[j] = o[j], o[i]
}

func findOutput(outs []Output, id int64) (Output, bool) {
	for _, o := range outs {
		if o.DecisionID == id {
			return o, true
		}
	}

	return Output{}, false
}

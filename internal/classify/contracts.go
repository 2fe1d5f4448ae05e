package classify

import "context"

// Label is a classification outcome with its confidence in [0,1].
type Label struct {
	Name  string
	Score float32
}

// ZeroShot is an external classifier usable against an arbitrary label set
// without per-label training. Implementations may be slow; they must honor
// the context deadline. A nil ZeroShot is valid and means "rule engine
// only".
type ZeroShot interface {
	Classify(ctx context.Context, text string, labels []string) (Label, error)
}

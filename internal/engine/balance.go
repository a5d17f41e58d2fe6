package engine

import (
	"math/rand"
	"time"
)

// DefaultMaxTrials is the default optimization budget. Trials are cheap
// (O(teamCount) each) so the default is generous.
const DefaultMaxTrials = 20000

// Option configures a Balance call.
type Option func(*options)

type options struct {
	maxTrials int
	src       Source
	labels    []string
}

// WithMaxTrials sets the optimization trial budget. Zero disables
// optimization entirely and returns the seeded partition as-is.
func WithMaxTrials(n int) Option {
	return func(o *options) { o.maxTrials = n }
}

// WithSource sets the random source used for trial selection. Passing a
// seeded *rand.Rand makes the whole run reproducible.
func WithSource(src Source) Option {
	return func(o *options) { o.src = src }
}

// WithLabels overrides the default "Team N" labels. Surplus labels are
// ignored; teams beyond the list keep their defaults.
func WithLabels(labels []string) Option {
	return func(o *options) { o.labels = labels }
}

// Balance is the engine entry point: it seeds a partition with a
// serpentine draft and then optimizes it, returning the partition and
// its final cost. The input slice is not modified.
func Balance(players []Player, teamCount int, opts ...Option) (*Partition, float64, error) {
	o := options{maxTrials: DefaultMaxTrials}
	for _, opt := range opts {
		opt(&o)
	}
	if o.src == nil {
		o.src = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	p, err := Seed(players, teamCount)
	if err != nil {
		return nil, 0, err
	}
	for i, label := range o.labels {
		if i >= len(p.Teams) {
			break
		}
		p.Teams[i].Label = label
	}

	cost := Optimize(p, o.maxTrials, o.src)
	return p, cost, nil
}

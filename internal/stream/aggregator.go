package stream

import (
	"context"
	"strings"
)

// Callbacks receives aggregation progress. OnUpdate fires after every
// fragment with the full text so far; exactly one of OnComplete and OnError
// fires per generation, and never more than once. Nil callbacks are skipped.
type Callbacks struct {
	OnUpdate   func(fullText string)
	OnComplete func(fullText string)
	OnError    func(message string)
}

// Aggregator folds a generation's increments into a single running text.
// Each generation uses a fresh aggregator; the buffer never carries over.
type Aggregator struct {
	buf       strings.Builder
	callbacks Callbacks
	finished  bool
}

// NewAggregator creates an aggregator delivering progress to the given
// callbacks.
func NewAggregator(callbacks Callbacks) *Aggregator {
	return &Aggregator{callbacks: callbacks}
}

// Text returns the aggregate built so far.
func (a *Aggregator) Text() string {
	return a.buf.String()
}

// Apply folds one increment in arrival order. It returns true once a
// terminal increment has been applied; later increments are ignored.
func (a *Aggregator) Apply(inc Increment) bool {
	if a.finished {
		return true
	}

	switch {
	case inc.Err != "":
		a.finished = true
		if a.callbacks.OnError != nil {
			a.callbacks.OnError(inc.Err)
		}
	case inc.Done:
		a.finished = true
		if a.callbacks.OnComplete != nil {
			a.callbacks.OnComplete(a.buf.String())
		}
	default:
		a.buf.WriteString(inc.Text)
		if a.callbacks.OnUpdate != nil {
			a.callbacks.OnUpdate(a.buf.String())
		}
	}
	return a.finished
}

// Consume drains increments until a terminal one arrives, the channel
// closes, or ctx is cancelled. A cancelled or prematurely closed stream
// fires no terminal callback; the partial aggregate is simply abandoned.
func (a *Aggregator) Consume(ctx context.Context, increments <-chan Increment) {
	for {
		select {
		case <-ctx.Done():
			return
		case inc, ok := <-increments:
			if !ok {
				return
			}
			if a.Apply(inc) {
				return
			}
		}
	}
}

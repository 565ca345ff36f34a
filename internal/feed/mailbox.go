package feed

import (
	"context"
	"slices"
	"strings"
	"sync"
)

// mailbox holds at most one undelivered event per collection. A newer event
// of the same collection replaces the pending one, so a slow subscriber sees
// every changed collection at least once after its last read.
type mailbox struct {
	mu      sync.Mutex
	pending map[Collection]Event
	wake    chan struct{}
}

func newMailbox() *mailbox {
	return &mailbox{
		pending: make(map[Collection]Event),
		wake:    make(chan struct{}, 1),
	}
}

// put never blocks.
func (b *mailbox) put(ev Event) {
	b.mu.Lock()
	b.pending[ev.Collection] = ev
	b.mu.Unlock()
	select {
	case b.wake <- struct{}{}:
	default:
	}
}

func (b *mailbox) take() []Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.pending) == 0 {
		return nil
	}
	evs := make([]Event, 0, len(b.pending))
	for _, ev := range b.pending {
		evs = append(evs, ev)
	}
	clear(b.pending)
	slices.SortFunc(evs, func(a, c Event) int {
		if n := a.At.Compare(c.At); n != 0 {
			return n
		}
		return strings.Compare(string(a.Collection), string(c.Collection))
	})
	return evs
}

// forward moves pending events to out until ctx is done, then closes out.
func (b *mailbox) forward(ctx context.Context, out chan<- Event) {
	defer close(out)
	for {
		select {
		case <-ctx.Done():
			return
		case <-b.wake:
		}
		for _, ev := range b.take() {
			select {
			case out <- ev:
			case <-ctx.Done():
				return
			}
		}
	}
}

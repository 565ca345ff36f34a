package feed

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Memory is a process-local feed, used when no Redis URL is configured.
type Memory struct {
	mu   sync.RWMutex
	subs map[uuid.UUID]map[*mailbox]struct{}
}

func NewMemory() *Memory {
	return &Memory{
		subs: make(map[uuid.UUID]map[*mailbox]struct{}),
	}
}

func (m *Memory) Publish(ctx context.Context, ev Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for box := range m.subs[ev.OwnerID] {
		box.put(ev)
	}
	return nil
}

func (m *Memory) Subscribe(ctx context.Context, ownerID uuid.UUID) (<-chan Event, error) {
	box := newMailbox()
	out := make(chan Event)
	m.mu.Lock()
	set, ok := m.subs[ownerID]
	if !ok {
		set = make(map[*mailbox]struct{})
		m.subs[ownerID] = set
	}
	set[box] = struct{}{}
	m.mu.Unlock()

	go func() {
		box.forward(ctx, out)
		m.mu.Lock()
		delete(set, box)
		if len(m.subs[ownerID]) == 0 {
			delete(m.subs, ownerID)
		}
		m.mu.Unlock()
	}()
	return out, nil
}

// Subscribers reports how many subscriptions the owner currently holds.
func (m *Memory) Subscribers(ownerID uuid.UUID) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.subs[ownerID])
}

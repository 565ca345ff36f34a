package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/planner/internal/feed"
	"github.com/limbo/planner/internal/service"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

// Variables for tests
var (
	ownerID    = uuid.New()
	strangerID = uuid.New()
	fixedNow   = time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)
	today      = "2026-10-15"
)

func testOptions() []service.Option {
	return []service.Option{
		service.WithClock(func() time.Time { return fixedNow }),
		service.WithLocation(time.UTC),
	}
}

type feedState int

const (
	feedOK feedState = iota
	feedDown
)

type feedMock struct {
	mu     sync.Mutex
	state  feedState
	events []feed.Event
}

func (fm *feedMock) Publish(ctx context.Context, ev feed.Event) error {
	fm.mu.Lock()
	defer fm.mu.Unlock()
	if fm.state == feedDown {
		return errors.New("feed is down")
	}
	fm.events = append(fm.events, ev)
	return nil
}

func (fm *feedMock) Subscribe(ctx context.Context, ownerID uuid.UUID) (<-chan feed.Event, error) {
	return nil, errors.New("not supported")
}

func (fm *feedMock) published() []feed.Collection {
	fm.mu.Lock()
	defer fm.mu.Unlock()
	result := make([]feed.Collection, 0, len(fm.events))
	for _, ev := range fm.events {
		result = append(result, ev.Collection)
	}
	return result
}

func (fm *feedMock) reset() {
	fm.mu.Lock()
	fm.events = nil
	fm.state = feedOK
	fm.mu.Unlock()
}

package live_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/limbo/planner/internal/feed"
	"github.com/limbo/planner/internal/live"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type broadcastRecorder struct {
	mu     sync.Mutex
	events []feed.Event
}

func (br *broadcastRecorder) Broadcast(ev feed.Event) {
	br.mu.Lock()
	br.events = append(br.events, ev)
	br.mu.Unlock()
}

func TestRollover(t *testing.T) {
	rec := &broadcastRecorder{}
	loc := time.FixedZone("UTC+3", 3*60*60)
	r, err := live.NewRollover(rec, loc, nil)
	require.NoError(t, err)

	next := r.Next().In(loc)
	assert.Equal(t, 0, next.Hour())
	assert.Equal(t, 0, next.Minute())
	assert.True(t, next.After(time.Now()))
	assert.LessOrEqual(t, time.Until(next), 24*time.Hour)

	r.Tick()
	require.Len(t, rec.events, 1)
	assert.Equal(t, feed.CollectionClock, rec.events[0].Collection)

	r.Start()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	r.Stop(ctx)
}

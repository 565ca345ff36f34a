package live

import (
	"context"
	"time"

	"github.com/limbo/planner/internal/feed"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// MidnightSpec fires at the start of every day in the scheduler's location.
const MidnightSpec = "0 0 * * *"

// Broadcaster receives clock events.
type Broadcaster interface {
	Broadcast(ev feed.Event)
}

// Rollover tells every live session that "today" has moved, so views that
// depend on it (streaks, the default selected day) are recomputed.
type Rollover struct {
	cron   *cron.Cron
	target Broadcaster
	loc    *time.Location
	logger *zap.Logger
}

func NewRollover(target Broadcaster, loc *time.Location, logger *zap.Logger) (*Rollover, error) {
	if loc == nil {
		loc = time.Local
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Rollover{
		cron:   cron.New(cron.WithLocation(loc)),
		target: target,
		loc:    loc,
		logger: logger,
	}
	if _, err := r.cron.AddFunc(MidnightSpec, r.Tick); err != nil {
		return nil, err
	}
	return r, nil
}

// Tick broadcasts one clock event. Called by the scheduler at midnight.
func (r *Rollover) Tick() {
	r.logger.Info("day rollover, refreshing live sessions")
	r.target.Broadcast(feed.Event{
		Collection: feed.CollectionClock,
		At:         time.Now(),
	})
}

// Start launches the cron scheduler.
func (r *Rollover) Start() {
	r.cron.Start()
}

// Stop gracefully stops the scheduler.
func (r *Rollover) Stop(ctx context.Context) {
	stopCtx := r.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
	}
}

// Next reports when the next rollover is due.
func (r *Rollover) Next() time.Time {
	entries := r.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	return entries[0].Schedule.Next(time.Now().In(r.loc))
}

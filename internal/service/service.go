package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/planner/internal/error_values"
	"github.com/limbo/planner/internal/feed"
	"github.com/limbo/planner/internal/observability"
	"github.com/limbo/planner/internal/planner"
	"github.com/limbo/planner/pkg/logger"
	"go.uber.org/zap"
)

type Option func(*base)

// WithClock overrides the source of "now", used to derive today's date.
func WithClock(now func() time.Time) Option {
	return func(b *base) {
		if now != nil {
			b.now = now
		}
	}
}

// WithLocation sets the timezone in which "today" is evaluated.
func WithLocation(loc *time.Location) Option {
	return func(b *base) {
		if loc != nil {
			b.loc = loc
		}
	}
}

// base carries what every service shares: the change feed and the clock.
type base struct {
	feed feed.Feed
	now  func() time.Time
	loc  *time.Location
}

func newBase(f feed.Feed, opts []Option) base {
	b := base{
		feed: f,
		now:  time.Now,
		loc:  time.Local,
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

func (b *base) Today() string {
	return planner.DateOf(b.now().In(b.loc))
}

// notify publishes a change event after a successful write. A failed publish
// is logged and counted but never fails the write itself.
func (b *base) notify(ctx context.Context, ownerID uuid.UUID, collection feed.Collection) {
	if b.feed == nil {
		return
	}
	err := b.feed.Publish(ctx, feed.Event{
		OwnerID:    ownerID,
		Collection: collection,
		At:         b.now(),
	})
	if err != nil {
		observability.RecordPublishFailure(string(collection))
		logger.FromContext(ctx).Warn("publishing change event failed",
			zap.String("collection", string(collection)),
			zap.Error(err),
		)
	}
}

// repoError counts storage failures and passes domain sentinels through untouched.
func repoError(op string, err error) error {
	if errors.Is(err, errorvalues.ErrPersistence) {
		observability.RecordPersistenceError(op)
	}
	return err
}

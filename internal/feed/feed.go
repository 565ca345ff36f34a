// Package feed carries "collection X of owner Y changed" signals from the
// services to the live sessions. Events hold no payload; subscribers reload
// the full snapshot of the collection.
package feed

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Collection string

const (
	CollectionActivities Collection = "activities"
	CollectionGoals      Collection = "goals"
	CollectionTasks      Collection = "tasks"
	// Emitted by the midnight rollover, not by writes
	CollectionClock Collection = "clock"
)

type Event struct {
	OwnerID    uuid.UUID  `json:"uid"`
	Collection Collection `json:"collection"`
	At         time.Time  `json:"at"`
}

type Feed interface {
	// Sends event to every subscriber of ev.OwnerID
	Publish(ctx context.Context, ev Event) error
	// Returns events of the owner until ctx is done, then the channel is closed.
	// Undelivered events are merged per collection, never dropped
	Subscribe(ctx context.Context, ownerID uuid.UUID) (<-chan Event, error)
}

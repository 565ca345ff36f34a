package feed

import (
	"context"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	goRedis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const channelPrefix = "planner:changes:"

// Redis fans events out through Redis pub/sub so every API instance sees them.
type Redis struct {
	client *goRedis.Client
	logger *zap.Logger
}

func NewRedis(client *goRedis.Client, logger *zap.Logger) *Redis {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Redis{
		client: client,
		logger: logger,
	}
}

// NewRedisClient parses url, connects and performs a health check.
func NewRedisClient(url string) (*goRedis.Client, error) {
	opts, err := goRedis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url error: %w", err)
	}
	client := goRedis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("pinging redis error: %w", err)
	}
	return client, nil
}

func channelName(ownerID uuid.UUID) string {
	return channelPrefix + ownerID.String()
}

func (r *Redis) Publish(ctx context.Context, ev Event) error {
	payload, err := sonic.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encoding change event error: %w", err)
	}
	if err := r.client.Publish(ctx, channelName(ev.OwnerID), payload).Err(); err != nil {
		return fmt.Errorf("publishing change event error: %w", err)
	}
	return nil
}

func (r *Redis) Subscribe(ctx context.Context, ownerID uuid.UUID) (<-chan Event, error) {
	pubsub := r.client.Subscribe(ctx, channelName(ownerID))
	// Wait for the subscription confirmation so no event published after
	// Subscribe returns is missed.
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, fmt.Errorf("subscribing to changes error: %w", err)
	}
	ctx, cancel := context.WithCancel(ctx)
	box := newMailbox()
	out := make(chan Event)
	go box.forward(ctx, out)
	go func() {
		defer cancel()
		defer pubsub.Close()
		msgs := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				var ev Event
				if err := sonic.UnmarshalString(msg.Payload, &ev); err != nil {
					r.logger.Warn("skipping malformed change event",
						zap.String("channel", msg.Channel),
						zap.Error(err),
					)
					continue
				}
				box.put(ev)
			}
		}
	}()
	return out, nil
}

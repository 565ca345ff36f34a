// Package live pushes recomputed views to connected websocket clients.
// A session never patches its state: on every change signal it reloads the
// full snapshot of the collection and recomputes the view from it.
package live

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/limbo/planner/internal/feed"
	"github.com/limbo/planner/internal/service"
	"go.uber.org/zap"
)

// Sources are the services a session reads snapshots from.
type Sources struct {
	Schedule service.ScheduleServiceI
	Goals    service.GoalsServiceI
	Tasks    service.TasksServiceI
}

type Options struct {
	// Outbound messages queued per session before it is considered slow and closed
	SendBuffer   int
	WriteTimeout time.Duration
	PongTimeout  time.Duration
	LoadTimeout  time.Duration
}

func (o Options) withDefaults() Options {
	if o.SendBuffer <= 0 {
		o.SendBuffer = 16
	}
	if o.WriteTimeout <= 0 {
		o.WriteTimeout = 10 * time.Second
	}
	if o.PongTimeout <= 0 {
		o.PongTimeout = 60 * time.Second
	}
	if o.LoadTimeout <= 0 {
		o.LoadTimeout = 5 * time.Second
	}
	return o
}

// Hub manages active sessions per owner and fans clock events out to them.
type Hub struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]map[*Session]struct{}
	ctx      context.Context
	cancel   context.CancelFunc

	feed     feed.Feed
	src      Sources
	opts     Options
	logger   *zap.Logger
	upgrader websocket.Upgrader
}

func NewHub(f feed.Feed, src Sources, logger *zap.Logger, opts Options) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Hub{
		sessions: make(map[uuid.UUID]map[*Session]struct{}),
		ctx:      ctx,
		cancel:   cancel,
		feed:     f,
		src:      src,
		opts:     opts.withDefaults(),
		logger:   logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

func (h *Hub) register(s *Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.sessions[s.ownerID]
	if !ok {
		set = make(map[*Session]struct{})
		h.sessions[s.ownerID] = set
	}
	set[s] = struct{}{}
}

func (h *Hub) unregister(s *Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if set, ok := h.sessions[s.ownerID]; ok {
		delete(set, s)
		if len(set) == 0 {
			delete(h.sessions, s.ownerID)
		}
	}
}

// Broadcast hands ev to every session. Sessions that already have a clock
// event pending skip the duplicate.
func (h *Hub) Broadcast(ev feed.Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, set := range h.sessions {
		for s := range set {
			select {
			case s.clock <- ev:
			default:
			}
		}
	}
}

// Sessions returns the number of open sessions of the owner.
func (h *Hub) Sessions(ownerID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions[ownerID])
}

// Serve upgrades the request to a websocket and runs the owner's session
// until the client goes away or the request context ends.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, ownerID uuid.UUID) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithCancel(h.ctx)
	defer cancel()
	stop := context.AfterFunc(r.Context(), cancel)
	defer stop()
	s := newSession(h, conn, ownerID)
	return s.run(ctx)
}

// Close ends every running session. Hijacked connections are not tracked
// by http.Server.Shutdown, so this has to run on shutdown as well.
func (h *Hub) Close() {
	h.cancel()
}

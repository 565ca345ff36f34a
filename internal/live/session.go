package live

import (
	"context"
	"errors"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/limbo/planner/internal/feed"
	"github.com/limbo/planner/internal/observability"
	"github.com/limbo/planner/internal/planner"
	"github.com/limbo/planner/pkg/logger"
	"go.uber.org/zap"
)

const (
	MsgTimeline   = "timeline"
	MsgGoals      = "goals"
	MsgTasks      = "tasks"
	MsgError      = "error"
	MsgSelectDate = "select_date"
)

var errSlowClient = errors.New("outbound queue overflow")

// Message is every frame sent to the client.
type Message struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// ClientMessage is every frame accepted from the client.
type ClientMessage struct {
	Type string `json:"type"`
	Date string `json:"date,omitempty"`
}

type Session struct {
	hub     *Hub
	conn    *websocket.Conn
	ownerID uuid.UUID
	logger  *zap.Logger

	view *planner.DayView
	// Last date the session considered "today"
	today string

	send     chan []byte
	clock    chan feed.Event
	incoming chan ClientMessage
}

func newSession(h *Hub, conn *websocket.Conn, ownerID uuid.UUID) *Session {
	today := h.src.Schedule.Today()
	return &Session{
		hub:      h,
		conn:     conn,
		ownerID:  ownerID,
		logger:   h.logger.With(zap.String("uid", ownerID.String())),
		view:     planner.NewDayView(today),
		today:    today,
		send:     make(chan []byte, h.opts.SendBuffer),
		clock:    make(chan feed.Event, 1),
		incoming: make(chan ClientMessage),
	}
}

func (s *Session) run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer s.conn.Close()

	events, err := s.hub.feed.Subscribe(ctx, s.ownerID)
	if err != nil {
		s.logger.Error("subscribing to change feed failed", zap.Error(err))
		s.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseInternalServerErr, "change feed unavailable"),
			time.Now().Add(time.Second))
		return err
	}
	s.hub.register(s)
	observability.SessionOpened()
	defer func() {
		s.hub.unregister(s)
		observability.SessionClosed()
	}()
	s.logger.Info("live session opened")

	go s.readLoop(ctx, cancel)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		s.writeLoop(ctx, cancel)
	}()

	err = s.loop(ctx, events)
	cancel()
	<-writerDone
	s.logger.Info("live session closed", zap.Error(err))
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// loop is the only place the session state changes. Events are handled one
// at a time, each against the latest snapshot and the latest selected date.
func (s *Session) loop(ctx context.Context, events <-chan feed.Event) error {
	for _, collection := range []feed.Collection{feed.CollectionActivities, feed.CollectionGoals, feed.CollectionTasks} {
		if err := s.refresh(ctx, collection); err != nil {
			return err
		}
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return ctx.Err()
			}
			if err := s.refresh(ctx, ev.Collection); err != nil {
				return err
			}
		case <-s.clock:
			if err := s.rollover(ctx); err != nil {
				return err
			}
		case msg := <-s.incoming:
			if err := s.handleClient(msg); err != nil {
				return err
			}
		}
	}
}

func (s *Session) refresh(ctx context.Context, collection feed.Collection) error {
	loadCtx, cancel := context.WithTimeout(logger.WithLogger(ctx, s.logger), s.hub.opts.LoadTimeout)
	defer cancel()
	switch collection {
	case feed.CollectionActivities:
		activities, err := s.hub.src.Schedule.ListActivities(loadCtx, s.ownerID)
		if err != nil {
			return s.reportLoadError(collection, err)
		}
		s.view.SetSnapshot(activities)
		return s.pushTimeline()
	case feed.CollectionGoals:
		goals, err := s.hub.src.Goals.ListGoals(loadCtx, s.ownerID)
		if err != nil {
			return s.reportLoadError(collection, err)
		}
		return s.push(MsgGoals, goals)
	case feed.CollectionTasks:
		tasks, err := s.hub.src.Tasks.ListTasks(loadCtx, s.ownerID)
		if err != nil {
			return s.reportLoadError(collection, err)
		}
		return s.push(MsgTasks, tasks)
	case feed.CollectionClock:
		return s.rollover(ctx)
	}
	return nil
}

// rollover follows the day change. A client still looking at the previous
// today is moved to the new one; streaks are recomputed either way.
func (s *Session) rollover(ctx context.Context) error {
	today := s.hub.src.Schedule.Today()
	if today != s.today {
		if s.view.Date() == s.today {
			if err := s.view.Select(today); err != nil {
				return err
			}
		}
		s.today = today
	}
	if err := s.pushTimeline(); err != nil {
		return err
	}
	return s.refresh(ctx, feed.CollectionGoals)
}

func (s *Session) handleClient(msg ClientMessage) error {
	switch msg.Type {
	case MsgSelectDate:
		if err := s.view.Select(msg.Date); err != nil {
			return s.push(MsgError, err.Error())
		}
		return s.pushTimeline()
	default:
		return s.push(MsgError, "unknown message type: "+msg.Type)
	}
}

func (s *Session) reportLoadError(collection feed.Collection, err error) error {
	s.logger.Error("reloading snapshot failed",
		zap.String("collection", string(collection)),
		zap.Error(err),
	)
	return s.push(MsgError, "couldn't load "+string(collection))
}

func (s *Session) pushTimeline() error {
	start := time.Now()
	tl := s.view.Timeline()
	observability.RecordTimelineBuild("live", time.Since(start))
	return s.push(MsgTimeline, tl)
}

// push queues a message without blocking. A full queue means the client
// can't keep up, and the session ends.
func (s *Session) push(msgType string, data any) error {
	payload, err := sonic.Marshal(Message{Type: msgType, Data: data})
	if err != nil {
		return err
	}
	select {
	case s.send <- payload:
		observability.RecordPush(msgType)
		return nil
	default:
		s.logger.Warn("dropping slow live client")
		return errSlowClient
	}
}

func (s *Session) readLoop(ctx context.Context, cancel context.CancelFunc) {
	defer cancel()
	s.conn.SetReadLimit(1024)
	_ = s.conn.SetReadDeadline(time.Now().Add(s.hub.opts.PongTimeout))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(s.hub.opts.PongTimeout))
	})
	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			return
		}
		_ = s.conn.SetReadDeadline(time.Now().Add(s.hub.opts.PongTimeout))
		var msg ClientMessage
		if err := sonic.Unmarshal(data, &msg); err != nil {
			msg = ClientMessage{Type: "malformed"}
		}
		select {
		case s.incoming <- msg:
		case <-ctx.Done():
			return
		}
	}
}

func (s *Session) writeLoop(ctx context.Context, cancel context.CancelFunc) {
	defer cancel()
	ping := time.NewTicker(s.hub.opts.PongTimeout * 9 / 10)
	defer ping.Stop()
	for {
		select {
		case <-ctx.Done():
			_ = s.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(time.Second))
			return
		case msg := <-s.send:
			_ = s.conn.SetWriteDeadline(time.Now().Add(s.hub.opts.WriteTimeout))
			if err := s.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ping.C:
			if err := s.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(s.hub.opts.WriteTimeout)); err != nil {
				return
			}
		}
	}
}

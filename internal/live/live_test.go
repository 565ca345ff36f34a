package live_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/limbo/planner/internal/feed"
	"github.com/limbo/planner/internal/live"
	"github.com/limbo/planner/internal/service/mocks"
	"github.com/limbo/planner/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	hub      *live.Hub
	feed     *feed.Memory
	server   *httptest.Server
	ownerID  uuid.UUID
	schedule *mocks.MockScheduleServiceI
	goals    *mocks.MockGoalsServiceI
	tasks    *mocks.MockTasksServiceI

	mu         sync.Mutex
	today      string
	activities []entity.Activity
}

func (fx *fixture) setToday(d string) {
	fx.mu.Lock()
	fx.today = d
	fx.mu.Unlock()
}

func (fx *fixture) setActivities(a []entity.Activity) {
	fx.mu.Lock()
	fx.activities = a
	fx.mu.Unlock()
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	fx := &fixture{
		feed:     feed.NewMemory(),
		ownerID:  uuid.New(),
		schedule: mocks.NewMockScheduleServiceI(ctrl),
		goals:    mocks.NewMockGoalsServiceI(ctrl),
		tasks:    mocks.NewMockTasksServiceI(ctrl),
		today:    "2026-10-15",
	}
	fx.schedule.EXPECT().Today().DoAndReturn(func() string {
		fx.mu.Lock()
		defer fx.mu.Unlock()
		return fx.today
	}).AnyTimes()
	fx.schedule.EXPECT().ListActivities(gomock.Any(), fx.ownerID).DoAndReturn(func(context.Context, uuid.UUID) ([]entity.Activity, error) {
		fx.mu.Lock()
		defer fx.mu.Unlock()
		return fx.activities, nil
	}).AnyTimes()
	fx.goals.EXPECT().ListGoals(gomock.Any(), fx.ownerID).Return([]entity.GoalView{}, nil).AnyTimes()
	fx.tasks.EXPECT().ListTasks(gomock.Any(), fx.ownerID).Return([]entity.Task{}, nil).AnyTimes()

	fx.hub = live.NewHub(fx.feed, live.Sources{
		Schedule: fx.schedule,
		Goals:    fx.goals,
		Tasks:    fx.tasks,
	}, nil, live.Options{})
	fx.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fx.hub.Serve(w, r, fx.ownerID)
	}))
	t.Cleanup(func() {
		fx.hub.Close()
		fx.server.Close()
	})
	return fx
}

func (fx *fixture) dial(t *testing.T) *websocket.Conn {
	url := "ws" + strings.TrimPrefix(fx.server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func read[T any](t *testing.T, conn *websocket.Conn, wantType string) T {
	t.Helper()
	var msg struct {
		Type string `json:"type"`
		Data T      `json:"data"`
	}
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	require.NoError(t, sonic.Unmarshal(data, &msg))
	require.Equal(t, wantType, msg.Type, string(data))
	return msg.Data
}

func readInitial(t *testing.T, conn *websocket.Conn) entity.DayTimeline {
	t.Helper()
	tl := read[entity.DayTimeline](t, conn, live.MsgTimeline)
	read[[]entity.GoalView](t, conn, live.MsgGoals)
	read[[]entity.Task](t, conn, live.MsgTasks)
	return tl
}

func TestSessionInitialViews(t *testing.T) {
	fx := newFixture(t)
	fx.setActivities([]entity.Activity{
		{ID: uuid.New(), Title: "Work", StartTime: "09:00", EndTime: "12:00", Date: "2026-10-15"},
	})
	conn := fx.dial(t)
	tl := readInitial(t, conn)
	assert.Equal(t, "2026-10-15", tl.Date)
	require.Len(t, tl.Entries, 2)
	assert.Equal(t, entity.EntryGap, tl.Entries[0].Kind)
	assert.Equal(t, "Work", tl.Entries[1].Activity.Title)
	assert.Eventually(t, func() bool { return fx.hub.Sessions(fx.ownerID) == 1 }, time.Second, 10*time.Millisecond)
}

func TestSessionReloadsOnChange(t *testing.T) {
	fx := newFixture(t)
	conn := fx.dial(t)
	tl := readInitial(t, conn)
	assert.Empty(t, tl.Entries)

	fx.setActivities([]entity.Activity{
		{ID: uuid.New(), Title: "Gym", StartTime: "18:00", EndTime: "19:00", Date: "2026-10-01",
			Recurrence: entity.Recurrence{Type: entity.RecurrenceDaily}},
	})
	require.Eventually(t, func() bool { return fx.feed.Subscribers(fx.ownerID) == 1 }, time.Second, 10*time.Millisecond)
	require.NoError(t, fx.feed.Publish(context.Background(), feed.Event{OwnerID: fx.ownerID, Collection: feed.CollectionActivities}))
	tl = read[entity.DayTimeline](t, conn, live.MsgTimeline)
	require.Len(t, tl.Entries, 2)
	assert.True(t, tl.Entries[1].Recurring)

	require.NoError(t, fx.feed.Publish(context.Background(), feed.Event{OwnerID: fx.ownerID, Collection: feed.CollectionGoals}))
	read[[]entity.GoalView](t, conn, live.MsgGoals)
}

func TestSessionSelectDate(t *testing.T) {
	fx := newFixture(t)
	fx.setActivities([]entity.Activity{
		{ID: uuid.New(), Title: "Trip", StartTime: "07:00", EndTime: "20:00", Date: "2026-10-17"},
	})
	conn := fx.dial(t)
	readInitial(t, conn)

	require.NoError(t, conn.WriteJSON(live.ClientMessage{Type: live.MsgSelectDate, Date: "2026-10-17"}))
	tl := read[entity.DayTimeline](t, conn, live.MsgTimeline)
	assert.Equal(t, "2026-10-17", tl.Date)
	assert.Len(t, tl.Entries, 2)

	require.NoError(t, conn.WriteJSON(live.ClientMessage{Type: live.MsgSelectDate, Date: "17/10/2026"}))
	read[string](t, conn, live.MsgError)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{not json")))
	read[string](t, conn, live.MsgError)
}

func TestSessionRollover(t *testing.T) {
	fx := newFixture(t)
	conn := fx.dial(t)
	tl := readInitial(t, conn)
	assert.Equal(t, "2026-10-15", tl.Date)

	fx.setToday("2026-10-16")
	fx.hub.Broadcast(feed.Event{Collection: feed.CollectionClock, At: time.Now()})
	tl = read[entity.DayTimeline](t, conn, live.MsgTimeline)
	assert.Equal(t, "2026-10-16", tl.Date)
	read[[]entity.GoalView](t, conn, live.MsgGoals)

	// A client looking at another day keeps its selection
	require.NoError(t, conn.WriteJSON(live.ClientMessage{Type: live.MsgSelectDate, Date: "2026-10-20"}))
	read[entity.DayTimeline](t, conn, live.MsgTimeline)
	fx.setToday("2026-10-17")
	fx.hub.Broadcast(feed.Event{Collection: feed.CollectionClock, At: time.Now()})
	tl = read[entity.DayTimeline](t, conn, live.MsgTimeline)
	assert.Equal(t, "2026-10-20", tl.Date)
}

func TestSessionUnregistersOnClose(t *testing.T) {
	fx := newFixture(t)
	conn := fx.dial(t)
	readInitial(t, conn)
	require.Eventually(t, func() bool { return fx.hub.Sessions(fx.ownerID) == 1 }, time.Second, 10*time.Millisecond)
	conn.Close()
	assert.Eventually(t, func() bool { return fx.hub.Sessions(fx.ownerID) == 0 }, 5*time.Second, 10*time.Millisecond)
	assert.Eventually(t, func() bool { return fx.feed.Subscribers(fx.ownerID) == 0 }, 5*time.Second, 10*time.Millisecond)
}

func TestHubCloseEndsSessions(t *testing.T) {
	fx := newFixture(t)
	conn := fx.dial(t)
	readInitial(t, conn)
	fx.hub.Close()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, _, err := conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure), "got %v", err)
}

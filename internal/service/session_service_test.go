package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"deal-insights-be/internal/dto"
	"deal-insights-be/internal/pkg/logger"
	"deal-insights-be/internal/repository/memory"
	"deal-insights-be/pkg/filter"
	"deal-insights-be/pkg/panel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu       sync.Mutex
	payloads [][]byte
}

func (p *recordingPublisher) Publish(ctx context.Context, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.payloads = append(p.payloads, payload)
	return nil
}

func (p *recordingPublisher) events(t *testing.T) []dto.SessionEventResponse {
	t.Helper()
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]dto.SessionEventResponse, 0, len(p.payloads))
	for _, raw := range p.payloads {
		var e dto.SessionEventResponse
		require.NoError(t, json.Unmarshal(raw, &e))
		out = append(out, e)
	}
	return out
}

type manualTimer struct {
	fn      func()
	stopped bool
}

func (t *manualTimer) Stop() bool {
	t.stopped = true
	return true
}

type manualScheduler struct {
	mu     sync.Mutex
	timers []*manualTimer
}

func (s *manualScheduler) AfterFunc(_ time.Duration, f func()) panel.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &manualTimer{fn: f}
	s.timers = append(s.timers, t)
	return t
}

func (s *manualScheduler) fireAll() {
	s.mu.Lock()
	timers := append([]*manualTimer(nil), s.timers...)
	s.mu.Unlock()
	for _, t := range timers {
		if !t.stopped {
			t.stopped = true
			t.fn()
		}
	}
}

type sessionFixture struct {
	svc       ISessionService
	publisher *recordingPublisher
	scheduler *manualScheduler
}

func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()
	projects, _ := newTestProjectService(t)
	pub := &recordingPublisher{}
	sched := &manualScheduler{}
	svc := NewSessionService(
		memory.NewSessionRepository(time.Hour, time.Minute),
		projects,
		pub,
		time.Second,
		logger.NewNopLogger(),
		logger.NewNopLogger(),
		WithPanelScheduler(sched),
	)
	return &sessionFixture{svc: svc, publisher: pub, scheduler: sched}
}

func TestSessionService_CreateShowDelete(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, created.Id)
	assert.Len(t, created.View.Projects, 8)
	assert.Equal(t, panel.StateClosed, created.Panel.State)
	assert.True(t, f.svc.Exists(created.Id))

	shown, err := f.svc.Show(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, created.Id, shown.Id)

	require.NoError(t, f.svc.Delete(ctx, created.Id))
	assert.False(t, f.svc.Exists(created.Id))

	_, err = f.svc.Show(ctx, created.Id)
	assert.True(t, errors.Is(err, ErrSessionNotFound))
	assert.True(t, errors.Is(f.svc.Delete(ctx, created.Id), ErrSessionNotFound))
}

func TestSessionService_Filters(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	s, _ := f.svc.Create(ctx)

	res, err := f.svc.ToggleFilter(ctx, s.Id, &dto.ToggleFilterRequest{Facet: "industry", Value: "retail"})
	require.NoError(t, err)
	assert.Len(t, res.View.Projects, 2)
	assert.Equal(t, 50, res.View.Stats.WinRate)

	res, err = f.svc.SetSearch(ctx, s.Id, &dto.SetSearchRequest{Text: "shopping"})
	require.NoError(t, err)
	assert.Equal(t, "shopping", res.SearchText)
	assert.Len(t, res.View.Projects, 2)

	_, err = f.svc.ToggleFilter(ctx, s.Id, &dto.ToggleFilterRequest{Facet: "industry", Value: "Mining"})
	assert.True(t, errors.Is(err, filter.ErrInvalidFacetValue))

	_, err = f.svc.ToggleFilter(ctx, s.Id, &dto.ToggleFilterRequest{Facet: "region", Value: "EU"})
	assert.True(t, errors.Is(err, filter.ErrUnknownFacet))

	res, err = f.svc.ClearFilters(ctx, s.Id)
	require.NoError(t, err)
	assert.Equal(t, "shopping", res.SearchText)
	assert.Equal(t, []string{}, res.Filters.Values(filter.FacetIndustry))
	assert.Len(t, res.View.Projects, 2)
}

func TestSessionService_PanelConversation(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	s, _ := f.svc.Create(ctx)

	res, err := f.svc.Submit(ctx, s.Id, &dto.SubmitMessageRequest{})
	require.NoError(t, err)
	assert.False(t, res.Applied, "closed panel ignores submit")

	res, err = f.svc.OpenPanel(ctx, s.Id)
	require.NoError(t, err)
	assert.True(t, res.Applied)

	res, err = f.svc.ChoosePrompt(ctx, s.Id, 0)
	require.NoError(t, err)
	assert.Equal(t, panel.SuggestedPrompts[0], res.Panel.Input)

	res, err = f.svc.Submit(ctx, s.Id, nil)
	require.NoError(t, err)
	assert.True(t, res.Applied)
	assert.True(t, res.Panel.Pending)

	f.scheduler.fireAll()

	shown, err := f.svc.Show(ctx, s.Id)
	require.NoError(t, err)
	require.Len(t, shown.Panel.Transcript, 3)
	assert.Equal(t, panel.EchoReply(panel.SuggestedPrompts[0]), shown.Panel.Transcript[2].Content)

	events := f.publisher.events(t)
	types := make([]string, 0, len(events))
	for _, e := range events {
		assert.Equal(t, s.Id, e.SessionId)
		types = append(types, e.Type)
	}
	assert.Equal(t, []string{"panel_state", "message_appended", "reply_pending", "message_appended", "reply_pending"}, types)
	require.NotNil(t, events[3].Message)
	assert.Equal(t, panel.RoleAssistant, events[3].Message.Role)
}

func TestSessionService_SubmitWithText(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	s, _ := f.svc.Create(ctx)
	f.svc.OpenPanel(ctx, s.Id)

	text := "   "
	res, err := f.svc.Submit(ctx, s.Id, &dto.SubmitMessageRequest{Text: &text})
	require.NoError(t, err)
	assert.False(t, res.Applied)

	text = "compare 2024 and 2023"
	res, err = f.svc.Submit(ctx, s.Id, &dto.SubmitMessageRequest{Text: &text})
	require.NoError(t, err)
	assert.True(t, res.Applied)
	assert.Equal(t, text, res.Panel.Transcript[1].Content)
}

func TestSessionService_PointerGestures(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	s, _ := f.svc.Create(ctx)
	f.svc.OpenPanel(ctx, s.Id)

	res, err := f.svc.Pointer(ctx, s.Id, &dto.PointerRequest{Type: "down", Target: "header", X: 500, Y: 500})
	require.NoError(t, err)
	assert.True(t, res.Applied)
	assert.Equal(t, panel.GestureDragging, res.Panel.Gesture)

	res, err = f.svc.Pointer(ctx, s.Id, &dto.PointerRequest{Type: "move", X: 400, Y: 500})
	require.NoError(t, err)
	assert.Equal(t, panel.Point{X: 120, Y: 20}, res.Panel.Position)

	res, err = f.svc.Pointer(ctx, s.Id, &dto.PointerRequest{Type: "up"})
	require.NoError(t, err)
	assert.Equal(t, panel.GestureIdle, res.Panel.Gesture)

	_, err = f.svc.Pointer(ctx, s.Id, &dto.PointerRequest{Type: "down", Target: "footer"})
	assert.True(t, errors.Is(err, panel.ErrUnknownTarget))

	_, err = f.svc.Pointer(ctx, s.Id, &dto.PointerRequest{Type: "hover"})
	assert.True(t, errors.Is(err, ErrInvalidPointer))

	res, err = f.svc.SetViewport(ctx, s.Id, &dto.ViewportRequest{Width: 1280, Height: 720})
	require.NoError(t, err)
	assert.Equal(t, panel.Viewport{Width: 1280, Height: 720}, res.Panel.Viewport)
}

func TestSessionService_DeleteCancelsPendingReply(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	s, _ := f.svc.Create(ctx)
	f.svc.OpenPanel(ctx, s.Id)
	f.svc.SetInput(ctx, s.Id, &dto.SetInputRequest{Text: "anyone there?"})
	f.svc.Submit(ctx, s.Id, nil)

	require.NoError(t, f.svc.Delete(ctx, s.Id))

	f.scheduler.mu.Lock()
	defer f.scheduler.mu.Unlock()
	require.Len(t, f.scheduler.timers, 1)
	assert.True(t, f.scheduler.timers[0].stopped)
}

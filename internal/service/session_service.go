package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"deal-insights-be/internal/dto"
	"deal-insights-be/internal/mapper"
	"deal-insights-be/internal/pkg/logger"
	"deal-insights-be/internal/repository/contract"
	"deal-insights-be/pkg/filter"
	"deal-insights-be/pkg/panel"
	"deal-insights-be/pkg/store"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidPointer  = errors.New("invalid pointer event")
)

type ISessionService interface {
	Create(ctx context.Context) (*dto.SessionResponse, error)
	Show(ctx context.Context, id string) (*dto.SessionResponse, error)
	Delete(ctx context.Context, id string) error
	Exists(id string) bool

	ToggleFilter(ctx context.Context, id string, req *dto.ToggleFilterRequest) (*dto.SessionResponse, error)
	ClearFilters(ctx context.Context, id string) (*dto.SessionResponse, error)
	SetSearch(ctx context.Context, id string, req *dto.SetSearchRequest) (*dto.SessionResponse, error)

	OpenPanel(ctx context.Context, id string) (*dto.PanelActionResponse, error)
	ClosePanel(ctx context.Context, id string) (*dto.PanelActionResponse, error)
	ToggleExpand(ctx context.Context, id string) (*dto.PanelActionResponse, error)
	SetViewport(ctx context.Context, id string, req *dto.ViewportRequest) (*dto.PanelActionResponse, error)
	Pointer(ctx context.Context, id string, req *dto.PointerRequest) (*dto.PanelActionResponse, error)
	SetInput(ctx context.Context, id string, req *dto.SetInputRequest) (*dto.PanelActionResponse, error)
	ChoosePrompt(ctx context.Context, id string, index int) (*dto.PanelActionResponse, error)
	Submit(ctx context.Context, id string, req *dto.SubmitMessageRequest) (*dto.PanelActionResponse, error)
}

type sessionService struct {
	sessions       contract.SessionRepository
	projectService IProjectService
	publisher      IPublisherService
	mapper         *mapper.ProjectMapper
	logger         logger.ILogger
	eventLogger    logger.ILogger

	replyLatency time.Duration
	scheduler    panel.Scheduler
}

type SessionServiceOption func(*sessionService)

// WithPanelScheduler overrides the reply timer source of new panels.
func WithPanelScheduler(s panel.Scheduler) SessionServiceOption {
	return func(ss *sessionService) { ss.scheduler = s }
}

func NewSessionService(
	sessions contract.SessionRepository,
	projectService IProjectService,
	publisher IPublisherService,
	replyLatency time.Duration,
	logger logger.ILogger,
	eventLogger logger.ILogger,
	opts ...SessionServiceOption,
) ISessionService {
	s := &sessionService{
		sessions:       sessions,
		projectService: projectService,
		publisher:      publisher,
		mapper:         mapper.NewProjectMapper(),
		logger:         logger,
		eventLogger:    eventLogger,
		replyLatency:   replyLatency,
		scheduler:      panel.RealScheduler,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *sessionService) Create(ctx context.Context) (*dto.SessionResponse, error) {
	id := uuid.NewString()
	controller := panel.NewController(
		panel.WithScheduler(s.scheduler),
		panel.WithReplyLatency(s.replyLatency),
		panel.WithListener(func(e panel.Event) { s.publishEvent(id, e) }),
	)
	sess := store.NewSession(id, controller)
	s.sessions.Save(sess)

	s.logger.Info("SessionService", "Session created", map[string]interface{}{
		"session_id":      id,
		"active_sessions": s.sessions.Count(),
	})
	return s.toResponse(ctx, sess)
}

// publishEvent runs on the panel's notification path, possibly from a reply
// timer goroutine, so it never blocks on the request context.
func (s *sessionService) publishEvent(sessionId string, e panel.Event) {
	payload, err := json.Marshal(dto.SessionEventResponse{
		SessionId: sessionId,
		Type:      string(e.Type),
		Message:   e.Message,
		Panel:     e.Snapshot,
	})
	if err != nil {
		s.logger.Error("SessionService", "Failed to encode session event", map[string]interface{}{"error": err.Error()})
		return
	}

	s.eventLogger.Info("SessionEvents", string(e.Type), map[string]interface{}{
		"session_id":      sessionId,
		"state":           e.Snapshot.State.String(),
		"pending_replies": e.Snapshot.PendingReplies,
	})

	if err := s.publisher.Publish(context.Background(), payload); err != nil {
		s.logger.Error("SessionService", "Failed to publish session event", map[string]interface{}{
			"error":      err.Error(),
			"session_id": sessionId,
		})
	}
}

func (s *sessionService) get(id string) (*store.Session, error) {
	sess, ok := s.sessions.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return sess, nil
}

func (s *sessionService) Exists(id string) bool {
	_, ok := s.sessions.Get(id)
	return ok
}

func (s *sessionService) Show(ctx context.Context, id string) (*dto.SessionResponse, error) {
	sess, err := s.get(id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, sess)
}

func (s *sessionService) Delete(ctx context.Context, id string) error {
	if !s.sessions.Delete(id) {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	s.logger.Info("SessionService", "Session deleted", map[string]interface{}{"session_id": id})
	return nil
}

func (s *sessionService) toResponse(ctx context.Context, sess *store.Session) (*dto.SessionResponse, error) {
	state := sess.Filters()
	view, err := s.projectService.View(ctx, state)
	if err != nil {
		return nil, err
	}
	return &dto.SessionResponse{
		Id:         sess.Id,
		Filters:    state.Selection,
		SearchText: state.SearchText,
		View:       s.mapper.ToViewResponse(view),
		Panel:      sess.Panel.Snapshot(),
	}, nil
}

func (s *sessionService) updateFilters(ctx context.Context, id string, fn func(*filter.State) error) (*dto.SessionResponse, error) {
	sess, err := s.get(id)
	if err != nil {
		return nil, err
	}
	if _, err := sess.UpdateFilters(fn); err != nil {
		return nil, err
	}
	return s.toResponse(ctx, sess)
}

func (s *sessionService) ToggleFilter(ctx context.Context, id string, req *dto.ToggleFilterRequest) (*dto.SessionResponse, error) {
	facet, err := filter.ParseFacet(req.Facet)
	if err != nil {
		return nil, err
	}
	return s.updateFilters(ctx, id, func(st *filter.State) error {
		return st.ToggleFacet(facet, req.Value)
	})
}

func (s *sessionService) ClearFilters(ctx context.Context, id string) (*dto.SessionResponse, error) {
	return s.updateFilters(ctx, id, func(st *filter.State) error {
		st.ClearFilters()
		return nil
	})
}

func (s *sessionService) SetSearch(ctx context.Context, id string, req *dto.SetSearchRequest) (*dto.SessionResponse, error) {
	return s.updateFilters(ctx, id, func(st *filter.State) error {
		st.SetSearchText(req.Text)
		return nil
	})
}

// onPanel runs fn against the session's panel and reports the resulting state.
func (s *sessionService) onPanel(id string, fn func(p *panel.Controller) bool) (*dto.PanelActionResponse, error) {
	sess, err := s.get(id)
	if err != nil {
		return nil, err
	}
	applied := fn(sess.Panel)
	return &dto.PanelActionResponse{Applied: applied, Panel: sess.Panel.Snapshot()}, nil
}

func (s *sessionService) OpenPanel(ctx context.Context, id string) (*dto.PanelActionResponse, error) {
	return s.onPanel(id, (*panel.Controller).Open)
}

func (s *sessionService) ClosePanel(ctx context.Context, id string) (*dto.PanelActionResponse, error) {
	return s.onPanel(id, (*panel.Controller).Close)
}

func (s *sessionService) ToggleExpand(ctx context.Context, id string) (*dto.PanelActionResponse, error) {
	return s.onPanel(id, (*panel.Controller).ToggleExpand)
}

func (s *sessionService) SetViewport(ctx context.Context, id string, req *dto.ViewportRequest) (*dto.PanelActionResponse, error) {
	return s.onPanel(id, func(p *panel.Controller) bool {
		p.SetViewport(panel.Viewport{Width: req.Width, Height: req.Height})
		return true
	})
}

func (s *sessionService) Pointer(ctx context.Context, id string, req *dto.PointerRequest) (*dto.PanelActionResponse, error) {
	point := panel.Point{X: req.X, Y: req.Y}

	var action func(p *panel.Controller) bool
	switch req.Type {
	case "down":
		target, err := panel.ParseTarget(req.Target)
		if err != nil {
			return nil, err
		}
		action = func(p *panel.Controller) bool { return p.PointerDown(target, point) }
	case "move":
		action = func(p *panel.Controller) bool { return p.PointerMove(point) }
	case "up":
		action = (*panel.Controller).PointerUp
	default:
		return nil, fmt.Errorf("%w: type %q", ErrInvalidPointer, req.Type)
	}
	return s.onPanel(id, action)
}

func (s *sessionService) SetInput(ctx context.Context, id string, req *dto.SetInputRequest) (*dto.PanelActionResponse, error) {
	return s.onPanel(id, func(p *panel.Controller) bool {
		p.SetInput(req.Text)
		return true
	})
}

func (s *sessionService) ChoosePrompt(ctx context.Context, id string, index int) (*dto.PanelActionResponse, error) {
	return s.onPanel(id, func(p *panel.Controller) bool {
		return p.ChooseSuggestedPrompt(index)
	})
}

func (s *sessionService) Submit(ctx context.Context, id string, req *dto.SubmitMessageRequest) (*dto.PanelActionResponse, error) {
	return s.onPanel(id, func(p *panel.Controller) bool {
		if req != nil && req.Text != nil {
			p.SetInput(*req.Text)
		}
		_, ok := p.Submit()
		return ok
	})
}

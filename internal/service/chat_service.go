package service

import (
	"context"
	"math"
	"strings"

	"deal-insights-be/internal/dto"
	"deal-insights-be/internal/entity"
	"deal-insights-be/internal/pkg/logger"
	"deal-insights-be/internal/repository/contract"
	"deal-insights-be/pkg/panel"
)

type IChatService interface {
	Answer(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error)
}

type chatService struct {
	repo   contract.ProjectRepository
	logger logger.ILogger
}

func NewChatService(repo contract.ProjectRepository, logger logger.ILogger) IChatService {
	return &chatService{
		repo:   repo,
		logger: logger,
	}
}

// Answer replies with the canned copilot answer and cites every project whose
// client, industry or a strategy label appears in the message.
func (s *chatService) Answer(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	records, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	citations := cite(records, req.Message)
	res := &dto.ChatResponse{
		Answer:     panel.EchoReply(req.Message),
		Citations:  citations,
		Confidence: confidence(len(citations)),
	}

	s.logger.Info("ChatService", "Answered chat message", map[string]interface{}{
		"history_len": len(req.History),
		"citations":   len(citations),
	})
	return res, nil
}

func cite(records []*entity.Project, message string) []dto.ChatCitation {
	text := strings.ToLower(message)
	citations := []dto.ChatCitation{}
	for _, p := range records {
		if reason := mentionReason(p, text); reason != "" {
			citations = append(citations, dto.ChatCitation{ProjectId: p.Id, Client: p.Client, Reason: reason})
		}
	}
	return citations
}

func mentionReason(p *entity.Project, text string) string {
	if strings.Contains(text, strings.ToLower(p.Client)) {
		return "client"
	}
	if strings.Contains(text, strings.ToLower(string(p.Industry))) {
		return "industry"
	}
	for _, strategy := range p.Strategies {
		if strings.Contains(text, strings.ToLower(strategy)) {
			return "strategy: " + strategy
		}
	}
	return ""
}

// confidence grows with the number of cited projects; nil when nothing is cited.
func confidence(citations int) *float64 {
	if citations == 0 {
		return nil
	}
	c := math.Min(0.9, 0.5+0.1*float64(citations))
	c = math.Round(c*100) / 100
	return &c
}

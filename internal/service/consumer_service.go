package service

import (
	"context"
	"encoding/json"

	"deal-insights-be/internal/dto"
	"deal-insights-be/internal/pkg/logger"
	"deal-insights-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// SessionEventSink receives encoded session events for live delivery.
type SessionEventSink interface {
	SendToSession(ctx context.Context, sessionId string, data []byte)
}

type consumerService struct {
	subscriber  message.Subscriber
	topicName   string
	sink        SessionEventSink
	externalBus events.Publisher
	logger      logger.ILogger
}

// NewConsumerService forwards session events from the topic to sink and, when
// externalBus is non-nil, republishes them there.
func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	sink SessionEventSink,
	externalBus events.Publisher,
	logger logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber:  subscriber,
		topicName:   topicName,
		sink:        sink,
		externalBus: externalBus,
		logger:      logger,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	// malformed messages are acked so they are not redelivered forever
	defer msg.Ack()

	var payload dto.SessionEventResponse
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("ConsumerService", "Failed to unmarshal session event", map[string]interface{}{
			"error":      err.Error(),
			"message_id": msg.UUID,
		})
		return
	}

	cs.sink.SendToSession(ctx, payload.SessionId, msg.Payload)

	if cs.externalBus == nil {
		return
	}
	evt := events.NewSessionEvent(payload.SessionId, payload.Type, map[string]interface{}{
		"message":         payload.Message,
		"state":           payload.Panel.State,
		"pending_replies": payload.Panel.PendingReplies,
	})
	if err := cs.externalBus.Publish(ctx, evt); err != nil {
		cs.logger.Warn("ConsumerService", "Failed to republish session event", map[string]interface{}{
			"error":      err.Error(),
			"session_id": payload.SessionId,
			"type":       payload.Type,
		})
	}
}

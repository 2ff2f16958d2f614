package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"octobot-be/internal/pkg/logger"
	"octobot-be/internal/websocket"
	"octobot-be/pkg/events"
	pktNats "octobot-be/pkg/nats"
)

// Dashboard event type codes.
const (
	EventSessionCreated  = "SESSION_CREATED"
	EventMessageStored   = "MESSAGE_STORED"
	EventReviewSubmitted = "REVIEW_SUBMITTED"
)

// dashboardEvent is the JSON shape services put on the bus.
type dashboardEvent struct {
	Type       string                 `json:"type"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt time.Time              `json:"occurred_at"`
}

// publishDashboardEvent is the one helper services call to emit a live
// event. Publish failures are logged, never surfaced; the dashboard is
// best-effort.
func publishDashboardEvent(ctx context.Context, pub IPublisherService, log logger.ILogger, eventType string, data map[string]interface{}) {
	if pub == nil {
		return
	}
	payload, err := json.Marshal(dashboardEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	})
	if err != nil {
		log.Error("events", "failed to marshal dashboard event", map[string]interface{}{"type": eventType, "error": err.Error()})
		return
	}
	if err := pub.Publish(ctx, payload); err != nil {
		log.Error("events", "failed to publish dashboard event", map[string]interface{}{"type": eventType, "error": err.Error()})
	}
}

type IDashboardEventService interface {
	Consume(ctx context.Context) error
}

// dashboardEventService drains the in-process bus, pushes events to the
// websocket hub and mirrors them to NATS when an audit publisher is
// connected.
type dashboardEventService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	hub       *websocket.Hub
	natsPub   *pktNats.Publisher
	logger    logger.ILogger
}

func NewDashboardEventService(
	pubSub *gochannel.GoChannel,
	topicName string,
	hub *websocket.Hub,
	natsPub *pktNats.Publisher,
	log logger.ILogger,
) IDashboardEventService {
	return &dashboardEventService{
		pubSub:    pubSub,
		topicName: topicName,
		hub:       hub,
		natsPub:   natsPub,
		logger:    log,
	}
}

func (s *dashboardEventService) Consume(ctx context.Context) error {
	messages, err := s.pubSub.Subscribe(ctx, s.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (s *dashboardEventService) processMessage(ctx context.Context, msg *message.Message) {
	var evt dashboardEvent
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		s.logger.Error("events", "failed to unmarshal dashboard event", map[string]interface{}{"error": err.Error()})
		msg.Ack() // invalid payloads must not loop forever
		return
	}

	base := events.BaseEvent{
		Type:       evt.Type,
		Data:       evt.Data,
		OccurredAt: evt.OccurredAt,
	}

	s.hub.Broadcast(base)

	if s.natsPub != nil {
		if err := s.natsPub.Publish(ctx, base); err != nil {
			s.logger.Warn("events", "failed to mirror event to NATS", map[string]interface{}{"type": evt.Type, "error": err.Error()})
		}
	}

	msg.Ack()
}

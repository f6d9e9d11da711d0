package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/layer-3/questrun/core"
	"github.com/layer-3/questrun/ports"
)

const (
	// TopicAccountResult carries one event per processed wallet
	TopicAccountResult = "questrun.account.result"
	// TopicCycleSummary carries one event per completed cycle
	TopicCycleSummary = "questrun.cycle.summary"
)

// WatermillPublisher implements the EventPublisher interface using Watermill
type WatermillPublisher struct {
	publisher message.Publisher
}

// NewWatermillPublisher creates a new Watermill publisher
func NewWatermillPublisher(publisher message.Publisher) ports.EventPublisher {
	return &WatermillPublisher{publisher: publisher}
}

// PublishAccountResult publishes one wallet's processing outcome
func (p *WatermillPublisher) PublishAccountResult(ctx context.Context, result core.AccountResult) error {
	return p.publish(TopicAccountResult, result)
}

// PublishCycleSummary publishes the aggregate outcome of one cycle
func (p *WatermillPublisher) PublishCycleSummary(ctx context.Context, summary core.CycleSummary) error {
	return p.publish(TopicCycleSummary, summary)
}

func (p *WatermillPublisher) publish(topic string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := message.NewMessage(uuid.New().String(), data)

	if err := p.publisher.Publish(topic, msg); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	return nil
}

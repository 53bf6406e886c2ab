package event

import (
	"context"
	"log/slog"
)

// NoopPublisher drops every event. Used when RabbitMQ is disabled.
type NoopPublisher struct {
	logger *slog.Logger
}

var _ Publisher = (*NoopPublisher)(nil)

func NewNoopPublisher(logger *slog.Logger) *NoopPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &NoopPublisher{logger: logger.With("component", "NoopPublisher")}
}

func (p *NoopPublisher) drop(ctx context.Context, routingKey string) error {
	p.logger.DebugContext(ctx, "Event publishing disabled, dropping event", slog.String("routingKey", routingKey))
	return nil
}

func (p *NoopPublisher) PublishCustomerRegistered(ctx context.Context, _ CustomerEvent) error {
	return p.drop(ctx, RoutingKeyCustomerRegistered)
}

func (p *NoopPublisher) PublishCustomerUpdated(ctx context.Context, _ CustomerEvent) error {
	return p.drop(ctx, RoutingKeyCustomerUpdated)
}

func (p *NoopPublisher) PublishCustomerDeleted(ctx context.Context, _ CustomerEvent) error {
	return p.drop(ctx, RoutingKeyCustomerDeleted)
}

func (p *NoopPublisher) PublishCreditRequested(ctx context.Context, _ CreditRequestedEvent) error {
	return p.drop(ctx, RoutingKeyCreditRequested)
}

package interfaces

import (
	"context"

	"ordem_servico/internal/domain/entities"
)

// IEventPublisher sends order lifecycle events to the message broker.
type IEventPublisher interface {
	Publish(ctx context.Context, event entities.OrderEvent) error
}

package interfaces

import (
	"context"

	"ordem_servico/internal/domain/entities"
)

// ISyncJournalRepository abstracts DynamoDB persistence for SyncMutation.

type ISyncJournalRepository interface {
	Append(ctx context.Context, mutation entities.SyncMutation) (entities.SyncMutation, error)
	ListByOrderNumber(ctx context.Context, orderNumber string) ([]entities.SyncMutation, error)
}

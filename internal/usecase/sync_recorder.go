package usecase

import (
	"context"
	"time"

	"ordem_servico/internal/domain/entities"
	"ordem_servico/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// syncRecorder journals remote commits and announces them on the broker. Both
// collaborators are optional; a missing one turns the call into a no-op.
type syncRecorder struct {
	journal   interfaces.ISyncJournalRepository
	publisher interfaces.IEventPublisher
	now       func() time.Time
}

func newSyncRecorder(journal interfaces.ISyncJournalRepository, publisher interfaces.IEventPublisher) syncRecorder {
	return syncRecorder{journal: journal, publisher: publisher, now: time.Now}
}

func (r syncRecorder) record(ctx context.Context, m entities.SyncMutation, commitErr error) {
	if r.journal == nil {
		return
	}
	m.ID = uuid.NewString()
	m.CreatedAt = r.now().UTC()
	m.Outcome = entities.MutationCommitted
	if commitErr != nil {
		m.Outcome = entities.MutationRolledBack
		m.Error = commitErr.Error()
	}
	if _, err := r.journal.Append(ctx, m); err != nil {
		zap.L().Error("[sync][usecase] journal append failed",
			zap.String("order_number", m.OrderNumber),
			zap.String("kind", string(m.Kind)),
			zap.Error(err))
	}
}

func (r syncRecorder) publish(ctx context.Context, e entities.OrderEvent) {
	if r.publisher == nil {
		return
	}
	e.OccurredAt = r.now().UTC()
	if err := r.publisher.Publish(ctx, e); err != nil {
		zap.L().Warn("[sync][usecase] event publish failed",
			zap.String("type", string(e.Type)),
			zap.String("order_number", e.OrderNumber),
			zap.Error(err))
	}
}

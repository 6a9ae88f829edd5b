package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"ordem_servico/internal/domain/entities"
	"ordem_servico/internal/domain/form"
	"ordem_servico/internal/usecase/interfaces"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	ErrSubmitInProgress = errors.New("submission already in progress")
	ErrInvalidFormMode  = errors.New("invalid form mode")
)

// IOrderFormUseCase encapsulates the create and update screens.
//
// Requested behavior:
//   - hand out a blank draft or a form seeded from an existing order
//   - validate before sending; an invalid form never reaches the API
//   - reject a second submission of the same order while one is running

type IOrderFormUseCase interface {
	Draft(ctx context.Context, s entities.Session) (*form.OrderForm, error)
	EditForm(ctx context.Context, s entities.Session, id string) (*form.OrderForm, error)
	Validate(f *form.OrderForm) form.ValidationResult
	Submit(ctx context.Context, s entities.Session, f *form.OrderForm) (entities.ServiceOrder, error)
	RemoveBill(f *form.OrderForm, index int) error
}

type OrderFormUseCase struct {
	gateway  interfaces.IServiceOrderGateway
	views    IOrderViewUseCase
	recorder syncRecorder
	now      func() time.Time

	mu         sync.Mutex
	submitting map[string]struct{}
}

var _ IOrderFormUseCase = (*OrderFormUseCase)(nil)

func NewOrderFormUseCase(gateway interfaces.IServiceOrderGateway, views IOrderViewUseCase, journal interfaces.ISyncJournalRepository, publisher interfaces.IEventPublisher) *OrderFormUseCase {
	return &OrderFormUseCase{
		gateway:    gateway,
		views:      views,
		recorder:   newSyncRecorder(journal, publisher),
		now:        time.Now,
		submitting: make(map[string]struct{}),
	}
}

func (u *OrderFormUseCase) Draft(_ context.Context, s entities.Session) (*form.OrderForm, error) {
	if !s.Valid() {
		return nil, ErrMissingToken
	}
	return form.NewCreateDraft(u.now()), nil
}

// EditForm loads the order and the shop logo concurrently. A missing logo does
// not prevent editing.
func (u *OrderFormUseCase) EditForm(ctx context.Context, s entities.Session, id string) (*form.OrderForm, error) {
	if !s.Valid() {
		return nil, ErrMissingToken
	}

	var (
		order   entities.ServiceOrder
		logoURL string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		order, err = u.views.Find(gctx, s, id)
		return err
	})
	g.Go(func() error {
		url, err := u.gateway.ShopLogo(gctx, s.Token)
		if err != nil {
			zap.L().Warn("[form][usecase] shop logo unavailable", zap.Error(err))
			return nil
		}
		logoURL = url
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return form.NewUpdateForm(order, logoURL), nil
}

func (u *OrderFormUseCase) Validate(f *form.OrderForm) form.ValidationResult {
	return f.Validate()
}

func (u *OrderFormUseCase) RemoveBill(f *form.OrderForm, index int) error {
	return f.RemoveBill(index)
}

// Submit validates f and creates or updates the order. f.State follows the
// submission; the returned error is a *form.ValidationError when f is invalid.
func (u *OrderFormUseCase) Submit(ctx context.Context, s entities.Session, f *form.OrderForm) (entities.ServiceOrder, error) {
	if !s.Valid() {
		return entities.ServiceOrder{}, ErrMissingToken
	}
	if f.Mode != form.ModeCreate && f.Mode != form.ModeUpdate {
		return entities.ServiceOrder{}, ErrInvalidFormMode
	}
	if f.Mode == form.ModeUpdate && strings.TrimSpace(f.ID) == "" {
		return entities.ServiceOrder{}, ErrInvalidOrderID
	}
	if f.State == form.StateSubmitting {
		return entities.ServiceOrder{}, ErrSubmitInProgress
	}

	key := submitKey(s, f)
	if !u.acquire(key) {
		zap.L().Info("[form][usecase] duplicate submit rejected", zap.String("number", f.Number))
		return entities.ServiceOrder{}, ErrSubmitInProgress
	}
	defer u.release(key)

	f.State = form.StateValidating
	if res := f.Validate(); !res.Valid() {
		f.State = form.StateInvalid
		zap.L().Info("[form][usecase] form invalid",
			zap.String("number", f.Number), zap.Int("field_errors", len(res.FieldErrors)))
		return entities.ServiceOrder{}, res.Err()
	}

	f.State = form.StateSubmitting
	payload := f.Payload()

	var saved entities.ServiceOrder
	var err error
	kind, event := entities.MutationCreate, entities.EventOrderCreated
	if f.Mode == form.ModeCreate {
		zap.L().Info("[form][usecase] creating order", zap.String("number", payload.Number))
		saved, err = u.gateway.CreateOrder(ctx, s.Token, payload)
	} else {
		kind, event = entities.MutationUpdate, entities.EventOrderUpdated
		zap.L().Info("[form][usecase] updating order", zap.String("id", payload.ID), zap.String("number", payload.Number))
		saved, err = u.gateway.UpdateOrder(ctx, payload.ID, payload)
	}

	u.recorder.record(ctx, entities.SyncMutation{
		ShopToken:   s.Token,
		OrderID:     payload.ID,
		OrderNumber: payload.Number,
		Kind:        kind,
		Requested:   string(payload.Status),
	}, err)

	if err != nil {
		f.State = form.StateFailed
		zap.L().Error("[form][usecase] submit failed", zap.String("number", payload.Number), zap.Error(err))
		return entities.ServiceOrder{}, err
	}
	if saved.Number == "" {
		saved = payload
	}
	f.State = form.StateSucceeded

	u.recorder.publish(ctx, entities.OrderEvent{
		Type:        event,
		ShopToken:   s.Token,
		OrderID:     saved.ID,
		OrderNumber: saved.Number,
		Status:      saved.Status,
	})
	if u.views != nil {
		if _, err := u.views.Refresh(ctx, s); err != nil {
			zap.L().Warn("[form][usecase] listing refresh after submit failed", zap.Error(err))
		}
	}
	return saved, nil
}

func submitKey(s entities.Session, f *form.OrderForm) string {
	if f.Mode == form.ModeUpdate {
		return s.Token + "|id|" + strings.TrimSpace(f.ID)
	}
	return s.Token + "|number|" + strings.TrimSpace(f.Number)
}

func (u *OrderFormUseCase) acquire(key string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, busy := u.submitting[key]; busy {
		return false
	}
	u.submitting[key] = struct{}{}
	return true
}

func (u *OrderFormUseCase) release(key string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	delete(u.submitting, key)
}

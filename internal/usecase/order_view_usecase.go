package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"ordem_servico/internal/domain/entities"
	"ordem_servico/internal/domain/listing"
	"ordem_servico/internal/usecase/interfaces"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

var (
	ErrMissingToken       = errors.New("missing shop token")
	ErrOrderNotFound      = errors.New("service order not found")
	ErrInvalidStatus      = errors.New("invalid service order status")
	ErrInvalidOrderID     = errors.New("invalid order id")
	ErrInvalidOrderNumber = errors.New("invalid order number")
	ErrDeleteNotConfirmed = errors.New("delete not confirmed")
)

// DefaultCommitTimeout bounds a background commit to the remote API.
const DefaultCommitTimeout = 15 * time.Second

// Confirmer approves a destructive action before it is applied.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

type ConfirmFunc func(ctx context.Context, prompt string) bool

func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) bool {
	return f(ctx, prompt)
}

// AlwaysConfirm is used when the caller already confirmed out of band.
var AlwaysConfirm Confirmer = ConfirmFunc(func(context.Context, string) bool { return true })

// OrderPage is one page of the listing as shown to the user.
type OrderPage struct {
	listing.Page
	Rows    []listing.Row
	Filter  listing.Filter
	Loading bool
}

// IOrderViewUseCase encapsulates the orders table of a shop.
//
// Requested behavior:
//   - load every order of the shop once, then filter and paginate in memory
//   - change status and delete optimistically; the remote call runs afterwards
//     and a failure puts the previous state back
//   - keep a journal of every background commit

type IOrderViewUseCase interface {
	Page(ctx context.Context, s entities.Session, f listing.Filter, page int) (OrderPage, error)
	Browse(ctx context.Context, s entities.Session, f listing.Filter, page int) (OrderPage, error)
	Refresh(ctx context.Context, s entities.Session) (OrderPage, error)
	Find(ctx context.Context, s entities.Session, id string) (entities.ServiceOrder, error)
	FindByNumber(ctx context.Context, s entities.Session, number string) (entities.ServiceOrder, error)
	ChangeStatus(ctx context.Context, s entities.Session, id string, status entities.OrderStatus) (listing.Row, error)
	Delete(ctx context.Context, s entities.Session, number string, c Confirmer) error
	History(ctx context.Context, number string) ([]entities.SyncMutation, error)
	ExportRows(ctx context.Context, s entities.Session, f listing.Filter) ([]listing.Row, error)
	Wait()
}

type OrderViewUseCase struct {
	gateway       interfaces.IServiceOrderGateway
	recorder      syncRecorder
	pdfBaseURL    string
	commitTimeout time.Duration

	mu       sync.Mutex
	listings map[string]*listing.OrderListing
	loads    singleflight.Group
	inflight sync.WaitGroup
}

var _ IOrderViewUseCase = (*OrderViewUseCase)(nil)

func NewOrderViewUseCase(gateway interfaces.IServiceOrderGateway, journal interfaces.ISyncJournalRepository, publisher interfaces.IEventPublisher, pdfBaseURL string, commitTimeout time.Duration) *OrderViewUseCase {
	if commitTimeout <= 0 {
		commitTimeout = DefaultCommitTimeout
	}
	return &OrderViewUseCase{
		gateway:       gateway,
		recorder:      newSyncRecorder(journal, publisher),
		pdfBaseURL:    pdfBaseURL,
		commitTimeout: commitTimeout,
		listings:      make(map[string]*listing.OrderListing),
	}
}

// Page filters and paginates from the caller's own parameters. Concurrent
// requests for the same shop never see each other's filter.
func (u *OrderViewUseCase) Page(ctx context.Context, s entities.Session, f listing.Filter, page int) (OrderPage, error) {
	l, err := u.mounted(ctx, s)
	if err != nil {
		return OrderPage{}, err
	}
	p := l.View(f, page)
	return OrderPage{Page: p, Rows: u.rows(p.Items), Filter: f.Trimmed(), Loading: l.Loading()}, nil
}

// Browse moves the shop's stored filter and page, which Refresh keeps. It backs
// the single user watch session; request handlers use Page.
func (u *OrderViewUseCase) Browse(ctx context.Context, s entities.Session, f listing.Filter, page int) (OrderPage, error) {
	l, err := u.mounted(ctx, s)
	if err != nil {
		return OrderPage{}, err
	}
	l.Navigate(f, page)
	return u.view(l), nil
}

// Refresh refetches the shop's orders, keeping the filter and page stored by Browse.
func (u *OrderViewUseCase) Refresh(ctx context.Context, s entities.Session) (OrderPage, error) {
	if !s.Valid() {
		return OrderPage{}, ErrMissingToken
	}
	l := u.listingFor(s.Token)
	if err := u.load(ctx, s.Token, l); err != nil {
		return OrderPage{}, err
	}
	return u.view(l), nil
}

func (u *OrderViewUseCase) Find(ctx context.Context, s entities.Session, id string) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrder{}, ErrInvalidOrderID
	}
	l, err := u.mounted(ctx, s)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	o, ok := l.Find(id)
	if !ok {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderViewUseCase) FindByNumber(ctx context.Context, s entities.Session, number string) (entities.ServiceOrder, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return entities.ServiceOrder{}, ErrInvalidOrderNumber
	}
	l, err := u.mounted(ctx, s)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	o, ok := l.FindByNumber(number)
	if !ok {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	return o, nil
}

// FetchByNumber reads the order straight from the remote API, so a status still
// waiting on its background commit is never returned. The listing is untouched.
func (u *OrderViewUseCase) FetchByNumber(ctx context.Context, s entities.Session, number string) (entities.ServiceOrder, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return entities.ServiceOrder{}, ErrInvalidOrderNumber
	}
	if !s.Valid() {
		return entities.ServiceOrder{}, ErrMissingToken
	}
	orders, err := u.gateway.ListOrders(ctx, s.Token)
	if err != nil {
		zap.L().Error("[order][usecase] remote lookup failed", zap.String("number", number), zap.Error(err))
		return entities.ServiceOrder{}, err
	}
	for _, o := range orders {
		o.Normalize()
		if o.Number == number {
			return o, nil
		}
	}
	return entities.ServiceOrder{}, ErrOrderNotFound
}

// ChangeStatus updates the row right away and commits in the background. If the
// remote update fails the previous status is restored.
func (u *OrderViewUseCase) ChangeStatus(ctx context.Context, s entities.Session, id string, status entities.OrderStatus) (listing.Row, error) {
	if !status.Valid() {
		return listing.Row{}, ErrInvalidStatus
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return listing.Row{}, ErrInvalidOrderID
	}
	l, err := u.mounted(ctx, s)
	if err != nil {
		return listing.Row{}, err
	}

	prev, updated, ok := l.ApplyStatus(id, status)
	if !ok {
		return listing.Row{}, ErrOrderNotFound
	}
	zap.L().Info("[order][usecase] status applied locally",
		zap.String("id", id), zap.String("number", updated.Number),
		zap.String("previous", string(prev)), zap.String("status", string(status)))

	m := entities.SyncMutation{
		ShopToken:   s.Token,
		OrderID:     id,
		OrderNumber: updated.Number,
		Kind:        entities.MutationStatus,
		Previous:    string(prev),
		Requested:   string(status),
	}
	e := entities.OrderEvent{
		Type:        entities.EventOrderStatusChanged,
		ShopToken:   s.Token,
		OrderID:     id,
		OrderNumber: updated.Number,
		Status:      status,
	}
	u.commit(ctx, m, e,
		func(ctx context.Context) error { return u.gateway.UpdateStatus(ctx, id, status) },
		func() { l.RestoreStatus(id, status, prev) })

	return listing.RowFor(updated, u.pdfBaseURL), nil
}

// Delete asks c for confirmation, drops the order from the listing and deletes
// it remotely in the background. A failed delete puts the row back in place.
func (u *OrderViewUseCase) Delete(ctx context.Context, s entities.Session, number string, c Confirmer) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return ErrInvalidOrderNumber
	}
	l, err := u.mounted(ctx, s)
	if err != nil {
		return err
	}
	if _, ok := l.FindByNumber(number); !ok {
		return ErrOrderNotFound
	}
	if c == nil || !c.Confirm(ctx, fmt.Sprintf("Excluir a OS %s?", number)) {
		zap.L().Info("[order][usecase] delete not confirmed", zap.String("number", number))
		return ErrDeleteNotConfirmed
	}

	removal, ok := l.Remove(number)
	if !ok {
		return ErrOrderNotFound
	}
	zap.L().Info("[order][usecase] order removed locally", zap.String("number", number))

	m := entities.SyncMutation{
		ShopToken:   s.Token,
		OrderID:     removal.Order.ID,
		OrderNumber: number,
		Kind:        entities.MutationDelete,
		Previous:    string(removal.Order.Status),
	}
	e := entities.OrderEvent{
		Type:        entities.EventOrderDeleted,
		ShopToken:   s.Token,
		OrderID:     removal.Order.ID,
		OrderNumber: number,
	}
	u.commit(ctx, m, e,
		func(ctx context.Context) error { return u.gateway.DeleteOrder(ctx, number) },
		func() { l.Reinsert(removal) })
	return nil
}

func (u *OrderViewUseCase) History(ctx context.Context, number string) ([]entities.SyncMutation, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, ErrInvalidOrderNumber
	}
	if u.recorder.journal == nil {
		return []entities.SyncMutation{}, nil
	}
	return u.recorder.journal.ListByOrderNumber(ctx, number)
}

// ExportRows returns every row matching f, unpaginated.
func (u *OrderViewUseCase) ExportRows(ctx context.Context, s entities.Session, f listing.Filter) ([]listing.Row, error) {
	l, err := u.mounted(ctx, s)
	if err != nil {
		return nil, err
	}
	return u.rows(l.Matching(f)), nil
}

// Wait blocks until every background commit has finished.
func (u *OrderViewUseCase) Wait() {
	u.inflight.Wait()
}

func (u *OrderViewUseCase) listingFor(token string) *listing.OrderListing {
	u.mu.Lock()
	defer u.mu.Unlock()
	l, ok := u.listings[token]
	if !ok {
		l = listing.NewOrderListing()
		u.listings[token] = l
	}
	return l
}

// mounted returns the shop's listing, fetching it on first use.
func (u *OrderViewUseCase) mounted(ctx context.Context, s entities.Session) (*listing.OrderListing, error) {
	if !s.Valid() {
		return nil, ErrMissingToken
	}
	l := u.listingFor(s.Token)
	if l.Loaded() {
		return l, nil
	}
	if err := u.load(ctx, s.Token, l); err != nil {
		return nil, err
	}
	return l, nil
}

// load collapses concurrent fetches for the same shop into one request.
func (u *OrderViewUseCase) load(ctx context.Context, token string, l *listing.OrderListing) error {
	_, err, _ := u.loads.Do(token, func() (any, error) {
		l.BeginLoad()
		orders, err := u.gateway.ListOrders(ctx, token)
		if err != nil {
			l.FailLoad()
			zap.L().Error("[order][usecase] list orders failed", zap.Error(err))
			return nil, err
		}
		l.Load(orders)
		zap.L().Info("[order][usecase] orders loaded", zap.Int("count", len(orders)))
		return nil, nil
	})
	return err
}

func (u *OrderViewUseCase) view(l *listing.OrderListing) OrderPage {
	p := l.Current()
	return OrderPage{Page: p, Rows: u.rows(p.Items), Filter: l.Filter(), Loading: l.Loading()}
}

func (u *OrderViewUseCase) rows(orders []entities.ServiceOrder) []listing.Row {
	rows := make([]listing.Row, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, listing.RowFor(o, u.pdfBaseURL))
	}
	return rows
}

// commit runs do detached from the caller's cancellation. On failure undo is
// applied and the mutation is journaled as rolled back.
func (u *OrderViewUseCase) commit(ctx context.Context, m entities.SyncMutation, e entities.OrderEvent, do func(context.Context) error, undo func()) {
	u.inflight.Add(1)
	go func() {
		defer u.inflight.Done()

		cctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), u.commitTimeout)
		defer cancel()

		err := do(cctx)
		if err != nil {
			undo()
			zap.L().Warn("[order][usecase] remote commit failed, rolled back",
				zap.String("kind", string(m.Kind)),
				zap.String("number", m.OrderNumber),
				zap.Error(err))
			e.Type = entities.EventOrderRolledBack
			e.Status = entities.OrderStatus(m.Previous)
		} else {
			zap.L().Info("[order][usecase] remote commit done",
				zap.String("kind", string(m.Kind)),
				zap.String("number", m.OrderNumber))
		}
		u.recorder.record(cctx, m, err)
		u.recorder.publish(cctx, e)
	}()
}

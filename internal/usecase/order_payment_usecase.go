package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"ordem_servico/internal/domain/entities"
	"ordem_servico/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrOrderPaymentNotFound           = errors.New("order payment not found")
	ErrInvalidPaymentID               = errors.New("invalid payment id")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrOrderNotConcluded              = errors.New("service order not concluded")
	ErrNothingToCharge                = errors.New("service order has nothing to charge")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// IOrderLookup resolves an order of the shop by its number, as confirmed by the
// remote API.
type IOrderLookup interface {
	FetchByNumber(ctx context.Context, s entities.Session, number string) (entities.ServiceOrder, error)
}

// IOrderPaymentUseCase charges the budget of a concluded service order.
//
// Requested behavior:
//   - the amount always comes from the order's bills, never from the caller
//   - only concluded orders are charged, unless the gateway runs in mock mode

type IOrderPaymentUseCase interface {
	CreateAndApprove(ctx context.Context, s entities.Session, orderNumber string, mpPayload json.RawMessage) (entities.OrderPayment, error)
	GetByID(ctx context.Context, id string) (entities.OrderPayment, error)
	ListByOrderNumber(ctx context.Context, orderNumber string) ([]entities.OrderPayment, error)
}

type OrderPaymentUseCase struct {
	repo         interfaces.IOrderPaymentRepository
	orders       IOrderLookup
	gateway      interfaces.IPaymentGateway
	mockMode     bool
	sandboxPayer string
	now          func() time.Time
}

var _ IOrderPaymentUseCase = (*OrderPaymentUseCase)(nil)

// NewOrderPaymentUseCase builds the use case. sandboxPayer, when set, is used as
// payer e-mail for requests that carry neither payer id nor e-mail.
func NewOrderPaymentUseCase(repo interfaces.IOrderPaymentRepository, orders IOrderLookup, gateway interfaces.IPaymentGateway, mockMode bool, sandboxPayer string) *OrderPaymentUseCase {
	return &OrderPaymentUseCase{
		repo:         repo,
		orders:       orders,
		gateway:      gateway,
		mockMode:     mockMode,
		sandboxPayer: strings.TrimSpace(sandboxPayer),
		now:          time.Now,
	}
}

func (u *OrderPaymentUseCase) CreateAndApprove(ctx context.Context, s entities.Session, orderNumber string, mpPayload json.RawMessage) (entities.OrderPayment, error) {
	log := zap.L().With(zap.String("order_number", orderNumber))
	log.Info("[payment][usecase] create-and-approve start", zap.Int("payload_len", len(mpPayload)))

	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return entities.OrderPayment{}, ErrInvalidOrderNumber
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !u.mockMode {
			log.Info("[payment][usecase] invalid payload")
			return entities.OrderPayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil && !u.mockMode {
		return entities.OrderPayment{}, ErrPaymentGatewayNotConfigured
	}

	order, err := u.orders.FetchByNumber(ctx, s, orderNumber)
	if err != nil {
		log.Warn("[payment][usecase] order lookup failed", zap.Error(err))
		return entities.OrderPayment{}, err
	}
	if !u.mockMode && order.Status != entities.OrderStatusConcluido {
		log.Info("[payment][usecase] order not concluded", zap.String("status", string(order.Status)))
		return entities.OrderPayment{}, ErrOrderNotConcluded
	}
	amount := entities.TotalValue(order.Bills)
	if amount <= 0 {
		return entities.OrderPayment{}, ErrNothingToCharge
	}

	var req map[string]any
	if err := json.Unmarshal(mpPayload, &req); err != nil || req == nil {
		if !u.mockMode {
			return entities.OrderPayment{}, ErrInvalidMPPayload
		}
		req = map[string]any{}
	}
	if !u.mockMode {
		if !hasNonEmptyString(req, "payment_method_id") {
			log.Info("[payment][usecase] missing payment_method_id")
			return entities.OrderPayment{}, ErrInvalidMPPayload
		}
		u.ensurePayerDefaults(req)
		if !hasPayer(req) {
			log.Info("[payment][usecase] missing payer")
			return entities.OrderPayment{}, ErrInvalidMPPayload
		}
	}
	if _, ok := req["external_reference"]; !ok {
		req["external_reference"] = orderNumber
	}
	if _, ok := req["description"]; !ok {
		req["description"] = fmt.Sprintf("OS %s", orderNumber)
	}
	req["transaction_amount"] = amount

	var (
		providerID     string
		providerStatus string
		providerResp   json.RawMessage
	)
	if u.mockMode {
		log.Info("[payment][usecase] mock mode, skipping payment gateway")
		providerID, providerStatus, providerResp, err = u.mockResponse(req)
	} else {
		body, mErr := json.Marshal(req)
		if mErr != nil {
			return entities.OrderPayment{}, mErr
		}
		providerID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, body)
		err = classifyGatewayError(err)
	}
	if err != nil {
		log.Error("[payment][usecase] payment gateway failed", zap.Error(err))
		return entities.OrderPayment{}, err
	}
	log.Info("[payment][usecase] payment gateway success",
		zap.String("provider_payment_id", providerID), zap.String("provider_status", providerStatus))

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Warn("[payment][usecase] provider response unmarshal failed", zap.Error(err))
	}

	p := entities.OrderPayment{
		ID:           providerID,
		OrderNumber:  orderNumber,
		Amount:       amount,
		Date:         u.now().UTC(),
		Status:       paymentStatusFor(providerStatus),
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Error("[payment][usecase] payment repository create failed", zap.String("payment_id", p.ID), zap.Error(err))
		return entities.OrderPayment{}, err
	}
	log.Info("[payment][usecase] create-and-approve success", zap.String("payment_id", created.ID), zap.String("status", string(created.Status)))
	return created, nil
}

func (u *OrderPaymentUseCase) GetByID(ctx context.Context, id string) (entities.OrderPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.OrderPayment{}, ErrInvalidPaymentID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.OrderPayment{}, err
	}
	if p.ID == "" {
		return entities.OrderPayment{}, ErrOrderPaymentNotFound
	}
	return p, nil
}

func (u *OrderPaymentUseCase) ListByOrderNumber(ctx context.Context, orderNumber string) ([]entities.OrderPayment, error) {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return nil, ErrInvalidOrderNumber
	}
	return u.repo.ListByOrderNumber(ctx, orderNumber)
}

func (u *OrderPaymentUseCase) mockResponse(req map[string]any) (string, string, json.RawMessage, error) {
	id := strconv.FormatInt(u.now().UTC().UnixNano(), 10)
	at := u.now().UTC().Format(time.RFC3339Nano)

	resp := make(map[string]any, len(req)+5)
	for k, v := range req {
		resp[k] = v
	}
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = at
	resp["date_approved"] = at

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	return id, "approved", b, nil
}

// ensurePayerDefaults fills payer.type and, for sandbox use, payer.email.
func (u *OrderPaymentUseCase) ensurePayerDefaults(req map[string]any) {
	payer, ok := req["payer"].(map[string]any)
	if !ok {
		payer = map[string]any{}
		req["payer"] = payer
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") && u.sandboxPayer != "" {
		payer["email"] = u.sandboxPayer
	}
}

func paymentStatusFor(providerStatus string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(providerStatus)) {
	case "approved", "authorized":
		return entities.PaymentStatusAprovado
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusNegado
	default:
		return entities.PaymentStatusPendente
	}
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	return strings.TrimSpace(fmt.Sprintf("%v", v)) != ""
}

// classifyGatewayError maps provider error bodies onto sentinel errors.
func classifyGatewayError(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, `"code":2002`):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayCustomerNotFound, err)
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, `"code":2034`):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayInvalidUsers, err)
	case strings.Contains(msg, `"error":"unauthorized"`) || strings.Contains(msg, `"status":401`):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayUnauthorized, err)
	case strings.Contains(msg, `"error":"bad_request"`) || strings.Contains(msg, `"status":400`):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayBadRequest, err)
	}
	return err
}

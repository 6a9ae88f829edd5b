package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	response "ordem_servico/internal/adapter/http/dto/response"
	"ordem_servico/internal/usecase"
	"ordem_servico/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// OrderPaymentHandler handles HTTP requests for order payments.

type OrderPaymentHandler struct {
	usecase  usecase.IOrderPaymentUseCase
	mockMode bool
}

func NewOrderPaymentHandler(uc usecase.IOrderPaymentUseCase, mockMode bool) *OrderPaymentHandler {
	return &OrderPaymentHandler{usecase: uc, mockMode: mockMode}
}

// CreatePaymentByOrderNumber godoc
// @Summary      Charge a concluded order
// @Description  The amount is the order's total; the body is the Mercado Pago payment request, bare or under mp_payload.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        number  path  string                             true   "Order number"
// @Param        body    body  request.OrderPaymentCreateRequest  false  "Mercado Pago payload"
// @Success      200  {object}  response.OrderPaymentResponse
// @Router       /payments/{number} [post]
func (h *OrderPaymentHandler) CreatePaymentByOrderNumber(c *gin.Context) {
	number := c.Param("number")
	log := zap.L().With(zap.String("order_number", number))
	log.Info("[payment][handler] create start")

	mpPayload, err := readMPPayload(c)
	if err != nil {
		if !h.mockMode {
			log.Info("[payment][handler] invalid payload", zap.Error(err))
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		log.Info("[payment][handler] payload invalid in mock mode; fallback to empty payload", zap.Error(err))
		mpPayload = json.RawMessage("{}")
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), sessionFrom(c), number, mpPayload)
	if err != nil {
		abortWithError(c, "[payment][handler] create failed", err, mapOrderPaymentError)
		return
	}
	log.Info("[payment][handler] create success", zap.String("payment_id", created.ID), zap.String("status", string(created.Status)))

	c.JSON(http.StatusOK, response.FromOrderPayment(created))
}

// GetPaymentByOrderNumber godoc
// @Summary      Latest payment of an order
// @Description  With payment_id the given payment is returned instead, if it belongs to the order.
// @Tags         payments
// @Produce      json
// @Param        number      path   string  true   "Order number"
// @Param        payment_id  query  string  false  "Payment id"
// @Success      200  {object}  response.OrderPaymentResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /payments/{number} [get]
func (h *OrderPaymentHandler) GetPaymentByOrderNumber(c *gin.Context) {
	number := c.Param("number")
	ctx := c.Request.Context()

	if id := strings.TrimSpace(c.Query("payment_id")); id != "" {
		p, err := h.usecase.GetByID(ctx, id)
		if err == nil && p.OrderNumber != number {
			err = usecase.ErrOrderPaymentNotFound
		}
		if err != nil {
			abortWithError(c, "[payment][handler] get-by-id failed", err, mapOrderPaymentError)
			return
		}
		c.JSON(http.StatusOK, response.FromOrderPayment(p))
		return
	}

	payments, err := h.usecase.ListByOrderNumber(ctx, number)
	if err != nil {
		abortWithError(c, "[payment][handler] get-by-order failed", err, mapOrderPaymentError)
		return
	}
	if len(payments) == 0 {
		zap.L().Info("[payment][handler] get-by-order not-found", zap.String("order_number", number))
		appErr := pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	c.JSON(http.StatusOK, response.FromOrderPayment(latest))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if v := strings.TrimSpace(string(wrapped)); v == "" || v == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapOrderPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderNumber), errors.Is(err, usecase.ErrInvalidPaymentID),
		errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_NOT_CONFIGURED", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrOrderNotConcluded):
		return pkg.NewDomainErrorSimple("ORDER_NOT_CONCLUDED", "Service order not concluded", http.StatusConflict)
	case errors.Is(err, usecase.ErrNothingToCharge):
		return pkg.NewDomainErrorSimple("NOTHING_TO_CHARGE", "Service order has no value to charge", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return mapOrderError(err)
	}
}

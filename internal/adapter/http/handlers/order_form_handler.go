package handlers

import (
	"net/http"

	request "ordem_servico/internal/adapter/http/dto/request"
	response "ordem_servico/internal/adapter/http/dto/response"
	"ordem_servico/internal/domain/form"
	"ordem_servico/internal/usecase"
	"ordem_servico/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errInvalidFormPayload = pkg.NewDomainErrorSimple("INVALID_FORM_INPUT", "Invalid form payload", http.StatusBadRequest)

// OrderFormHandler serves the create and update screens.
type OrderFormHandler struct {
	usecase usecase.IOrderFormUseCase
}

func NewOrderFormHandler(uc usecase.IOrderFormUseCase) *OrderFormHandler {
	return &OrderFormHandler{usecase: uc}
}

// Draft godoc
// @Summary  Blank create form
// @Tags     forms
// @Produce  json
// @Success  200  {object}  response.OrderFormResponse
// @Router   /orders/draft [get]
func (h *OrderFormHandler) Draft(c *gin.Context) {
	f, err := h.usecase.Draft(c.Request.Context(), sessionFrom(c))
	if err != nil {
		abortWithError(c, "[form][handler] draft failed", err, mapOrderError)
		return
	}
	c.JSON(http.StatusOK, response.FromForm(f))
}

// EditForm godoc
// @Summary  Update form seeded from an existing order
// @Tags     forms
// @Produce  json
// @Param    id  path  string  true  "Order id"
// @Success  200  {object}  response.OrderFormResponse
// @Router   /orders/{id}/form [get]
func (h *OrderFormHandler) EditForm(c *gin.Context) {
	f, err := h.usecase.EditForm(c.Request.Context(), sessionFrom(c), c.Param("id"))
	if err != nil {
		abortWithError(c, "[form][handler] edit form failed", err, mapOrderError)
		return
	}
	c.JSON(http.StatusOK, response.FromForm(f))
}

// Validate godoc
// @Summary  Validate a form without submitting it
// @Tags     forms
// @Accept   json
// @Produce  json
// @Success  200  {object}  response.ValidationResponse
// @Router   /orders/validate [post]
func (h *OrderFormHandler) Validate(c *gin.Context) {
	f, ok := bindForm(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, response.FromValidation(h.usecase.Validate(f)))
}

// Create godoc
// @Summary  Create an order
// @Tags     forms
// @Accept   json
// @Produce  json
// @Success  201  {object}  entities.ServiceOrder
// @Failure  422  {object}  pkg.HTTPError
// @Router   /orders [post]
func (h *OrderFormHandler) Create(c *gin.Context) {
	f, ok := bindForm(c)
	if !ok {
		return
	}
	f.Mode = form.ModeCreate

	created, err := h.usecase.Submit(c.Request.Context(), sessionFrom(c), f)
	if err != nil {
		abortWithError(c, "[form][handler] create failed", err, mapOrderError)
		return
	}
	zap.L().Info("[form][handler] order created", zap.String("id", created.ID), zap.String("number", created.Number))
	c.JSON(http.StatusCreated, created)
}

// Update godoc
// @Summary  Update an order
// @Tags     forms
// @Accept   json
// @Produce  json
// @Param    id  path  string  true  "Order id"
// @Success  200  {object}  entities.ServiceOrder
// @Failure  422  {object}  pkg.HTTPError
// @Router   /orders/{id} [put]
func (h *OrderFormHandler) Update(c *gin.Context) {
	f, ok := bindForm(c)
	if !ok {
		return
	}
	f.Mode = form.ModeUpdate
	f.ID = c.Param("id")

	updated, err := h.usecase.Submit(c.Request.Context(), sessionFrom(c), f)
	if err != nil {
		abortWithError(c, "[form][handler] update failed", err, mapOrderError)
		return
	}
	zap.L().Info("[form][handler] order updated", zap.String("id", f.ID))
	c.JSON(http.StatusOK, updated)
}

// RemoveBill godoc
// @Summary      Remove a bill line from a form
// @Description  Removing the only line is rejected with a field error.
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        body  body  request.RemoveBillRequest  true  "Form and bill index"
// @Success      200  {object}  response.OrderFormResponse
// @Failure      422  {object}  pkg.HTTPError
// @Router       /orders/bills/remove [post]
func (h *OrderFormHandler) RemoveBill(c *gin.Context) {
	var payload request.RemoveBillRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFormPayload.HTTPStatus, errInvalidFormPayload.ToHTTPError())
		return
	}
	index, err := payload.ResolveIndex()
	if err != nil {
		c.JSON(errInvalidFormPayload.HTTPStatus, errInvalidFormPayload.ToHTTPError())
		return
	}

	f := &payload.Form
	if err := h.usecase.RemoveBill(f, index); err != nil {
		abortWithError(c, "[form][handler] remove bill rejected", err, mapOrderError)
		return
	}
	c.JSON(http.StatusOK, response.FromForm(f))
}

// bindForm decodes the posted form. Submission state is owned by the server,
// whatever the client sent.
func bindForm(c *gin.Context) (*form.OrderForm, bool) {
	var f form.OrderForm
	if err := c.ShouldBindJSON(&f); err != nil {
		zap.L().Info("[form][handler] invalid payload", zap.Error(err))
		c.JSON(errInvalidFormPayload.HTTPStatus, errInvalidFormPayload.ToHTTPError())
		return nil, false
	}
	f.State = form.StateIdle
	return &f, true
}

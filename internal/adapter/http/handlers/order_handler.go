package handlers

import (
	"bytes"
	"context"
	"net/http"
	"strconv"

	"ordem_servico/internal/adapter/export"
	request "ordem_servico/internal/adapter/http/dto/request"
	response "ordem_servico/internal/adapter/http/dto/response"
	"ordem_servico/internal/usecase"
	"ordem_servico/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidStatusPayload = pkg.NewDomainErrorSimple("INVALID_STATUS", "Invalid service order status", http.StatusBadRequest)
	errInvalidListQuery     = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

// OrderHandler serves the orders table: listing, status changes, deletion and export.
type OrderHandler struct {
	usecase usecase.IOrderViewUseCase
}

func NewOrderHandler(uc usecase.IOrderViewUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// ListOrders godoc
// @Summary      List service orders
// @Description  Filtered, paginated orders of the shop (10 per page).
// @Tags         orders
// @Produce      json
// @Param        token        query  string  true   "Shop token"
// @Param        number       query  string  false  "Order number contains"
// @Param        client_name  query  string  false  "Client name contains (accent insensitive)"
// @Param        page         query  int     false  "1-based page"
// @Success      200  {object}  response.OrderPageResponse
// @Router       /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	var q request.ListOrdersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidListQuery.HTTPStatus, errInvalidListQuery.ToHTTPError())
		return
	}

	page, err := h.usecase.Page(c.Request.Context(), sessionFrom(c), q.ToFilter(), q.ResolvePage())
	if err != nil {
		abortWithError(c, "[order][handler] list failed", err, mapOrderError)
		return
	}
	c.JSON(http.StatusOK, response.FromOrderPage(page))
}

// RefreshOrders godoc
// @Summary  Reload the orders of the shop from the remote API
// @Tags     orders
// @Produce  json
// @Param    token  query  string  true  "Shop token"
// @Success  200  {object}  response.OrderPageResponse
// @Router   /orders/refresh [post]
func (h *OrderHandler) RefreshOrders(c *gin.Context) {
	page, err := h.usecase.Refresh(c.Request.Context(), sessionFrom(c))
	if err != nil {
		abortWithError(c, "[order][handler] refresh failed", err, mapOrderError)
		return
	}
	c.JSON(http.StatusOK, response.FromOrderPage(page))
}

// ChangeStatus godoc
// @Summary      Change the status of an order
// @Description  Applied to the listing right away; the remote update runs in the background and is undone on failure.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "Order id"
// @Param        body  body  request.ChangeStatusRequest  true  "New status"
// @Success      202  {object}  response.OrderRowResponse
// @Router       /orders/{id}/status [patch]
func (h *OrderHandler) ChangeStatus(c *gin.Context) {
	id := c.Param("id")
	var payload request.ChangeStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStatusPayload.HTTPStatus, errInvalidStatusPayload.ToHTTPError())
		return
	}
	status, err := payload.ResolveStatus()
	if err != nil {
		c.JSON(errInvalidStatusPayload.HTTPStatus, errInvalidStatusPayload.ToHTTPError())
		return
	}

	row, err := h.usecase.ChangeStatus(c.Request.Context(), sessionFrom(c), id, status)
	if err != nil {
		abortWithError(c, "[order][handler] change status failed", err, mapOrderError)
		return
	}
	zap.L().Info("[order][handler] status change accepted", zap.String("id", id), zap.String("status", string(status)))
	c.JSON(http.StatusAccepted, response.FromRow(row))
}

// DeleteOrder godoc
// @Summary  Delete an order
// @Tags     orders
// @Param    number   path   string  true  "Order number"
// @Param    confirm  query  bool    true  "Must be true"
// @Success  202
// @Failure  428  {object}  pkg.HTTPError
// @Router   /orders/{number} [delete]
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	number := c.Param("number")
	confirmed, _ := strconv.ParseBool(c.Query("confirm"))
	confirmer := usecase.ConfirmFunc(func(context.Context, string) bool { return confirmed })

	if err := h.usecase.Delete(c.Request.Context(), sessionFrom(c), number, confirmer); err != nil {
		abortWithError(c, "[order][handler] delete failed", err, mapOrderError)
		return
	}
	zap.L().Info("[order][handler] delete accepted", zap.String("number", number))
	c.Status(http.StatusAccepted)
}

// SyncHistory godoc
// @Summary  Background commit journal of an order
// @Tags     orders
// @Produce  json
// @Param    number  path  string  true  "Order number"
// @Success  200  {array}  response.SyncMutationResponse
// @Router   /sync/{number} [get]
func (h *OrderHandler) SyncHistory(c *gin.Context) {
	entries, err := h.usecase.History(c.Request.Context(), c.Param("number"))
	if err != nil {
		abortWithError(c, "[order][handler] sync history failed", err, mapOrderError)
		return
	}
	c.JSON(http.StatusOK, response.FromSyncMutations(entries))
}

// ExportOrders godoc
// @Summary  Export the filtered listing
// @Tags     orders
// @Produce  text/csv
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param    format       query  string  false  "csv (default) or xlsx"
// @Param    number       query  string  false  "Order number contains"
// @Param    client_name  query  string  false  "Client name contains"
// @Success  200
// @Router   /orders/export [get]
func (h *OrderHandler) ExportOrders(c *gin.Context) {
	var q request.ExportQuery
	_ = c.ShouldBindQuery(&q)
	format, err := export.ParseFormat(q.Format)
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_FORMAT", "Format must be csv or xlsx", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	ctx := c.Request.Context()
	s := sessionFrom(c)
	filter := request.ListOrdersQuery{Number: q.Number, ClientName: q.ClientName}.ToFilter()
	rows, err := h.usecase.ExportRows(ctx, s, filter)
	if err != nil {
		abortWithError(c, "[order][handler] export failed", err, mapOrderError)
		return
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, format, rows); err != nil {
		abortWithError(c, "[order][handler] export encode failed", err, mapOrderError)
		return
	}
	zap.L().Info("[order][handler] export", zap.String("format", string(format)), zap.Int("rows", len(rows)))

	c.Header("Content-Disposition", "attachment; filename="+format.Filename())
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}

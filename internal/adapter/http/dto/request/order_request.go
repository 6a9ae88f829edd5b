package request

import (
	"errors"
	"strings"

	"ordem_servico/internal/domain/entities"
	"ordem_servico/internal/domain/form"
	"ordem_servico/internal/domain/listing"
)

var (
	ErrInvalidStatusValue = errors.New("invalid status value")
	ErrMissingBillIndex   = errors.New("missing bill index")
)

// ListOrdersQuery carries the filter bar and the requested page.
type ListOrdersQuery struct {
	Number     string `form:"number"`
	ClientName string `form:"client_name"`
	Page       int    `form:"page"`
}

func (q ListOrdersQuery) ToFilter() listing.Filter {
	return listing.Filter{Number: q.Number, ClientName: q.ClientName}.Trimmed()
}

// ResolvePage defaults to the first page.
func (q ListOrdersQuery) ResolvePage() int {
	if q.Page < 1 {
		return 1
	}
	return q.Page
}

type ExportQuery struct {
	Format     string `form:"format"`
	Number     string `form:"number"`
	ClientName string `form:"client_name"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r ChangeStatusRequest) ResolveStatus() (entities.OrderStatus, error) {
	s := entities.OrderStatus(strings.TrimSpace(r.Status))
	if !s.Valid() {
		return "", ErrInvalidStatusValue
	}
	return s, nil
}

// RemoveBillRequest applies a bill removal to a form held by the caller.
type RemoveBillRequest struct {
	Form  form.OrderForm `json:"form"`
	Index *int           `json:"index"`
}

func (r RemoveBillRequest) ResolveIndex() (int, error) {
	if r.Index == nil {
		return 0, ErrMissingBillIndex
	}
	return *r.Index, nil
}

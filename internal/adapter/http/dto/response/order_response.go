package response

import (
	"time"

	"ordem_servico/internal/domain/entities"
	"ordem_servico/internal/domain/form"
	"ordem_servico/internal/domain/listing"
	"ordem_servico/internal/usecase"
)

type OrderRowResponse struct {
	ID          string `json:"id"`
	Number      string `json:"number"`
	ClientName  string `json:"client_name"`
	Status      string `json:"status"`
	StatusColor string `json:"status_color"`
	PDFURL      string `json:"pdf_url"`
}

func FromRow(r listing.Row) OrderRowResponse {
	return OrderRowResponse{
		ID:          r.ID,
		Number:      r.Number,
		ClientName:  r.ClientName,
		Status:      string(r.Status),
		StatusColor: string(r.StatusColor),
		PDFURL:      r.PDFURL,
	}
}

type OrderPageResponse struct {
	Items      []OrderRowResponse `json:"items"`
	Page       int                `json:"page"`
	PageCount  int                `json:"page_count"`
	TotalItems int                `json:"total_items"`
	HasPrev    bool               `json:"has_prev"`
	HasNext    bool               `json:"has_next"`
	Filter     listing.Filter     `json:"filter"`
	Loading    bool               `json:"loading"`
}

func FromOrderPage(p usecase.OrderPage) OrderPageResponse {
	items := make([]OrderRowResponse, 0, len(p.Rows))
	for _, r := range p.Rows {
		items = append(items, FromRow(r))
	}
	return OrderPageResponse{
		Items:      items,
		Page:       p.Number,
		PageCount:  p.PageCount,
		TotalItems: p.TotalItems,
		HasPrev:    p.HasPrev,
		HasNext:    p.HasNext,
		Filter:     p.Filter,
		Loading:    p.Loading,
	}
}

type SyncMutationResponse struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id"`
	Number    string    `json:"order_number"`
	Kind      string    `json:"kind"`
	Previous  string    `json:"previous,omitempty"`
	Requested string    `json:"requested,omitempty"`
	Outcome   string    `json:"outcome"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func FromSyncMutations(ms []entities.SyncMutation) []SyncMutationResponse {
	out := make([]SyncMutationResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, SyncMutationResponse{
			ID:        m.ID,
			OrderID:   m.OrderID,
			Number:    m.OrderNumber,
			Kind:      string(m.Kind),
			Previous:  m.Previous,
			Requested: m.Requested,
			Outcome:   string(m.Outcome),
			Error:     m.Error,
			CreatedAt: m.CreatedAt,
		})
	}
	return out
}

// OrderFormResponse is the form as edited by the caller plus the derived total.
type OrderFormResponse struct {
	*form.OrderForm
	TotalValue float64 `json:"total_value"`
}

func FromForm(f *form.OrderForm) OrderFormResponse {
	return OrderFormResponse{OrderForm: f, TotalValue: f.TotalValue()}
}

type ValidationResponse struct {
	Valid       bool              `json:"valid"`
	FieldErrors []form.FieldError `json:"field_errors"`
}

func FromValidation(r form.ValidationResult) ValidationResponse {
	errs := r.FieldErrors
	if errs == nil {
		errs = []form.FieldError{}
	}
	return ValidationResponse{Valid: r.Valid(), FieldErrors: errs}
}

type ClientResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
	State       string `json:"state"`
	City        string `json:"city"`
	PostalCode  string `json:"postal_code"`
	Document    string `json:"document"`
	Number      string `json:"number"`
}

func FromClients(cs []entities.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, ClientResponse(c))
	}
	return out
}

package listing

import (
	"strings"

	"ordem_servico/internal/domain/entities"
	"ordem_servico/pkg/textsearch"
)

// Filter holds the values typed in the filter bar. Empty fields match everything.
type Filter struct {
	Number     string `json:"number" form:"number"`
	ClientName string `json:"client_name" form:"client_name"`
}

func (f Filter) Trimmed() Filter {
	return Filter{Number: strings.TrimSpace(f.Number), ClientName: strings.TrimSpace(f.ClientName)}
}

func (f Filter) Empty() bool {
	t := f.Trimmed()
	return t.Number == "" && t.ClientName == ""
}

// Match reports whether o passes both the number and the client name tests.
func (f Filter) Match(o entities.ServiceOrder) bool {
	t := f.Trimmed()
	return textsearch.Contains(o.Number, t.Number) && textsearch.Contains(o.ClientName, t.ClientName)
}

// FilterOrders returns the orders matching f, in their original order.
// The input slice is never modified.
func FilterOrders(orders []entities.ServiceOrder, f Filter) []entities.ServiceOrder {
	out := make([]entities.ServiceOrder, 0, len(orders))
	for _, o := range orders {
		if f.Match(o) {
			out = append(out, o)
		}
	}
	return out
}

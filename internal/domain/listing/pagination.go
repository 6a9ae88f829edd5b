package listing

import "ordem_servico/internal/domain/entities"

// PageSize is the fixed number of rows per page.
const PageSize = 10

// Page is one window of the filtered listing.
type Page struct {
	Items      []entities.ServiceOrder
	Number     int
	PageCount  int
	TotalItems int
	HasPrev    bool
	HasNext    bool
}

// PageCount is ceil(n / PageSize).
func PageCount(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + PageSize - 1) / PageSize
}

// ClampPage keeps page inside [1, max(1, PageCount(n))].
func ClampPage(page, n int) int {
	last := PageCount(n)
	if last < 1 {
		last = 1
	}
	if page < 1 {
		return 1
	}
	if page > last {
		return last
	}
	return page
}

// Paginate slices orders for the requested 1-based page.
func Paginate(orders []entities.ServiceOrder, page int) Page {
	n := len(orders)
	page = ClampPage(page, n)
	count := PageCount(n)

	start := (page - 1) * PageSize
	end := start + PageSize
	if end > n {
		end = n
	}
	items := make([]entities.ServiceOrder, 0, end-start)
	items = append(items, orders[start:end]...)

	return Page{
		Items:      items,
		Number:     page,
		PageCount:  count,
		TotalItems: n,
		HasPrev:    page > 1,
		HasNext:    page < count,
	}
}

package listing

import (
	"sync"

	"ordem_servico/internal/domain/entities"
)

// OrderListing is the in-memory state of the orders table for one shop: the full
// set fetched from the API, the filtered view and the current page.
//
// Mutations here are local only. Callers apply them first and reconcile with the
// remote API afterwards, using the returned snapshot to roll back.
type OrderListing struct {
	mu       sync.RWMutex
	orders   []entities.ServiceOrder
	filtered []entities.ServiceOrder
	filter   Filter
	page     int
	loading  bool
	loaded   bool
}

func NewOrderListing() *OrderListing {
	return &OrderListing{page: 1}
}

// Removal remembers where a deleted order lived so it can be put back.
type Removal struct {
	Order         entities.ServiceOrder
	OrdersIndex   int
	FilteredIndex int
}

func (l *OrderListing) BeginLoad() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.loading = true
}

// FailLoad clears the loading flag and keeps whatever was loaded before.
func (l *OrderListing) FailLoad() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.loading = false
}

// Load replaces the order set, normalizing every record, and re-applies the filter.
func (l *OrderListing) Load(orders []entities.ServiceOrder) {
	normalized := make([]entities.ServiceOrder, len(orders))
	for i, o := range orders {
		o.Normalize()
		normalized[i] = o
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.orders = normalized
	l.filtered = FilterOrders(l.orders, l.filter)
	l.page = ClampPage(l.page, len(l.filtered))
	l.loading = false
	l.loaded = true
}

func (l *OrderListing) Loading() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.loading
}

func (l *OrderListing) Loaded() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.loaded
}

// ApplyFilter recomputes the filtered view and goes back to the first page.
func (l *OrderListing) ApplyFilter(f Filter) Page {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.filter = f.Trimmed()
	l.filtered = FilterOrders(l.orders, l.filter)
	l.page = 1
	return Paginate(l.filtered, l.page)
}

// View filters and paginates for a single request. The stored filter and page
// are left untouched.
func (l *OrderListing) View(f Filter, page int) Page {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return Paginate(FilterOrders(l.orders, f.Trimmed()), page)
}

// Matching returns every order passing f, ignoring the stored filter.
func (l *OrderListing) Matching(f Filter) []entities.ServiceOrder {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return FilterOrders(l.orders, f.Trimmed())
}

// Navigate stores f and page in one step. Changing the filter goes back to the
// first page unless page is given.
func (l *OrderListing) Navigate(f Filter, page int) Page {
	l.mu.Lock()
	defer l.mu.Unlock()
	if f = f.Trimmed(); f != l.filter {
		l.filter = f
		l.filtered = FilterOrders(l.orders, f)
		l.page = 1
	}
	if page > 0 {
		l.page = ClampPage(page, len(l.filtered))
	}
	return Paginate(l.filtered, l.page)
}

func (l *OrderListing) Filter() Filter {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.filter
}

func (l *OrderListing) Current() Page {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return Paginate(l.filtered, l.page)
}

// GoTo moves to page, clamped to the valid range.
func (l *OrderListing) GoTo(page int) Page {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.page = ClampPage(page, len(l.filtered))
	return Paginate(l.filtered, l.page)
}

// Next is a no-op on the last page.
func (l *OrderListing) Next() Page {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.page < PageCount(len(l.filtered)) {
		l.page++
	}
	return Paginate(l.filtered, l.page)
}

// Prev is a no-op on the first page.
func (l *OrderListing) Prev() Page {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.page > 1 {
		l.page--
	}
	return Paginate(l.filtered, l.page)
}

func (l *OrderListing) Orders() []entities.ServiceOrder {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]entities.ServiceOrder(nil), l.orders...)
}

func (l *OrderListing) Filtered() []entities.ServiceOrder {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]entities.ServiceOrder(nil), l.filtered...)
}

func (l *OrderListing) Find(id string) (entities.ServiceOrder, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if i := indexByID(l.orders, id); i >= 0 {
		return l.orders[i], true
	}
	return entities.ServiceOrder{}, false
}

func (l *OrderListing) FindByNumber(number string) (entities.ServiceOrder, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if i := indexByNumber(l.orders, number); i >= 0 {
		return l.orders[i], true
	}
	return entities.ServiceOrder{}, false
}

// ApplyStatus sets the status of order id in both views and returns the previous
// status together with the updated order.
func (l *OrderListing) ApplyStatus(id string, status entities.OrderStatus) (entities.OrderStatus, entities.ServiceOrder, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := indexByID(l.orders, id)
	if i < 0 {
		return "", entities.ServiceOrder{}, false
	}
	prev := l.orders[i].Status
	l.orders[i].Status = status
	if j := indexByID(l.filtered, id); j >= 0 {
		l.filtered[j].Status = status
	}
	return prev, l.orders[i], true
}

// RestoreStatus puts prev back, unless the row has changed again since
// ApplyStatus set it to applied.
func (l *OrderListing) RestoreStatus(id string, applied, prev entities.OrderStatus) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := indexByID(l.orders, id)
	if i < 0 || l.orders[i].Status != applied {
		return false
	}
	l.orders[i].Status = prev
	if j := indexByID(l.filtered, id); j >= 0 {
		l.filtered[j].Status = prev
	}
	return true
}

// Remove drops the order with the given number from both views.
func (l *OrderListing) Remove(number string) (Removal, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := indexByNumber(l.orders, number)
	if i < 0 {
		return Removal{}, false
	}
	r := Removal{Order: l.orders[i], OrdersIndex: i, FilteredIndex: indexByNumber(l.filtered, number)}
	l.orders = append(l.orders[:i:i], l.orders[i+1:]...)
	if r.FilteredIndex >= 0 {
		j := r.FilteredIndex
		l.filtered = append(l.filtered[:j:j], l.filtered[j+1:]...)
	}
	l.page = ClampPage(l.page, len(l.filtered))
	return r, true
}

// Reinsert undoes a Remove, placing the order back at its former positions.
func (l *OrderListing) Reinsert(r Removal) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if indexByNumber(l.orders, r.Order.Number) >= 0 {
		return
	}
	l.orders = insertAt(l.orders, r.OrdersIndex, r.Order)
	if r.FilteredIndex >= 0 && l.filter.Match(r.Order) {
		l.filtered = insertAt(l.filtered, r.FilteredIndex, r.Order)
	}
}

func insertAt(s []entities.ServiceOrder, i int, o entities.ServiceOrder) []entities.ServiceOrder {
	if i < 0 || i > len(s) {
		i = len(s)
	}
	out := make([]entities.ServiceOrder, 0, len(s)+1)
	out = append(out, s[:i]...)
	out = append(out, o)
	return append(out, s[i:]...)
}

func indexByID(s []entities.ServiceOrder, id string) int {
	for i := range s {
		if s[i].ID == id {
			return i
		}
	}
	return -1
}

func indexByNumber(s []entities.ServiceOrder, number string) int {
	for i := range s {
		if s[i].Number == number {
			return i
		}
	}
	return -1
}

package listing

import (
	"sync"
	"time"

	"ordem_servico/pkg/debounce"
)

// FilterBar pushes the filter values to onChange, either debounced while the
// user types or immediately on submit/clear.
type FilterBar struct {
	mu        sync.Mutex
	values    Filter
	onChange  func(Filter)
	debouncer *debounce.Debouncer
}

func NewFilterBar(delay time.Duration, onChange func(Filter)) *FilterBar {
	if onChange == nil {
		onChange = func(Filter) {}
	}
	return &FilterBar{onChange: onChange, debouncer: debounce.NewDebouncer(delay)}
}

func (b *FilterBar) SetNumber(v string) {
	b.mu.Lock()
	b.values.Number = v
	b.mu.Unlock()
	b.debouncer.Debounce(b.emit)
}

func (b *FilterBar) SetClientName(v string) {
	b.mu.Lock()
	b.values.ClientName = v
	b.mu.Unlock()
	b.debouncer.Debounce(b.emit)
}

func (b *FilterBar) Values() Filter {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.values
}

// Submit flushes the current values without waiting for the quiet period.
func (b *FilterBar) Submit() {
	b.debouncer.Immediate(b.emit)
}

// Clear resets both fields and notifies right away.
func (b *FilterBar) Clear() {
	b.mu.Lock()
	b.values = Filter{}
	b.mu.Unlock()
	b.debouncer.Immediate(b.emit)
}

// Close cancels a pending notification; later edits are not reported.
func (b *FilterBar) Close() {
	b.debouncer.Close()
}

func (b *FilterBar) emit() {
	b.onChange(b.Values())
}

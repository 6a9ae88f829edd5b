package form

import (
	"strings"
	"sync"
	"time"

	"ordem_servico/internal/domain/entities"
	"ordem_servico/pkg/debounce"
	"ordem_servico/pkg/textsearch"
)

// MaxSuggestions caps how many clients are offered at once.
const MaxSuggestions = 10

// SearchClients returns the clients whose name contains query, ignoring case and
// accents. A blank query yields no suggestions.
func SearchClients(clients []entities.Client, query string) []entities.Client {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	out := make([]entities.Client, 0, MaxSuggestions)
	for _, c := range clients {
		if textsearch.Contains(c.Name, query) {
			out = append(out, c)
			if len(out) == MaxSuggestions {
				break
			}
		}
	}
	return out
}

// ClientAutocomplete drives the client name field: typing schedules a search over
// the prefetched client list, selecting fills the client section of a form.
//
// Every Type, Search and Select starts a new generation. A search only publishes
// while its generation is the latest, so a lookup already running when a client
// is selected cannot bring the suggestions back.
type ClientAutocomplete struct {
	mu          sync.Mutex
	clients     []entities.Client
	suggestions []entities.Client
	gen         uint64

	// held while publishing and while selecting
	publishing sync.Mutex
	debouncer  *debounce.Debouncer
	onSuggest  func([]entities.Client)
}

func NewClientAutocomplete(clients []entities.Client, delay time.Duration, onSuggest func([]entities.Client)) *ClientAutocomplete {
	if onSuggest == nil {
		onSuggest = func([]entities.Client) {}
	}
	return &ClientAutocomplete{
		clients:   clients,
		debouncer: debounce.NewDebouncer(delay),
		onSuggest: onSuggest,
	}
}

// Type schedules a search for query once typing pauses.
func (a *ClientAutocomplete) Type(query string) {
	gen := a.next()
	a.debouncer.Debounce(func() {
		a.search(gen, query)
	})
}

// Search runs the lookup right away and publishes the result.
func (a *ClientAutocomplete) Search(query string) []entities.Client {
	return a.search(a.next(), query)
}

func (a *ClientAutocomplete) next() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.gen++
	return a.gen
}

// search returns nil without publishing when gen is stale.
func (a *ClientAutocomplete) search(gen uint64, query string) []entities.Client {
	a.publishing.Lock()
	defer a.publishing.Unlock()

	a.mu.Lock()
	if gen != a.gen {
		a.mu.Unlock()
		return nil
	}
	a.suggestions = SearchClients(a.clients, query)
	out := append([]entities.Client(nil), a.suggestions...)
	a.mu.Unlock()

	a.onSuggest(out)
	return out
}

func (a *ClientAutocomplete) Suggestions() []entities.Client {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]entities.Client(nil), a.suggestions...)
}

// Select fills f from c and clears the suggestion list. Searches scheduled or
// running before it are dropped.
func (a *ClientAutocomplete) Select(f *OrderForm, c entities.Client) {
	a.debouncer.Cancel()

	a.publishing.Lock()
	defer a.publishing.Unlock()

	a.mu.Lock()
	a.gen++
	a.suggestions = nil
	a.mu.Unlock()

	f.ApplyClient(c)
}

func (a *ClientAutocomplete) Close() {
	a.debouncer.Close()
}

package form

import (
	"sync"
	"testing"
	"time"

	"ordem_servico/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var registeredClients = []entities.Client{
	{ID: "1", Name: "João Pereira", PhoneNumber: "4899", Address: "Rua A", State: "SC", City: "Joinville", PostalCode: "89200000", Document: "111", Number: "10"},
	{ID: "2", Name: "Joana Lima", PhoneNumber: "4898"},
	{ID: "3", Name: "Marcos", PhoneNumber: "4897"},
}

func TestSearchClients(t *testing.T) {
	got := SearchClients(registeredClients, "JOA")
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "2", got[1].ID)

	assert.Len(t, SearchClients(registeredClients, "pereira"), 1)
	assert.Empty(t, SearchClients(registeredClients, "   "))
	assert.Empty(t, SearchClients(registeredClients, "zzz"))
}

func TestClientAutocomplete_TypeIsDebounced(t *testing.T) {
	var mu sync.Mutex
	var published [][]entities.Client
	a := NewClientAutocomplete(registeredClients, 20*time.Millisecond, func(cs []entities.Client) {
		mu.Lock()
		defer mu.Unlock()
		published = append(published, cs)
	})
	defer a.Close()

	a.Type("m")
	a.Type("ma")
	a.Type("marc")

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(published) == 1
	}, time.Second, 5*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, published[0], 1)
	assert.Equal(t, "3", published[0][0].ID)
}

func TestClientAutocomplete_SelectFillsFormAndClears(t *testing.T) {
	a := NewClientAutocomplete(registeredClients, time.Hour, nil)
	defer a.Close()
	f := NewCreateDraft(time.Now())

	require.Len(t, a.Search("joão"), 1)
	a.Select(f, registeredClients[0])

	assert.Empty(t, a.Suggestions())
	assert.Equal(t, "João Pereira", f.ClientName)
	assert.Equal(t, "4899", f.ClientPhone)
	assert.Equal(t, "Rua A", f.ClientAddress)
	assert.Equal(t, "SC", f.ClientState)
	assert.Equal(t, "Joinville", f.ClientCity)
	assert.Equal(t, "89200000", f.ClientZipCode)
	assert.Equal(t, "111", f.ClientDocument)
	assert.Equal(t, "10", f.ClientNumber)
}

func TestClientAutocomplete_SelectDropsEarlierSearch(t *testing.T) {
	var mu sync.Mutex
	published := 0
	a := NewClientAutocomplete(registeredClients, 10*time.Millisecond, func([]entities.Client) {
		mu.Lock()
		defer mu.Unlock()
		published++
	})
	defer a.Close()
	f := NewCreateDraft(time.Now())

	t.Run("search already dispatched", func(t *testing.T) {
		gen := a.next()
		a.Select(f, registeredClients[1])

		assert.Nil(t, a.search(gen, "jo"))
		assert.Empty(t, a.Suggestions())
	})

	t.Run("search still scheduled", func(t *testing.T) {
		a.Type("jo")
		a.Select(f, registeredClients[1])
		time.Sleep(50 * time.Millisecond)

		assert.Empty(t, a.Suggestions())
	})

	mu.Lock()
	defer mu.Unlock()
	assert.Zero(t, published)
	assert.Equal(t, "Joana Lima", f.ClientName)
}

func TestClientAutocomplete_NewerTypingSupersedesSearch(t *testing.T) {
	a := NewClientAutocomplete(registeredClients, time.Hour, nil)
	defer a.Close()

	stale := a.next()
	require.Len(t, a.Search("marc"), 1)
	assert.Nil(t, a.search(stale, "jo"))
	require.Len(t, a.Suggestions(), 1)
	assert.Equal(t, "3", a.Suggestions()[0].ID)
}

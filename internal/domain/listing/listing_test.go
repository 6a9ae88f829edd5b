package listing

import (
	"testing"

	"ordem_servico/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadedListing(t *testing.T, orders []entities.ServiceOrder) *OrderListing {
	t.Helper()
	l := NewOrderListing()
	l.BeginLoad()
	require.True(t, l.Loading())
	l.Load(orders)
	require.False(t, l.Loading())
	require.True(t, l.Loaded())
	return l
}

func TestOrderListing_LoadNormalizes(t *testing.T) {
	l := loadedListing(t, []entities.ServiceOrder{{ID: " 1 ", Number: "10", Bills: []entities.Bill{{Value: 50}, {Value: 25}}}})

	o, ok := l.Find("1")
	require.True(t, ok)
	assert.Equal(t, entities.OrderStatusPendente, o.Status)
	assert.Equal(t, entities.ChecklistNotTested, o.Checklist.Backup)
	assert.Equal(t, 75.0, o.TotalValue)
}

func TestOrderListing_FailLoadKeepsPreviousOrders(t *testing.T) {
	l := loadedListing(t, sampleOrders())
	l.BeginLoad()
	l.FailLoad()

	assert.False(t, l.Loading())
	assert.Len(t, l.Orders(), 4)
}

func TestOrderListing_ApplyFilterResetsPage(t *testing.T) {
	l := loadedListing(t, makeOrders(35))
	l.GoTo(3)
	assert.Equal(t, 3, l.Current().Number)

	p := l.ApplyFilter(Filter{Number: "101"})
	assert.Equal(t, 1, p.Number)
	assert.Equal(t, 10, p.TotalItems)
	assert.Equal(t, Filter{Number: "101"}, l.Filter())
}

func TestOrderListing_ViewLeavesStoredNavigation(t *testing.T) {
	l := loadedListing(t, makeOrders(35))
	l.GoTo(2)

	p := l.View(Filter{Number: " 101 "}, 1)
	assert.Equal(t, 10, p.TotalItems)
	assert.Equal(t, "1010", p.Items[0].Number)

	p = l.View(Filter{}, 9)
	assert.Equal(t, 4, p.Number, "page is clamped")
	assert.Len(t, p.Items, 5)

	assert.Equal(t, Filter{}, l.Filter())
	assert.Equal(t, 2, l.Current().Number)
	assert.Len(t, l.Filtered(), 35)
}

func TestOrderListing_Matching(t *testing.T) {
	l := loadedListing(t, sampleOrders())
	l.ApplyFilter(Filter{ClientName: "maria"})

	got := l.Matching(Filter{ClientName: "jo"})
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "3", got[1].ID)
	assert.Len(t, l.Filtered(), 1)
}

func TestOrderListing_Navigate(t *testing.T) {
	l := loadedListing(t, makeOrders(35))

	p := l.Navigate(Filter{}, 3)
	assert.Equal(t, 3, p.Number)

	p = l.Navigate(Filter{Number: "10"}, 0)
	assert.Equal(t, 1, p.Number, "a new filter goes back to the first page")
	assert.Equal(t, 35, p.TotalItems)

	p = l.Navigate(Filter{Number: " 10 "}, 2)
	assert.Equal(t, 2, p.Number)
	assert.Equal(t, 2, l.Navigate(Filter{Number: "10"}, 0).Number, "same filter keeps the page")
	assert.Equal(t, Filter{Number: "10"}, l.Filter())
}

func TestOrderListing_NextPrevStopAtBoundaries(t *testing.T) {
	l := loadedListing(t, makeOrders(15))

	assert.Equal(t, 1, l.Prev().Number)
	assert.Equal(t, 2, l.Next().Number)
	assert.Equal(t, 2, l.Next().Number)
	assert.Equal(t, 1, l.Prev().Number)
}

func TestOrderListing_ApplyAndRestoreStatus(t *testing.T) {
	l := loadedListing(t, sampleOrders())
	l.ApplyFilter(Filter{ClientName: "maria"})

	prev, updated, ok := l.ApplyStatus("2", entities.OrderStatusConcluido)
	require.True(t, ok)
	assert.Equal(t, entities.OrderStatusPendente, prev)
	assert.Equal(t, entities.OrderStatusConcluido, updated.Status)
	assert.Equal(t, entities.OrderStatusConcluido, l.Current().Items[0].Status)

	assert.True(t, l.RestoreStatus("2", entities.OrderStatusConcluido, prev))
	o, _ := l.Find("2")
	assert.Equal(t, entities.OrderStatusPendente, o.Status)
	assert.Equal(t, entities.OrderStatusPendente, l.Current().Items[0].Status)
}

func TestOrderListing_RestoreStatusSkipsNewerChange(t *testing.T) {
	l := loadedListing(t, sampleOrders())

	prev, _, _ := l.ApplyStatus("1", entities.OrderStatusConcluido)
	l.ApplyStatus("1", entities.OrderStatusCancelado)

	assert.False(t, l.RestoreStatus("1", entities.OrderStatusConcluido, prev))
	o, _ := l.Find("1")
	assert.Equal(t, entities.OrderStatusCancelado, o.Status)
}

func TestOrderListing_ApplyStatusUnknownID(t *testing.T) {
	l := loadedListing(t, sampleOrders())
	_, _, ok := l.ApplyStatus("404", entities.OrderStatusCancelado)
	assert.False(t, ok)
}

func TestOrderListing_RemoveAndReinsert(t *testing.T) {
	l := loadedListing(t, sampleOrders())
	l.ApplyFilter(Filter{ClientName: "jo"})

	r, ok := l.Remove("778899")
	require.True(t, ok)
	assert.Equal(t, 2, r.OrdersIndex)
	assert.Equal(t, 1, r.FilteredIndex)
	assert.Len(t, l.Orders(), 3)
	assert.Len(t, l.Filtered(), 1)
	_, found := l.FindByNumber("778899")
	assert.False(t, found)

	l.Reinsert(r)
	orders := l.Orders()
	require.Len(t, orders, 4)
	assert.Equal(t, "3", orders[2].ID)
	filtered := l.Filtered()
	require.Len(t, filtered, 2)
	assert.Equal(t, "3", filtered[1].ID)
}

func TestOrderListing_ReinsertIsIdempotent(t *testing.T) {
	l := loadedListing(t, sampleOrders())
	r, _ := l.Remove("A1B2")
	l.Reinsert(r)
	l.Reinsert(r)
	assert.Len(t, l.Orders(), 4)
}

func TestOrderListing_RemoveClampsPage(t *testing.T) {
	l := loadedListing(t, makeOrders(11))
	l.GoTo(2)

	_, ok := l.Remove("1010")
	require.True(t, ok)
	assert.Equal(t, 1, l.Current().Number)
}

func TestRowFor(t *testing.T) {
	cases := []struct {
		status entities.OrderStatus
		color  StatusColor
	}{
		{entities.OrderStatusConcluido, ColorGreen},
		{entities.OrderStatusCancelado, ColorRed},
		{entities.OrderStatusPendente, ColorDefault},
	}
	for _, tc := range cases {
		row := RowFor(entities.ServiceOrder{ID: "9", Number: "000321", Status: tc.status}, "https://os.estoquefacil.net/")
		assert.Equal(t, tc.color, row.StatusColor)
		assert.Equal(t, "https://os.estoquefacil.net/pdfs/OS_000321.pdf", row.PDFURL)
	}
}

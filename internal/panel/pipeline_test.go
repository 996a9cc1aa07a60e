package panel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/payingzee/sellerpanel/internal/model"
)

func sampleOrders() []model.Order {
	base := time.Date(2026, time.August, 1, 10, 0, 0, 0, time.UTC)

	return []model.Order{
		{ID: "ORD-1", Status: model.OrderStatusPending, Amount: 1500, CreatedAt: base.Add(3 * time.Hour), Buyer: model.Buyer{Name: "Grace Wanjiku"}},
		{ID: "ORD-2", Status: model.OrderStatusShipped, Amount: 320, CreatedAt: base.Add(1 * time.Hour), Buyer: model.Buyer{Name: "John Omondi"}},
		{ID: "ORD-3", Status: model.OrderStatusPending, Amount: 1500, CreatedAt: base.Add(2 * time.Hour), Buyer: model.Buyer{Name: "Amina Hassan"}},
		{ID: "ORD-4", Status: model.OrderStatusCompleted, Amount: 5000, CreatedAt: base, Buyer: model.Buyer{Name: "Peter Mwangi"}},
	}
}

func ids(orders []model.Order) []string {
	out := make([]string, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.ID)
	}
	return out
}

func TestVisibleOrders_FilterAllIsIdentity(t *testing.T) {
	orders := sampleOrders()

	visible := VisibleOrders(orders, FilterAll, "", SortNewest)

	assert.Len(t, visible, len(orders))
}

func TestVisibleOrders_StatusFilter(t *testing.T) {
	visible := VisibleOrders(sampleOrders(), StatusFilter(model.OrderStatusPending), "", SortNewest)

	require.Len(t, visible, 2)
	for _, o := range visible {
		assert.Equal(t, model.OrderStatusPending, o.Status)
	}
}

func TestVisibleOrders_EmptyQueryPassesEverything(t *testing.T) {
	withQuery := VisibleOrders(sampleOrders(), StatusFilter(model.OrderStatusPending), "   ", SortNewest)
	without := VisibleOrders(sampleOrders(), StatusFilter(model.OrderStatusPending), "", SortNewest)

	assert.Equal(t, ids(without), ids(withQuery))
}

func TestVisibleOrders_SearchByIDOrBuyer(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"id match", "ord-2", []string{"ORD-2"}},
		{"buyer match case-insensitive", "WANJIKU", []string{"ORD-1"}},
		{"substring", "o", []string{"ORD-1", "ORD-3", "ORD-2", "ORD-4"}},
		{"no match", "zebra", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			visible := VisibleOrders(sampleOrders(), FilterAll, tt.query, SortNewest)
			assert.Equal(t, tt.want, ids(visible))
		})
	}
}

func TestVisibleOrders_SortKeys(t *testing.T) {
	tests := []struct {
		sortBy SortKey
		want   []string
	}{
		{SortNewest, []string{"ORD-1", "ORD-3", "ORD-2", "ORD-4"}},
		{SortOldest, []string{"ORD-4", "ORD-2", "ORD-3", "ORD-1"}},
		{SortAmountHigh, []string{"ORD-4", "ORD-1", "ORD-3", "ORD-2"}},
		{SortAmountLow, []string{"ORD-2", "ORD-1", "ORD-3", "ORD-4"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.sortBy), func(t *testing.T) {
			visible := VisibleOrders(sampleOrders(), FilterAll, "", tt.sortBy)
			assert.Equal(t, tt.want, ids(visible))
		})
	}
}

func TestVisibleOrders_StableForEqualKeys(t *testing.T) {
	// ORD-1 and ORD-3 share the same amount; input order must survive.
	visible := VisibleOrders(sampleOrders(), FilterAll, "", SortAmountHigh)

	assert.Equal(t, []string{"ORD-4", "ORD-1", "ORD-3", "ORD-2"}, ids(visible))
}

func TestVisibleOrders_Pure(t *testing.T) {
	orders := sampleOrders()

	first := VisibleOrders(orders, StatusFilter(model.OrderStatusPending), "ord", SortAmountLow)
	second := VisibleOrders(orders, StatusFilter(model.OrderStatusPending), "ord", SortAmountLow)

	assert.Equal(t, first, second)
	// Input untouched.
	assert.Equal(t, []string{"ORD-1", "ORD-2", "ORD-3", "ORD-4"}, ids(orders))
}

func TestVisibleOrders_EmptyInput(t *testing.T) {
	visible := VisibleOrders(nil, FilterAll, "", SortNewest)

	assert.NotNil(t, visible)
	assert.Empty(t, visible)
}

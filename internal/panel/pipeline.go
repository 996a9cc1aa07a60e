package panel

import (
	"sort"
	"strings"

	"github.com/payingzee/sellerpanel/internal/model"
)

// StatusFilter is either FilterAll or the exact status to keep.
type StatusFilter string

const FilterAll StatusFilter = "all"

func (f StatusFilter) valid() bool {
	return f == FilterAll || model.OrderStatus(f).Valid()
}

type SortKey string

const (
	SortNewest     SortKey = "newest"
	SortOldest     SortKey = "oldest"
	SortAmountHigh SortKey = "amount-high"
	SortAmountLow  SortKey = "amount-low"
)

func (k SortKey) valid() bool {
	switch k {
	case SortNewest, SortOldest, SortAmountHigh, SortAmountLow:
		return true
	}
	return false
}

// VisibleOrders computes the subset of the last-fetched list the orders
// view shows: status filter, then case-insensitive substring search on
// order id or buyer name, then a stable sort. Pure; equal sort keys keep
// their original relative order.
func VisibleOrders(orders []model.Order, filter StatusFilter, query string, sortBy SortKey) []model.Order {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if filter != FilterAll && o.Status != model.OrderStatus(filter) {
			continue
		}

		if q != "" &&
			!strings.Contains(strings.ToLower(o.ID), q) &&
			!strings.Contains(strings.ToLower(o.Buyer.Name), q) {
			continue
		}

		out = append(out, o)
	}

	sort.SliceStable(out, func(i, j int) bool {
		switch sortBy {
		case SortOldest:
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		case SortAmountHigh:
			return out[i].Amount > out[j].Amount
		case SortAmountLow:
			return out[i].Amount < out[j].Amount
		default: // SortNewest
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
	})

	return out
}

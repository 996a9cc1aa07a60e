package panel

import (
	"github.com/payingzee/sellerpanel/internal/format"
	"github.com/payingzee/sellerpanel/internal/model"
)

// Modals are the orders view modal flags. Advisory only: several can be
// true at once, the front-end opens one at a time by convention.
type Modals struct {
	Detail   bool `json:"detail"`
	Shipping bool `json:"shipping"`
	Proof    bool `json:"proof"`
	Message  bool `json:"message"`
}

type OrderRow struct {
	model.Order
	AmountDisplay  string `json:"amountDisplay"`
	CreatedDisplay string `json:"createdDisplay"`
}

type OrderDetail struct {
	model.Order
	Actions        []Action `json:"actions"`
	AmountDisplay  string   `json:"amountDisplay"`
	CreatedDisplay string   `json:"createdDisplay"`
}

// OrdersView is a point-in-time render of the orders view state.
type OrdersView struct {
	Loading       bool                      `json:"loading"`
	Orders        []OrderRow                `json:"orders"`
	Metrics       *model.PerformanceMetrics `json:"metrics,omitempty"`
	Detail        *OrderDetail              `json:"detail,omitempty"`
	Modals        Modals                    `json:"modals"`
	Filter        StatusFilter              `json:"filter"`
	Search        string                    `json:"search"`
	Sort          SortKey                   `json:"sort"`
	ShippingDraft ShippingDraft             `json:"shippingDraft"`
	MessageDraft  string                    `json:"messageDraft"`
	Success       string                    `json:"success,omitempty"`
	Error         string                    `json:"error,omitempty"`
}

// Snapshot recomputes the visible list from the authoritative last fetch
// plus the three controls. Same state in, same view out.
func (p *Orders) Snapshot() OrdersView {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()

	visible := VisibleOrders(p.orders, p.filter, p.search, p.sortBy)
	rows := make([]OrderRow, 0, len(visible))
	for _, o := range visible {
		rows = append(rows, OrderRow{
			Order:          o,
			AmountDisplay:  format.Currency(o.Amount),
			CreatedDisplay: format.RelTime(now, o.CreatedAt),
		})
	}

	view := OrdersView{
		Loading:       p.loading,
		Orders:        rows,
		Metrics:       p.metrics,
		Modals:        p.modals,
		Filter:        p.filter,
		Search:        p.search,
		Sort:          p.sortBy,
		ShippingDraft: p.shippingDraft,
		MessageDraft:  p.messageDraft,
		Success:       p.success,
		Error:         p.err,
	}

	if p.selected != nil {
		view.Detail = &OrderDetail{
			Order:          *p.selected,
			Actions:        AllowedActions(p.selected.Status),
			AmountDisplay:  format.Currency(p.selected.Amount),
			CreatedDisplay: format.RelTime(now, p.selected.CreatedAt),
		}
	}

	return view
}

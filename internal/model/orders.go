package model

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusAccepted  OrderStatus = "accepted"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusDispute   OrderStatus = "dispute"
	OrderStatusCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) String() string {
	return string(s)
}

// Valid reports whether s is one of the statuses the backend emits.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusAccepted, OrderStatusShipped,
		OrderStatusCompleted, OrderStatusDispute, OrderStatusCancelled:
		return true
	}
	return false
}

type Buyer struct {
	Name        string  `json:"name"`
	Phone       string  `json:"phone"`
	Location    string  `json:"location"`
	MemberSince string  `json:"memberSince"`
	Rating      float64 `json:"rating"`
	Purchases   int     `json:"purchases"`
}

type BuyerMessage struct {
	Text   string    `json:"text"`
	SentAt time.Time `json:"sentAt"`
}

type ShippingInfo struct {
	CourierName           string   `json:"courierName"`
	TrackingNumber        string   `json:"trackingNumber"`
	EstimatedDeliveryDate string   `json:"estimatedDeliveryDate"`
	Notes                 string   `json:"notes,omitempty"`
	ProofImages           []string `json:"proofImages,omitempty"`
}

// TimelineEvent is one named milestone in an order's history.
// CompletedAt is set only when Completed is true.
type TimelineEvent struct {
	Name        string     `json:"name"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// Order is created and mutated server-side only; the panel requests
// transitions and re-reads the resulting state.
type Order struct {
	ID             string          `json:"id"`
	Buyer          Buyer           `json:"buyer"`
	Item           string          `json:"item"`
	Quantity       int             `json:"quantity"`
	Amount         float64         `json:"amount"`
	Status         OrderStatus     `json:"status"`
	CreatedAt      time.Time       `json:"createdAt"`
	AcceptDeadline time.Time       `json:"acceptDeadline"`
	Message        *BuyerMessage   `json:"message,omitempty"`
	Shipping       *ShippingInfo   `json:"shipping,omitempty"`
	Timeline       []TimelineEvent `json:"timeline,omitempty"`
}

type GetOrdersResponse = []Order

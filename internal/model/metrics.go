package model

// PerformanceMetrics is a read-only aggregate computed by the backend
// for the authenticated seller.
type PerformanceMetrics struct {
	AcceptanceRate  float64 `json:"acceptanceRate"`
	AvgDeliveryTime string  `json:"avgDeliveryTime"`
	DisputeRate     float64 `json:"disputeRate"`
	TotalOrders     int     `json:"totalOrders"`
}

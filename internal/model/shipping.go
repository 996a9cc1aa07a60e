package model

// ProofImage is one prepared proof-of-shipment image ready for upload.
type ProofImage struct {
	Filename string
	Data     []byte
}

// ShippingSubmission is the multipart payload for POST /orders/{id}/shipping.
type ShippingSubmission struct {
	CourierName           string
	TrackingNumber        string
	EstimatedDeliveryDate string
	Notes                 string
	ProofImages           []ProofImage
}

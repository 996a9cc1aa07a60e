package model

import "errors"

type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

const (
	ErrInternalServerMessage = "internal server error"

	// Per-action fallbacks shown when a failed request carries no message.
	ErrLoadOrdersMessage     = "could not load orders"
	ErrLoadOrderMessage      = "could not load order details"
	ErrLoadMetricsMessage    = "could not load performance metrics"
	ErrAcceptOrderMessage    = "could not accept the order"
	ErrRejectOrderMessage    = "could not reject the order"
	ErrSubmitShippingMessage = "could not submit shipping details"
	ErrUpdateProofMessage    = "could not upload proof of shipment"
	ErrSendMessageMessage    = "could not send the message"

	// Local validation failures, never sent over the network.
	ErrShippingFieldsMessage = "courier, tracking number and delivery date are required"
	ErrEmptyMessageMessage   = "message text is required"
)

var (
	ErrSessionExpired   = errors.New("session expired, please sign in again")
	ErrNoShippingRecord = errors.New("order has no shipping record yet")
	ErrUnknownTab       = errors.New("unknown dashboard tab")
	ErrUnknownModal     = errors.New("unknown modal")
	ErrActionNotAllowed = errors.New("action is not available for the order status")
)

// UpstreamError is a failed call to the seller API. Exactly one failure
// kind is distinguished: non-2xx and transport errors both end up here.
// Message holds the optional message field of an error body.
type UpstreamError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return "request failed: " + e.Err.Error()
	}
	return "request failed"
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// UserMessage extracts the message carried by a failure, falling back to
// the per-action string when there is none.
func UserMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}

	var ue *UpstreamError
	if errors.As(err, &ue) && ue.Message != "" {
		return ue.Message
	}

	if errors.Is(err, ErrSessionExpired) {
		return ErrSessionExpired.Error()
	}

	return fallback
}

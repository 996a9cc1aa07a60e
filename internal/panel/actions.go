package panel

import "github.com/payingzee/sellerpanel/internal/model"

// Action is one seller-initiated operation the orders view can offer.
type Action string

const (
	ActionAccept      Action = "accept"
	ActionReject      Action = "reject"
	ActionShip        Action = "ship"
	ActionUpdateProof Action = "update-proof"
	ActionMessage     Action = "message"
)

// AllowedActions is the total map from order status to the actions the UI
// may offer. The backend remains the guard against illegal transitions;
// this only decides what is shown.
func AllowedActions(status model.OrderStatus) []Action {
	switch status {
	case model.OrderStatusPending:
		return []Action{ActionAccept, ActionReject, ActionMessage}
	case model.OrderStatusAccepted:
		return []Action{ActionShip, ActionMessage}
	case model.OrderStatusShipped:
		return []Action{ActionUpdateProof, ActionMessage}
	case model.OrderStatusCompleted, model.OrderStatusDispute, model.OrderStatusCancelled:
		return []Action{ActionMessage}
	default:
		// Unknown statuses from a newer backend stay message-only.
		return []Action{ActionMessage}
	}
}

// Allowed reports whether action is available for an order in the given status.
func Allowed(status model.OrderStatus, action Action) bool {
	for _, a := range AllowedActions(status) {
		if a == action {
			return true
		}
	}
	return false
}

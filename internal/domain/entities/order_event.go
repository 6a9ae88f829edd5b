package entities

import "time"

// EventType names a service order lifecycle event published to the broker.
type EventType string

const (
	EventOrderCreated       EventType = "order.created"
	EventOrderUpdated       EventType = "order.updated"
	EventOrderStatusChanged EventType = "order.status_changed"
	EventOrderDeleted       EventType = "order.deleted"
	EventOrderRolledBack    EventType = "order.rolled_back"
)

// OrderEvent is the message body published after a change reached the remote API
// (or was undone locally because it did not).
type OrderEvent struct {
	Type        EventType   `json:"type"`
	ShopToken   string      `json:"shop_token"`
	OrderID     string      `json:"order_id,omitempty"`
	OrderNumber string      `json:"order_number"`
	Status      OrderStatus `json:"status,omitempty"`
	OccurredAt  time.Time   `json:"occurred_at"`
}

package entities

import "time"

type EventType string

const (
	EventOrderPlaced        EventType = "order.placed"
	EventOrderStatusChanged EventType = "order.status_changed"
)

// OrderEvent is what gets handed to notification collaborators.
type OrderEvent struct {
	Type       EventType `json:"type"`
	OrderID    string    `json:"order_id"`
	CustomerID string    `json:"customer_id"`
	Status     Status    `json:"status"`
	Previous   Status    `json:"previous,omitempty"`
	Note       string    `json:"note,omitempty"`
	Total      int64     `json:"total"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewOrderEvent(t EventType, o Order, previous Status, note string) OrderEvent {
	return OrderEvent{
		Type:       t,
		OrderID:    o.ID,
		CustomerID: o.CustomerID,
		Status:     o.Status,
		Previous:   previous,
		Note:       note,
		Total:      o.Summary.Total,
		OccurredAt: o.UpdatedAt,
	}
}

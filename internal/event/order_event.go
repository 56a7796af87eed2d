package event

import (
	"time"

	"github.com/shopspring/decimal"
)

type EventType string

const (
	OrderCreatedEventName       EventType = "order_created"
	OrderStatusChangedEventName EventType = "order_status_changed"
)

type OrderItemData struct {
	ProductID   uint            `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

type OrderCreatedEvent struct {
	OrderID    uint            `json:"order_id"`
	CustomerID uint            `json:"customer_id"`
	Items      []OrderItemData `json:"items"`
	Amount     decimal.Decimal `json:"amount"`
	Status     uint            `json:"status"`
	OrderDate  time.Time       `json:"order_date"`
}

func (e *OrderCreatedEvent) Type() EventType {
	return OrderCreatedEventName
}

type OrderStatusChangedEvent struct {
	OrderID    uint      `json:"order_id"`
	FromStatus uint      `json:"from_status"`
	ToStatus   uint      `json:"to_status"`
	ChangedAt  time.Time `json:"changed_at"`
}

func (e *OrderStatusChangedEvent) Type() EventType {
	return OrderStatusChangedEventName
}

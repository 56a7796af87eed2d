package producer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/RoyceAzure/lab/ordercenter/internal/event"
	"github.com/RoyceAzure/lab/ordercenter/internal/model"
	"github.com/RoyceAzure/lab/rj_kafka/kafka/message"
	"github.com/RoyceAzure/lab/rj_kafka/kafka/producer"
)

// 訂單生命週期事件
// commit後才發佈, 發佈失敗不影響已提交的訂單
type OrderEventProducer struct {
	producer producer.Producer
}

type IOrderEventProducer interface {
	ProduceOrderCreatedEvent(ctx context.Context, order *model.Order) error
	ProduceOrderStatusChangedEvent(ctx context.Context, orderID uint, from, to model.OrderStatus) error
}

func NewOrderEventProducer(producer producer.Producer) *OrderEventProducer {
	return &OrderEventProducer{producer: producer}
}

var _ IOrderEventProducer = (*OrderEventProducer)(nil)

func (p *OrderEventProducer) ProduceOrderCreatedEvent(ctx context.Context, order *model.Order) error {
	items := make([]event.OrderItemData, 0, len(order.OrderItems))
	for _, item := range order.OrderItems {
		data := event.OrderItemData{
			ProductID: item.ProductID,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal,
		}
		if item.Product != nil {
			data.ProductName = item.Product.Name
		}
		items = append(items, data)
	}

	evt := event.OrderCreatedEvent{
		OrderID:    order.OrderID,
		CustomerID: order.CustomerID,
		Items:      items,
		Amount:     order.TotalAmount,
		Status:     uint(order.Status),
		OrderDate:  order.CreatedAt,
	}

	msg, err := p.convertToMessage(order.OrderID, evt.Type(), &evt)
	if err != nil {
		return err
	}

	return p.producer.Produce(ctx, []message.Message{msg})
}

func (p *OrderEventProducer) ProduceOrderStatusChangedEvent(ctx context.Context, orderID uint, from, to model.OrderStatus) error {
	evt := event.OrderStatusChangedEvent{
		OrderID:    orderID,
		FromStatus: uint(from),
		ToStatus:   uint(to),
		ChangedAt:  time.Now().UTC(),
	}

	msg, err := p.convertToMessage(orderID, evt.Type(), &evt)
	if err != nil {
		return err
	}

	return p.producer.Produce(ctx, []message.Message{msg})
}

func (p *OrderEventProducer) convertToMessage(orderID uint, eventType event.EventType, payload any) (message.Message, error) {
	value, err := json.Marshal(payload)
	if err != nil {
		return message.Message{}, err
	}

	return message.Message{
		Key:   []byte(fmt.Sprintf("%d", orderID)),
		Value: value,
		Headers: []message.Header{
			{
				Key:   "event_type",
				Value: []byte(eventType),
			},
		},
	}, nil
}

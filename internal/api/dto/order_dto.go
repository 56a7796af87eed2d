package dto

import (
	"time"

	"github.com/RoyceAzure/lab/ordercenter/internal/model"
	"github.com/shopspring/decimal"
)

type CreateOrderItemDTO struct {
	ProductID uint `json:"productId"`
	Quantity  int  `json:"quantity"`
}

type CreateOrderDTO struct {
	CustomerID uint                 `json:"customerId"`
	OrderItems []CreateOrderItemDTO `json:"orderItems"`
}

type UpdateOrderStatusDTO struct {
	Status *uint `json:"status"`
}

// OrderItemDTO 平坦的傳輸結構, 不帶反向參照
type OrderItemDTO struct {
	ID          uint            `json:"id"`
	ProductID   uint            `json:"productId"`
	ProductName string          `json:"productName"`
	ProductSKU  string          `json:"productSku"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Quantity    int             `json:"quantity"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}

type OrderDTO struct {
	ID           uint            `json:"id"`
	CustomerID   uint            `json:"customerId"`
	CustomerName string          `json:"customerName"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	Status       uint            `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
	OrderItems   []OrderItemDTO  `json:"orderItems"`
}

func ConvertOrderToDTO(order *model.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(order.OrderItems))
	for _, item := range order.OrderItems {
		itemDTO := OrderItemDTO{
			ID:        item.OrderItemID,
			ProductID: item.ProductID,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal,
		}
		if item.Product != nil {
			itemDTO.ProductName = item.Product.Name
			itemDTO.ProductSKU = item.Product.SKU
		}
		items = append(items, itemDTO)
	}

	orderDTO := OrderDTO{
		ID:          order.OrderID,
		CustomerID:  order.CustomerID,
		TotalAmount: order.TotalAmount,
		Status:      uint(order.Status),
		CreatedAt:   order.CreatedAt,
		OrderItems:  items,
	}
	if order.Customer != nil {
		orderDTO.CustomerName = order.Customer.Name
	}
	return orderDTO
}

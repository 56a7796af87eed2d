package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 訂單階段 OrderItems建立後不會變動
// 訂單階段 只有status會變動
type Order struct {
	OrderID     uint            `gorm:"primaryKey" json:"id"`
	CustomerID  uint            `gorm:"not null;index" json:"customerId"`
	TotalAmount decimal.Decimal `gorm:"not null;type:decimal(18,2)" json:"totalAmount"`
	Status      OrderStatus     `gorm:"not null;default:0" json:"status"`
	CreatedAt   time.Time       `gorm:"not null;default:now()" json:"createdAt"`

	// 單向導覽, 不設反向collection
	Customer   *Customer   `gorm:"foreignKey:CustomerID;constraint:OnDelete:RESTRICT" json:"customer,omitempty"`
	OrderItems []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"orderItems"`
}

type OrderItem struct {
	OrderItemID uint            `gorm:"primaryKey" json:"id"`
	OrderID     uint            `gorm:"not null;index:ix_order_items_order_product" json:"orderId"`
	ProductID   uint            `gorm:"not null;index:ix_order_items_order_product" json:"productId"`
	UnitPrice   decimal.Decimal `gorm:"not null;type:decimal(18,2)" json:"unitPrice"`
	Quantity    int             `gorm:"not null" json:"quantity"`
	LineTotal   decimal.Decimal `gorm:"not null;type:decimal(18,2)" json:"lineTotal"`

	Product *Product `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT" json:"product,omitempty"`
}

// 行小計 = 成交單價 x 數量
// 單價為下單當下快照, 之後商品調價不影響
func (i *OrderItem) CalculateLineTotal() {
	i.LineTotal = i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// 總金額 = 所有行小計加總
func (o *Order) CalculateTotal() {
	total := decimal.NewFromInt(0)
	for _, item := range o.OrderItems {
		total = total.Add(item.LineTotal)
	}
	o.TotalAmount = total
}

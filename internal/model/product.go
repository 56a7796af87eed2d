package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ProductID uint            `gorm:"primaryKey" json:"id"`
	Name      string          `gorm:"not null;type:varchar(100)" json:"name"`
	SKU       string          `gorm:"column:sku;not null;type:varchar(50);uniqueIndex" json:"sku"`
	Price     decimal.Decimal `gorm:"not null;type:decimal(18,2)" json:"price"`
	StockQty  int             `gorm:"not null" json:"stockQty"`
	IsActive  bool            `gorm:"not null;default:true" json:"isActive"`
	CreatedAt time.Time       `gorm:"not null;default:now()" json:"createdAt"`
}

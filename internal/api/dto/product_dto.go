package dto

import "github.com/shopspring/decimal"

type CreateProductDTO struct {
	Name     string          `json:"name"`
	SKU      string          `json:"sku"`
	Price    decimal.Decimal `json:"price"`
	StockQty int             `json:"stockQty"`
	IsActive *bool           `json:"isActive"`
}

// sku不可變更, 不在更新DTO內
type UpdateProductDTO struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	StockQty int             `json:"stockQty"`
	IsActive bool            `json:"isActive"`
}

type CreateCustomerDTO struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Document string `json:"document"`
}

type UpdateCustomerDTO struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Document string `json:"document"`
}

package db

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/ordercenter/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrStockNotEnough = errors.New("product stock is not enough")

type IProductRepository interface {
	CreateProduct(ctx context.Context, product *model.Product) error
	GetProductByID(ctx context.Context, id uint) (*model.Product, error)
	GetProductByIDForUpdate(ctx context.Context, id uint) (*model.Product, error)
	UpdateProduct(ctx context.Context, product *model.Product) error
	DecrementStock(ctx context.Context, id uint, quantity int) error
	DeleteProduct(ctx context.Context, id uint) error
}

type ProductRepo struct {
	db *DbDao
}

func NewProductRepo(db *DbDao) *ProductRepo {
	return &ProductRepo{db: db}
}

var _ IProductRepository = (*ProductRepo)(nil)

// Create - 創建商品
func (s *ProductRepo) CreateProduct(ctx context.Context, product *model.Product) error {
	return s.db.WithContext(ctx).Create(product).Error
}

// Read - 根據ID查詢商品, 查無資料回傳nil
func (s *ProductRepo) GetProductByID(ctx context.Context, id uint) (*model.Product, error) {
	var product model.Product
	err := s.db.WithContext(ctx).First(&product, "product_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// Read - 根據ID查詢商品並取row lock
// 只能在交易內使用, 防止併發下單造成的lost update
func (s *ProductRepo) GetProductByIDForUpdate(ctx context.Context, id uint) (*model.Product, error) {
	var product model.Product
	err := s.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&product, "product_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// Update - 更新商品欄位
// sku建立後不可變更, 不在更新欄位內
func (s *ProductRepo) UpdateProduct(ctx context.Context, product *model.Product) error {
	return s.db.WithContext(ctx).Model(&model.Product{}).
		Where("product_id = ?", product.ProductID).
		Updates(map[string]interface{}{
			"name":      product.Name,
			"price":     product.Price,
			"stock_qty": product.StockQty,
			"is_active": product.IsActive,
		}).Error
}

// Update - 扣減庫存
// 單一UPDATE加上stock_qty >= ?條件, 保證不會扣成負數
func (s *ProductRepo) DecrementStock(ctx context.Context, id uint, quantity int) error {
	res := s.db.WithContext(ctx).Model(&model.Product{}).
		Where("product_id = ? AND stock_qty >= ?", id, quantity).
		UpdateColumn("stock_qty", gorm.Expr("stock_qty - ?", quantity))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStockNotEnough
	}
	return nil
}

// Delete - 硬刪除商品
// 被order_items參照時會違反FK, 由service轉成Conflict
func (s *ProductRepo) DeleteProduct(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&model.Product{}, "product_id = ?", id).Error
}

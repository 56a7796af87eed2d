package service

import (
	"context"

	"github.com/RoyceAzure/lab/ordercenter/internal/errs"
	"github.com/RoyceAzure/lab/ordercenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/ordercenter/internal/model"
)

type IProductService interface {
	CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error)
	GetProduct(ctx context.Context, id uint) (*model.Product, error)
	UpdateProduct(ctx context.Context, product *model.Product) (*model.Product, error)
	DeleteProduct(ctx context.Context, id uint) error
}

type ProductService struct {
	productRepo db.IProductRepository
}

func NewProductService(productRepo db.IProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

var _ IProductService = (*ProductService)(nil)

func (p *ProductService) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	if err := validateProduct(product, true); err != nil {
		return nil, err
	}

	if err := p.productRepo.CreateProduct(ctx, product); err != nil {
		if db.IsUniqueViolation(err) {
			return nil, errs.Conflict("product with sku '%s' already exists", product.SKU)
		}
		return nil, errs.Internal("create product failed", err)
	}
	return product, nil
}

func (p *ProductService) GetProduct(ctx context.Context, id uint) (*model.Product, error) {
	product, err := p.productRepo.GetProductByID(ctx, id)
	if err != nil {
		return nil, errs.Internal("get product failed", err)
	}
	if product == nil {
		return nil, errs.NotFound("product with id %d not found", id)
	}
	return product, nil
}

// UpdateProduct 管理端編輯, sku不可變更
// 庫存為絕對值設定, repo用單一UPDATE避免跟下單扣庫存互相蓋寫
func (p *ProductService) UpdateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	if err := validateProduct(product, false); err != nil {
		return nil, err
	}

	existing, err := p.productRepo.GetProductByID(ctx, product.ProductID)
	if err != nil {
		return nil, errs.Internal("get product failed", err)
	}
	if existing == nil {
		return nil, errs.NotFound("product with id %d not found", product.ProductID)
	}

	if err := p.productRepo.UpdateProduct(ctx, product); err != nil {
		return nil, errs.Internal("update product failed", err)
	}

	return p.GetProduct(ctx, product.ProductID)
}

func (p *ProductService) DeleteProduct(ctx context.Context, id uint) error {
	existing, err := p.productRepo.GetProductByID(ctx, id)
	if err != nil {
		return errs.Internal("get product failed", err)
	}
	if existing == nil {
		return errs.NotFound("product with id %d not found", id)
	}

	if err := p.productRepo.DeleteProduct(ctx, id); err != nil {
		if db.IsForeignKeyViolation(err) {
			return errs.Conflict("product with id %d is referenced by existing orders", id)
		}
		return errs.Internal("delete product failed", err)
	}
	return nil
}

func validateProduct(product *model.Product, isNew bool) error {
	if product.Name == "" || len(product.Name) > 100 {
		return errs.InvalidRequest("product name is required and cannot exceed 100 characters")
	}
	if isNew && (product.SKU == "" || len(product.SKU) > 50) {
		return errs.InvalidRequest("product sku is required and cannot exceed 50 characters")
	}
	if product.Price.IsNegative() {
		return errs.InvalidRequest("product price cannot be negative")
	}
	if product.StockQty < 0 {
		return errs.InvalidRequest("product stock quantity cannot be negative")
	}
	return nil
}

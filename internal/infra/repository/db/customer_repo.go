package db

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/ordercenter/internal/model"
	"gorm.io/gorm"
)

type ICustomerRepository interface {
	CreateCustomer(ctx context.Context, customer *model.Customer) error
	GetCustomerByID(ctx context.Context, id uint) (*model.Customer, error)
	UpdateCustomer(ctx context.Context, customer *model.Customer) error
	DeleteCustomer(ctx context.Context, id uint) error
}

type CustomerRepo struct {
	db *DbDao
}

func NewCustomerRepo(db *DbDao) *CustomerRepo {
	return &CustomerRepo{db: db}
}

var _ ICustomerRepository = (*CustomerRepo)(nil)

// Create - 創建客戶
func (s *CustomerRepo) CreateCustomer(ctx context.Context, customer *model.Customer) error {
	return s.db.WithContext(ctx).Create(customer).Error
}

// Read - 根據ID查詢客戶, 查無資料回傳nil
func (s *CustomerRepo) GetCustomerByID(ctx context.Context, id uint) (*model.Customer, error) {
	var customer model.Customer
	err := s.db.WithContext(ctx).First(&customer, "customer_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

// Update - 更新客戶顯示欄位
func (s *CustomerRepo) UpdateCustomer(ctx context.Context, customer *model.Customer) error {
	return s.db.WithContext(ctx).Model(&model.Customer{}).
		Where("customer_id = ?", customer.CustomerID).
		Updates(map[string]interface{}{
			"name":     customer.Name,
			"email":    customer.Email,
			"document": customer.Document,
		}).Error
}

// Delete - 硬刪除客戶
// 有訂單參照時會違反FK, 由service轉成Conflict
func (s *CustomerRepo) DeleteCustomer(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&model.Customer{}, "customer_id = ?", id).Error
}

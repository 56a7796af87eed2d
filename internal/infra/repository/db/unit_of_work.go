package db

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var (
	ErrTxAlreadyActive = errors.New("transaction already active")
	ErrTxNotActive     = errors.New("no active transaction")
)

// IUnitOfWork 把一組寫入綁成單一commit/rollback邊界
// Begin與Commit之間透過Orders/Products/Customers取得的repo共用同一個交易
type IUnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error
	Orders() IOrderRepository
	Products() IProductRepository
	Customers() ICustomerRepository
}

type UnitOfWork struct {
	base *DbDao
	tx   *gorm.DB

	orders    IOrderRepository
	products  IProductRepository
	customers ICustomerRepository
}

func NewUnitOfWork(base *DbDao) *UnitOfWork {
	return &UnitOfWork{base: base}
}

var _ IUnitOfWork = (*UnitOfWork)(nil)

// Begin 開啟交易, 同一個instance同時只允許一個交易
func (u *UnitOfWork) Begin(ctx context.Context) error {
	if u.tx != nil {
		return ErrTxAlreadyActive
	}

	tx := u.base.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	u.tx = tx
	dao := NewDbDao(tx)
	u.orders = NewOrderRepo(dao)
	u.products = NewProductRepo(dao)
	u.customers = NewCustomerRepo(dao)
	return nil
}

// Commit 提交交易
// commit失敗時先rollback再回傳錯誤, 不留下half-applied狀態
func (u *UnitOfWork) Commit() error {
	if u.tx == nil {
		return ErrTxNotActive
	}

	if err := u.tx.Commit().Error; err != nil {
		u.tx.Rollback()
		u.reset()
		return err
	}

	u.reset()
	return nil
}

// Rollback 冪等性, 沒有交易時是no-op
func (u *UnitOfWork) Rollback() error {
	if u.tx == nil {
		return nil
	}

	err := u.tx.Rollback().Error
	u.reset()
	return err
}

func (u *UnitOfWork) reset() {
	u.tx = nil
	u.orders = nil
	u.products = nil
	u.customers = nil
}

// 交易外取得的repo直接綁base連線, 給一般讀取用
func (u *UnitOfWork) Orders() IOrderRepository {
	if u.orders == nil {
		u.orders = NewOrderRepo(u.base)
	}
	return u.orders
}

func (u *UnitOfWork) Products() IProductRepository {
	if u.products == nil {
		u.products = NewProductRepo(u.base)
	}
	return u.products
}

func (u *UnitOfWork) Customers() ICustomerRepository {
	if u.customers == nil {
		u.customers = NewCustomerRepo(u.base)
	}
	return u.customers
}

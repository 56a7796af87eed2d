package db

import (
	"context"
	"testing"

	"github.com/RoyceAzure/lab/ordercenter/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type UnitOfWorkTestSuite struct {
	suite.Suite
	db  *gorm.DB
	dao *DbDao
}

func (suite *UnitOfWorkTestSuite) SetupSuite() {
	db, err := GetDbConn("lab_ordercenter", "localhost", "5432", "royce", "password")
	require.NoError(suite.T(), err)
	suite.dao = NewDbDao(db)
	require.NoError(suite.T(), suite.dao.InitMigrate())
	suite.db = db
}

func (suite *UnitOfWorkTestSuite) SetupTest() {
	suite.db.Exec("DELETE FROM order_items")
	suite.db.Exec("DELETE FROM orders")
	suite.db.Exec("DELETE FROM products")
	suite.db.Exec("DELETE FROM customers")
}

func (suite *UnitOfWorkTestSuite) TearDownSuite() {
	sqlDB, _ := suite.db.DB()
	sqlDB.Close()
}

func (suite *UnitOfWorkTestSuite) createTestProduct() *model.Product {
	product := &model.Product{
		Name:     "Test Product",
		SKU:      "UOW-TEST-001",
		Price:    decimal.RequireFromString("100.00"),
		StockQty: 10,
		IsActive: true,
	}
	err := NewProductRepo(suite.dao).CreateProduct(context.Background(), product)
	require.NoError(suite.T(), err)
	return product
}

func (suite *UnitOfWorkTestSuite) TestCommitPersistsChanges() {
	product := suite.createTestProduct()
	ctx := context.Background()

	uow := NewUnitOfWork(suite.dao)
	require.NoError(suite.T(), uow.Begin(ctx))

	err := uow.Products().DecrementStock(ctx, product.ProductID, 4)
	require.NoError(suite.T(), err)
	require.NoError(suite.T(), uow.Commit())

	found, err := NewProductRepo(suite.dao).GetProductByID(ctx, product.ProductID)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), 6, found.StockQty)
}

func (suite *UnitOfWorkTestSuite) TestRollbackRevertsChanges() {
	product := suite.createTestProduct()
	ctx := context.Background()

	uow := NewUnitOfWork(suite.dao)
	require.NoError(suite.T(), uow.Begin(ctx))

	err := uow.Products().DecrementStock(ctx, product.ProductID, 4)
	require.NoError(suite.T(), err)
	require.NoError(suite.T(), uow.Rollback())

	found, err := NewProductRepo(suite.dao).GetProductByID(ctx, product.ProductID)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), 10, found.StockQty)
}

func (suite *UnitOfWorkTestSuite) TestRollbackWithoutBeginIsNoOp() {
	uow := NewUnitOfWork(suite.dao)
	require.NoError(suite.T(), uow.Rollback())
}

func (suite *UnitOfWorkTestSuite) TestRollbackIsIdempotent() {
	ctx := context.Background()
	uow := NewUnitOfWork(suite.dao)
	require.NoError(suite.T(), uow.Begin(ctx))

	require.NoError(suite.T(), uow.Rollback())
	require.NoError(suite.T(), uow.Rollback())
}

func (suite *UnitOfWorkTestSuite) TestRollbackAfterCommitIsNoOp() {
	ctx := context.Background()
	uow := NewUnitOfWork(suite.dao)
	require.NoError(suite.T(), uow.Begin(ctx))
	require.NoError(suite.T(), uow.Commit())

	// defer uow.Rollback()的使用模式, commit後的rollback不能出錯
	require.NoError(suite.T(), uow.Rollback())
}

func (suite *UnitOfWorkTestSuite) TestBeginTwiceFails() {
	ctx := context.Background()
	uow := NewUnitOfWork(suite.dao)
	require.NoError(suite.T(), uow.Begin(ctx))
	defer uow.Rollback()

	require.ErrorIs(suite.T(), uow.Begin(ctx), ErrTxAlreadyActive)
}

func (suite *UnitOfWorkTestSuite) TestCommitWithoutBeginFails() {
	uow := NewUnitOfWork(suite.dao)
	require.ErrorIs(suite.T(), uow.Commit(), ErrTxNotActive)
}

func (suite *UnitOfWorkTestSuite) TestBeginAgainAfterCommit() {
	ctx := context.Background()
	uow := NewUnitOfWork(suite.dao)

	require.NoError(suite.T(), uow.Begin(ctx))
	require.NoError(suite.T(), uow.Commit())

	require.NoError(suite.T(), uow.Begin(ctx))
	require.NoError(suite.T(), uow.Rollback())
}

func (suite *UnitOfWorkTestSuite) TestReposShareSameTransaction() {
	ctx := context.Background()
	product := suite.createTestProduct()

	customer := &model.Customer{
		Name:     "Test Customer",
		Email:    "uow@example.com",
		Document: "12345678900",
	}
	require.NoError(suite.T(), NewCustomerRepo(suite.dao).CreateCustomer(ctx, customer))

	uow := NewUnitOfWork(suite.dao)
	require.NoError(suite.T(), uow.Begin(ctx))

	order := &model.Order{
		CustomerID:  customer.CustomerID,
		TotalAmount: decimal.RequireFromString("200.00"),
		Status:      model.OrderStatusCreated,
		OrderItems: []model.OrderItem{
			{
				ProductID: product.ProductID,
				UnitPrice: product.Price,
				Quantity:  2,
				LineTotal: decimal.RequireFromString("200.00"),
			},
		},
	}
	require.NoError(suite.T(), uow.Orders().CreateOrder(ctx, order))
	require.NoError(suite.T(), uow.Products().DecrementStock(ctx, product.ProductID, 2))
	require.NoError(suite.T(), uow.Rollback())

	// rollback後訂單跟庫存異動都不存在
	found, err := NewOrderRepo(suite.dao).GetOrderByID(ctx, order.OrderID)
	require.NoError(suite.T(), err)
	require.Nil(suite.T(), found)

	p, err := NewProductRepo(suite.dao).GetProductByID(ctx, product.ProductID)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), 10, p.StockQty)
}

func TestUnitOfWorkTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkTestSuite))
}

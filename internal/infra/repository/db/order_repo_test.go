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

type OrderRepoTestSuite struct {
	suite.Suite
	db           *gorm.DB
	orderRepo    *OrderRepo
	productRepo  *ProductRepo
	customerRepo *CustomerRepo
}

// SetupSuite 在測試套件開始前執行
func (suite *OrderRepoTestSuite) SetupSuite() {
	db, err := GetDbConn("lab_ordercenter", "localhost", "5432", "royce", "password")
	require.NoError(suite.T(), err)
	dbDao := NewDbDao(db)
	require.NoError(suite.T(), dbDao.InitMigrate())

	suite.db = db
	suite.orderRepo = NewOrderRepo(dbDao)
	suite.productRepo = NewProductRepo(dbDao)
	suite.customerRepo = NewCustomerRepo(dbDao)
}

// SetupTest 在每個測試前執行
func (suite *OrderRepoTestSuite) SetupTest() {
	// 清空資料表
	suite.db.Exec("DELETE FROM order_items")
	suite.db.Exec("DELETE FROM orders")
	suite.db.Exec("DELETE FROM products")
	suite.db.Exec("DELETE FROM customers")
}

// TearDownSuite 在測試套件結束後執行
func (suite *OrderRepoTestSuite) TearDownSuite() {
	sqlDB, _ := suite.db.DB()
	sqlDB.Close()
}

func (suite *OrderRepoTestSuite) createTestCustomer() *model.Customer {
	customer := &model.Customer{
		Name:     "Test Customer",
		Email:    "order-repo@example.com",
		Document: "11122233344",
	}
	require.NoError(suite.T(), suite.customerRepo.CreateCustomer(context.Background(), customer))
	return customer
}

func (suite *OrderRepoTestSuite) createTestProduct(sku string) *model.Product {
	product := &model.Product{
		Name:     "Test Product " + sku,
		SKU:      sku,
		Price:    decimal.RequireFromString("50.00"),
		StockQty: 10,
		IsActive: true,
	}
	require.NoError(suite.T(), suite.productRepo.CreateProduct(context.Background(), product))
	return product
}

func (suite *OrderRepoTestSuite) createTestOrder(customer *model.Customer, product *model.Product) *model.Order {
	order := &model.Order{
		CustomerID:  customer.CustomerID,
		TotalAmount: decimal.RequireFromString("100.00"),
		Status:      model.OrderStatusCreated,
		OrderItems: []model.OrderItem{
			{
				ProductID: product.ProductID,
				UnitPrice: product.Price,
				Quantity:  2,
				LineTotal: decimal.RequireFromString("100.00"),
			},
		},
	}
	require.NoError(suite.T(), suite.orderRepo.CreateOrder(context.Background(), order))
	return order
}

func (suite *OrderRepoTestSuite) TestCreateOrderWithItems() {
	customer := suite.createTestCustomer()
	product := suite.createTestProduct("ORD-TEST-001")

	order := suite.createTestOrder(customer, product)

	require.NotZero(suite.T(), order.OrderID)
	require.NotZero(suite.T(), order.OrderItems[0].OrderItemID)
	require.Equal(suite.T(), order.OrderID, order.OrderItems[0].OrderID)
}

func (suite *OrderRepoTestSuite) TestGetOrderByID() {
	customer := suite.createTestCustomer()
	product := suite.createTestProduct("ORD-TEST-001")
	order := suite.createTestOrder(customer, product)

	found, err := suite.orderRepo.GetOrderByID(context.Background(), order.OrderID)

	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), found)
	require.Len(suite.T(), found.OrderItems, 1)
	require.True(suite.T(), order.TotalAmount.Equal(found.TotalAmount))
}

func (suite *OrderRepoTestSuite) TestGetOrderByID_NotFound() {
	found, err := suite.orderRepo.GetOrderByID(context.Background(), 99999)

	require.NoError(suite.T(), err)
	require.Nil(suite.T(), found)
}

func (suite *OrderRepoTestSuite) TestGetOrderDetailByID() {
	customer := suite.createTestCustomer()
	product := suite.createTestProduct("ORD-TEST-001")
	order := suite.createTestOrder(customer, product)

	found, err := suite.orderRepo.GetOrderDetailByID(context.Background(), order.OrderID)

	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), found)
	require.NotNil(suite.T(), found.Customer)
	require.Equal(suite.T(), customer.Name, found.Customer.Name)
	require.Len(suite.T(), found.OrderItems, 1)
	require.NotNil(suite.T(), found.OrderItems[0].Product)
	require.Equal(suite.T(), product.SKU, found.OrderItems[0].Product.SKU)
}

func (suite *OrderRepoTestSuite) TestUpdateOrderStatus() {
	customer := suite.createTestCustomer()
	product := suite.createTestProduct("ORD-TEST-001")
	order := suite.createTestOrder(customer, product)

	err := suite.orderRepo.UpdateOrderStatus(context.Background(), order.OrderID, model.OrderStatusPaid)
	require.NoError(suite.T(), err)

	found, err := suite.orderRepo.GetOrderByID(context.Background(), order.OrderID)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), model.OrderStatusPaid, found.Status)
}

func (suite *OrderRepoTestSuite) TestDeleteProductReferencedByOrderFails() {
	customer := suite.createTestCustomer()
	product := suite.createTestProduct("ORD-TEST-001")
	suite.createTestOrder(customer, product)

	err := suite.productRepo.DeleteProduct(context.Background(), product.ProductID)
	require.Error(suite.T(), err)
	require.True(suite.T(), IsForeignKeyViolation(err))
}

func TestOrderRepoTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepoTestSuite))
}

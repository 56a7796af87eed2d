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

type ProductRepoTestSuite struct {
	suite.Suite
	db          *gorm.DB
	productRepo *ProductRepo
}

// SetupSuite 在測試套件開始前執行
func (suite *ProductRepoTestSuite) SetupSuite() {
	db, err := GetDbConn("lab_ordercenter", "localhost", "5432", "royce", "password")
	require.NoError(suite.T(), err)
	dbDao := NewDbDao(db)
	require.NoError(suite.T(), dbDao.InitMigrate())

	suite.db = db
	suite.productRepo = NewProductRepo(dbDao)
}

// SetupTest 在每個測試前執行
func (suite *ProductRepoTestSuite) SetupTest() {
	// 清空資料表
	suite.db.Exec("DELETE FROM order_items")
	suite.db.Exec("DELETE FROM orders")
	suite.db.Exec("DELETE FROM products")
	suite.db.Exec("DELETE FROM customers")
}

// TearDownSuite 在測試套件結束後執行
func (suite *ProductRepoTestSuite) TearDownSuite() {
	sqlDB, _ := suite.db.DB()
	sqlDB.Close()
}

func (suite *ProductRepoTestSuite) createTestProduct(stock int) *model.Product {
	product := &model.Product{
		Name:     "Test Notebook",
		SKU:      "NOTE-TEST-001",
		Price:    decimal.RequireFromString("3500.00"),
		StockQty: stock,
		IsActive: true,
	}
	err := suite.productRepo.CreateProduct(context.Background(), product)
	require.NoError(suite.T(), err)
	return product
}

func (suite *ProductRepoTestSuite) TestCreateProduct() {
	product := suite.createTestProduct(10)

	require.NotZero(suite.T(), product.ProductID)
	require.False(suite.T(), product.CreatedAt.IsZero())
}

func (suite *ProductRepoTestSuite) TestGetProductByID() {
	product := suite.createTestProduct(10)

	found, err := suite.productRepo.GetProductByID(context.Background(), product.ProductID)

	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), found)
	require.Equal(suite.T(), product.SKU, found.SKU)
	require.True(suite.T(), product.Price.Equal(found.Price))
}

func (suite *ProductRepoTestSuite) TestGetProductByID_NotFound() {
	found, err := suite.productRepo.GetProductByID(context.Background(), 99999)

	require.NoError(suite.T(), err)
	require.Nil(suite.T(), found)
}

func (suite *ProductRepoTestSuite) TestUpdateProductDoesNotTouchSKU() {
	product := suite.createTestProduct(10)

	product.Name = "Renamed"
	product.SKU = "SHOULD-NOT-CHANGE"
	product.Price = decimal.RequireFromString("4000.00")
	err := suite.productRepo.UpdateProduct(context.Background(), product)
	require.NoError(suite.T(), err)

	found, err := suite.productRepo.GetProductByID(context.Background(), product.ProductID)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), "Renamed", found.Name)
	require.Equal(suite.T(), "NOTE-TEST-001", found.SKU)
	require.True(suite.T(), decimal.RequireFromString("4000.00").Equal(found.Price))
}

func (suite *ProductRepoTestSuite) TestDecrementStock() {
	product := suite.createTestProduct(5)

	err := suite.productRepo.DecrementStock(context.Background(), product.ProductID, 2)
	require.NoError(suite.T(), err)

	found, err := suite.productRepo.GetProductByID(context.Background(), product.ProductID)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), 3, found.StockQty)
}

func (suite *ProductRepoTestSuite) TestDecrementStock_NotEnough() {
	product := suite.createTestProduct(1)

	err := suite.productRepo.DecrementStock(context.Background(), product.ProductID, 2)
	require.ErrorIs(suite.T(), err, ErrStockNotEnough)

	// 庫存維持原樣, 不會扣成負數
	found, err := suite.productRepo.GetProductByID(context.Background(), product.ProductID)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), 1, found.StockQty)
}

func (suite *ProductRepoTestSuite) TestDecrementStock_ExactStock() {
	product := suite.createTestProduct(3)

	err := suite.productRepo.DecrementStock(context.Background(), product.ProductID, 3)
	require.NoError(suite.T(), err)

	found, err := suite.productRepo.GetProductByID(context.Background(), product.ProductID)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), 0, found.StockQty)
}

func (suite *ProductRepoTestSuite) TestDeleteProduct() {
	product := suite.createTestProduct(10)

	err := suite.productRepo.DeleteProduct(context.Background(), product.ProductID)
	require.NoError(suite.T(), err)

	found, err := suite.productRepo.GetProductByID(context.Background(), product.ProductID)
	require.NoError(suite.T(), err)
	require.Nil(suite.T(), found)
}

func (suite *ProductRepoTestSuite) TestCreateProduct_DuplicateSKU() {
	suite.createTestProduct(10)

	dup := &model.Product{
		Name:     "Another",
		SKU:      "NOTE-TEST-001",
		Price:    decimal.RequireFromString("100.00"),
		StockQty: 1,
		IsActive: true,
	}
	err := suite.productRepo.CreateProduct(context.Background(), dup)
	require.Error(suite.T(), err)
	require.True(suite.T(), IsUniqueViolation(err))
}

func TestProductRepoTestSuite(t *testing.T) {
	suite.Run(t, new(ProductRepoTestSuite))
}

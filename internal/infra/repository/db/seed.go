package db

import (
	"context"

	"github.com/RoyceAzure/lab/ordercenter/internal/model"
	"github.com/shopspring/decimal"
)

// SeedData 塞入開發用測試資料
// 冪等性, 已有資料就直接返回
func SeedData(ctx context.Context, dao *DbDao) error {
	var productCount, customerCount int64
	if err := dao.WithContext(ctx).Model(&model.Product{}).Count(&productCount).Error; err != nil {
		return err
	}
	if err := dao.WithContext(ctx).Model(&model.Customer{}).Count(&customerCount).Error; err != nil {
		return err
	}
	if productCount > 0 || customerCount > 0 {
		return nil
	}

	products := []model.Product{
		{Name: "Dell Inspiron Notebook", SKU: "NOTE-001", Price: decimal.NewFromFloat(2999.90), StockQty: 15, IsActive: true},
		{Name: "Logitech MX Master Mouse", SKU: "MOUS-001", Price: decimal.NewFromFloat(299.90), StockQty: 50, IsActive: true},
		{Name: "Mechanical RGB Keyboard", SKU: "TECL-001", Price: decimal.NewFromFloat(499.90), StockQty: 30, IsActive: true},
		{Name: "LG 27 inch Monitor", SKU: "MONI-001", Price: decimal.NewFromFloat(1299.90), StockQty: 20, IsActive: true},
		{Name: "Logitech C920 Webcam", SKU: "WEBC-001", Price: decimal.NewFromFloat(399.90), StockQty: 25, IsActive: true},
		{Name: "HyperX Cloud II Headset", SKU: "HEAD-001", Price: decimal.NewFromFloat(599.90), StockQty: 40, IsActive: true},
		{Name: "Samsung 1TB SSD", SKU: "SSD-001", Price: decimal.NewFromFloat(699.90), StockQty: 35, IsActive: true},
		{Name: "16GB DDR4 RAM", SKU: "RAM-001", Price: decimal.NewFromFloat(449.90), StockQty: 60, IsActive: true},
		{Name: "RTX 3060 Graphics Card", SKU: "GPU-001", Price: decimal.NewFromFloat(2499.90), StockQty: 10, IsActive: true},
		{Name: "750W 80 Plus Gold PSU", SKU: "FONT-001", Price: decimal.NewFromFloat(599.90), StockQty: 20, IsActive: true},
		{Name: "RGB Gamer Case", SKU: "GABI-001", Price: decimal.NewFromFloat(399.90), StockQty: 25, IsActive: true},
		{Name: "CPU Water Cooler", SKU: "COOL-001", Price: decimal.NewFromFloat(499.90), StockQty: 15, IsActive: true},
		{Name: "B550M Motherboard", SKU: "MB-001", Price: decimal.NewFromFloat(899.90), StockQty: 18, IsActive: true},
		{Name: "AMD Ryzen 5 Processor", SKU: "CPU-001", Price: decimal.NewFromFloat(1199.90), StockQty: 12, IsActive: true},
		{Name: "USB-C 7 Port Hub", SKU: "HUB-001", Price: decimal.NewFromFloat(149.90), StockQty: 45, IsActive: true},
		{Name: "HDMI 2.1 Cable 2m", SKU: "CABO-001", Price: decimal.NewFromFloat(79.90), StockQty: 100, IsActive: true},
		{Name: "Monitor Stand", SKU: "SUPO-001", Price: decimal.NewFromFloat(199.90), StockQty: 30, IsActive: true},
		{Name: "Gamer Mouse Pad", SKU: "TAPE-001", Price: decimal.NewFromFloat(49.90), StockQty: 80, IsActive: true},
		{Name: "Adjustable Gamer Desk", SKU: "MESA-001", Price: decimal.NewFromFloat(899.90), StockQty: 8, IsActive: true},
		// 停用商品, 測試inactive檢查用
		{Name: "Ergonomic Gamer Chair", SKU: "CADE-001", Price: decimal.NewFromFloat(1299.90), StockQty: 5, IsActive: false},
	}
	if err := dao.WithContext(ctx).Create(&products).Error; err != nil {
		return err
	}

	customers := []model.Customer{
		{Name: "Joao Silva", Email: "joao.silva@email.com", Document: "12345678901"},
		{Name: "Maria Santos", Email: "maria.santos@email.com", Document: "98765432100"},
		{Name: "Pedro Oliveira", Email: "pedro.oliveira@email.com", Document: "11122233344"},
		{Name: "Ana Costa", Email: "ana.costa@email.com", Document: "55566677788"},
		{Name: "Carlos Pereira", Email: "carlos.pereira@email.com", Document: "99988877766"},
		{Name: "Fernanda Lima", Email: "fernanda.lima@email.com", Document: "44433322211"},
		{Name: "Roberto Alves", Email: "roberto.alves@email.com", Document: "77788899900"},
		{Name: "Juliana Ferreira", Email: "juliana.ferreira@email.com", Document: "22211100099"},
		{Name: "Lucas Rodrigues", Email: "lucas.rodrigues@email.com", Document: "66655544433"},
		{Name: "Patricia Souza", Email: "patricia.souza@email.com", Document: "33344455566"},
	}
	return dao.WithContext(ctx).Create(&customers).Error
}

package service

import (
	"context"

	"github.com/RoyceAzure/lab/ordercenter/internal/constants"
	"github.com/RoyceAzure/lab/ordercenter/internal/errs"
	"github.com/RoyceAzure/lab/ordercenter/internal/infra/producer"
	"github.com/RoyceAzure/lab/ordercenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/ordercenter/internal/model"
	"github.com/rs/zerolog"
)

type CreateOrderItemData struct {
	ProductID uint
	Quantity  int
}

type IOrderService interface {
	CreateOrder(ctx context.Context, customerID uint, items []CreateOrderItemData) (*model.Order, error)
	GetOrder(ctx context.Context, orderID uint) (*model.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID uint, target model.OrderStatus) (*model.Order, error)
}

type OrderService struct {
	dao           *db.DbDao
	orderRepo     db.IOrderRepository
	eventProducer producer.IOrderEventProducer
	logger        zerolog.Logger
}

// eventProducer可以是nil, 此時不發佈事件
func NewOrderService(dao *db.DbDao, eventProducer producer.IOrderEventProducer, logger zerolog.Logger) *OrderService {
	return &OrderService{
		dao:           dao,
		orderRepo:     db.NewOrderRepo(dao),
		eventProducer: eventProducer,
		logger:        logger,
	}
}

var _ IOrderService = (*OrderService)(nil)

// CreateOrder 下單流程
// 整個流程在同一個交易內, 任一步失敗就全部rollback, 不留下部分扣庫存
//
// 同一張單內重複的product id逐行處理, 每行都看前面幾行扣完後的庫存,
// 不會拿同一份snapshot重複賣
func (o *OrderService) CreateOrder(ctx context.Context, customerID uint, items []CreateOrderItemData) (*model.Order, error) {
	if err := validateOrderItems(items); err != nil {
		return nil, err
	}

	uow := db.NewUnitOfWork(o.dao)
	if err := uow.Begin(ctx); err != nil {
		return nil, errs.Internal("begin transaction failed", err)
	}
	defer uow.Rollback()

	customer, err := uow.Customers().GetCustomerByID(ctx, customerID)
	if err != nil {
		return nil, errs.Internal("get customer failed", err)
	}
	if customer == nil {
		return nil, errs.NotFound("customer with id %d not found", customerID)
	}

	order := &model.Order{
		CustomerID: customerID,
		Status:     model.OrderStatusCreated,
	}

	for _, item := range items {
		// row lock讀取, 併發下單搶同一個商品時在這裡串行化
		product, err := uow.Products().GetProductByIDForUpdate(ctx, item.ProductID)
		if err != nil {
			return nil, errs.Internal("get product failed", err)
		}
		if product == nil {
			return nil, errs.NotFound("product with id %d not found", item.ProductID)
		}

		if !product.IsActive {
			return nil, errs.Conflict("product '%s' is not active", product.Name)
		}

		if product.StockQty < item.Quantity {
			return nil, errs.Conflict("insufficient stock for product '%s': available %d, requested %d",
				product.Name, product.StockQty, item.Quantity)
		}

		// 下單當下的價格快照
		orderItem := model.OrderItem{
			ProductID: product.ProductID,
			UnitPrice: product.Price,
			Quantity:  item.Quantity,
		}
		orderItem.CalculateLineTotal()
		order.OrderItems = append(order.OrderItems, orderItem)

		if err := uow.Products().DecrementStock(ctx, product.ProductID, item.Quantity); err != nil {
			if err == db.ErrStockNotEnough {
				return nil, errs.Conflict("insufficient stock for product '%s': available %d, requested %d",
					product.Name, product.StockQty, item.Quantity)
			}
			return nil, errs.Internal("decrement stock failed", err)
		}
	}

	order.CalculateTotal()

	if err := uow.Orders().CreateOrder(ctx, order); err != nil {
		return nil, errs.Internal("create order failed", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, errs.Internal("commit order failed", err)
	}

	saved, err := o.orderRepo.GetOrderDetailByID(ctx, order.OrderID)
	if err != nil {
		return nil, errs.Internal("reload created order failed", err)
	}
	if saved == nil {
		return nil, errs.Internal("created order disappeared after commit", nil)
	}

	if o.eventProducer != nil {
		if err := o.eventProducer.ProduceOrderCreatedEvent(ctx, saved); err != nil {
			o.logger.Warn().Err(err).Uint("order_id", saved.OrderID).Msg("produce order created event failed")
		}
	}

	return saved, nil
}

func (o *OrderService) GetOrder(ctx context.Context, orderID uint) (*model.Order, error) {
	order, err := o.orderRepo.GetOrderDetailByID(ctx, orderID)
	if err != nil {
		return nil, errs.Internal("get order failed", err)
	}
	if order == nil {
		return nil, errs.NotFound("order with id %d not found", orderID)
	}
	return order, nil
}

// UpdateOrderStatus 驗證狀態機規則後更新狀態
// 取消訂單不會回補庫存, 維持原始設計
func (o *OrderService) UpdateOrderStatus(ctx context.Context, orderID uint, target model.OrderStatus) (*model.Order, error) {
	if !target.IsValid() {
		return nil, errs.InvalidRequest("invalid order status: %d", uint(target))
	}

	order, err := o.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, errs.Internal("get order failed", err)
	}
	if order == nil {
		return nil, errs.NotFound("order with id %d not found", orderID)
	}

	if err := order.Status.CanTransitionTo(target); err != nil {
		return nil, errs.Conflict("%s", err.Error())
	}

	from := order.Status
	if err := o.orderRepo.UpdateOrderStatus(ctx, orderID, target); err != nil {
		return nil, errs.Internal("update order status failed", err)
	}

	updated, err := o.orderRepo.GetOrderDetailByID(ctx, orderID)
	if err != nil {
		return nil, errs.Internal("reload updated order failed", err)
	}
	if updated == nil {
		return nil, errs.Internal("updated order disappeared", nil)
	}

	if o.eventProducer != nil && from != target {
		if err := o.eventProducer.ProduceOrderStatusChangedEvent(ctx, orderID, from, target); err != nil {
			o.logger.Warn().Err(err).Uint("order_id", orderID).Msg("produce order status changed event failed")
		}
	}

	return updated, nil
}

// 在workflow開始前擋掉格式問題
func validateOrderItems(items []CreateOrderItemData) error {
	if len(items) == 0 {
		return errs.InvalidRequest("order must contain at least one item")
	}
	if len(items) > constants.MaxOrderItems {
		return errs.InvalidRequest("order cannot contain more than %d items", constants.MaxOrderItems)
	}
	for _, item := range items {
		if item.ProductID == 0 {
			return errs.InvalidRequest("product id must be greater than zero")
		}
		if item.Quantity <= 0 {
			return errs.InvalidRequest("quantity must be greater than zero")
		}
		if item.Quantity > constants.MaxItemQuantity {
			return errs.InvalidRequest("quantity cannot be greater than %d", constants.MaxItemQuantity)
		}
	}
	return nil
}

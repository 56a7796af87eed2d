package model

import "fmt"

/*
status:

	OrderStatusCreated   uint = 0 // 已建立
	OrderStatusPaid      uint = 1 // 已付款
	OrderStatusCancelled uint = 2 // 已取消
*/
type OrderStatus uint

const (
	OrderStatusCreated   OrderStatus = 0
	OrderStatusPaid      OrderStatus = 1
	OrderStatusCancelled OrderStatus = 2
)

func (s OrderStatus) String() string {
	switch s {
	case OrderStatusCreated:
		return "CREATED"
	case OrderStatusPaid:
		return "PAID"
	case OrderStatusCancelled:
		return "CANCELLED"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", uint(s))
	}
}

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusCreated, OrderStatusPaid, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// CanTransitionTo 狀態機規則
// CANCELLED為凍結狀態, 任何轉換都不允許
// PAID只禁止回到CREATED, 同狀態轉換視為no-op不擋
func (s OrderStatus) CanTransitionTo(target OrderStatus) error {
	if !target.IsValid() {
		return fmt.Errorf("invalid order status: %d", uint(target))
	}

	if s == OrderStatusCancelled {
		return fmt.Errorf("cannot change status of a cancelled order")
	}

	if s == OrderStatusPaid && target == OrderStatusCreated {
		return fmt.Errorf("cannot revert a paid order to created")
	}

	return nil
}

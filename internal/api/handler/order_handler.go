package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/RoyceAzure/lab/ordercenter/internal/api/dto"
	"github.com/RoyceAzure/lab/ordercenter/internal/model"
	"github.com/RoyceAzure/lab/ordercenter/internal/service"
	"github.com/go-chi/chi/v5"
)

type OrderHandler struct {
	orderService service.IOrderService
}

func NewOrderHandler(orderService service.IOrderService) *OrderHandler {
	if orderService == nil {
		panic("orderService cannot be nil")
	}
	return &OrderHandler{
		orderService: orderService,
	}
}

// @Summary create order
// @Tags orders
// @Accept json
// @Produce json
// @Param order body dto.CreateOrderDTO true "customer id and order items"
// @Success 200 {object} dto.ApiResponse{data=dto.OrderDTO} "success"
// @Failure 400 {object} dto.ApiResponse "inactive product, insufficient stock or empty item list"
// @Failure 404 {object} dto.ApiResponse "customer or product not found"
// @Router /orders [post]
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var createDTO dto.CreateOrderDTO
	if err := json.NewDecoder(r.Body).Decode(&createDTO); err != nil {
		dto.BadRequestJSON(w, "invalid request body")
		return
	}

	items := make([]service.CreateOrderItemData, 0, len(createDTO.OrderItems))
	for _, item := range createDTO.OrderItems {
		items = append(items, service.CreateOrderItemData{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	order, err := h.orderService.CreateOrder(r.Context(), createDTO.CustomerID, items)
	if err != nil {
		dto.ErrorJSON(w, err)
		return
	}

	dto.SuccessJSON(w, dto.ConvertOrderToDTO(order))
}

// @Summary get order by id
// @Tags orders
// @Produce json
// @Success 200 {object} dto.ApiResponse{data=dto.OrderDTO} "success"
// @Failure 404 {object} dto.ApiResponse "order not found"
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	order, err := h.orderService.GetOrder(r.Context(), id)
	if err != nil {
		dto.ErrorJSON(w, err)
		return
	}

	dto.SuccessJSON(w, dto.ConvertOrderToDTO(order))
}

// @Summary update order status
// @Tags orders
// @Accept json
// @Produce json
// @Param status body dto.UpdateOrderStatusDTO true "target status (0=CREATED,1=PAID,2=CANCELLED)"
// @Success 200 {object} dto.ApiResponse{data=dto.OrderDTO} "success"
// @Failure 400 {object} dto.ApiResponse "illegal transition"
// @Failure 404 {object} dto.ApiResponse "order not found"
// @Router /orders/{id}/status [patch]
func (h *OrderHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	var statusDTO dto.UpdateOrderStatusDTO
	if err := json.NewDecoder(r.Body).Decode(&statusDTO); err != nil {
		dto.BadRequestJSON(w, "invalid request body")
		return
	}
	if statusDTO.Status == nil {
		dto.BadRequestJSON(w, "status is required")
		return
	}

	order, err := h.orderService.UpdateOrderStatus(r.Context(), id, model.OrderStatus(*statusDTO.Status))
	if err != nil {
		dto.ErrorJSON(w, err)
		return
	}

	dto.SuccessJSON(w, dto.ConvertOrderToDTO(order))
}

func parseIDParam(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id == 0 {
		dto.BadRequestJSON(w, "invalid id")
		return 0, false
	}
	return uint(id), true
}

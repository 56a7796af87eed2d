package handler

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/ordercenter/internal/api/dto"
	"github.com/RoyceAzure/lab/ordercenter/internal/model"
	"github.com/RoyceAzure/lab/ordercenter/internal/service"
)

type CustomerHandler struct {
	customerService service.ICustomerService
}

func NewCustomerHandler(customerService service.ICustomerService) *CustomerHandler {
	if customerService == nil {
		panic("customerService cannot be nil")
	}
	return &CustomerHandler{
		customerService: customerService,
	}
}

func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var createDTO dto.CreateCustomerDTO
	if err := json.NewDecoder(r.Body).Decode(&createDTO); err != nil {
		dto.BadRequestJSON(w, "invalid request body")
		return
	}

	customer, err := h.customerService.CreateCustomer(r.Context(), &model.Customer{
		Name:     createDTO.Name,
		Email:    createDTO.Email,
		Document: createDTO.Document,
	})
	if err != nil {
		dto.ErrorJSON(w, err)
		return
	}

	dto.SuccessJSON(w, customer)
}

func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	customer, err := h.customerService.GetCustomer(r.Context(), id)
	if err != nil {
		dto.ErrorJSON(w, err)
		return
	}

	dto.SuccessJSON(w, customer)
}

func (h *CustomerHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	var updateDTO dto.UpdateCustomerDTO
	if err := json.NewDecoder(r.Body).Decode(&updateDTO); err != nil {
		dto.BadRequestJSON(w, "invalid request body")
		return
	}

	customer, err := h.customerService.UpdateCustomer(r.Context(), &model.Customer{
		CustomerID: id,
		Name:       updateDTO.Name,
		Email:      updateDTO.Email,
		Document:   updateDTO.Document,
	})
	if err != nil {
		dto.ErrorJSON(w, err)
		return
	}

	dto.SuccessJSON(w, customer)
}

func (h *CustomerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	if err := h.customerService.DeleteCustomer(r.Context(), id); err != nil {
		dto.ErrorJSON(w, err)
		return
	}

	dto.SuccessJSON(w, true)
}

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/ordercenter/internal/api/dto"
	"github.com/RoyceAzure/lab/ordercenter/internal/model"
	"github.com/RoyceAzure/lab/ordercenter/internal/service"
)

type ProductHandler struct {
	productService service.IProductService
}

func NewProductHandler(productService service.IProductService) *ProductHandler {
	if productService == nil {
		panic("productService cannot be nil")
	}
	return &ProductHandler{
		productService: productService,
	}
}

func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var createDTO dto.CreateProductDTO
	if err := json.NewDecoder(r.Body).Decode(&createDTO); err != nil {
		dto.BadRequestJSON(w, "invalid request body")
		return
	}

	isActive := true
	if createDTO.IsActive != nil {
		isActive = *createDTO.IsActive
	}

	product, err := h.productService.CreateProduct(r.Context(), &model.Product{
		Name:     createDTO.Name,
		SKU:      createDTO.SKU,
		Price:    createDTO.Price,
		StockQty: createDTO.StockQty,
		IsActive: isActive,
	})
	if err != nil {
		dto.ErrorJSON(w, err)
		return
	}

	dto.SuccessJSON(w, product)
}

func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	product, err := h.productService.GetProduct(r.Context(), id)
	if err != nil {
		dto.ErrorJSON(w, err)
		return
	}

	dto.SuccessJSON(w, product)
}

func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	var updateDTO dto.UpdateProductDTO
	if err := json.NewDecoder(r.Body).Decode(&updateDTO); err != nil {
		dto.BadRequestJSON(w, "invalid request body")
		return
	}

	product, err := h.productService.UpdateProduct(r.Context(), &model.Product{
		ProductID: id,
		Name:      updateDTO.Name,
		Price:     updateDTO.Price,
		StockQty:  updateDTO.StockQty,
		IsActive:  updateDTO.IsActive,
	})
	if err != nil {
		dto.ErrorJSON(w, err)
		return
	}

	dto.SuccessJSON(w, product)
}

func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	if err := h.productService.DeleteProduct(r.Context(), id); err != nil {
		dto.ErrorJSON(w, err)
		return
	}

	dto.SuccessJSON(w, true)
}

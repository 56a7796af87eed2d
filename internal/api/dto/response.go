package dto

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/ordercenter/internal/errs"
)

// ApiResponse 回應envelope
// codRetorno: 0成功 1失敗, 欄位名稱跟前端契約一致
type ApiResponse struct {
	Code    int     `json:"codRetorno"`
	Message *string `json:"mensagem"`
	Data    any     `json:"data"`
}

func SuccessJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(ApiResponse{
		Code:    0,
		Message: nil,
		Data:    data,
	})
}

func ErrorJSON(w http.ResponseWriter, err error) {
	msg := err.Error()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(errs.HTTPStatus(err))
	json.NewEncoder(w).Encode(ApiResponse{
		Code:    1,
		Message: &msg,
		Data:    nil,
	})
}

func BadRequestJSON(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(ApiResponse{
		Code:    1,
		Message: &msg,
		Data:    nil,
	})
}

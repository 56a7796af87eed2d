package errs

import (
	"errors"
	"fmt"
	"net/http"
)

type Code int

const (
	NotFoundCode Code = iota + 1
	InvalidRequestCode
	ConflictCode
	InternalCode
)

// OrderError 取代原本用exception控制流程的做法
// 錯誤種類由Code決定, handler再轉換成http status與envelope
type OrderError struct {
	Code Code
	Msg  string
	Err  error
}

func (e *OrderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *OrderError) Unwrap() error {
	return e.Err
}

func New(code Code, format string, args ...any) *OrderError {
	return &OrderError{Code: code, Msg: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) *OrderError {
	return New(NotFoundCode, format, args...)
}

func InvalidRequest(format string, args ...any) *OrderError {
	return New(InvalidRequestCode, format, args...)
}

func Conflict(format string, args ...any) *OrderError {
	return New(ConflictCode, format, args...)
}

func Internal(msg string, err error) *OrderError {
	return &OrderError{Code: InternalCode, Msg: msg, Err: err}
}

// CodeOf 取出錯誤種類, 無法辨識的一律視為Internal
func CodeOf(err error) Code {
	var oe *OrderError
	if errors.As(err, &oe) {
		return oe.Code
	}
	return InternalCode
}

func HTTPStatus(err error) int {
	switch CodeOf(err) {
	case NotFoundCode:
		return http.StatusNotFound
	case InvalidRequestCode, ConflictCode:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

package middleware

import (
	"bytes"
	"net/http"

	"github.com/RoyceAzure/lab/ordercenter/internal/constants"
	"github.com/RoyceAzure/lab/ordercenter/internal/service"
	"github.com/rs/zerolog"
)

// bodyRecorder 一邊寫回client一邊留一份copy
// 之後replay時才能回放byte-identical的body
type bodyRecorder struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
}

func (w *bodyRecorder) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyRecorder) Status() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

// IdempotencyMiddleware 冪等性replay
// 只對mutating verb生效, header是optional, 沒帶key照常執行
// 只快取2xx回應, 失敗的attempt可以拿同一個key重試
//
// 已知的race: 同key的兩個request同時在途時, 這層只防completion之後的replay,
// 擋不住double execution
func IdempotencyMiddleware(idempotencyService service.IIdempotencyService, logger *zerolog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isMutatingMethod(r.Method) {
				next.ServeHTTP(w, r)
				return
			}

			key := r.Header.Get(constants.IdempotencyKeyHeader)
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()

			processed, err := idempotencyService.IsProcessed(ctx, key)
			if err != nil {
				// 快取掛掉時不擋請求, 只是少了replay保護
				logger.Warn().Err(err).Str("idempotency_key", key).Msg("idempotency lookup failed")
			} else if processed {
				cached, err := idempotencyService.GetResponse(ctx, key)
				if err == nil && cached != "" {
					w.Header().Set("Content-Type", constants.IdempotencyContentType)
					w.WriteHeader(http.StatusOK)
					w.Write([]byte(cached))
					return
				}
				if err != nil {
					logger.Warn().Err(err).Str("idempotency_key", key).Msg("idempotency get response failed")
				}
			}

			recorder := &bodyRecorder{ResponseWriter: w}
			next.ServeHTTP(recorder, r)

			if recorder.Status() >= 200 && recorder.Status() < 300 {
				if err := idempotencyService.SaveResponse(ctx, key, recorder.buf.String()); err != nil {
					logger.Warn().Err(err).Str("idempotency_key", key).Msg("idempotency save response failed")
				}
			}
		})
	}
}

func isMutatingMethod(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}

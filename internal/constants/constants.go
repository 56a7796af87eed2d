package constants

import "time"

const (
	// 冪等性快取
	IdempotencyKeyHeader   = "Idempotency-Key"
	IdempotencyKeyPrefix   = "idempotency"
	IdempotencyRetention   = time.Hour
	IdempotencyContentType = "application/json"

	// 訂單驗證上限
	MaxOrderItems   = 100
	MaxItemQuantity = 10000

	// 訂單事件
	DefaultOrderEventTopic = "order-events"
)

type ContextKey string

const (
	RequestIDKey ContextKey = "request_id"
)

type ENV string

const (
	Debug ENV = "debug"
	Dev   ENV = "development"
	Prod  ENV = "production"
)

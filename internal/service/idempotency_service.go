package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/RoyceAzure/lab/ordercenter/internal/constants"
	"github.com/RoyceAzure/lab/rj_redis/pkg/cache"
	"github.com/redis/go-redis/v9"
)

// 冪等性快取
// 只記錄已完成的2xx回應, 同一個key在retention內重送直接replay
// 兩個同key的request同時在途時兩邊都會執行, 這是已知的gap
type IIdempotencyService interface {
	IsProcessed(ctx context.Context, key string) (bool, error)
	SaveResponse(ctx context.Context, key string, response string) error
	GetResponse(ctx context.Context, key string) (string, error)
}

type IdempotencyService struct {
	cache cache.Cache
}

func NewIdempotencyService(cache cache.Cache) *IdempotencyService {
	return &IdempotencyService{cache: cache}
}

var _ IIdempotencyService = (*IdempotencyService)(nil)

func (s *IdempotencyService) IsProcessed(ctx context.Context, key string) (bool, error) {
	return s.cache.Exists(ctx, cacheKey(key))
}

func (s *IdempotencyService) SaveResponse(ctx context.Context, key string, response string) error {
	return s.cache.Set(ctx, cacheKey(key), response, constants.IdempotencyRetention)
}

// GetResponse 取出快取的回應body, 查無資料回傳空字串
func (s *IdempotencyService) GetResponse(ctx context.Context, key string) (string, error) {
	value, err := s.cache.Get(ctx, cacheKey(key))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}

	response, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("unexpected idempotency cache value type %T", value)
	}
	return response, nil
}

func cacheKey(key string) string {
	return fmt.Sprintf("%s:%s", constants.IdempotencyKeyPrefix, key)
}

package memory

import (
	"context"
	"errors"
	"path"
	"sync"
	"time"

	"github.com/RoyceAzure/lab/rj_redis/pkg/cache"
	"github.com/redis/go-redis/v9"
)

var ErrPipelineNotSupported = errors.New("memory cache does not support pipeline")

type entry struct {
	value    any
	expireAt time.Time // 零值表示不過期
}

func (e *entry) expired(now time.Time) bool {
	return !e.expireAt.IsZero() && now.After(e.expireAt)
}

// MemoryCache 給單機部署與測試用的process-local實作
// miss時與redis實作一樣回傳redis.Nil, caller不用分辨後端
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]*entry
	done    chan struct{}
}

var _ cache.Cache = (*MemoryCache)(nil)

func NewMemoryCache() *MemoryCache {
	m := &MemoryCache{
		entries: make(map[string]*entry),
		done:    make(chan struct{}),
	}
	go m.janitor()
	return m
}

// 定期清掉過期entry, 避免只進不出
func (m *MemoryCache) janitor() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			now := time.Now()
			m.mu.Lock()
			for k, e := range m.entries {
				if e.expired(now) {
					delete(m.entries, k)
				}
			}
			m.mu.Unlock()
		case <-m.done:
			return
		}
	}
}

func (m *MemoryCache) Close() {
	close(m.done)
}

func (m *MemoryCache) Ping(ctx context.Context) (string, error) {
	return "PONG", nil
}

func (m *MemoryCache) Get(ctx context.Context, key string) (any, error) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok || e.expired(time.Now()) {
		return nil, redis.Nil
	}
	return e.value, nil
}

func (m *MemoryCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	e := &entry{value: value}
	if ttl > 0 {
		e.expireAt = time.Now().Add(ttl)
	}
	m.mu.Lock()
	m.entries[key] = e
	m.mu.Unlock()
	return nil
}

func (m *MemoryCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
	return nil
}

func (m *MemoryCache) Exists(ctx context.Context, key string) (bool, error) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok || e.expired(time.Now()) {
		return false, nil
	}
	return true, nil
}

func (m *MemoryCache) MGet(ctx context.Context, keys ...string) ([]any, error) {
	now := time.Now()
	values := make([]any, len(keys))
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i, key := range keys {
		if e, ok := m.entries[key]; ok && !e.expired(now) {
			values[i] = e.value
		}
	}
	return values, nil
}

func (m *MemoryCache) MSet(ctx context.Context, items map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, v := range items {
		m.entries[k] = &entry{value: v}
	}
	return nil
}

func (m *MemoryCache) MDelete(ctx context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.entries, k)
	}
	return nil
}

func (m *MemoryCache) Clear(ctx context.Context) error {
	m.mu.Lock()
	m.entries = make(map[string]*entry)
	m.mu.Unlock()
	return nil
}

func (m *MemoryCache) Keys(ctx context.Context, pattern string) ([]string, error) {
	now := time.Now()
	var keys []string
	m.mu.RLock()
	defer m.mu.RUnlock()
	for k, e := range m.entries {
		if e.expired(now) {
			continue
		}
		if ok, err := path.Match(pattern, k); err == nil && ok {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

func (m *MemoryCache) Pipeline(ctx context.Context, command func(pipe redis.Pipeliner) error) ([]redis.Cmder, error) {
	return nil, ErrPipelineNotSupported
}

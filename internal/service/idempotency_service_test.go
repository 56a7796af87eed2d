package service

import (
	"context"
	"testing"

	"github.com/RoyceAzure/lab/ordercenter/internal/infra/cache/memory"
	"github.com/stretchr/testify/require"
)

func newTestIdempotencyService(t *testing.T) *IdempotencyService {
	m := memory.NewMemoryCache()
	t.Cleanup(m.Close)
	return NewIdempotencyService(m)
}

func TestIsProcessedUnknownKey(t *testing.T) {
	s := newTestIdempotencyService(t)

	processed, err := s.IsProcessed(context.Background(), "unknown-key")
	require.NoError(t, err)
	require.False(t, processed)
}

func TestSaveAndGetResponse(t *testing.T) {
	s := newTestIdempotencyService(t)
	ctx := context.Background()

	body := `{"codRetorno":0,"mensagem":null,"data":{"id":1}}`
	err := s.SaveResponse(ctx, "key-1", body)
	require.NoError(t, err)

	processed, err := s.IsProcessed(ctx, "key-1")
	require.NoError(t, err)
	require.True(t, processed)

	cached, err := s.GetResponse(ctx, "key-1")
	require.NoError(t, err)
	require.Equal(t, body, cached)
}

func TestGetResponseMissReturnsEmpty(t *testing.T) {
	s := newTestIdempotencyService(t)

	cached, err := s.GetResponse(context.Background(), "never-saved")
	require.NoError(t, err)
	require.Empty(t, cached)
}

func TestKeysAreIsolated(t *testing.T) {
	s := newTestIdempotencyService(t)
	ctx := context.Background()

	require.NoError(t, s.SaveResponse(ctx, "key-a", "response-a"))

	processed, err := s.IsProcessed(ctx, "key-b")
	require.NoError(t, err)
	require.False(t, processed)

	cached, err := s.GetResponse(ctx, "key-a")
	require.NoError(t, err)
	require.Equal(t, "response-a", cached)
}

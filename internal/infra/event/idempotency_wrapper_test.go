package event

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DioGolang/StockFlow/pkg/logger"
)

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...logger.Field) {}
func (nopLogger) Info(context.Context, string, ...logger.Field)  {}
func (nopLogger) Warn(context.Context, string, ...logger.Field)  {}
func (nopLogger) Error(context.Context, string, ...logger.Field) {}
func (n nopLogger) With(...logger.Field) logger.Logger           { return n }

type fakeStore struct {
	keys    map[string]bool
	setErr  error
	lastKey string
	deleted []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{keys: make(map[string]bool)}
}

func (s *fakeStore) SetNX(_ context.Context, key string, _ interface{}, _ time.Duration) (bool, error) {
	if s.setErr != nil {
		return false, s.setErr
	}
	s.lastKey = key
	if s.keys[key] {
		return false, nil
	}
	s.keys[key] = true
	return true, nil
}

func (s *fakeStore) Del(_ context.Context, key string) error {
	delete(s.keys, key)
	s.deleted = append(s.deleted, key)
	return nil
}

func TestWrapIdempotency_FirstDeliveryRunsHandler(t *testing.T) {
	store := newFakeStore()
	calls := 0
	h := WrapIdempotency(nopLogger{}, store, "notify", time.Minute, func(ctx context.Context, msg []byte, headers map[string]interface{}) error {
		calls++
		return nil
	})

	err := h(context.Background(), []byte(`{}`), map[string]interface{}{"x-event-id": "evt-1"})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, "dedup:notify:evt-1", store.lastKey)
}

func TestWrapIdempotency_DuplicateIsDroppedSilently(t *testing.T) {
	store := newFakeStore()
	calls := 0
	h := WrapIdempotency(nopLogger{}, store, "notify", time.Minute, func(ctx context.Context, msg []byte, headers map[string]interface{}) error {
		calls++
		return nil
	})
	headers := map[string]interface{}{"x-event-id": "evt-1"}

	require.NoError(t, h(context.Background(), []byte(`{}`), headers))
	require.NoError(t, h(context.Background(), []byte(`{}`), headers))

	assert.Equal(t, 1, calls)
}

func TestWrapIdempotency_MissingEventIDHashesBody(t *testing.T) {
	store := newFakeStore()
	h := WrapIdempotency(nopLogger{}, store, "notify", time.Minute, func(ctx context.Context, msg []byte, headers map[string]interface{}) error {
		return nil
	})

	require.NoError(t, h(context.Background(), []byte(`{"order_id":1}`), nil))

	assert.Contains(t, store.lastKey, "dedup:notify:hash:")
}

func TestWrapIdempotency_HandlerFailureReleasesLock(t *testing.T) {
	store := newFakeStore()
	boom := errors.New("boom")
	h := WrapIdempotency(nopLogger{}, store, "notify", time.Minute, func(ctx context.Context, msg []byte, headers map[string]interface{}) error {
		return boom
	})
	headers := map[string]interface{}{"x-event-id": "evt-2"}

	err := h(context.Background(), []byte(`{}`), headers)

	require.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"dedup:notify:evt-2"}, store.deleted)
}

func TestWrapIdempotency_StoreDownFailsClosed(t *testing.T) {
	store := newFakeStore()
	store.setErr = errors.New("redis down")
	calls := 0
	h := WrapIdempotency(nopLogger{}, store, "notify", time.Minute, func(ctx context.Context, msg []byte, headers map[string]interface{}) error {
		calls++
		return nil
	})

	err := h(context.Background(), []byte(`{}`), map[string]interface{}{"x-event-id": "evt-3"})

	require.Error(t, err)
	assert.Zero(t, calls)
}

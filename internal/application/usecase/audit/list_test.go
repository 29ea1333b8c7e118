package audit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/DioGolang/StockFlow/internal/domain/entity"
)

type MockAuditLogRepository struct {
	mock.Mock
}

func (m *MockAuditLogRepository) Insert(ctx context.Context, rec *entity.AuditLogRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockAuditLogRepository) List(ctx context.Context, limit int) ([]*entity.AuditLogRecord, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]*entity.AuditLogRecord), args.Error(1)
}

func TestListAuditLog(t *testing.T) {
	now := time.Now().UTC()
	repo := new(MockAuditLogRepository)
	repo.On("List", mock.Anything, 10).Return([]*entity.AuditLogRecord{
		entity.RestoreAuditLogRecord(2, "ORDER_CREATED", "order 42", now),
		entity.RestoreAuditLogRecord(1, "INVENTORY_CREATED", "product 1", now.Add(-time.Minute)),
	}, nil).Once()

	uc := NewListUseCase(repo)

	out, err := uc.Execute(context.Background(), ListInput{Limit: 10})

	require.NoError(t, err)
	require.True(t, out.IsSuccess())
	entries := out.Value()
	require.Len(t, entries, 2)
	assert.Equal(t, "ORDER_CREATED", entries[0].Action)
	repo.AssertExpectations(t)
}

func TestListAuditLog_LimitBounds(t *testing.T) {
	tests := []struct {
		name          string
		requested     int
		expectedLimit int
	}{
		{"Should apply default when limit is zero", 0, defaultLimit},
		{"Should apply default when limit is negative", -5, defaultLimit},
		{"Should cap oversized limits", 10000, maxLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockAuditLogRepository)
			repo.On("List", mock.Anything, tt.expectedLimit).
				Return([]*entity.AuditLogRecord{}, nil).Once()

			uc := NewListUseCase(repo)

			out, err := uc.Execute(context.Background(), ListInput{Limit: tt.requested})

			assert.NoError(t, err)
			assert.True(t, out.IsSuccess())
			repo.AssertExpectations(t)
		})
	}
}

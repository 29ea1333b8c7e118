package audit

import (
	"context"
	"time"

	"github.com/DioGolang/StockFlow/internal/application/port/outbound"
	"github.com/DioGolang/StockFlow/pkg/result"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

type ListInput struct {
	Limit int `json:"limit"`
}

type Output struct {
	ID        int64     `json:"id"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"created_at"`
}

type ListUseCase interface {
	Execute(ctx context.Context, input ListInput) (result.Result[[]Output], error)
}

// ListUseCaseImpl is a pure read, most-recent-first, no transaction.
type ListUseCaseImpl struct {
	AuditLogRepository outbound.AuditLogRepository
}

func NewListUseCase(repo outbound.AuditLogRepository) *ListUseCaseImpl {
	return &ListUseCaseImpl{AuditLogRepository: repo}
}

func (uc *ListUseCaseImpl) Execute(ctx context.Context, input ListInput) (result.Result[[]Output], error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	records, err := uc.AuditLogRepository.List(ctx, limit)
	if err != nil {
		return result.Result[[]Output]{}, err
	}

	out := make([]Output, 0, len(records))
	for _, rec := range records {
		out = append(out, Output{
			ID:        rec.ID(),
			Action:    rec.Action(),
			Details:   rec.Details(),
			CreatedAt: rec.CreatedAt(),
		})
	}
	return result.Ok(out), nil
}

package outbound

import (
	"context"

	"github.com/DioGolang/StockFlow/internal/domain/entity"
)

// AuditLogRepository appends and reads audit entries. The log is
// append-only; there is no update or delete.
type AuditLogRepository interface {
	Insert(ctx context.Context, rec *entity.AuditLogRecord) error
	List(ctx context.Context, limit int) ([]*entity.AuditLogRecord, error)
}

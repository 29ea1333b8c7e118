package database

import (
	"context"
	"fmt"

	"github.com/DioGolang/StockFlow/internal/domain/entity"
)

type AuditLogRepositoryImpl struct {
	session DBTX
}

func NewAuditLogRepository(session DBTX) *AuditLogRepositoryImpl {
	return &AuditLogRepositoryImpl{session: session}
}

func (r *AuditLogRepositoryImpl) Insert(ctx context.Context, rec *entity.AuditLogRecord) error {
	_, err := r.session.ExecContext(ctx, `
		INSERT INTO audit_log (action, details, created_at)
		VALUES ($1, $2, $3)`,
		rec.Action(), rec.Details(), rec.CreatedAt(),
	)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}

func (r *AuditLogRepositoryImpl) List(ctx context.Context, limit int) ([]*entity.AuditLogRecord, error) {
	rows, err := r.session.QueryContext(ctx, `
		SELECT id, action, details, created_at
		FROM audit_log
		ORDER BY id DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("query audit log: %w", err)
	}
	defer rows.Close()

	var out []*entity.AuditLogRecord
	for rows.Next() {
		var rec auditLogRecord
		if err := rows.Scan(&rec.ID, &rec.Action, &rec.Details, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan audit log: %w", err)
		}
		out = append(out, rec.toEntity())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit log: %w", err)
	}
	return out, nil
}

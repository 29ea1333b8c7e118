package entity

import (
	"strings"
	"time"

	"github.com/DioGolang/StockFlow/pkg/result"
)

// AuditLogRecord is an append-only entry describing a business action.
// Records are never updated or deleted by the application.
type AuditLogRecord struct {
	id        int64
	action    string
	details   string
	createdAt time.Time
}

func NewAuditLogRecord(action, details string) result.Result[*AuditLogRecord] {
	if strings.TrimSpace(action) == "" {
		return result.Err[*AuditLogRecord](result.FieldError("action", "EmptyAction", "audit action must not be blank"))
	}
	return result.Ok(&AuditLogRecord{
		action:    action,
		details:   details,
		createdAt: time.Now().UTC(),
	})
}

// RestoreAuditLogRecord rebuilds a record from a persisted row. For
// use by the persistence boundary only.
func RestoreAuditLogRecord(id int64, action, details string, createdAt time.Time) *AuditLogRecord {
	return &AuditLogRecord{id: id, action: action, details: details, createdAt: createdAt}
}

func (r *AuditLogRecord) ID() int64            { return r.id }
func (r *AuditLogRecord) Action() string       { return r.action }
func (r *AuditLogRecord) Details() string      { return r.details }
func (r *AuditLogRecord) CreatedAt() time.Time { return r.createdAt }

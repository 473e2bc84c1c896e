package postgres

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gymops/cashcut/internal/domain"
)

const auditColumns = `id, user_id, action, resource_type, resource_id,
	ip_address, user_agent, request_id,
	before_state, after_state, status, error_message, created_at`

// AuditRepository persists the mutation trail for cuts and users.
type AuditRepository struct {
	pool *pgxpool.Pool
}

func NewAuditRepository(pool *pgxpool.Pool) *AuditRepository {
	return &AuditRepository{pool: pool}
}

// Create inserts an audit entry, minting a row ID when the caller
// left it empty.
func (r *AuditRepository) Create(ctx context.Context, log *domain.AuditLog) error {
	if log.ID == "" {
		log.ID = uuid.New().String()
	}

	beforeState, err := marshalState(log.BeforeState)
	if err != nil {
		return err
	}
	afterState, err := marshalState(log.AfterState)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO audit_logs (` + auditColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err = r.pool.Exec(ctx, query,
		log.ID,
		log.UserID,
		log.Action,
		log.ResourceType,
		log.ResourceID,
		log.IPAddress,
		log.UserAgent,
		log.RequestID,
		beforeState,
		afterState,
		log.Status,
		log.ErrorMessage,
		log.CreatedAt,
	)
	return err
}

// List returns audit entries matching the filter, newest first.
func (r *AuditRepository) List(ctx context.Context, filter domain.AuditFilter) ([]*domain.AuditLog, error) {
	var (
		conds []string
		args  []any
	)

	addCond := func(clause string, value any) {
		args = append(args, value)
		conds = append(conds, clause+"$"+strconv.Itoa(len(args)))
	}

	if filter.UserID != "" {
		addCond("user_id = ", filter.UserID)
	}
	if filter.Action != "" {
		addCond("action = ", filter.Action)
	}
	if filter.ResourceType != "" {
		addCond("resource_type = ", filter.ResourceType)
	}
	if filter.ResourceID != "" {
		addCond("resource_id = ", filter.ResourceID)
	}
	if filter.StartDate != nil {
		addCond("created_at >= ", *filter.StartDate)
	}
	if filter.EndDate != nil {
		addCond("created_at <= ", *filter.EndDate)
	}

	query := `SELECT ` + auditColumns + ` FROM audit_logs`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC"

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += " LIMIT $" + strconv.Itoa(len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += " OFFSET $" + strconv.Itoa(len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []*domain.AuditLog
	for rows.Next() {
		log, err := scanAuditLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, log)
	}

	return logs, rows.Err()
}

// GetByResourceID returns the full trail for one cut or user.
func (r *AuditRepository) GetByResourceID(ctx context.Context, resourceType, resourceID string) ([]*domain.AuditLog, error) {
	return r.List(ctx, domain.AuditFilter{
		ResourceType: resourceType,
		ResourceID:   resourceID,
	})
}

func scanAuditLog(row pgx.Row) (*domain.AuditLog, error) {
	var (
		log         domain.AuditLog
		beforeState []byte
		afterState  []byte
	)

	err := row.Scan(
		&log.ID,
		&log.UserID,
		&log.Action,
		&log.ResourceType,
		&log.ResourceID,
		&log.IPAddress,
		&log.UserAgent,
		&log.RequestID,
		&beforeState,
		&afterState,
		&log.Status,
		&log.ErrorMessage,
		&log.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if beforeState != nil {
		_ = json.Unmarshal(beforeState, &log.BeforeState)
	}
	if afterState != nil {
		_ = json.Unmarshal(afterState, &log.AfterState)
	}

	return &log, nil
}

func marshalState(state domain.JSON) ([]byte, error) {
	if state == nil {
		return nil, nil
	}
	return json.Marshal(state)
}

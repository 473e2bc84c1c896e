package usecase

import (
	"context"
	"time"

	"github.com/gymops/cashcut/internal/domain"
)

// CutRepository defines data access for cash cuts.
type CutRepository interface {
	Create(ctx context.Context, tx Transaction, cut *domain.CutRecord) error
	GetByID(ctx context.Context, id string) (*domain.CutRecord, error)
	GetByDate(ctx context.Context, date time.Time) (*domain.CutRecord, error)
	Update(ctx context.Context, cut *domain.CutRecord) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int) ([]*domain.CutRecord, error)
	NextCutNumber(ctx context.Context, tx Transaction) (int64, error)
}

// ExpenseRepository defines read access to the daily expense ledger.
type ExpenseRepository interface {
	GetDailySummary(ctx context.Context, date time.Time) (*domain.DailyExpenseSummary, error)
}

// FigureSource fetches a day's raw per-channel figures from the
// transactional systems (sales, layaway deposits, membership payments).
type FigureSource interface {
	FiguresForDate(ctx context.Context, date time.Time) (*domain.DayFigures, error)
}

// UserRepository defines data access for back-office users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int) ([]*domain.User, error)
}

// AuditRepository defines data access for audit logs.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
	List(ctx context.Context, filter domain.AuditFilter) ([]*domain.AuditLog, error)
	GetByResourceID(ctx context.Context, resourceType, resourceID string) ([]*domain.AuditLog, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

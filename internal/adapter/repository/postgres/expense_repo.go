package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gymops/cashcut/internal/domain"
)

// ExpenseRepository implements usecase.ExpenseRepository over the daily
// expense ledger.
type ExpenseRepository struct {
	pool *pgxpool.Pool
}

// NewExpenseRepository creates a new ExpenseRepository.
func NewExpenseRepository(pool *pgxpool.Pool) *ExpenseRepository {
	return &ExpenseRepository{pool: pool}
}

// GetDailySummary aggregates the expense ledger for a calendar day.
// A day with no recorded expenses returns ErrExpenseSummaryNotFound;
// callers decide whether that means zero.
func (r *ExpenseRepository) GetDailySummary(ctx context.Context, date time.Time) (*domain.DailyExpenseSummary, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0), COUNT(*)
		FROM daily_expenses
		WHERE expense_date = $1
	`

	var (
		total pgtype.Numeric
		count int
	)
	if err := r.pool.QueryRow(ctx, query, domain.DateOnly(date)).Scan(&total, &count); err != nil {
		return nil, err
	}

	if count == 0 {
		return nil, domain.ErrExpenseSummaryNotFound
	}

	return &domain.DailyExpenseSummary{
		Date:          domain.DateOnly(date),
		TotalAmount:   numericToDecimal(total),
		TotalExpenses: count,
	}, nil
}

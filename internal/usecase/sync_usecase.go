package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gymops/cashcut/internal/domain"
)

// SyncUseCase compares cuts against the daily expense ledger and,
// on request, adopts the ledger figure.
type SyncUseCase struct {
	cutRepo     CutRepository
	expenseRepo ExpenseRepository
	auditRepo   AuditRepository
	tolerance   decimal.Decimal
	metrics     MetricsRecorder
}

// NewSyncUseCase creates a new SyncUseCase. A zero tolerance falls back
// to the domain default.
func NewSyncUseCase(
	cutRepo CutRepository,
	expenseRepo ExpenseRepository,
	auditRepo AuditRepository,
	tolerance decimal.Decimal,
	metrics MetricsRecorder,
) *SyncUseCase {
	if tolerance.IsZero() {
		tolerance = domain.DefaultSyncTolerance
	}
	return &SyncUseCase{
		cutRepo:     cutRepo,
		expenseRepo: expenseRepo,
		auditRepo:   auditRepo,
		tolerance:   tolerance,
		metrics:     metrics,
	}
}

// CutSyncResult pairs a cut with its advisory expense-sync report.
type CutSyncResult struct {
	Cut    *domain.CutRecord
	Report domain.ExpenseSyncReport
}

// CheckCut compares a cut's recorded expense figure against the ledger
// total for the same day. Advisory only; nothing is written.
func (uc *SyncUseCase) CheckCut(ctx context.Context, cutID string) (*CutSyncResult, error) {
	cut, err := uc.cutRepo.GetByID(ctx, cutID)
	if err != nil {
		return nil, err
	}

	real := decimal.Zero
	summary, err := uc.expenseRepo.GetDailySummary(ctx, cut.CutDate)
	if err != nil && !errors.Is(err, domain.ErrExpenseSummaryNotFound) {
		return nil, err
	}
	if summary != nil {
		real = summary.TotalAmount
	}

	report := domain.CheckExpenseSync(cut.ExpensesAmount, real, uc.tolerance)
	if report.Desynced {
		uc.metrics.DesyncDetected()
	}

	return &CutSyncResult{Cut: cut, Report: report}, nil
}

// AdoptLedgerExpenses overwrites the cut's expense figure with the
// ledger total and persists the recomputed record. Offered to the
// operator when a desync is flagged, never forced.
func (uc *SyncUseCase) AdoptLedgerExpenses(ctx context.Context, cutID, adoptedBy string) (*CutSyncResult, error) {
	result, err := uc.CheckCut(ctx, cutID)
	if err != nil {
		return nil, err
	}

	cut := result.Cut
	if cut.Status == domain.CutStatusClosed {
		return nil, domain.ErrCutAlreadyClosed
	}

	before := *cut

	cut.ExpensesAmount = result.Report.RealExpenses
	cut.MarkEdited()
	cut.Recompute()
	cut.UpdatedAt = time.Now().UTC()

	if err := uc.cutRepo.Update(ctx, cut); err != nil {
		return nil, err
	}

	uc.recordAudit(ctx, adoptedBy, cut.ID, &before, cut)

	// Re-check against the same ledger figure: now in sync.
	report := domain.CheckExpenseSync(cut.ExpensesAmount, result.Report.RealExpenses, uc.tolerance)

	return &CutSyncResult{Cut: cut, Report: report}, nil
}

// GetDailySummary returns the ledger's expense summary for a day.
func (uc *SyncUseCase) GetDailySummary(ctx context.Context, date time.Time) (*domain.DailyExpenseSummary, error) {
	return uc.expenseRepo.GetDailySummary(ctx, domain.DateOnly(date))
}

func (uc *SyncUseCase) recordAudit(ctx context.Context, userID, resourceID string, before, after any) {
	if uc.auditRepo == nil {
		return
	}

	entry := &domain.AuditLog{
		UserID:       userID,
		Action:       string(domain.AuditActionCutSyncAdopted),
		ResourceType: "cut",
		ResourceID:   resourceID,
		BeforeState:  domain.MarshalState(before),
		AfterState:   domain.MarshalState(after),
		Status:       string(domain.AuditStatusSuccess),
		CreatedAt:    time.Now().UTC(),
	}

	_ = uc.auditRepo.Create(ctx, entry)
}

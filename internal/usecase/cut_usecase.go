package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/gymops/cashcut/internal/domain"
)

// MetricsRecorder counts domain-level events. Implemented by the
// Prometheus metrics package; a no-op suffices in tests.
type MetricsRecorder interface {
	CutCreated(manual bool)
	CutUpdated()
	CutClosed()
	CutDeleted()
	DesyncDetected()
}

// CutUseCase handles cash-cut business logic.
type CutUseCase struct {
	txManager    TransactionManager
	cutRepo      CutRepository
	expenseRepo  ExpenseRepository
	figureSource FigureSource
	auditRepo    AuditRepository
	cache        Cache
	idGen        IDGenerator
	metrics      MetricsRecorder
}

// NewCutUseCase creates a new CutUseCase.
func NewCutUseCase(
	txManager TransactionManager,
	cutRepo CutRepository,
	expenseRepo ExpenseRepository,
	figureSource FigureSource,
	auditRepo AuditRepository,
	cache Cache,
	idGen IDGenerator,
	metrics MetricsRecorder,
) *CutUseCase {
	return &CutUseCase{
		txManager:    txManager,
		cutRepo:      cutRepo,
		expenseRepo:  expenseRepo,
		figureSource: figureSource,
		auditRepo:    auditRepo,
		cache:        cache,
		idGen:        idGen,
		metrics:      metrics,
	}
}

// CreateCutFromDateInput represents input for deriving a cut from a day's
// transactional data.
type CreateCutFromDateInput struct {
	Date        time.Time
	CreatedBy   string
	CreatorName string
	Notes       string
}

// CreateFromDate derives a cut from the day's fetched figures and the
// expense ledger. One cut per calendar day.
func (uc *CutUseCase) CreateFromDate(ctx context.Context, input CreateCutFromDateInput) (*domain.CutRecord, error) {
	now := time.Now().UTC()

	if err := domain.ValidateCutDate(input.Date, now); err != nil {
		return nil, err
	}
	if err := domain.ValidateNotes(input.Notes); err != nil {
		return nil, err
	}

	date := domain.DateOnly(input.Date)

	if existing, err := uc.cutRepo.GetByDate(ctx, date); err == nil && existing != nil {
		return nil, domain.ErrCutDateTaken
	}

	figures, err := uc.figuresForDate(ctx, date)
	if err != nil {
		return nil, err
	}

	expenses := decimal.Zero
	summary, err := uc.expenseRepo.GetDailySummary(ctx, date)
	if err != nil && !errors.Is(err, domain.ErrExpenseSummaryNotFound) {
		return nil, err
	}
	if summary != nil {
		expenses = summary.TotalAmount
	}

	cut := domain.NewCutFromFigures(*figures, expenses)
	cut.ID = uc.idGen.Generate()
	cut.CreatedBy = input.CreatedBy
	cut.CreatorName = input.CreatorName
	cut.Notes = input.Notes
	cut.CreatedAt = now
	cut.UpdatedAt = now

	if err := uc.persistNewCut(ctx, cut); err != nil {
		return nil, err
	}

	uc.recordAudit(ctx, input.CreatedBy, domain.AuditActionCutCreate, cut.ID, nil, cut)
	uc.metrics.CutCreated(false)

	return cut, nil
}

// CreateManualCutInput represents input for an operator-entered cut.
type CreateManualCutInput struct {
	Date           time.Time
	POS            domain.ChannelFigures
	Abonos         domain.ChannelFigures
	Membership     domain.ChannelFigures
	ExpensesAmount decimal.Decimal
	CreatedBy      string
	CreatorName    string
	Notes          string
}

// CreateManual creates a cut from operator-typed figures. Figures go
// through the same normalize-and-recompute pipeline as derived cuts.
func (uc *CutUseCase) CreateManual(ctx context.Context, input CreateManualCutInput) (*domain.CutRecord, error) {
	now := time.Now().UTC()

	if err := domain.ValidateCutDate(input.Date, now); err != nil {
		return nil, err
	}
	if err := domain.ValidateNotes(input.Notes); err != nil {
		return nil, err
	}

	date := domain.DateOnly(input.Date)

	if existing, err := uc.cutRepo.GetByDate(ctx, date); err == nil && existing != nil {
		return nil, domain.ErrCutDateTaken
	}

	cut := &domain.CutRecord{
		ID:             uc.idGen.Generate(),
		CutDate:        date,
		Status:         domain.CutStatusOpen,
		IsManual:       true,
		POS:            input.POS,
		Abonos:         input.Abonos,
		Membership:     input.Membership,
		ExpensesAmount: input.ExpensesAmount,
		CreatedBy:      input.CreatedBy,
		CreatorName:    input.CreatorName,
		Notes:          input.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	cut.Recompute()

	if err := uc.persistNewCut(ctx, cut); err != nil {
		return nil, err
	}

	uc.recordAudit(ctx, input.CreatedBy, domain.AuditActionCutCreate, cut.ID, nil, cut)
	uc.metrics.CutCreated(true)

	return cut, nil
}

// GetCut retrieves a cut by ID.
func (uc *CutUseCase) GetCut(ctx context.Context, id string) (*domain.CutRecord, error) {
	return uc.cutRepo.GetByID(ctx, id)
}

// GetCutByDate retrieves a cut by calendar day.
func (uc *CutUseCase) GetCutByDate(ctx context.Context, date time.Time) (*domain.CutRecord, error) {
	return uc.cutRepo.GetByDate(ctx, domain.DateOnly(date))
}

// ListCutsInput represents input for listing cuts.
type ListCutsInput struct {
	Limit  int
	Offset int
}

// ListCuts lists cuts with pagination, most recent day first.
func (uc *CutUseCase) ListCuts(ctx context.Context, input ListCutsInput) ([]*domain.CutRecord, error) {
	limit, offset, _ := domain.ValidatePagination(input.Limit, input.Offset)
	return uc.cutRepo.List(ctx, limit, offset)
}

// UpdateCutInput represents a partial edit of a cut's base figures.
// Nil fields are left untouched; derived fields in the stored record are
// always rebuilt regardless of which base field changed.
type UpdateCutInput struct {
	ID             string
	POS            *domain.ChannelFigures
	Abonos         *domain.ChannelFigures
	Membership     *domain.ChannelFigures
	ExpensesAmount *decimal.Decimal
	Notes          *string
	UpdatedBy      string
}

// UpdateCut applies an edit and persists the full recomputed record.
// This is the only path by which an edited cut reaches storage, so a
// single-field edit can never leave stale totals behind.
func (uc *CutUseCase) UpdateCut(ctx context.Context, input UpdateCutInput) (*domain.CutRecord, error) {
	cut, err := uc.cutRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if cut.Status == domain.CutStatusClosed {
		return nil, domain.ErrCutAlreadyClosed
	}

	before := *cut

	if input.POS != nil {
		cut.POS = *input.POS
	}
	if input.Abonos != nil {
		cut.Abonos = *input.Abonos
	}
	if input.Membership != nil {
		cut.Membership = *input.Membership
	}
	if input.ExpensesAmount != nil {
		cut.ExpensesAmount = *input.ExpensesAmount
	}
	if input.Notes != nil {
		if err := domain.ValidateNotes(*input.Notes); err != nil {
			return nil, err
		}
		cut.Notes = *input.Notes
	}

	cut.MarkEdited()
	cut.Recompute()
	cut.UpdatedAt = time.Now().UTC()

	if err := uc.cutRepo.Update(ctx, cut); err != nil {
		return nil, err
	}

	uc.recordAudit(ctx, input.UpdatedBy, domain.AuditActionCutUpdate, cut.ID, &before, cut)
	uc.metrics.CutUpdated()

	return cut, nil
}

// CloseCut transitions a cut to closed. Totals are recomputed one last
// time so the closed snapshot is internally consistent.
func (uc *CutUseCase) CloseCut(ctx context.Context, id, closedBy string) (*domain.CutRecord, error) {
	cut, err := uc.cutRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	before := *cut

	if err := cut.Close(); err != nil {
		return nil, err
	}

	cut.Recompute()
	cut.UpdatedAt = time.Now().UTC()

	if err := uc.cutRepo.Update(ctx, cut); err != nil {
		return nil, err
	}

	uc.recordAudit(ctx, closedBy, domain.AuditActionCutClose, cut.ID, &before, cut)
	uc.metrics.CutClosed()

	return cut, nil
}

// DeleteCut removes a cut entirely. No soft delete.
func (uc *CutUseCase) DeleteCut(ctx context.Context, id, deletedBy string) error {
	cut, err := uc.cutRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.cutRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.recordAudit(ctx, deletedBy, domain.AuditActionCutDelete, id, cut, nil)
	uc.metrics.CutDeleted()

	return nil
}

// persistNewCut assigns the next cut number and inserts inside one
// transaction, so concurrent creations never share a number.
func (uc *CutUseCase) persistNewCut(ctx context.Context, cut *domain.CutRecord) error {
	ctx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	number, err := uc.cutRepo.NextCutNumber(ctx, tx)
	if err != nil {
		return err
	}
	cut.CutNumber = number

	if err := uc.cutRepo.Create(ctx, tx, cut); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (uc *CutUseCase) figuresForDate(ctx context.Context, date time.Time) (*domain.DayFigures, error) {
	key := "figures:" + date.Format("2006-01-02")

	if uc.cache != nil {
		if data, err := uc.cache.Get(ctx, key); err == nil && len(data) > 0 {
			var figures domain.DayFigures
			if err := json.Unmarshal(data, &figures); err == nil {
				return &figures, nil
			}
		}
	}

	figures, err := uc.figureSource.FiguresForDate(ctx, date)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if data, err := json.Marshal(figures); err == nil {
			if err := uc.cache.Set(ctx, key, data, DayFiguresCacheTTL); err != nil {
				log.Warn().Err(err).Str("key", key).Msg("failed to cache day figures")
			}
		}
	}

	return figures, nil
}

// recordAudit writes an audit entry. Audit failures never fail the
// operation they describe.
func (uc *CutUseCase) recordAudit(ctx context.Context, userID string, action domain.AuditAction, resourceID string, before, after any) {
	if uc.auditRepo == nil {
		return
	}

	entry := &domain.AuditLog{
		UserID:       userID,
		Action:       string(action),
		ResourceType: "cut",
		ResourceID:   resourceID,
		BeforeState:  domain.MarshalState(before),
		AfterState:   domain.MarshalState(after),
		Status:       string(domain.AuditStatusSuccess),
		CreatedAt:    time.Now().UTC(),
	}

	if err := uc.auditRepo.Create(ctx, entry); err != nil {
		log.Warn().Err(err).Str("action", string(action)).Msg("failed to write audit log")
	}
}

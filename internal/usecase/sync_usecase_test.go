package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/gymops/cashcut/internal/domain"
	"github.com/gymops/cashcut/internal/usecase"
	"github.com/gymops/cashcut/internal/usecase/mocks"
)

func TestSyncUseCase_CheckCut(t *testing.T) {
	tests := []struct {
		name         string
		cutExpenses  string
		realExpenses string
		wantDesync   bool
	}{
		{name: "in sync", cutExpenses: "100.00", realExpenses: "100.00", wantDesync: false},
		{name: "within tolerance", cutExpenses: "100.00", realExpenses: "100.005", wantDesync: false},
		{name: "desynced", cutExpenses: "100.00", realExpenses: "130.00", wantDesync: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			date := domain.DateOnly(time.Now().UTC())
			cutRepo := mocks.NewMockCutRepository()
			cutRepo.Create(context.Background(), nil, &domain.CutRecord{
				ID:             "c1",
				CutDate:        date,
				ExpensesAmount: dec(tt.cutExpenses),
			})

			expenseRepo := mocks.NewMockExpenseRepository(ctrl)
			expenseRepo.EXPECT().GetDailySummary(gomock.Any(), date).Return(&domain.DailyExpenseSummary{
				Date:        date,
				TotalAmount: dec(tt.realExpenses),
			}, nil)

			uc := usecase.NewSyncUseCase(cutRepo, expenseRepo, nil, decimal.Zero, mocks.NopMetrics{})

			result, err := uc.CheckCut(context.Background(), "c1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if result.Report.Desynced != tt.wantDesync {
				t.Errorf("desynced = %v, want %v", result.Report.Desynced, tt.wantDesync)
			}
			if !result.Report.CutExpenses.Equal(dec(tt.cutExpenses)) {
				t.Errorf("report cut expenses = %s, want %s", result.Report.CutExpenses, tt.cutExpenses)
			}
			if !result.Report.RealExpenses.Equal(dec(tt.realExpenses)) {
				t.Errorf("report real expenses = %s, want %s", result.Report.RealExpenses, tt.realExpenses)
			}
		})
	}
}

func TestSyncUseCase_CheckCut_MissingSummaryMeansZero(t *testing.T) {
	ctrl := gomock.NewController(t)

	date := domain.DateOnly(time.Now().UTC())
	cutRepo := mocks.NewMockCutRepository()
	cutRepo.Create(context.Background(), nil, &domain.CutRecord{
		ID:             "c1",
		CutDate:        date,
		ExpensesAmount: dec("40"),
	})

	expenseRepo := mocks.NewMockExpenseRepository(ctrl)
	expenseRepo.EXPECT().GetDailySummary(gomock.Any(), date).Return(nil, domain.ErrExpenseSummaryNotFound)

	uc := usecase.NewSyncUseCase(cutRepo, expenseRepo, nil, decimal.Zero, mocks.NopMetrics{})

	result, err := uc.CheckCut(context.Background(), "c1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.Report.Desynced {
		t.Error("40 recorded against an empty ledger must desync")
	}
	if !result.Report.Difference.Equal(dec("40")) {
		t.Errorf("difference = %s, want 40", result.Report.Difference)
	}
}

func TestSyncUseCase_AdoptLedgerExpenses(t *testing.T) {
	ctrl := gomock.NewController(t)

	date := domain.DateOnly(time.Now().UTC())
	cut := &domain.CutRecord{
		ID:             "c1",
		CutDate:        date,
		Status:         domain.CutStatusOpen,
		POS:            domain.ChannelFigures{Efectivo: dec("500")},
		ExpensesAmount: dec("100"),
	}
	cut.Recompute()

	cutRepo := mocks.NewMockCutRepository()
	cutRepo.Create(context.Background(), nil, cut)

	expenseRepo := mocks.NewMockExpenseRepository(ctrl)
	expenseRepo.EXPECT().GetDailySummary(gomock.Any(), date).Return(&domain.DailyExpenseSummary{
		Date:        date,
		TotalAmount: dec("150"),
	}, nil)

	auditRepo := mocks.NewMockAuditRepository()
	uc := usecase.NewSyncUseCase(cutRepo, expenseRepo, auditRepo, decimal.Zero, mocks.NopMetrics{})

	result, err := uc.AdoptLedgerExpenses(context.Background(), "c1", "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.Cut.ExpensesAmount.Equal(dec("150")) {
		t.Errorf("expenses_amount = %s, want 150", result.Cut.ExpensesAmount)
	}
	if !result.Cut.FinalBalance.Equal(dec("350")) {
		t.Errorf("final_balance = %s, want 350", result.Cut.FinalBalance)
	}
	if result.Cut.Status != domain.CutStatusEdited {
		t.Errorf("status = %s, want edited", result.Cut.Status)
	}
	if result.Report.Desynced {
		t.Error("cut must be in sync after adopting the ledger figure")
	}
	if len(auditRepo.Logs) != 1 {
		t.Errorf("expected one audit entry, got %d", len(auditRepo.Logs))
	}
}

func TestSyncUseCase_AdoptLedgerExpenses_ClosedCutRejected(t *testing.T) {
	ctrl := gomock.NewController(t)

	date := domain.DateOnly(time.Now().UTC())
	cutRepo := mocks.NewMockCutRepository()
	cutRepo.Create(context.Background(), nil, &domain.CutRecord{
		ID:      "c1",
		CutDate: date,
		Status:  domain.CutStatusClosed,
	})

	expenseRepo := mocks.NewMockExpenseRepository(ctrl)
	expenseRepo.EXPECT().GetDailySummary(gomock.Any(), date).Return(nil, domain.ErrExpenseSummaryNotFound)

	uc := usecase.NewSyncUseCase(cutRepo, expenseRepo, nil, decimal.Zero, mocks.NopMetrics{})

	_, err := uc.AdoptLedgerExpenses(context.Background(), "c1", "user-1")
	if err != domain.ErrCutAlreadyClosed {
		t.Errorf("expected ErrCutAlreadyClosed, got %v", err)
	}
}

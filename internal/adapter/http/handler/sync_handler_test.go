package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gymops/cashcut/internal/adapter/http/dto"
	"github.com/gymops/cashcut/internal/domain"
	"github.com/gymops/cashcut/internal/usecase"
)

type syncServiceStub struct {
	checkFn   func(ctx context.Context, cutID string) (*usecase.CutSyncResult, error)
	adoptFn   func(ctx context.Context, cutID, adoptedBy string) (*usecase.CutSyncResult, error)
	summaryFn func(ctx context.Context, date time.Time) (*domain.DailyExpenseSummary, error)
}

func (s *syncServiceStub) CheckCut(ctx context.Context, cutID string) (*usecase.CutSyncResult, error) {
	return s.checkFn(ctx, cutID)
}

func (s *syncServiceStub) AdoptLedgerExpenses(ctx context.Context, cutID, adoptedBy string) (*usecase.CutSyncResult, error) {
	return s.adoptFn(ctx, cutID, adoptedBy)
}

func (s *syncServiceStub) GetDailySummary(ctx context.Context, date time.Time) (*domain.DailyExpenseSummary, error) {
	return s.summaryFn(ctx, date)
}

func TestSyncHandler_Check(t *testing.T) {
	handler := NewSyncHandler(&syncServiceStub{
		checkFn: func(ctx context.Context, cutID string) (*usecase.CutSyncResult, error) {
			return &usecase.CutSyncResult{
				Cut: testCut(),
				Report: domain.CheckExpenseSync(
					decimal.NewFromInt(100),
					decimal.NewFromInt(180),
					domain.DefaultSyncTolerance,
				),
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/cuts/cut-1/expense-sync", nil)
	req = setChiURLParam(req, "id", "cut-1")
	rec := httptest.NewRecorder()

	handler.Check(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.SyncReportResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Desynced {
		t.Fatal("expected desynced report")
	}
	if !resp.Difference.Equal(decimal.NewFromInt(80)) {
		t.Fatalf("expected difference 80, got %s", resp.Difference)
	}
	if resp.CutID != "cut-1" {
		t.Fatalf("expected cut-1, got %s", resp.CutID)
	}
}

func TestSyncHandler_Check_NotFound(t *testing.T) {
	handler := NewSyncHandler(&syncServiceStub{
		checkFn: func(ctx context.Context, cutID string) (*usecase.CutSyncResult, error) {
			return nil, domain.ErrCutNotFound
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/cuts/missing/expense-sync", nil)
	req = setChiURLParam(req, "id", "missing")
	rec := httptest.NewRecorder()

	handler.Check(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestSyncHandler_Adopt(t *testing.T) {
	handler := NewSyncHandler(&syncServiceStub{
		adoptFn: func(ctx context.Context, cutID, adoptedBy string) (*usecase.CutSyncResult, error) {
			cut := testCut()
			cut.ExpensesAmount = decimal.NewFromInt(180)
			cut.MarkEdited()
			cut.Recompute()
			return &usecase.CutSyncResult{Cut: cut}, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/cuts/cut-1/expense-sync", nil)
	req = setChiURLParam(req, "id", "cut-1")
	rec := httptest.NewRecorder()

	handler.Adopt(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.CutResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.ExpensesAmount.Equal(decimal.NewFromInt(180)) {
		t.Fatalf("expected adopted expenses 180, got %s", resp.ExpensesAmount)
	}
	if resp.Status != "edited" {
		t.Fatalf("expected edited status, got %s", resp.Status)
	}
}

func TestSyncHandler_Adopt_Closed(t *testing.T) {
	handler := NewSyncHandler(&syncServiceStub{
		adoptFn: func(ctx context.Context, cutID, adoptedBy string) (*usecase.CutSyncResult, error) {
			return nil, domain.ErrCutAlreadyClosed
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/cuts/cut-1/expense-sync", nil)
	req = setChiURLParam(req, "id", "cut-1")
	rec := httptest.NewRecorder()

	handler.Adopt(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestSyncHandler_DailySummary(t *testing.T) {
	handler := NewSyncHandler(&syncServiceStub{
		summaryFn: func(ctx context.Context, date time.Time) (*domain.DailyExpenseSummary, error) {
			return &domain.DailyExpenseSummary{
				Date:          date,
				TotalAmount:   decimal.RequireFromString("135.75"),
				TotalExpenses: 3,
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/expenses/daily/2025-03-10", nil)
	req = setChiURLParam(req, "date", "2025-03-10")
	rec := httptest.NewRecorder()

	handler.DailySummary(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.ExpenseSummaryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Date != "2025-03-10" || resp.TotalExpenses != 3 {
		t.Fatalf("unexpected summary: %+v", resp)
	}
}

func TestSyncHandler_DailySummary_InvalidDate(t *testing.T) {
	handler := NewSyncHandler(&syncServiceStub{})

	req := httptest.NewRequest(http.MethodGet, "/expenses/daily/bogus", nil)
	req = setChiURLParam(req, "date", "bogus")
	rec := httptest.NewRecorder()

	handler.DailySummary(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

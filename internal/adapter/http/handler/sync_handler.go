package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/gymops/cashcut/internal/adapter/http/dto"
	"github.com/gymops/cashcut/internal/domain"
	"github.com/gymops/cashcut/internal/usecase"
)

// SyncService defines the behavior needed by SyncHandler.
type SyncService interface {
	CheckCut(ctx context.Context, cutID string) (*usecase.CutSyncResult, error)
	AdoptLedgerExpenses(ctx context.Context, cutID, adoptedBy string) (*usecase.CutSyncResult, error)
	GetDailySummary(ctx context.Context, date time.Time) (*domain.DailyExpenseSummary, error)
}

// SyncHandler handles expense-sync HTTP requests.
type SyncHandler struct {
	syncUC SyncService
}

// NewSyncHandler creates a new SyncHandler.
func NewSyncHandler(syncUC SyncService) *SyncHandler {
	return &SyncHandler{syncUC: syncUC}
}

// Check compares a cut's recorded expenses against the expense ledger.
// The report is advisory and never blocks any cut operation.
func (h *SyncHandler) Check(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing cut ID", "")
		return
	}

	result, err := h.syncUC.CheckCut(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to check expense sync", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SyncReportFromDomain(result.Cut, result.Report))
}

// Adopt replaces a cut's recorded expenses with the ledger figure and
// recomputes the cut.
func (h *SyncHandler) Adopt(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing cut ID", "")
		return
	}

	adoptedBy, _ := requestActor(r)

	result, err := h.syncUC.AdoptLedgerExpenses(r.Context(), id, adoptedBy)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to adopt ledger expenses", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CutFromDomain(result.Cut))
}

// DailySummary returns the expense ledger totals for a calendar day.
func (h *SyncHandler) DailySummary(w http.ResponseWriter, r *http.Request) {
	date, err := time.ParseInLocation("2006-01-02", chi.URLParam(r, "date"), time.UTC)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date", "expected YYYY-MM-DD")
		return
	}

	summary, err := h.syncUC.GetDailySummary(r.Context(), date)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get expense summary", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ExpenseSummaryFromDomain(summary))
}

package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/gymops/cashcut/internal/adapter/http/dto"
	"github.com/gymops/cashcut/internal/adapter/http/middleware"
	"github.com/gymops/cashcut/internal/domain"
	"github.com/gymops/cashcut/internal/usecase"
)

// CutService defines the behavior needed by CutHandler.
type CutService interface {
	CreateFromDate(ctx context.Context, input usecase.CreateCutFromDateInput) (*domain.CutRecord, error)
	CreateManual(ctx context.Context, input usecase.CreateManualCutInput) (*domain.CutRecord, error)
	GetCut(ctx context.Context, id string) (*domain.CutRecord, error)
	GetCutByDate(ctx context.Context, date time.Time) (*domain.CutRecord, error)
	ListCuts(ctx context.Context, input usecase.ListCutsInput) ([]*domain.CutRecord, error)
	UpdateCut(ctx context.Context, input usecase.UpdateCutInput) (*domain.CutRecord, error)
	CloseCut(ctx context.Context, id, closedBy string) (*domain.CutRecord, error)
	DeleteCut(ctx context.Context, id, deletedBy string) error
}

// CutHandler handles cash-cut HTTP requests.
type CutHandler struct {
	cutUC CutService
}

// NewCutHandler creates a new CutHandler.
func NewCutHandler(cutUC CutService) *CutHandler {
	return &CutHandler{cutUC: cutUC}
}

// Create creates a new cut. With "manual": true the figures come from the
// request body; otherwise they are derived from the day's recorded sales
// and payments.
func (h *CutHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	date, err := req.ParseDate()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date", "expected YYYY-MM-DD")
		return
	}

	createdBy, creatorName := requestActor(r)

	var cut *dto.CutResponse
	if req.Manual {
		created, err := h.cutUC.CreateManual(r.Context(), req.ToManualInput(date, createdBy, creatorName))
		if err != nil {
			writeError(w, mapDomainError(err), "failed to create cut", err.Error())
			return
		}
		cut = dto.CutFromDomain(created)
	} else {
		created, err := h.cutUC.CreateFromDate(r.Context(), usecase.CreateCutFromDateInput{
			Date:        date,
			CreatedBy:   createdBy,
			CreatorName: creatorName,
			Notes:       req.Notes,
		})
		if err != nil {
			writeError(w, mapDomainError(err), "failed to create cut", err.Error())
			return
		}
		cut = dto.CutFromDomain(created)
	}

	writeJSON(w, http.StatusCreated, cut)
}

// Get retrieves a cut by ID.
func (h *CutHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing cut ID", "")
		return
	}

	cut, err := h.cutUC.GetCut(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get cut", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CutFromDomain(cut))
}

// GetByDate retrieves the cut for a calendar day.
func (h *CutHandler) GetByDate(w http.ResponseWriter, r *http.Request) {
	date, err := time.ParseInLocation("2006-01-02", chi.URLParam(r, "date"), time.UTC)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date", "expected YYYY-MM-DD")
		return
	}

	cut, err := h.cutUC.GetCutByDate(r.Context(), date)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get cut", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CutFromDomain(cut))
}

// List lists cuts, most recent day first.
func (h *CutHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 50)
	offset := parseIntQuery(r, "offset", 0)

	cuts, err := h.cutUC.ListCuts(r.Context(), usecase.ListCutsInput{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list cuts", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListCutsResponse{
		Cuts:  dto.CutsFromDomain(cuts),
		Total: int64(len(cuts)),
	})
}

// Update applies a partial edit and returns the fully recomputed cut.
func (h *CutHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing cut ID", "")
		return
	}

	var req dto.UpdateCutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	updatedBy, _ := requestActor(r)

	cut, err := h.cutUC.UpdateCut(r.Context(), req.ToUseCaseInput(id, updatedBy))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update cut", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CutFromDomain(cut))
}

// Close transitions a cut to closed.
func (h *CutHandler) Close(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing cut ID", "")
		return
	}

	closedBy, _ := requestActor(r)

	cut, err := h.cutUC.CloseCut(r.Context(), id, closedBy)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to close cut", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CutFromDomain(cut))
}

// Delete removes a cut.
func (h *CutHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing cut ID", "")
		return
	}

	deletedBy, _ := requestActor(r)

	if err := h.cutUC.DeleteCut(r.Context(), id, deletedBy); err != nil {
		writeError(w, mapDomainError(err), "failed to delete cut", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// requestActor identifies the authenticated user for audit attribution.
func requestActor(r *http.Request) (id, name string) {
	if user, ok := middleware.GetUserFromContext(r.Context()); ok {
		return user.ID, user.Name
	}
	return "", ""
}

package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/workforcehq/hr-backend-go/internal/domain/performance"
	"github.com/workforcehq/hr-backend-go/internal/handler/http/response"
)

type PerformanceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Overdue(w http.ResponseWriter, r *http.Request)
	Upcoming(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
	RatingAnalysis(w http.ResponseWriter, r *http.Request)
}

type PerformanceHandlerImpl struct {
	performanceService performance.PerformanceService
}

func NewPerformanceHandler(performanceService performance.PerformanceService) PerformanceHandler {
	return &PerformanceHandlerImpl{performanceService: performanceService}
}

// List implements PerformanceHandler.
func (h *PerformanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	page, limit := pagination(r)
	filter := performance.PerformanceFilter{
		EmployeeID: queryString(r, "employee_id"),
		Rating:     queryInt(r, "rating"),
		Page:       page,
		Limit:      limit,
	}

	list, err := h.performanceService.ListPerformances(r.Context(), filter)
	if err != nil {
		slog.Error("Failed to list performance reviews", "error", err)
		response.HandleError(w, err)
		return
	}

	totalPages := int(list.TotalItems) / list.Limit
	if int(list.TotalItems)%list.Limit != 0 {
		totalPages++
	}
	response.SuccessWithMeta(w, list.Performances, &response.Meta{
		Page:       list.Page,
		Limit:      list.Limit,
		TotalItems: list.TotalItems,
		TotalPages: totalPages,
	})
}

// Create implements PerformanceHandler.
func (h *PerformanceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req performance.CreatePerformanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create performance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.performanceService.CreatePerformance(r.Context(), req)
	if err != nil {
		slog.Error("Failed to create performance review", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Performance review created successfully", created)
}

// GetByID implements PerformanceHandler.
func (h *PerformanceHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	perf, err := h.performanceService.GetPerformance(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, perf)
}

// Update implements PerformanceHandler.
func (h *PerformanceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req performance.UpdatePerformanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update performance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.performanceService.UpdatePerformance(r.Context(), req)
	if err != nil {
		slog.Error("Failed to update performance review", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Performance review updated successfully", updated)
}

// Delete implements PerformanceHandler.
func (h *PerformanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.performanceService.DeletePerformance(r.Context(), id); err != nil {
		slog.Error("Failed to delete performance review", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Performance review deleted successfully", nil)
}

// Overdue implements PerformanceHandler.
func (h *PerformanceHandlerImpl) Overdue(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.performanceService.OverdueReviews(r.Context())
	if err != nil {
		slog.Error("Failed to list overdue reviews", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, reviews)
}

// Upcoming implements PerformanceHandler.
func (h *PerformanceHandlerImpl) Upcoming(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.performanceService.UpcomingReviews(r.Context())
	if err != nil {
		slog.Error("Failed to list upcoming reviews", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, reviews)
}

// Stats implements PerformanceHandler.
func (h *PerformanceHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.performanceService.Stats(
		r.Context(),
		r.URL.Query().Get("start_date"),
		r.URL.Query().Get("end_date"),
	)
	if err != nil {
		slog.Error("Failed to build performance stats", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// RatingAnalysis implements PerformanceHandler.
func (h *PerformanceHandlerImpl) RatingAnalysis(w http.ResponseWriter, r *http.Request) {
	analysis, err := h.performanceService.RatingAnalysis(r.Context(), r.URL.Query().Get("year"))
	if err != nil {
		slog.Error("Failed to build rating analysis", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, analysis)
}

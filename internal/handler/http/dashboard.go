package http

import (
	"log/slog"
	"net/http"

	"github.com/workforcehq/hr-backend-go/internal/domain/dashboard"
	"github.com/workforcehq/hr-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	Stats(w http.ResponseWriter, r *http.Request)
	DepartmentChart(w http.ResponseWriter, r *http.Request)
	AttendanceChart(w http.ResponseWriter, r *http.Request)
	PerformanceChart(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: dashboardService}
}

// Stats implements DashboardHandler.
func (h *DashboardHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.GetStats(r.Context())
	if err != nil {
		slog.Error("Failed to build dashboard stats", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// DepartmentChart implements DashboardHandler.
func (h *DashboardHandlerImpl) DepartmentChart(w http.ResponseWriter, r *http.Request) {
	chart, err := h.dashboardService.GetDepartmentChart(r.Context())
	if err != nil {
		slog.Error("Failed to build department chart", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, chart)
}

// AttendanceChart implements DashboardHandler.
func (h *DashboardHandlerImpl) AttendanceChart(w http.ResponseWriter, r *http.Request) {
	chart, err := h.dashboardService.GetAttendanceChart(r.Context())
	if err != nil {
		slog.Error("Failed to build attendance chart", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, chart)
}

// PerformanceChart implements DashboardHandler.
func (h *DashboardHandlerImpl) PerformanceChart(w http.ResponseWriter, r *http.Request) {
	chart, err := h.dashboardService.GetPerformanceChart(r.Context())
	if err != nil {
		slog.Error("Failed to build performance chart", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, chart)
}

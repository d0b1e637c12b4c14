package http

import (
	"net/http"

	"github.com/officehub/officehub-backend-go/internal/domain/dashboard"
	"github.com/officehub/officehub-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	Overview(w http.ResponseWriter, r *http.Request)
	Activity(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.Service
}

func NewDashboardHandler(dashboardService dashboard.Service) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

func (h *dashboardHandlerImpl) Overview(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	overview, err := h.dashboardService.GetOverview(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, overview)
}

func (h *dashboardHandlerImpl) Activity(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	limit := getIntQueryParam(r, "limit", 20)
	rows, err := h.dashboardService.ListActivity(r.Context(), userID, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, rows)
}

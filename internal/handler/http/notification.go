package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/officehub/officehub-backend-go/internal/domain/notification"
	"github.com/officehub/officehub-backend-go/internal/domain/user"
	"github.com/officehub/officehub-backend-go/internal/handler/http/response"
	"github.com/officehub/officehub-backend-go/internal/pkg/jwt"
)

type NotificationHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	GetSSEToken(w http.ResponseWriter, r *http.Request)
	Stream(w http.ResponseWriter, r *http.Request)
}

type notificationHandlerImpl struct {
	notifService notification.Service
	jwtService   jwt.Service
}

func NewNotificationHandler(notifService notification.Service, jwtService jwt.Service) NotificationHandler {
	return &notificationHandlerImpl{
		notifService: notifService,
		jwtService:   jwtService,
	}
}

// SSETokenResponse carries a short-lived token for the stream endpoint
type SSETokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"`
}

// policyForRole resolves which view a caller gets. Employees always get
// the detailed view; admins default to the overview but may request the
// employee view explicitly.
func policyForRole(role user.Role, requested string) notification.ViewPolicy {
	if role != user.RoleAdmin {
		return notification.PolicyEmployeeDetailed
	}
	if requested == "employee" {
		return notification.PolicyEmployeeDetailed
	}
	return notification.PolicyAdminOverview
}

// List returns the freshly computed notification list for the caller's view
func (h *notificationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	policy := policyForRole(getRoleFromContext(r), r.URL.Query().Get("policy"))
	notifications, err := h.notifService.ListNotifications(r.Context(), policy)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, notification.ListNotificationsResponse{
		Notifications: notifications,
		Total:         len(notifications),
	})
}

// GetSSEToken generates a short-lived token for SSE connections
func (h *notificationHandlerImpl) GetSSEToken(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	token, expiresIn, err := h.jwtService.GenerateSSEToken(userID, getRoleFromContext(r))
	if err != nil {
		response.InternalServerError(w, "Failed to generate SSE token")
		return
	}

	response.Success(w, SSETokenResponse{
		Token:     token,
		ExpiresIn: expiresIn,
	})
}

// Stream handles the SSE connection pushing full notification snapshots
func (h *notificationHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	// Get token from query parameter (SSE doesn't support custom headers)
	tokenStr := r.URL.Query().Get("token")
	if tokenStr == "" {
		http.Error(w, "Missing token", http.StatusUnauthorized)
		return
	}

	userID, role, err := h.jwtService.ValidateSSEToken(tokenStr)
	if err != nil {
		http.Error(w, "Invalid token", http.StatusUnauthorized)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	// Set SSE headers
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	policy := policyForRole(role, r.URL.Query().Get("policy"))
	events, cleanup, err := h.notifService.Subscribe(r.Context(), userID, policy)
	if err != nil {
		http.Error(w, "Subscription failed", http.StatusInternalServerError)
		return
	}
	defer cleanup()

	// Send initial connection event
	fmt.Fprintf(w, "event: connected\ndata: {\"status\":\"connected\",\"user_id\":\"%s\"}\n\n", userID)
	flusher.Flush()

	keepalive := time.NewTicker(30 * time.Second)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(event.Notifications)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Event, data)
			flusher.Flush()

		case <-keepalive.C:
			// Send keepalive ping
			fmt.Fprintf(w, "event: ping\ndata: {\"timestamp\":%d}\n\n", time.Now().Unix())
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}

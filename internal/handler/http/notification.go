package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/handler/http/response"
	notificationservice "github.com/shiftdesk/shiftdesk-backend-go/internal/service/notification"
)

type NotificationHandler interface {
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	MarkRead(w http.ResponseWriter, r *http.Request)
}

type notificationHandlerImpl struct {
	query notificationservice.QueryService
}

func NewNotificationHandler(query notificationservice.QueryService) NotificationHandler {
	return &notificationHandlerImpl{query: query}
}

// ListByEmployee implements NotificationHandler.
func (h *notificationHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	unreadOnly := r.URL.Query().Get("unread") == "true"

	result, err := h.query.ListByEmployee(r.Context(), chi.URLParam(r, "id"), unreadOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// MarkRead implements NotificationHandler.
func (h *notificationHandlerImpl) MarkRead(w http.ResponseWriter, r *http.Request) {
	if err := h.query.MarkRead(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Notification marked as read", nil)
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ituna-edu/portal-api/internal/service"
	"github.com/ituna-edu/portal-api/pkg/response"
)

// NotificationHandler exposes the portal inbox endpoints.
type NotificationHandler struct {
	notifications *service.NotificationService
}

// NewNotificationHandler constructs NotificationHandler.
func NewNotificationHandler(notifications *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// List godoc
// @Summary List notifications
// @Tags Notifications
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	notifications, unread := h.notifications.List(c.Request.Context())
	response.JSON(c, http.StatusOK, notifications, nil, map[string]interface{}{"unread": unread})
}

// MarkAllRead godoc
// @Summary Mark every notification as read
// @Tags Notifications
// @Success 204
// @Router /notifications/read-all [post]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	if err := h.notifications.MarkAllRead(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

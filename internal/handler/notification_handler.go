package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"peer-review-workflow/internal/middleware"
	"peer-review-workflow/internal/service"
)

// NotificationHandler handles in-app notification requests.
type NotificationHandler struct {
	notificationService service.NotificationServiceInterface
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(notificationService service.NotificationServiceInterface) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// markReadRequest is the payload for marking notifications read.
type markReadRequest struct {
	NotificationID string `json:"notification_id"`
}

// List handles GET /api/v1/notifications
func (h *NotificationHandler) List(c *gin.Context) {
	notifications, unread, err := h.notificationService.List(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"notifications": notifications,
		"unread_count":  unread,
	})
}

// MarkRead handles POST /api/v1/notifications/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	var req markReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.notificationService.MarkRead(c.Request.Context(), middleware.GetUserID(c), req.NotificationID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "notifications updated"})
}

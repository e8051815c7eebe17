package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kiema2001/prof-mbinda-backend/internal/model"
)

type notificationRequest struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// ListNotifications returns active announcements, newest first.
// Public route.
func (h *Handler) ListNotifications(c *gin.Context) {
	notifications, err := h.stores.Notifications.List(c.Request.Context())
	if err != nil {
		h.fail(c, "notifications query failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "notifications": notifications})
}

func (h *Handler) CreateNotification(c *gin.Context) {
	var req notificationRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Title == "" || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Title and message required",
		})
		return
	}

	notification, err := h.stores.Notifications.Create(c.Request.Context(), model.Notification{
		Title:   req.Title,
		Message: req.Message,
		Type:    req.Type,
	})
	if err != nil {
		h.fail(c, "notification create failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "Notification added successfully",
		"notification": notification,
	})
}

func (h *Handler) DeleteNotification(c *gin.Context) {
	if err := h.stores.Notifications.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.notFoundOrFail(c, "notification delete failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Notification deleted successfully",
	})
}

package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kiema2001/prof-mbinda-backend/internal/model"
)

// Health is the liveness probe.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

// Debug reports basic service state for manual troubleshooting.
func (h *Handler) Debug(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "API is working!",
		"database":  "Connected",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// GetData returns everything the public pages render in one payload.
func (h *Handler) GetData(c *gin.Context) {
	ctx := c.Request.Context()
	data := model.SiteData{}

	bio, err := h.stores.Profile.Get(ctx)
	if err == nil {
		data.Bio = bio
	} else if !errors.Is(err, model.ErrNotFound) {
		h.fail(c, "profile query failed", err)
		return
	}

	if data.Students, err = h.stores.Students.List(ctx); err != nil {
		h.fail(c, "students query failed", err)
		return
	}
	if data.Publications, err = h.stores.Publications.List(ctx); err != nil {
		h.fail(c, "publications query failed", err)
		return
	}
	if data.Research, err = h.stores.Research.List(ctx); err != nil {
		h.fail(c, "research query failed", err)
		return
	}
	if data.Notifications, err = h.stores.Notifications.List(ctx); err != nil {
		h.fail(c, "notifications query failed", err)
		return
	}
	if data.Documents, err = h.stores.Documents.List(ctx); err != nil {
		h.fail(c, "documents query failed", err)
		return
	}

	c.JSON(http.StatusOK, data)
}

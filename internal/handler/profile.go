package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kiema2001/prof-mbinda-backend/internal/model"
)

// GetBio returns the professor profile. Public route.
func (h *Handler) GetBio(c *gin.Context) {
	bio, err := h.stores.Profile.Get(c.Request.Context())
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			c.JSON(http.StatusOK, gin.H{"success": true, "bio": model.Profile{}})
			return
		}
		h.fail(c, "profile query failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "bio": bio})
}

// UpdateBio replaces the profile. Multipart form with optional
// profile_photo file.
func (h *Handler) UpdateBio(c *gin.Context) {
	photo, handled, err := h.saveFormFile(c, "profile_photo", uploadPhoto)
	if handled {
		return
	}
	if err != nil {
		h.fail(c, "profile photo upload failed", err)
		return
	}

	p := model.Profile{
		Bio:          c.PostForm("bio"),
		Contact:      c.PostForm("contact"),
		ProfilePhoto: photo,
	}

	// Keep the previous photo when no new one was uploaded.
	if photo == "" {
		if existing, err := h.stores.Profile.Get(c.Request.Context()); err == nil {
			p.ProfilePhoto = existing.ProfilePhoto
		}
	}

	if err := h.stores.Profile.Upsert(c.Request.Context(), p); err != nil {
		h.fail(c, "profile update failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"message":       "Bio updated successfully",
		"profile_photo": p.ProfilePhoto,
	})
}

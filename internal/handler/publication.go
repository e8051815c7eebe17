package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kiema2001/prof-mbinda-backend/internal/model"
)

// CreatePublication adds a publication. Multipart form with optional
// document file.
func (h *Handler) CreatePublication(c *gin.Context) {
	title := c.PostForm("title")
	details := c.PostForm("details")
	year, yearErr := strconv.Atoi(c.PostForm("year"))
	if title == "" || details == "" || yearErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Title, details and year required",
		})
		return
	}

	doc, handled, err := h.saveFormFile(c, "document", uploadDocument)
	if handled {
		return
	}
	if err != nil {
		h.fail(c, "publication document upload failed", err)
		return
	}

	pub, err := h.stores.Publications.Create(c.Request.Context(), model.Publication{
		Title:        title,
		Details:      details,
		Year:         year,
		Link:         c.PostForm("link"),
		DocumentPath: doc,
	})
	if err != nil {
		h.fail(c, "publication create failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Publication added successfully",
		"publication": pub,
	})
}

func (h *Handler) GetPublication(c *gin.Context) {
	pub, err := h.stores.Publications.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.notFoundOrFail(c, "publication query failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "publication": pub})
}

func (h *Handler) UpdatePublication(c *gin.Context) {
	existing, err := h.stores.Publications.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.notFoundOrFail(c, "publication query failed", err)
		return
	}

	doc, handled, err := h.saveFormFile(c, "document", uploadDocument)
	if handled {
		return
	}
	if err != nil {
		h.fail(c, "publication document upload failed", err)
		return
	}
	if doc == "" {
		doc = existing.DocumentPath
	}

	existing.Title = formOr(c, "title", existing.Title)
	existing.Details = formOr(c, "details", existing.Details)
	existing.Link = formOr(c, "link", existing.Link)
	existing.DocumentPath = doc
	if y, err := strconv.Atoi(c.PostForm("year")); err == nil {
		existing.Year = y
	}

	pub, err := h.stores.Publications.Update(c.Request.Context(), existing)
	if err != nil {
		h.notFoundOrFail(c, "publication update failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Publication updated successfully",
		"publication": pub,
	})
}

func (h *Handler) DeletePublication(c *gin.Context) {
	if err := h.stores.Publications.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.notFoundOrFail(c, "publication delete failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Publication deleted successfully",
	})
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kiema2001/prof-mbinda-backend/internal/model"
)

// CreateResearch adds a research project. Multipart form with optional
// document file.
func (h *Handler) CreateResearch(c *gin.Context) {
	title := c.PostForm("title")
	description := c.PostForm("description")
	if title == "" || description == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Title and description required",
		})
		return
	}

	doc, handled, err := h.saveFormFile(c, "document", uploadDocument)
	if handled {
		return
	}
	if err != nil {
		h.fail(c, "research document upload failed", err)
		return
	}

	project, err := h.stores.Research.Create(c.Request.Context(), model.ResearchProject{
		Title:        title,
		Description:  description,
		DocumentPath: doc,
	})
	if err != nil {
		h.fail(c, "research create failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Research project added successfully",
		"research": project,
	})
}

func (h *Handler) GetResearch(c *gin.Context) {
	project, err := h.stores.Research.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.notFoundOrFail(c, "research query failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "research": project})
}

func (h *Handler) UpdateResearch(c *gin.Context) {
	existing, err := h.stores.Research.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.notFoundOrFail(c, "research query failed", err)
		return
	}

	doc, handled, err := h.saveFormFile(c, "document", uploadDocument)
	if handled {
		return
	}
	if err != nil {
		h.fail(c, "research document upload failed", err)
		return
	}
	if doc == "" {
		doc = existing.DocumentPath
	}

	existing.Title = formOr(c, "title", existing.Title)
	existing.Description = formOr(c, "description", existing.Description)
	existing.DocumentPath = doc

	project, err := h.stores.Research.Update(c.Request.Context(), existing)
	if err != nil {
		h.notFoundOrFail(c, "research update failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Research project updated successfully",
		"research": project,
	})
}

func (h *Handler) DeleteResearch(c *gin.Context) {
	if err := h.stores.Research.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.notFoundOrFail(c, "research delete failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Research project deleted successfully",
	})
}

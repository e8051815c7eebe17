package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kiema2001/prof-mbinda-backend/internal/model"
)

// CreateStudent adds a roster entry. Multipart form with optional
// profile_photo file.
func (h *Handler) CreateStudent(c *gin.Context) {
	name := c.PostForm("name")
	degree := c.PostForm("degree")
	studentType := c.PostForm("type")
	if name == "" || degree == "" || studentType == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Name, degree and type required",
		})
		return
	}

	photo, handled, err := h.saveFormFile(c, "profile_photo", uploadPhoto)
	if handled {
		return
	}
	if err != nil {
		h.fail(c, "student photo upload failed", err)
		return
	}

	student, err := h.stores.Students.Create(c.Request.Context(), model.Student{
		Name:          name,
		Degree:        degree,
		Type:          studentType,
		ResearchFocus: c.PostForm("research_focus"),
		CurrentWork:   c.PostForm("current_work"),
		ProfilePhoto:  photo,
	})
	if err != nil {
		h.fail(c, "student create failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Student added successfully",
		"student": student,
	})
}

func (h *Handler) GetStudent(c *gin.Context) {
	student, err := h.stores.Students.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.notFoundOrFail(c, "student query failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "student": student})
}

func (h *Handler) UpdateStudent(c *gin.Context) {
	existing, err := h.stores.Students.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.notFoundOrFail(c, "student query failed", err)
		return
	}

	photo, handled, err := h.saveFormFile(c, "profile_photo", uploadPhoto)
	if handled {
		return
	}
	if err != nil {
		h.fail(c, "student photo upload failed", err)
		return
	}
	if photo == "" {
		photo = existing.ProfilePhoto
	}

	existing.Name = formOr(c, "name", existing.Name)
	existing.Degree = formOr(c, "degree", existing.Degree)
	existing.Type = formOr(c, "type", existing.Type)
	existing.ResearchFocus = formOr(c, "research_focus", existing.ResearchFocus)
	existing.CurrentWork = formOr(c, "current_work", existing.CurrentWork)
	existing.ProfilePhoto = photo

	student, err := h.stores.Students.Update(c.Request.Context(), existing)
	if err != nil {
		h.notFoundOrFail(c, "student update failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Student updated successfully",
		"student": student,
	})
}

func (h *Handler) DeleteStudent(c *gin.Context) {
	if err := h.stores.Students.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.notFoundOrFail(c, "student delete failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Student deleted successfully",
	})
}

// formOr returns the posted value for key, or fallback when the field
// was not submitted.
func formOr(c *gin.Context, key, fallback string) string {
	if v, ok := c.GetPostForm(key); ok {
		return v
	}
	return fallback
}

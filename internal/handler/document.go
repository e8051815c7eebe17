package handler

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kiema2001/prof-mbinda-backend/internal/model"
)

// ListDocuments returns the document library, newest first. Public
// route.
func (h *Handler) ListDocuments(c *gin.Context) {
	documents, err := h.stores.Documents.List(c.Request.Context())
	if err != nil {
		h.fail(c, "documents query failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "documents": documents})
}

// UploadDocument stores a file in the document library. Multipart form
// with a required document file plus title and optional description.
func (h *Handler) UploadDocument(c *gin.Context) {
	title := c.PostForm("title")
	fileHeader, fileErr := c.FormFile("document")
	if title == "" || fileErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Title and document file required",
		})
		return
	}

	storedPath, handled, err := h.saveFormFile(c, "document", uploadDocument)
	if handled {
		return
	}
	if err != nil {
		h.fail(c, "document upload failed", err)
		return
	}

	document, err := h.stores.Documents.Create(c.Request.Context(), model.Document{
		Title:       title,
		Description: c.PostForm("description"),
		FilePath:    storedPath,
		FileSize:    fileHeader.Size,
		FileType:    strings.TrimPrefix(filepath.Ext(fileHeader.Filename), "."),
	})
	if err != nil {
		h.fail(c, "document create failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Document uploaded successfully",
		"document": document,
	})
}

// DeleteDocument removes a library entry and its stored file.
func (h *Handler) DeleteDocument(c *gin.Context) {
	ctx := c.Request.Context()

	document, err := h.stores.Documents.Get(ctx, c.Param("id"))
	if err != nil {
		h.notFoundOrFail(c, "document query failed", err)
		return
	}

	if err := h.stores.Documents.Delete(ctx, document.ID); err != nil {
		h.notFoundOrFail(c, "document delete failed", err)
		return
	}

	// Best-effort object cleanup; the library entry is already gone.
	if document.FilePath != "" {
		if err := h.files.Remove(ctx, document.FilePath); err != nil {
			h.log.Error("document object cleanup failed", "error", err, "path", document.FilePath)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Document deleted successfully",
	})
}

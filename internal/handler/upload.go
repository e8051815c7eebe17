package handler

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kiema2001/prof-mbinda-backend/internal/storage/minio"
	"github.com/kiema2001/prof-mbinda-backend/internal/utils"
)

// uploadKind selects the destination bucket for a multipart file.
type uploadKind int

const (
	uploadPhoto uploadKind = iota
	uploadDocument
)

// saveFormFile stores an optional multipart file field and returns the
// stored path. Returns ("", nil) when the field is absent. A rejected
// file (type or size) writes the 400 response itself and reports
// handled = true.
func (h *Handler) saveFormFile(
	c *gin.Context,
	field string,
	kind uploadKind,
) (storedPath string, handled bool, err error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		// Absent field: the entity simply has no file.
		return "", false, nil
	}

	if !minio.AllowedFile(fileHeader.Filename) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Only image files (JPEG, PNG, GIF) and documents (PDF, DOC, DOCX) are allowed",
		})
		return "", true, nil
	}
	if fileHeader.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "File too large",
		})
		return "", true, nil
	}

	storedPath, err = h.storeFile(c, field, kind, fileHeader)
	return storedPath, false, err
}

func (h *Handler) storeFile(
	c *gin.Context,
	field string,
	kind uploadKind,
	fileHeader *multipart.FileHeader,
) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer file.Close()

	objectName := fmt.Sprintf(
		"%s-%d-%s%s",
		field,
		time.Now().UnixMilli(),
		utils.RandomString(6),
		filepath.Ext(fileHeader.Filename),
	)
	contentType := fileHeader.Header.Get("Content-Type")

	if kind == uploadDocument {
		return h.files.SaveDocument(c.Request.Context(), objectName, file, fileHeader.Size, contentType)
	}
	return h.files.SaveUpload(c.Request.Context(), objectName, file, fileHeader.Size, contentType)
}

// ServeUpload streams a stored photo back to the client.
func (h *Handler) ServeUpload(c *gin.Context) {
	h.serveStored(c, minio.UploadPrefix+c.Param("name"))
}

// ServeDocument streams a stored document back to the client.
func (h *Handler) ServeDocument(c *gin.Context) {
	h.serveStored(c, minio.DocumentPrefix+c.Param("name"))
}

func (h *Handler) serveStored(c *gin.Context, storedPath string) {
	obj, err := h.files.Open(c.Request.Context(), storedPath)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Not found",
		})
		return
	}
	defer obj.Close()

	c.DataFromReader(http.StatusOK, -1, "application/octet-stream", obj, nil)
}

package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kiema2001/prof-mbinda-backend/internal/auth"
	"github.com/kiema2001/prof-mbinda-backend/internal/config"
	"github.com/kiema2001/prof-mbinda-backend/internal/logger"
	"github.com/kiema2001/prof-mbinda-backend/internal/model"
	"github.com/kiema2001/prof-mbinda-backend/internal/storage/minio"
)

// maxUploadSize bounds multipart file fields.
const maxUploadSize = 10 << 20 // 10 MiB

// Handler serves the whole REST surface: auth, entity CRUD, uploads.
type Handler struct {
	stores  model.Stores
	auth    *auth.Service
	files   *minio.Storage
	carrier string
	log     *logger.Logger
}

func NewHandler(
	stores model.Stores,
	authSvc *auth.Service,
	files *minio.Storage,
	carrier string,
	log *logger.Logger,
) *Handler {
	return &Handler{
		stores:  stores,
		auth:    authSvc,
		files:   files,
		carrier: carrier,
		log:     log,
	}
}

// RegisterRoutes wires every route. Reads are public; every mutating
// route goes through the guard, which is the only place authorization
// is checked.
func (h *Handler) RegisterRoutes(r *gin.Engine, guard gin.HandlerFunc) {
	api := r.Group("/api")

	// Public surface
	api.GET("/health", h.Health)
	api.GET("/debug", h.Debug)
	api.GET("/data", h.GetData)
	api.GET("/data/bio", h.GetBio)
	api.GET("/notifications", h.ListNotifications)
	api.GET("/documents", h.ListDocuments)
	api.POST("/login", h.Login)
	api.GET("/auth/status", h.Status)

	// Stored file downloads
	r.GET("/uploads/:name", h.ServeUpload)
	r.GET("/documents/:name", h.ServeDocument)

	// Protected surface
	protected := api.Group("")
	protected.Use(guard)

	protected.POST("/logout", h.Logout)
	protected.GET("/me", h.Me)

	protected.POST("/data/bio", h.UpdateBio)

	protected.POST("/data/student", h.CreateStudent)
	protected.GET("/data/student/:id", h.GetStudent)
	protected.PUT("/data/student/:id", h.UpdateStudent)
	protected.DELETE("/data/student/:id", h.DeleteStudent)

	protected.POST("/data/publication", h.CreatePublication)
	protected.GET("/data/publication/:id", h.GetPublication)
	protected.PUT("/data/publication/:id", h.UpdatePublication)
	protected.DELETE("/data/publication/:id", h.DeletePublication)

	protected.POST("/data/research", h.CreateResearch)
	protected.GET("/data/research/:id", h.GetResearch)
	protected.PUT("/data/research/:id", h.UpdateResearch)
	protected.DELETE("/data/research/:id", h.DeleteResearch)

	protected.POST("/notifications", h.CreateNotification)
	protected.DELETE("/notifications/:id", h.DeleteNotification)

	protected.POST("/upload/document", h.UploadDocument)
	protected.DELETE("/documents/:id", h.DeleteDocument)
}

// fail logs the storage fault and returns a generic server error.
// Internal detail never reaches the client.
func (h *Handler) fail(c *gin.Context, msg string, err error) {
	h.log.Error(msg, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"message": "Internal server error",
	})
}

// notFoundOrFail maps ErrNotFound to 404 and everything else to 500.
func (h *Handler) notFoundOrFail(c *gin.Context, msg string, err error) {
	if errors.Is(err, model.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Not found",
		})
		return
	}
	h.fail(c, msg, err)
}

// cookieCarrier reports whether sessions ride on the HTTP-only cookie.
func (h *Handler) cookieCarrier() bool {
	return h.carrier == config.CarrierCookie
}

package app

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kiema2001/prof-mbinda-backend/internal/auth"
	"github.com/kiema2001/prof-mbinda-backend/internal/config"
	"github.com/kiema2001/prof-mbinda-backend/internal/handler"
	"github.com/kiema2001/prof-mbinda-backend/internal/logger"
	"github.com/kiema2001/prof-mbinda-backend/internal/middleware"
	"github.com/kiema2001/prof-mbinda-backend/internal/model"
	mongorepo "github.com/kiema2001/prof-mbinda-backend/internal/repository/mongodb"
	"github.com/kiema2001/prof-mbinda-backend/internal/repository/postgres"
	"github.com/kiema2001/prof-mbinda-backend/internal/session"
)

func setupHTTP(ctx context.Context, cfg *config.Config, log *logger.Logger) (*gin.Engine, func() error, error) {

	infra, err := setupInfra(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	stores, err := buildStores(cfg, infra)
	if err != nil {
		return nil, nil, err
	}

	if err := provisionDefaults(ctx, cfg, stores, log); err != nil {
		return nil, nil, err
	}

	var sessionStore session.Store
	if cfg.SessionStore == config.SessionStoreRedis {
		sessionStore = session.NewRedisStore(infra.Redis.Client)
	} else {
		sessionStore = session.NewMemoryStore()
	}

	authService := auth.NewService(stores.Users, sessionStore, cfg.SessionTTL, log)
	authMiddleware := middleware.NewAuthMiddleware(authService, cfg.TokenCarrier, log)

	apiHandler := handler.NewHandler(
		stores,
		authService,
		infra.Files,
		cfg.TokenCarrier,
		log,
	)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())

	apiHandler.RegisterRoutes(router, middleware.GinRequireAuth(authMiddleware))

	// Static admin + public pages
	router.Static("/admin", "./web/admin")
	router.GET("/", func(c *gin.Context) {
		c.File("./web/index.html")
	})
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Not found",
		})
	})

	// ----------------------------
	// Cleanup
	// ----------------------------

	return router, infra.Close, nil
}

func buildStores(cfg *config.Config, infra *Infra) (model.Stores, error) {
	if cfg.Backend == config.BackendMongo {
		users, err := mongorepo.NewUserRepository(infra.Mongo)
		if err != nil {
			return model.Stores{}, err
		}
		return model.Stores{
			Users:         users,
			Profile:       mongorepo.NewProfileRepository(infra.Mongo),
			Students:      mongorepo.NewStudentRepository(infra.Mongo),
			Publications:  mongorepo.NewPublicationRepository(infra.Mongo),
			Research:      mongorepo.NewResearchRepository(infra.Mongo),
			Notifications: mongorepo.NewNotificationRepository(infra.Mongo),
			Documents:     mongorepo.NewDocumentRepository(infra.Mongo),
		}, nil
	}

	return model.Stores{
		Users:         postgres.NewUserRepository(infra.DB),
		Profile:       postgres.NewProfileRepository(infra.DB),
		Students:      postgres.NewStudentRepository(infra.DB),
		Publications:  postgres.NewPublicationRepository(infra.DB),
		Research:      postgres.NewResearchRepository(infra.DB),
		Notifications: postgres.NewNotificationRepository(infra.DB),
		Documents:     postgres.NewDocumentRepository(infra.DB),
	}, nil
}

package app

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kiema2001/prof-mbinda-backend/internal/config"
	"github.com/kiema2001/prof-mbinda-backend/internal/db"
	"github.com/kiema2001/prof-mbinda-backend/internal/logger"
	"github.com/kiema2001/prof-mbinda-backend/internal/mongodb"
	"github.com/kiema2001/prof-mbinda-backend/internal/redis"
	"github.com/kiema2001/prof-mbinda-backend/internal/storage/minio"
)

// Infra holds the connections the configured variant needs. Only the
// selected backend's fields are populated.
type Infra struct {
	DB    *db.DB
	Mongo *mongo.Database
	Redis *redis.Client
	Files *minio.Storage

	mongoClose func() error
}

func setupInfra(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Infra, error) {
	infra := &Infra{}

	switch cfg.Backend {
	case config.BackendPostgres:
		sqlDB, err := sql.Open("postgres", cfg.Database.DSN)
		if err != nil {
			return nil, err
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			return nil, err
		}
		if err := db.Migrate(ctx, sqlDB); err != nil {
			return nil, err
		}
		infra.DB = &db.DB{DB: sqlDB}
		log.Info("database ready", "backend", cfg.Backend)

	case config.BackendMongo:
		database, disconnect, err := mongodb.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
		if err != nil {
			return nil, err
		}
		infra.Mongo = database
		infra.mongoClose = disconnect
		log.Info("database ready", "backend", cfg.Backend)
	}

	if cfg.SessionStore == config.SessionStoreRedis {
		redisClient, err := redis.New(cfg.Redis.Addr, cfg.Redis.Password)
		if err != nil {
			return nil, err
		}
		infra.Redis = redisClient
		log.Info("redis ready")
	}

	files, err := minio.New(ctx, cfg.Storage)
	if err != nil {
		return nil, err
	}
	infra.Files = files
	log.Info("object storage ready")

	return infra, nil
}

// Close releases whichever connections were opened.
func (i *Infra) Close() error {
	if i.Redis != nil {
		_ = i.Redis.Close()
	}
	if i.mongoClose != nil {
		_ = i.mongoClose()
	}
	if i.DB != nil {
		return i.DB.Close()
	}
	return nil
}

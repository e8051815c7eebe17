// Command dbcheck prints the configured backend's contents to the
// console: users (without hashes), the profile, and every entity
// table. Handy when diagnosing a deployment whose API responses look
// wrong.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/kiema2001/prof-mbinda-backend/internal/config"
	"github.com/kiema2001/prof-mbinda-backend/internal/db"
	"github.com/kiema2001/prof-mbinda-backend/internal/model"
	"github.com/kiema2001/prof-mbinda-backend/internal/mongodb"
	mongorepo "github.com/kiema2001/prof-mbinda-backend/internal/repository/mongodb"
	"github.com/kiema2001/prof-mbinda-backend/internal/repository/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	stores, cleanup, err := connect(ctx, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "connect:", err)
		os.Exit(1)
	}
	defer cleanup()

	if err := dump(ctx, cfg, stores); err != nil {
		fmt.Fprintln(os.Stderr, "dump:", err)
		os.Exit(1)
	}
}

func connect(ctx context.Context, cfg *config.Config) (model.Stores, func(), error) {
	if cfg.Backend == config.BackendMongo {
		database, disconnect, err := mongodb.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
		if err != nil {
			return model.Stores{}, nil, err
		}
		users, err := mongorepo.NewUserRepository(database)
		if err != nil {
			return model.Stores{}, nil, err
		}
		stores := model.Stores{
			Users:         users,
			Profile:       mongorepo.NewProfileRepository(database),
			Students:      mongorepo.NewStudentRepository(database),
			Publications:  mongorepo.NewPublicationRepository(database),
			Research:      mongorepo.NewResearchRepository(database),
			Notifications: mongorepo.NewNotificationRepository(database),
			Documents:     mongorepo.NewDocumentRepository(database),
		}
		return stores, func() { _ = disconnect() }, nil
	}

	sqlDB, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		return model.Stores{}, nil, err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return model.Stores{}, nil, err
	}
	pg := &db.DB{DB: sqlDB}
	stores := model.Stores{
		Users:         postgres.NewUserRepository(pg),
		Profile:       postgres.NewProfileRepository(pg),
		Students:      postgres.NewStudentRepository(pg),
		Publications:  postgres.NewPublicationRepository(pg),
		Research:      postgres.NewResearchRepository(pg),
		Notifications: postgres.NewNotificationRepository(pg),
		Documents:     postgres.NewDocumentRepository(pg),
	}
	return stores, func() { _ = sqlDB.Close() }, nil
}

func dump(ctx context.Context, cfg *config.Config, stores model.Stores) error {
	fmt.Printf("backend: %s\n\n", cfg.Backend)

	admin, err := stores.Users.GetByEmail(ctx, cfg.Admin.Email)
	switch {
	case err == model.ErrNotFound:
		fmt.Println("admin user: MISSING")
	case err != nil:
		return err
	default:
		fmt.Printf("admin user: %s <%s> (created %s)\n",
			admin.FullName, admin.Email, admin.CreatedAt.Format(time.RFC3339))
	}

	profile, err := stores.Profile.Get(ctx)
	if err != nil && err != model.ErrNotFound {
		return err
	}
	fmt.Printf("profile: bio=%d chars, contact=%d chars, photo=%q\n\n",
		len(profile.Bio), len(profile.Contact), profile.ProfilePhoto)

	students, err := stores.Students.List(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("students (%d):\n", len(students))
	for _, s := range students {
		fmt.Printf("  [%s] %s - %s (%s)\n", s.ID, s.Name, s.Degree, s.Type)
	}

	publications, err := stores.Publications.List(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("publications (%d):\n", len(publications))
	for _, p := range publications {
		fmt.Printf("  [%s] %d %s\n", p.ID, p.Year, p.Title)
	}

	research, err := stores.Research.List(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("research projects (%d):\n", len(research))
	for _, r := range research {
		fmt.Printf("  [%s] %s\n", r.ID, r.Title)
	}

	notifications, err := stores.Notifications.List(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("active notifications (%d):\n", len(notifications))
	for _, n := range notifications {
		fmt.Printf("  [%s] %s: %s\n", n.ID, n.Type, n.Title)
	}

	documents, err := stores.Documents.List(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("documents (%d):\n", len(documents))
	for _, d := range documents {
		fmt.Printf("  [%s] %s (%s, %d bytes)\n", d.ID, d.Title, d.FileType, d.FileSize)
	}

	return nil
}

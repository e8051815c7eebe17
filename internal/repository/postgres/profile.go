package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kiema2001/prof-mbinda-backend/internal/db"
	"github.com/kiema2001/prof-mbinda-backend/internal/model"
)

var _ model.ProfileStore = (*ProfileRepository)(nil)

// ProfileRepository manages the single professor_profile row (id = 1).
type ProfileRepository struct {
	db *db.DB
}

func NewProfileRepository(db *db.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) Get(ctx context.Context) (model.Profile, error) {
	var p model.Profile
	err := r.db.QueryRowContext(ctx, `
		SELECT bio, contact, profile_photo
		FROM professor_profile
		WHERE id = 1
	`).Scan(&p.Bio, &p.Contact, &p.ProfilePhoto)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Profile{}, model.ErrNotFound
		}
		return model.Profile{}, fmt.Errorf("failed to get profile: %w", err)
	}

	return p, nil
}

func (r *ProfileRepository) Upsert(ctx context.Context, p model.Profile) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO professor_profile (id, bio, contact, profile_photo, updated_at)
		VALUES (1, $1, $2, $3, NOW())
		ON CONFLICT (id) DO UPDATE
		SET bio = EXCLUDED.bio,
		    contact = EXCLUDED.contact,
		    profile_photo = EXCLUDED.profile_photo,
		    updated_at = NOW()
	`, p.Bio, p.Contact, p.ProfilePhoto)
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}

	return nil
}

package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/kiema2001/prof-mbinda-backend/internal/auth"
	"github.com/kiema2001/prof-mbinda-backend/internal/auth/credentials"
	"github.com/kiema2001/prof-mbinda-backend/internal/config"
	"github.com/kiema2001/prof-mbinda-backend/internal/logger"
	"github.com/kiema2001/prof-mbinda-backend/internal/model"
)

// provisionDefaults creates the admin credential and the empty profile
// on first start. Idempotent; existing records are left untouched.
func provisionDefaults(
	ctx context.Context,
	cfg *config.Config,
	stores model.Stores,
	log *logger.Logger,
) error {
	email := auth.NormalizeEmail(cfg.Admin.Email)

	_, err := stores.Users.GetByEmail(ctx, email)
	switch {
	case errors.Is(err, model.ErrNotFound):
		hash, err := credentials.HashPassword(cfg.Admin.Password)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}
		if _, err := stores.Users.Create(ctx, model.User{
			Email:        email,
			PasswordHash: hash,
			FullName:     cfg.Admin.Name,
		}); err != nil {
			return fmt.Errorf("failed to provision admin user: %w", err)
		}
		log.Info("admin user provisioned", "email", email)
	case err != nil:
		return fmt.Errorf("failed to check admin user: %w", err)
	}

	if _, err := stores.Profile.Get(ctx); errors.Is(err, model.ErrNotFound) {
		if err := stores.Profile.Upsert(ctx, model.Profile{}); err != nil {
			return fmt.Errorf("failed to provision profile: %w", err)
		}
		log.Info("empty profile provisioned")
	} else if err != nil {
		return fmt.Errorf("failed to check profile: %w", err)
	}

	return nil
}

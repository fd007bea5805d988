package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/derya/acadvault/internal/app/models"
	appRepos "github.com/derya/acadvault/internal/app/repositories"
	"github.com/derya/acadvault/internal/config"
	"github.com/derya/acadvault/internal/pkg/auth"
	"github.com/derya/acadvault/internal/pkg/dberrors"
)

// CreateDefaultData seeds the default administrator account and, when the
// catalog is empty, a starter set of programs.
func CreateDefaultData(ctx context.Context, cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	programRepo := appRepos.NewProgramRepository(dbPool)
	adminRepo := appRepos.NewAdminRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	// --- Default administrator account --- //
	if cfg.Admin.Email != "" && cfg.Admin.Password != "" {
		existing, err := adminRepo.GetByEmail(ctx, cfg.Admin.Email)
		if err != nil {
			lgr.Error().Err(err).Msg("Error checking if admin account exists")
			finalErr = errors.Join(finalErr, err)
		} else if existing == nil {
			lgr.Info().Str("email", cfg.Admin.Email).Msg("Creating default admin account...")

			hash, err := auth.HashPassword(cfg.Admin.Password)
			if err != nil {
				lgr.Error().Err(err).Msg("Error hashing admin password")
				finalErr = errors.Join(finalErr, err)
			} else {
				admin := &appModels.Admin{Email: cfg.Admin.Email, PasswordHash: hash}
				if err := adminRepo.Create(ctx, admin); err != nil {
					// Another instance may have seeded the account first.
					if !dberrors.IsUniqueViolation(err) {
						lgr.Error().Err(err).Msg("Error creating default admin account")
						finalErr = errors.Join(finalErr, err)
					}
				}
			}
		}
	} else {
		lgr.Warn().Msg("Admin credentials not configured, skipping admin seeding")
	}

	// --- Default programs (only when the catalog is empty) --- //
	count, err := programRepo.Count(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error counting programs")
		return errors.Join(finalErr, err)
	}
	if count > 0 {
		return finalErr
	}

	lgr.Info().Msg("Program catalog is empty, creating default programs...")

	defaultPrograms := []appModels.Program{
		{
			Name:            "B.Tech Computer Science",
			Type:            appModels.ProgramTypeUndergraduate,
			Specializations: []string{"Artificial Intelligence", "Data Science", "Cyber Security"},
			Semesters:       8,
		},
		{
			Name:            "B.Tech Mechanical Engineering",
			Type:            appModels.ProgramTypeUndergraduate,
			Specializations: []string{"Thermal Engineering", "Design"},
			Semesters:       8,
		},
		{
			Name:            "BBA",
			Type:            appModels.ProgramTypeUndergraduate,
			Specializations: []string{"Finance", "Marketing"},
			Semesters:       6,
		},
		{
			Name:            "M.Tech Computer Science",
			Type:            appModels.ProgramTypePostgraduate,
			Specializations: []string{"Machine Learning"},
			Semesters:       4,
		},
		{
			Name:            "MBA",
			Type:            appModels.ProgramTypePostgraduate,
			Specializations: []string{"Finance", "Human Resources", "Operations"},
			Semesters:       4,
		},
	}

	for i := range defaultPrograms {
		if err := programRepo.Create(ctx, &defaultPrograms[i]); err != nil {
			lgr.Error().Err(err).Str("program", defaultPrograms[i].Name).Msg("Error creating default program")
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}

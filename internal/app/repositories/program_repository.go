package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/derya/acadvault/internal/app/models"
)

// ProgramStore defines read access to programs
type ProgramStore interface {
	GetAll(ctx context.Context) ([]models.Program, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Program, error)
	Count(ctx context.Context) (int64, error)
}

// ProgramRepository handles database operations for programs
type ProgramRepository struct {
	db *pgxpool.Pool
}

// NewProgramRepository creates a new ProgramRepository
func NewProgramRepository(db *pgxpool.Pool) *ProgramRepository {
	return &ProgramRepository{db: db}
}

// GetAll retrieves all programs ordered by type (undergraduate first), then
// name; ties fall back to insertion order.
func (r *ProgramRepository) GetAll(ctx context.Context) ([]models.Program, error) {
	query := `
		SELECT id, name, type, specializations, semesters, created_at
		FROM programs
		ORDER BY CASE WHEN type = 'undergraduate' THEN 0 ELSE 1 END, name, created_at
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying programs: %w", err)
	}
	defer rows.Close()

	var programs []models.Program
	for rows.Next() {
		var p models.Program
		err := rows.Scan(&p.ID, &p.Name, &p.Type, &p.Specializations, &p.Semesters, &p.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning program row: %w", err)
		}
		programs = append(programs, p)
	}

	return programs, rows.Err()
}

// GetByID retrieves a program by ID, returning nil when it does not exist
func (r *ProgramRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Program, error) {
	query := `
		SELECT id, name, type, specializations, semesters, created_at
		FROM programs
		WHERE id = $1
	`

	var p models.Program
	err := r.db.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.Type, &p.Specializations, &p.Semesters, &p.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error getting program: %w", err)
	}

	return &p, nil
}

// Create inserts a program; used by the seeding process only
func (r *ProgramRepository) Create(ctx context.Context, program *models.Program) error {
	query := `
		INSERT INTO programs (name, type, specializations, semesters)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		program.Name,
		program.Type,
		program.Specializations,
		program.Semesters,
	).Scan(&program.ID, &program.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating program: %w", err)
	}

	return nil
}

// Count returns the number of programs
func (r *ProgramRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM programs`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting programs: %w", err)
	}
	return count, nil
}

package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/derya/acadvault/internal/app/models"
	"github.com/derya/acadvault/internal/pkg/apperrors"
	"github.com/derya/acadvault/internal/pkg/dberrors"
)

// ResourceStore defines database access to catalog resources
type ResourceStore interface {
	GetAll(ctx context.Context, filter *models.ResourceFilter) ([]models.Resource, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Resource, error)
	Create(ctx context.Context, resource *models.Resource) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

// ResourceRepository handles database operations for resources
type ResourceRepository struct {
	db *pgxpool.Pool
}

// NewResourceRepository creates a new ResourceRepository
func NewResourceRepository(db *pgxpool.Pool) *ResourceRepository {
	return &ResourceRepository{db: db}
}

// applyResourceFilter narrows a resource listing query. The semester
// condition applies only when the filter is scoped to a program; an
// unscoped semester is deliberately ignored (legacy query contract).
func applyResourceFilter(query squirrel.SelectBuilder, filter *models.ResourceFilter) squirrel.SelectBuilder {
	if filter == nil || filter.ProgramID == nil {
		return query
	}

	query = query.Where("r.program_id = ?", *filter.ProgramID)
	if filter.Semester != nil {
		query = query.Where("r.semester = ?", *filter.Semester)
	}
	return query
}

// GetAll retrieves resources with their owning program attached, most recent
// upload first; ties fall back to insertion order.
func (r *ResourceRepository) GetAll(ctx context.Context, filter *models.ResourceFilter) ([]models.Resource, error) {
	query := squirrel.Select(
		"r.id", "r.program_id", "r.semester", "r.title", "r.type",
		"r.file_url", "r.file_size", "r.upload_date", "r.uploaded_by", "r.created_at",
		"p.id", "p.name", "p.type", "p.specializations", "p.semesters", "p.created_at",
	).
		From("resources r").
		Join("programs p ON p.id = r.program_id").
		OrderBy("r.upload_date DESC", "r.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	query = applyResourceFilter(query, filter)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var resources []models.Resource
	for rows.Next() {
		var res models.Resource
		var prog models.Program
		err := rows.Scan(
			&res.ID, &res.ProgramID, &res.Semester, &res.Title, &res.Type,
			&res.FileURL, &res.FileSize, &res.UploadDate, &res.UploadedBy, &res.CreatedAt,
			&prog.ID, &prog.Name, &prog.Type, &prog.Specializations, &prog.Semesters, &prog.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning resource row: %w", err)
		}
		res.Program = &prog
		resources = append(resources, res)
	}

	return resources, rows.Err()
}

// GetByID retrieves a resource by ID, returning nil when it does not exist
func (r *ResourceRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Resource, error) {
	query := `
		SELECT id, program_id, semester, title, type, file_url, file_size, upload_date, uploaded_by, created_at
		FROM resources
		WHERE id = $1
	`

	var res models.Resource
	err := r.db.QueryRow(ctx, query, id).Scan(
		&res.ID, &res.ProgramID, &res.Semester, &res.Title, &res.Type,
		&res.FileURL, &res.FileSize, &res.UploadDate, &res.UploadedBy, &res.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error getting resource: %w", err)
	}

	return &res, nil
}

// Create inserts a resource row. The id and server-assigned timestamps are
// written back into the given struct.
func (r *ResourceRepository) Create(ctx context.Context, resource *models.Resource) error {
	query := `
		INSERT INTO resources (program_id, semester, title, type, file_url, file_size, uploaded_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, upload_date, created_at
	`

	err := r.db.QueryRow(ctx, query,
		resource.ProgramID,
		resource.Semester,
		resource.Title,
		resource.Type,
		resource.FileURL,
		resource.FileSize,
		resource.UploadedBy,
	).Scan(&resource.ID, &resource.UploadDate, &resource.CreatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err, "resources_program_id_fkey") {
			return apperrors.NewValidationError("unknown program")
		}
		return fmt.Errorf("error creating resource: %w", err)
	}

	return nil
}

// Delete removes a resource row. Deleting an absent id fails with not found;
// a second delete of the same id therefore fails too.
func (r *ResourceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM resources WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting resource: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}

// Count returns the number of resources
func (r *ResourceRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM resources`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting resources: %w", err)
	}
	return count, nil
}

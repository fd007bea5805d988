package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	ProgramRepository        *ProgramRepository
	ResourceRepository       *ResourceRepository
	DownloadRepository       *DownloadRepository
	ContactMessageRepository *ContactMessageRepository
	AdminRepository          *AdminRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		ProgramRepository:        NewProgramRepository(db),
		ResourceRepository:       NewResourceRepository(db),
		DownloadRepository:       NewDownloadRepository(db),
		ContactMessageRepository: NewContactMessageRepository(db),
		AdminRepository:          NewAdminRepository(db),
	}
}

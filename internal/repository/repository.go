package repository

import (
	"fmt"

	"github.com/SvyatElkind/race-report/internal/database"
)

// Repositories holds all repository implementations
type Repositories struct {
	Team   TeamRepository
	Driver DriverRepository
	Result ResultRepository
}

// NewRepositories creates and returns all repository implementations
func NewRepositories(db *database.DB) (*Repositories, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is required")
	}

	return &Repositories{
		Team:   NewPostgresTeamRepository(db),
		Driver: NewPostgresDriverRepository(db),
		Result: NewPostgresResultRepository(db),
	}, nil
}

package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/SvyatElkind/race-report/internal/models"
)

// memoryStore holds the shared state behind the in-memory
// repositories. It backs the service and HTTP tests, where spinning up
// PostgreSQL would buy nothing: the store is read-only after seeding
// either way.
type memoryStore struct {
	mu      sync.RWMutex
	teams   map[int]models.Team
	drivers map[string]models.Driver
	results []models.Result
}

// NewMemoryRepositories returns a Repositories bundle backed by a
// single in-memory store.
func NewMemoryRepositories() *Repositories {
	store := &memoryStore{
		teams:   make(map[int]models.Team),
		drivers: make(map[string]models.Driver),
	}
	return &Repositories{
		Team:   &memoryTeamRepository{store},
		Driver: &memoryDriverRepository{store},
		Result: &memoryResultRepository{store},
	}
}

type memoryTeamRepository struct {
	store *memoryStore
}

func (r *memoryTeamRepository) CreateBatch(ctx context.Context, teams []models.Team) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, t := range teams {
		r.store.teams[t.ID] = t
	}
	return nil
}

type memoryDriverRepository struct {
	store *memoryStore
}

func (r *memoryDriverRepository) CreateBatch(ctx context.Context, drivers []models.Driver) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, d := range drivers {
		r.store.drivers[d.ID] = d
	}
	return nil
}

func (r *memoryDriverRepository) Count(ctx context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return len(r.store.drivers), nil
}

func (r *memoryDriverRepository) ListOrderedByID(ctx context.Context) ([]models.DriverRow, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	rows := make([]models.DriverRow, 0, len(r.store.drivers))
	for _, d := range r.store.drivers {
		rows = append(rows, models.DriverRow{ID: d.ID, Name: d.Name, Surname: d.Surname})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })

	return rows, nil
}

func (r *memoryDriverRepository) GetDetail(ctx context.Context, id string) (*models.DriverDetail, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	driver, ok := r.store.drivers[id]
	if !ok {
		return nil, models.ErrNotFound
	}

	var laps []string
	for _, res := range r.store.results {
		if res.DriverID == id {
			laps = append(laps, res.LapTime)
		}
	}
	if len(laps) == 0 {
		return nil, models.ErrNotFound
	}
	sort.Strings(laps)

	return &models.DriverDetail{
		ID:      driver.ID,
		Name:    driver.Name,
		Surname: driver.Surname,
		Team:    r.store.teams[driver.TeamID].Name,
		LapTime: laps[0],
	}, nil
}

type memoryResultRepository struct {
	store *memoryStore
}

func (r *memoryResultRepository) CreateBatch(ctx context.Context, results []models.Result) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.results = append(r.store.results, results...)
	return nil
}

func (r *memoryResultRepository) JoinedReportRows(ctx context.Context) ([]models.ReportRow, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var rows []models.ReportRow
	for _, res := range r.store.results {
		driver, ok := r.store.drivers[res.DriverID]
		if !ok {
			continue
		}
		rows = append(rows, models.ReportRow{
			Name:    driver.Name,
			Surname: driver.Surname,
			Team:    r.store.teams[driver.TeamID].Name,
			LapTime: res.LapTime,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].LapTime < rows[j].LapTime })

	return rows, nil
}

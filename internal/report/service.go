// Package report implements the ranking report, the driver list and
// the single driver lookup over the repositories.
package report

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/SvyatElkind/race-report/internal/models"
	"github.com/SvyatElkind/race-report/internal/repository"
)

// OrderDesc is the only order value with a meaning of its own. Any
// other value, including absent, means ascending; there is no
// validation error for unknown values.
const OrderDesc = "desc"

// Provider is the read surface the HTTP handlers depend on.
type Provider interface {
	GetReport(ctx context.Context, order string) ([]models.ReportRow, error)
	GetDrivers(ctx context.Context, order string) ([]models.DriverRow, error)
	GetSingleDriver(ctx context.Context, driverID string) (*models.DriverDetail, error)
}

// Service computes reports directly from the repositories.
type Service struct {
	repos  *repository.Repositories
	logger *logrus.Logger
}

// NewService creates a new report service
func NewService(repos *repository.Repositories, logger *logrus.Logger) *Service {
	return &Service{
		repos:  repos,
		logger: logger,
	}
}

// GetReport returns the ranked race report. Rows are ranked ascending
// by the lap_time string and Place is the 1-based rank in that pass.
// A desc order reverses the rows only: Place values are deliberately
// not reindexed, so the fastest driver keeps place 1 at the end of the
// reversed list.
func (s *Service) GetReport(ctx context.Context, order string) ([]models.ReportRow, error) {
	rows, err := s.repos.Result.JoinedReportRows(ctx)
	if err != nil {
		return nil, err
	}

	for i := range rows {
		rows[i].Place = i + 1
	}

	if order == OrderDesc {
		reverse(rows)
	}

	return rows, nil
}

// GetDrivers returns all drivers ordered by abbreviation code,
// reversed when order is desc.
func (s *Service) GetDrivers(ctx context.Context, order string) ([]models.DriverRow, error) {
	rows, err := s.repos.Driver.ListOrderedByID(ctx)
	if err != nil {
		return nil, err
	}

	if order == OrderDesc {
		reverse(rows)
	}

	return rows, nil
}

// GetSingleDriver returns one driver's detail record. The lookup is
// case-insensitive: the id is upper-cased before matching. Returns
// models.ErrNotFound when no driver matches.
func (s *Service) GetSingleDriver(ctx context.Context, driverID string) (*models.DriverDetail, error) {
	return s.repos.Driver.GetDetail(ctx, strings.ToUpper(driverID))
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

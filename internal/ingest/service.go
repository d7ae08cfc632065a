package ingest

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/SvyatElkind/race-report/internal/metrics"
	"github.com/SvyatElkind/race-report/internal/repository"
)

// Files names the three ingestion inputs.
type Files struct {
	Abbreviations string
	StartLog      string
	EndLog        string
}

// Seeder performs the one-time ingestion of drivers, teams and results
// at first startup. After it runs the store is read-only for the
// lifetime of the process.
type Seeder struct {
	repos  *repository.Repositories
	files  Files
	logger *logrus.Logger
}

// NewSeeder creates a new seeder
func NewSeeder(repos *repository.Repositories, files Files, logger *logrus.Logger) *Seeder {
	return &Seeder{
		repos:  repos,
		files:  files,
		logger: logger,
	}
}

// Seed populates the store from the data files unless drivers are
// already present.
func (s *Seeder) Seed(ctx context.Context) error {
	count, err := s.repos.Driver.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to check for existing data: %w", err)
	}
	if count > 0 {
		s.logger.WithField("drivers", count).Debug("Store already populated, skipping ingestion")
		return nil
	}

	abbrFile, err := os.Open(s.files.Abbreviations)
	if err != nil {
		return fmt.Errorf("failed to open abbreviations file: %w", err)
	}
	defer abbrFile.Close()

	teams, drivers, err := ParseAbbreviations(abbrFile)
	if err != nil {
		return err
	}

	starts, err := s.parseLog(s.files.StartLog)
	if err != nil {
		return err
	}
	ends, err := s.parseLog(s.files.EndLog)
	if err != nil {
		return err
	}

	results, err := BuildResults(starts, ends)
	if err != nil {
		return err
	}

	if err := s.repos.Team.CreateBatch(ctx, teams); err != nil {
		return err
	}
	if err := s.repos.Driver.CreateBatch(ctx, drivers); err != nil {
		return err
	}
	if err := s.repos.Result.CreateBatch(ctx, results); err != nil {
		return err
	}

	metrics.RecordIngestedRecords("teams", len(teams))
	metrics.RecordIngestedRecords("drivers", len(drivers))
	metrics.RecordIngestedRecords("results", len(results))

	s.logger.WithFields(logrus.Fields{
		"teams":   len(teams),
		"drivers": len(drivers),
		"results": len(results),
	}).Info("Store seeded from timing logs")

	return nil
}

func (s *Seeder) parseLog(path string) ([]TimeEntry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	defer file.Close()

	return ParseTimeLog(file)
}

package ingest

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/SvyatElkind/race-report/internal/models"
)

// ParseAbbreviations reads the abbreviations file: one driver per line
// in the form "ID_Full Name_TEAM NAME". Team ids are assigned 1..n in
// order of first appearance; blank lines are skipped.
func ParseAbbreviations(r io.Reader) ([]models.Team, []models.Driver, error) {
	teamIDs := make(map[string]int)
	var teams []models.Team
	var drivers []models.Driver

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Split(line, "_")
		if len(parts) != 3 {
			return nil, nil, fmt.Errorf("malformed abbreviation line %q", line)
		}
		driverID, fullname, teamName := parts[0], parts[1], parts[2]

		teamID, ok := teamIDs[teamName]
		if !ok {
			teamID = len(teamIDs) + 1
			teamIDs[teamName] = teamID
			teams = append(teams, models.Team{ID: teamID, Name: teamName})
		}

		name, surname, ok := strings.Cut(fullname, " ")
		if !ok {
			return nil, nil, fmt.Errorf("malformed driver name %q", fullname)
		}

		drivers = append(drivers, models.Driver{
			ID:      driverID,
			Name:    name,
			Surname: surname,
			TeamID:  teamID,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to read abbreviations: %w", err)
	}

	return teams, drivers, nil
}

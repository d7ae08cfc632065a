// Package models defines the race timing entities and shared errors.
package models

import "time"

// Team represents a row in the teams table. Teams are created once
// during ingestion and never modified afterwards.
type Team struct {
	ID   int
	Name string
}

// Driver represents a row in the drivers table. The ID is the 3-letter
// abbreviation code and is the natural key used in lookups.
type Driver struct {
	ID      string
	Name    string
	Surname string
	TeamID  int
}

// Result represents a row in the results table. LapTime is the
// pre-formatted duration string derived at ingestion time; ranking
// compares these strings, not the underlying timestamps.
type Result struct {
	ID        int
	DriverID  string
	StartTime time.Time
	EndTime   time.Time
	LapTime   string
}

// DriverRow is a driver list entry: a projection of Driver without the
// team reference.
type DriverRow struct {
	ID      string
	Name    string
	Surname string
}

// DriverDetail is a single driver joined with its team and result.
type DriverDetail struct {
	ID      string
	Name    string
	Surname string
	Team    string
	LapTime string
}

// ReportRow is a report entry joining a driver, its team and its
// result. Place is assigned during the ascending ranking pass and is
// never recomputed when the report is reversed.
type ReportRow struct {
	Name    string
	Surname string
	Team    string
	LapTime string
	Place   int
}

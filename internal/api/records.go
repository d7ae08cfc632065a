package api

import (
	"github.com/SvyatElkind/race-report/internal/models"
	"github.com/SvyatElkind/race-report/internal/render"
)

// Field order in these conversions is the published field order of
// every response, in both JSON and XML.

func reportRecords(rows []models.ReportRow) []render.Record {
	records := make([]render.Record, len(rows))
	for i, row := range rows {
		records[i] = render.Record{
			{Name: "name", Value: row.Name},
			{Name: "surname", Value: row.Surname},
			{Name: "team", Value: row.Team},
			{Name: "lap_time", Value: row.LapTime},
			{Name: "place", Value: row.Place},
		}
	}
	return records
}

func driverRecords(rows []models.DriverRow) []render.Record {
	records := make([]render.Record, len(rows))
	for i, row := range rows {
		records[i] = render.Record{
			{Name: "id", Value: row.ID},
			{Name: "name", Value: row.Name},
			{Name: "surname", Value: row.Surname},
		}
	}
	return records
}

func driverDetailRecord(detail *models.DriverDetail) render.Record {
	return render.Record{
		{Name: "id", Value: detail.ID},
		{Name: "name", Value: detail.Name},
		{Name: "surname", Value: detail.Surname},
		{Name: "team", Value: detail.Team},
		{Name: "lap_time", Value: detail.LapTime},
	}
}

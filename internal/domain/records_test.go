package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRobotRecord() RobotDailyRecord {
	return RobotDailyRecord{
		Date:               NewDate(2026, 10, 17),
		TotalEmails:        192,
		ProcessedByRobot:   161,
		CorrectlyProcessed: 148,
		RedirectedToStaff:  13,
		InterdepAgreements: 51,
		InterdepProcessed:  45,
	}
}

func TestRobotDailyRecord_Validate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*RobotDailyRecord)
		wantField string
	}{
		{"valid", func(r *RobotDailyRecord) {}, ""},
		{"all zero", func(r *RobotDailyRecord) { *r = RobotDailyRecord{} }, ""},
		{"negative total", func(r *RobotDailyRecord) { r.TotalEmails = -1 }, "total_emails"},
		{"processed above total", func(r *RobotDailyRecord) { r.ProcessedByRobot = 200 }, "processed_by_robot"},
		{"correct above processed", func(r *RobotDailyRecord) { r.CorrectlyProcessed = 162 }, "correctly_processed"},
		{"redirected above processed", func(r *RobotDailyRecord) { r.RedirectedToStaff = 170 }, "redirected_to_staff"},
		{"interdep above agreements", func(r *RobotDailyRecord) { r.InterdepProcessed = 52 }, "interdep_processed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRobotRecord()
			tt.modify(&r)

			err := r.Validate(3)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var invalid *InvalidInputError
			require.True(t, errors.As(err, &invalid), "got %v", err)
			assert.Equal(t, tt.wantField, invalid.Field)
			assert.Equal(t, 3, invalid.Index)
		})
	}
}

func TestRobotDailyRecord_Distribution(t *testing.T) {
	d := validRobotRecord().Distribution()

	assert.Equal(t, 148, d.RobotOnly)
	assert.Equal(t, 13, d.Redirected)
	assert.Equal(t, 31, d.NotProcessed)
	assert.Equal(t, 192, d.Total())
}

func TestNpaDocumentRecord_Validate(t *testing.T) {
	rate := func(v float64) *float64 { return &v }

	tests := []struct {
		name      string
		rec       NpaDocumentRecord
		wantField string
	}{
		{"valid", NpaDocumentRecord{DocumentName: "НПА-001", ChangesCount: 23, ImplementedCount: 18}, ""},
		{"valid with rate", NpaDocumentRecord{DocumentName: "НПА-001", ChangesCount: 23, ImplementedCount: 18, ImplementationRate: rate(78.3)}, ""},
		{"no changes", NpaDocumentRecord{DocumentName: "НПА-009"}, ""},
		{"empty name", NpaDocumentRecord{ChangesCount: 1}, "document_name"},
		{"negative changes", NpaDocumentRecord{DocumentName: "x", ChangesCount: -1}, "changes_count"},
		{"implemented above changes", NpaDocumentRecord{DocumentName: "x", ChangesCount: 3, ImplementedCount: 4}, "implemented_count"},
		{"rate above 100", NpaDocumentRecord{DocumentName: "x", ChangesCount: 3, ImplementationRate: rate(100.1)}, "implementation_rate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rec.Validate(0)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var invalid *InvalidInputError
			require.True(t, errors.As(err, &invalid), "got %v", err)
			assert.Equal(t, tt.wantField, invalid.Field)
		})
	}
}

func TestParseReportType(t *testing.T) {
	rt, err := ParseReportType("robot")
	require.NoError(t, err)
	assert.Equal(t, ReportRobot, rt)

	rt, err = ParseReportType("npa")
	require.NoError(t, err)
	assert.Equal(t, ReportNpa, rt)

	_, err = ParseReportType("sales")
	var invalid *InvalidInputError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "report", invalid.Field)
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "invalid input: row 2: total_emails: must not be negative",
		NewInvalidRow(2, "total_emails", "must not be negative").Error())
	assert.Equal(t, "invalid input: start_date: start date is after end date",
		NewInvalidField("start_date", "start date is after end date").Error())
	assert.Equal(t, "empty input: robot daily records", (&EmptyInputError{What: "robot daily records"}).Error())
}

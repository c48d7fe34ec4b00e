// Путь: internal/repository/static/source.go
package static

import (
	"context"
	"time"

	"robot-npa-dashboard/internal/domain"
	repoInterface "robot-npa-dashboard/internal/repository/interface"
)

// Демонстрационные показатели робота за семь дней, от старых к новым
var robotRows = []struct {
	total, processed, correct, redirected, agreements, interdepProcessed int
}{
	{156, 132, 120, 12, 45, 40},
	{189, 158, 145, 13, 52, 46},
	{143, 118, 105, 13, 38, 32},
	{201, 167, 150, 17, 58, 50},
	{178, 152, 140, 12, 49, 44},
	{165, 138, 125, 13, 44, 39},
	{192, 161, 148, 13, 51, 45},
}

// Демонстрационные документы НПА с заранее посчитанным процентом внедрения
var npaRows = []struct {
	name        string
	changes     int
	implemented int
	rate        float64
}{
	{"НПА-001", 23, 18, 78.3},
	{"НПА-002", 18, 15, 83.3},
	{"НПА-003", 35, 28, 80.0},
	{"НПА-004", 12, 8, 66.7},
	{"НПА-005", 28, 22, 78.6},
}

// Source - источник с зашитыми в код данными.
// Последняя строка робота приходится на "сегодня" по часам now.
type Source struct {
	now func() time.Time
}

// NewSource создает источник; now == nil означает time.Now
func NewSource(now func() time.Time) repoInterface.ReportSource {
	if now == nil {
		now = time.Now
	}
	return &Source{now: now}
}

// RobotDaily возвращает дни, попавшие в интервал
func (s *Source) RobotDaily(ctx context.Context, rng domain.DateRange) ([]domain.RobotDailyRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	today := domain.DateOf(s.now())
	first := today.AddDays(-(len(robotRows) - 1))

	records := make([]domain.RobotDailyRecord, 0, len(robotRows))
	for i, row := range robotRows {
		date := first.AddDays(i)
		if !rng.Contains(date) {
			continue
		}
		records = append(records, domain.RobotDailyRecord{
			Date:               date,
			TotalEmails:        row.total,
			ProcessedByRobot:   row.processed,
			CorrectlyProcessed: row.correct,
			RedirectedToStaff:  row.redirected,
			InterdepAgreements: row.agreements,
			InterdepProcessed:  row.interdepProcessed,
		})
	}

	return records, nil
}

// NpaDocuments возвращает все документы
func (s *Source) NpaDocuments(ctx context.Context) ([]domain.NpaDocumentRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	records := make([]domain.NpaDocumentRecord, len(npaRows))
	for i, row := range npaRows {
		rate := row.rate
		records[i] = domain.NpaDocumentRecord{
			DocumentName:       row.name,
			ChangesCount:       row.changes,
			ImplementedCount:   row.implemented,
			ImplementationRate: &rate,
		}
	}

	return records, nil
}

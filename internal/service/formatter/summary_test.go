package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"robot-npa-dashboard/internal/domain"
)

func robotReport() *domain.RobotReport {
	first := domain.RobotDailyMetrics{
		RobotDailyRecord: domain.RobotDailyRecord{
			Date:               domain.NewDate(2026, 10, 16),
			TotalEmails:        165,
			ProcessedByRobot:   138,
			CorrectlyProcessed: 125,
			RedirectedToStaff:  13,
			InterdepAgreements: 44,
			InterdepProcessed:  39,
		},
		ProcessedPercent:      83.6,
		RobotProcessedPercent: 75.8,
		CorrectPercent:        90.6,
		InterdepPercent:       88.6,
	}
	latest := domain.RobotDailyMetrics{
		RobotDailyRecord: domain.RobotDailyRecord{
			Date:               domain.NewDate(2026, 10, 17),
			TotalEmails:        192,
			ProcessedByRobot:   161,
			CorrectlyProcessed: 148,
			RedirectedToStaff:  13,
			InterdepAgreements: 51,
			InterdepProcessed:  45,
		},
		ProcessedPercent:      83.9,
		RobotProcessedPercent: 77.1,
		CorrectPercent:        91.9,
		InterdepPercent:       88.2,
	}

	return &domain.RobotReport{
		Range:  domain.DateRange{Start: domain.NewDate(2026, 10, 16), End: domain.NewDate(2026, 10, 17)},
		Days:   []domain.RobotDailyMetrics{first, latest},
		Latest: latest,
	}
}

func TestFormatRobot(t *testing.T) {
	f, err := NewSummaryFormatter()
	require.NoError(t, err)

	out, err := f.FormatRobot(robotReport())
	require.NoError(t, err)

	assert.Contains(t, out, "2026-10-16 — 2026-10-17")
	assert.Contains(t, out, "Всего писем: 192")
	assert.Contains(t, out, "Обработано: 83.9%")
	assert.Contains(t, out, "Расписано роботом: 77.1%")
	assert.Contains(t, out, "Верно расписано: 91.9%")
	assert.Contains(t, out, "Эффективность межвед.: 88.2%")
	assert.Contains(t, out, "2026-10-16: писем 165, обработано 83.6%, верно 90.6%")
	assert.Equal(t, 2, strings.Count(out, "писем 1"))
}

func TestFormatNpa(t *testing.T) {
	f, err := NewSummaryFormatter()
	require.NoError(t, err)

	out, err := f.FormatNpa(&domain.NpaReport{
		Documents: []domain.NpaDocument{
			{DocumentName: "НПА-003", ChangesCount: 35, ImplementedCount: 28, ImplementationRate: 80},
		},
		Summary: domain.NpaSummary{
			TotalDocuments:            1,
			TotalChanges:              35,
			TotalImplemented:          28,
			NotImplemented:            7,
			AverageImplementationRate: 80,
		},
	})
	require.NoError(t, err)

	assert.Contains(t, out, "Документов НПА: 1")
	assert.Contains(t, out, "Внедрено изменений: 28 из 35")
	assert.Contains(t, out, "Средняя эффективность: 80.0%")
	assert.Contains(t, out, "НПА-003: 28/35 (80.0%)")
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "77.4", Percent(77.4))
	assert.Equal(t, "0.0", Percent(0))
}

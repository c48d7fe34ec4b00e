package charts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"robot-npa-dashboard/internal/domain"
)

func week() []domain.RobotDailyMetrics {
	totals := []int{156, 189, 143, 201, 178, 165, 192}
	days := make([]domain.RobotDailyMetrics, len(totals))
	for i, total := range totals {
		days[i] = domain.RobotDailyMetrics{
			RobotDailyRecord: domain.RobotDailyRecord{
				Date:               domain.NewDate(2026, 10, 11).AddDays(i),
				TotalEmails:        total,
				ProcessedByRobot:   total * 8 / 10,
				CorrectlyProcessed: total * 7 / 10,
			},
			ProcessedPercent: 80,
			CorrectPercent:   87.5,
		}
	}
	return days
}

func TestRobotTrend(t *testing.T) {
	svg, err := NewRenderer(640, 360).RobotTrend(week())
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")
	assert.Contains(t, string(svg), "Всего писем")
}

func TestRobotEfficiency(t *testing.T) {
	svg, err := NewRenderer(640, 360).RobotEfficiency(week())
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")
}

func TestLineCharts_SingleDay(t *testing.T) {
	r := NewRenderer(640, 360)

	_, err := r.RobotTrend(week()[:1])
	assert.ErrorIs(t, err, ErrNotEnoughData)

	_, err = r.RobotEfficiency(nil)
	assert.ErrorIs(t, err, ErrNotEnoughData)
}

func TestRobotTrend_AllZero(t *testing.T) {
	days := week()[:2]
	for i := range days {
		days[i].TotalEmails, days[i].ProcessedByRobot, days[i].CorrectlyProcessed = 0, 0, 0
	}

	svg, err := NewRenderer(640, 360).RobotTrend(days)
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")
}

func TestEmailDistribution(t *testing.T) {
	svg, err := NewRenderer(640, 360).EmailDistribution(domain.EmailDistribution{
		RobotOnly: 148, Redirected: 13, NotProcessed: 31,
	})
	require.NoError(t, err)
	assert.Contains(t, string(svg), "Обработано роботом (148)")
}

func TestEmailDistribution_Empty(t *testing.T) {
	_, err := NewRenderer(640, 360).EmailDistribution(domain.EmailDistribution{})
	assert.ErrorIs(t, err, ErrNotEnoughData)
}

func TestNpaCharts(t *testing.T) {
	r := NewRenderer(640, 360)

	svg, err := r.NpaStatus(domain.NpaSummary{TotalImplemented: 91, NotImplemented: 25})
	require.NoError(t, err)
	assert.Contains(t, string(svg), "Внедрено (91)")

	svg, err = r.NpaRates([]domain.NpaDocument{
		{DocumentName: "НПА-001", ImplementationRate: 78.3},
		{DocumentName: "НПА-002", ImplementationRate: 83.3},
	})
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")

	_, err = r.NpaRates(nil)
	assert.ErrorIs(t, err, ErrNotEnoughData)
}

func TestNpaStatus_SingleSliceKeepsColor(t *testing.T) {
	svg, err := NewRenderer(640, 360).NpaStatus(domain.NpaSummary{TotalImplemented: 10})
	require.NoError(t, err)

	assert.Contains(t, string(svg), "fill:rgba(39,174,96,1.0)")
	assert.NotContains(t, string(svg), "rgba(106,195,203")
}

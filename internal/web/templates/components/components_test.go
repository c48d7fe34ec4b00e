package components

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"robot-npa-dashboard/internal/domain"
	"robot-npa-dashboard/internal/web/templates"
)

func TestRobotCards(t *testing.T) {
	cards := RobotCards(&domain.RobotReport{Latest: domain.RobotDailyMetrics{
		RobotDailyRecord: domain.RobotDailyRecord{
			TotalEmails:        192,
			RedirectedToStaff:  13,
			InterdepAgreements: 51,
		},
		ProcessedPercent:      83.9,
		RobotProcessedPercent: 77.1,
		CorrectPercent:        91.9,
		InterdepPercent:       88.2,
	}})

	require.Len(t, cards, 7)
	values := make([]string, len(cards))
	for i, c := range cards {
		values[i] = c.Value
	}
	assert.Equal(t, []string{"192", "83.9%", "77.1%", "91.9%", "13", "51", "88.2%"}, values)
}

func TestNpaCards(t *testing.T) {
	cards := NpaCards(&domain.NpaReport{Summary: domain.NpaSummary{
		TotalDocuments:            5,
		TotalImplemented:          91,
		AverageImplementationRate: 77.4,
	}})

	require.Len(t, cards, 3)
	assert.Equal(t, "5", cards[0].Value)
	assert.Equal(t, "91", cards[1].Value)
	assert.Equal(t, "77.4%", cards[2].Value)
}

func TestReport_RendersSVGAndPlaceholder(t *testing.T) {
	var buf bytes.Buffer
	err := Report(
		[]templates.Card{{Icon: "📄", Value: "5", Label: "Документов НПА", Color: "3498db"}},
		[]templates.Chart{
			{Title: "Статус", SVG: []byte(`<svg id="pie"></svg>`)},
			{Title: "Динамика", Placeholder: "Недостаточно данных", Wide: true},
		},
	).Render(context.Background(), &buf)
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, `<h3 style="color: #3498db;">5</h3>`)
	assert.Contains(t, html, `<svg id="pie"></svg>`)
	assert.Contains(t, html, `class="chart chart-wide"`)
	assert.Contains(t, html, `Недостаточно данных`)
}

func TestNpaTable(t *testing.T) {
	var buf bytes.Buffer
	err := NpaTable([]domain.NpaDocument{
		{DocumentName: "НПА-<1>", ChangesCount: 12, ImplementedCount: 8, ImplementationRate: 66.7},
	}).Render(context.Background(), &buf)
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, "НПА-&lt;1&gt;")
	assert.Contains(t, html, "<td>66.7%</td>")
}

// Путь: internal/web/templates/components/reports.go
package components

import (
	"strconv"

	"github.com/a-h/templ"

	"robot-npa-dashboard/internal/domain"
	"robot-npa-dashboard/internal/service/formatter"
	"robot-npa-dashboard/internal/web/templates"
)

// RobotCards - KPI последнего дня периода
func RobotCards(report *domain.RobotReport) []templates.Card {
	l := report.Latest
	return []templates.Card{
		{Icon: "📨", Value: strconv.Itoa(l.TotalEmails), Label: "Всего писем", Color: "3498db"},
		{Icon: "🔧", Value: percent(l.ProcessedPercent), Label: "Обработано", Color: "27ae60"},
		{Icon: "🤖", Value: percent(l.RobotProcessedPercent), Label: "Расписано роботом", Color: "2980b9"},
		{Icon: "✅", Value: percent(l.CorrectPercent), Label: "Верно расписано", Color: "27ae60"},
		{Icon: "🔄", Value: strconv.Itoa(l.RedirectedToStaff), Label: "Перенаправлено", Color: "f39c12"},
		{Icon: "🤝", Value: strconv.Itoa(l.InterdepAgreements), Label: "Межведомственные", Color: "9b59b6"},
		{Icon: "📊", Value: percent(l.InterdepPercent), Label: "Эффективность межвед.", Color: "2980b9"},
	}
}

// NpaCards - агрегаты по НПА
func NpaCards(report *domain.NpaReport) []templates.Card {
	s := report.Summary
	return []templates.Card{
		{Icon: "📄", Value: strconv.Itoa(s.TotalDocuments), Label: "Документов НПА", Color: "3498db"},
		{Icon: "✅", Value: strconv.Itoa(s.TotalImplemented), Label: "Внедрено изменений", Color: "27ae60"},
		{Icon: "📊", Value: percent(s.AverageImplementationRate), Label: "Средняя эффективность", Color: "2980b9"},
	}
}

// cardStyle окрашивает значение карточки
func cardStyle(c templates.Card) templ.SafeCSS {
	return templ.SafeCSS("color: #" + c.Color)
}

func percent(v float64) string {
	return formatter.Percent(v) + "%"
}

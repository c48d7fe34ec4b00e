// Путь: internal/service/formatter/summary.go
package formatter

import (
	"fmt"

	"github.com/osteele/liquid"

	"robot-npa-dashboard/internal/domain"
)

const robotSummaryTemplate = `🤖 Отчет по роботу за период {{ start }} — {{ end }}
Последний день: {{ latest.date }}
📨 Всего писем: {{ latest.total }}
🔧 Обработано: {{ latest.processed }}%
🤖 Расписано роботом: {{ latest.robot }}%
✅ Верно расписано: {{ latest.correct }}%
🔄 Перенаправлено: {{ latest.redirected }}
🤝 Межведомственные: {{ latest.agreements }}
📊 Эффективность межвед.: {{ latest.interdep }}%

По дням:
{% for d in days %}  {{ d.date }}: писем {{ d.total }}, обработано {{ d.processed }}%, верно {{ d.correct }}%
{% endfor %}`

const npaSummaryTemplate = `📈 Отчет по НПА
📄 Документов НПА: {{ total_documents }}
✅ Внедрено изменений: {{ total_implemented }} из {{ total_changes }}
📊 Средняя эффективность: {{ average_rate }}%

По документам:
{% for d in documents %}  {{ d.name }}: {{ d.implemented }}/{{ d.changes }} ({{ d.rate }}%)
{% endfor %}`

// SummaryFormatter форматирует текстовые сводки отчетов
type SummaryFormatter struct {
	robot *liquid.Template
	npa   *liquid.Template
}

// NewSummaryFormatter разбирает шаблоны сводок
func NewSummaryFormatter() (*SummaryFormatter, error) {
	engine := liquid.NewEngine()

	robot, err := engine.ParseString(robotSummaryTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse robot template: %w", err)
	}

	npa, err := engine.ParseString(npaSummaryTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse npa template: %w", err)
	}

	return &SummaryFormatter{robot: robot, npa: npa}, nil
}

// FormatRobot форматирует отчет по роботу
func (f *SummaryFormatter) FormatRobot(report *domain.RobotReport) (string, error) {
	days := make([]map[string]interface{}, 0, len(report.Days))
	for _, d := range report.Days {
		days = append(days, robotDayBindings(d))
	}

	out, err := f.robot.RenderString(liquid.Bindings{
		"start":  report.Range.Start.String(),
		"end":    report.Range.End.String(),
		"latest": robotDayBindings(report.Latest),
		"days":   days,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render robot summary: %w", err)
	}
	return out, nil
}

// FormatNpa форматирует отчет по НПА
func (f *SummaryFormatter) FormatNpa(report *domain.NpaReport) (string, error) {
	documents := make([]map[string]interface{}, 0, len(report.Documents))
	for _, d := range report.Documents {
		documents = append(documents, map[string]interface{}{
			"name":        d.DocumentName,
			"changes":     d.ChangesCount,
			"implemented": d.ImplementedCount,
			"rate":        Percent(d.ImplementationRate),
		})
	}

	s := report.Summary
	out, err := f.npa.RenderString(liquid.Bindings{
		"total_documents":   s.TotalDocuments,
		"total_implemented": s.TotalImplemented,
		"total_changes":     s.TotalChanges,
		"average_rate":      Percent(s.AverageImplementationRate),
		"documents":         documents,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render npa summary: %w", err)
	}
	return out, nil
}

// Percent форматирует процент с одним знаком после запятой
func Percent(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

func robotDayBindings(d domain.RobotDailyMetrics) map[string]interface{} {
	return map[string]interface{}{
		"date":       d.Date.String(),
		"total":      d.TotalEmails,
		"redirected": d.RedirectedToStaff,
		"agreements": d.InterdepAgreements,
		"processed":  Percent(d.ProcessedPercent),
		"robot":      Percent(d.RobotProcessedPercent),
		"correct":    Percent(d.CorrectPercent),
		"interdep":   Percent(d.InterdepPercent),
	}
}

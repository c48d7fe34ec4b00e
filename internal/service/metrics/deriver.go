// Путь: internal/service/metrics/deriver.go
package metrics

import (
	"math"

	"robot-npa-dashboard/internal/domain"
)

// Round1 округляет до одного знака после запятой, половина - от нуля
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Percent возвращает part/whole*100 с одним знаком; при нулевом знаменателе 0
func Percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return Round1(float64(part) / float64(whole) * 100)
}

// DeriveRobot вычисляет проценты для каждого дня.
// Вход проверяется целиком до начала вычислений: при ошибке результат nil.
func DeriveRobot(records []domain.RobotDailyRecord) ([]domain.RobotDailyMetrics, error) {
	if len(records) == 0 {
		return nil, &domain.EmptyInputError{What: "robot daily records"}
	}

	for i, r := range records {
		if err := r.Validate(i); err != nil {
			return nil, err
		}
		// Одна строка на день, по возрастанию даты
		if i > 0 && !r.Date.After(records[i-1].Date.Time) {
			return nil, domain.NewInvalidRow(i, "date", "dates must be strictly increasing")
		}
	}

	out := make([]domain.RobotDailyMetrics, len(records))
	for i, r := range records {
		out[i] = domain.RobotDailyMetrics{
			RobotDailyRecord:      r,
			ProcessedPercent:      Percent(r.ProcessedByRobot, r.TotalEmails),
			RobotProcessedPercent: Percent(r.ProcessedByRobot-r.RedirectedToStaff, r.TotalEmails),
			CorrectPercent:        Percent(r.CorrectlyProcessed, r.ProcessedByRobot),
			InterdepPercent:       Percent(r.InterdepProcessed, r.InterdepAgreements),
		}
	}

	return out, nil
}

// DeriveNpa подставляет процент внедрения: переданный извне или вычисленный
func DeriveNpa(records []domain.NpaDocumentRecord) ([]domain.NpaDocument, error) {
	if len(records) == 0 {
		return nil, &domain.EmptyInputError{What: "npa documents"}
	}

	seen := make(map[string]struct{}, len(records))
	for i, r := range records {
		if err := r.Validate(i); err != nil {
			return nil, err
		}
		if _, dup := seen[r.DocumentName]; dup {
			return nil, domain.NewInvalidRow(i, "document_name", "duplicate document "+r.DocumentName)
		}
		seen[r.DocumentName] = struct{}{}
	}

	out := make([]domain.NpaDocument, len(records))
	for i, r := range records {
		rate := Percent(r.ImplementedCount, r.ChangesCount)
		if r.ImplementationRate != nil {
			rate = Round1(*r.ImplementationRate)
		}
		out[i] = domain.NpaDocument{
			DocumentName:       r.DocumentName,
			ChangesCount:       r.ChangesCount,
			ImplementedCount:   r.ImplementedCount,
			ImplementationRate: rate,
		}
	}

	return out, nil
}

// SummarizeNpa считает агрегаты отчета по НПА
func SummarizeNpa(docs []domain.NpaDocument) (domain.NpaSummary, error) {
	if len(docs) == 0 {
		return domain.NpaSummary{}, &domain.EmptyInputError{What: "npa documents"}
	}

	var summary domain.NpaSummary
	var rateSum float64
	for _, d := range docs {
		summary.TotalChanges += d.ChangesCount
		summary.TotalImplemented += d.ImplementedCount
		rateSum += d.ImplementationRate
	}

	summary.TotalDocuments = len(docs)
	summary.NotImplemented = summary.TotalChanges - summary.TotalImplemented
	summary.AverageImplementationRate = Round1(rateSum / float64(len(docs)))

	return summary, nil
}

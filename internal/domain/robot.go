package domain

// RobotDailyRecord - исходные показатели робота за один день
type RobotDailyRecord struct {
	Date               Date `json:"date"`
	TotalEmails        int  `json:"total_emails"`
	ProcessedByRobot   int  `json:"processed_by_robot"`
	CorrectlyProcessed int  `json:"correctly_processed"`
	RedirectedToStaff  int  `json:"redirected_to_staff"`
	InterdepAgreements int  `json:"interdep_agreements"`
	InterdepProcessed  int  `json:"interdep_processed"`
}

// Validate проверяет ограничения на счетчики строки index
func (r RobotDailyRecord) Validate(index int) error {
	counts := []struct {
		field string
		value int
	}{
		{"total_emails", r.TotalEmails},
		{"processed_by_robot", r.ProcessedByRobot},
		{"correctly_processed", r.CorrectlyProcessed},
		{"redirected_to_staff", r.RedirectedToStaff},
		{"interdep_agreements", r.InterdepAgreements},
		{"interdep_processed", r.InterdepProcessed},
	}
	for _, c := range counts {
		if c.value < 0 {
			return NewInvalidRow(index, c.field, "must not be negative")
		}
	}

	if r.ProcessedByRobot > r.TotalEmails {
		return NewInvalidRow(index, "processed_by_robot", "exceeds total_emails")
	}
	if r.CorrectlyProcessed > r.ProcessedByRobot {
		return NewInvalidRow(index, "correctly_processed", "exceeds processed_by_robot")
	}
	if r.RedirectedToStaff > r.ProcessedByRobot {
		return NewInvalidRow(index, "redirected_to_staff", "exceeds processed_by_robot")
	}
	if r.InterdepProcessed > r.InterdepAgreements {
		return NewInvalidRow(index, "interdep_processed", "exceeds interdep_agreements")
	}

	return nil
}

// Distribution делит письма дня на три непересекающиеся группы
func (r RobotDailyRecord) Distribution() EmailDistribution {
	return EmailDistribution{
		RobotOnly:    r.ProcessedByRobot - r.RedirectedToStaff,
		Redirected:   r.RedirectedToStaff,
		NotProcessed: r.TotalEmails - r.ProcessedByRobot,
	}
}

// RobotDailyMetrics - строка с вычисленными процентами
type RobotDailyMetrics struct {
	RobotDailyRecord
	ProcessedPercent      float64 `json:"processed_percent"`
	RobotProcessedPercent float64 `json:"robot_processed_percent"`
	CorrectPercent        float64 `json:"correct_percent"`
	InterdepPercent       float64 `json:"interdep_percent"`
}

// EmailDistribution - распределение обработки писем
type EmailDistribution struct {
	RobotOnly    int `json:"robot_only"`
	Redirected   int `json:"redirected"`
	NotProcessed int `json:"not_processed"`
}

// Total возвращает сумму всех групп
func (d EmailDistribution) Total() int {
	return d.RobotOnly + d.Redirected + d.NotProcessed
}

// RobotReport - отчет по роботу за период
type RobotReport struct {
	Range        DateRange           `json:"range"`
	Days         []RobotDailyMetrics `json:"days"`
	Latest       RobotDailyMetrics   `json:"latest"`
	Distribution EmailDistribution   `json:"distribution"`
}

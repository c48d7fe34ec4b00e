package domain

// ReportType - тип отчета, выбираемый переключателем на дашборде
type ReportType string

const (
	ReportRobot ReportType = "robot"
	ReportNpa   ReportType = "npa"
)

// ReportTypes - все допустимые значения переключателя в порядке отображения
var ReportTypes = []ReportType{ReportRobot, ReportNpa}

// ParseReportType проверяет значение переключателя
func ParseReportType(s string) (ReportType, error) {
	switch ReportType(s) {
	case ReportRobot, ReportNpa:
		return ReportType(s), nil
	default:
		return "", NewInvalidField("report", "unknown report type "+`"`+s+`"`)
	}
}

// Title возвращает подпись отчета для интерфейса
func (t ReportType) Title() string {
	switch t {
	case ReportRobot:
		return "Отчет по роботу"
	case ReportNpa:
		return "Отчет по НПА"
	default:
		return string(t)
	}
}

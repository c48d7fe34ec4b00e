package templates

//go:generate templ generate -path .

import (
	"robot-npa-dashboard/internal/domain"
)

// Темы оформления дашборда
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// PageData - общие данные страницы дашборда
type PageData struct {
	Title    string
	Theme    string
	Selected domain.ReportType
	Start    string
	End      string
	Error    string
}

// ToggledTheme возвращает противоположную тему
func (d PageData) ToggledTheme() string {
	if d.Theme == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Card - KPI-карточка
type Card struct {
	Icon  string
	Value string
	Label string
	Color string
}

// Chart - график в SVG либо заглушка, если нарисовать не удалось
type Chart struct {
	Title       string
	SVG         []byte
	Placeholder string
	Wide        bool
}

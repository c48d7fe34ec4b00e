// Путь: internal/web/templates/pages/theme.go
package pages

import (
	"net/url"

	"robot-npa-dashboard/internal/web/templates"
)

func bodyClass(data templates.PageData) string {
	if data.Theme == templates.ThemeDark {
		return templates.ThemeDark
	}
	return templates.ThemeLight
}

// toggleURL сохраняет выбор пользователя и меняет тему
func toggleURL(data templates.PageData) string {
	q := url.Values{}
	q.Set("report", string(data.Selected))
	if data.Start != "" {
		q.Set("start_date", data.Start)
	}
	if data.End != "" {
		q.Set("end_date", data.End)
	}
	q.Set("theme", data.ToggledTheme())
	return "/?" + q.Encode()
}

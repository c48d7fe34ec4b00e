package pages

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"robot-npa-dashboard/internal/domain"
	"robot-npa-dashboard/internal/web/templates"
	"robot-npa-dashboard/internal/web/templates/components"
)

func TestDashboard_SelectorAndRange(t *testing.T) {
	var buf bytes.Buffer
	err := Dashboard(templates.PageData{
		Title:    "Аналитика",
		Theme:    templates.ThemeLight,
		Selected: domain.ReportNpa,
		Start:    "2026-10-10",
		End:      "2026-10-17",
	}, components.Notice("пусто")).Render(context.Background(), &buf)
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, `<title>Аналитика</title>`)
	assert.Contains(t, html, `value="npa" checked`)
	assert.NotContains(t, html, `value="robot" checked`)
	assert.Contains(t, html, `name="start_date" value="2026-10-10"`)
	assert.Contains(t, html, `name="end_date" value="2026-10-17"`)
	assert.Contains(t, html, `🌙 Темная тема`)
	assert.Contains(t, html, `theme=dark`)
	assert.Contains(t, html, `<div class="notice">пусто</div>`)
	assert.Contains(t, html, `</html>`)
}

func TestDashboard_DarkThemeAndError(t *testing.T) {
	var buf bytes.Buffer
	err := Dashboard(templates.PageData{
		Theme:    templates.ThemeDark,
		Selected: domain.ReportRobot,
		Error:    `<script>alert(1)</script>`,
	}, nil).Render(context.Background(), &buf)
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, `<body class="dark">`)
	assert.Contains(t, html, `☀️ Светлая тема`)
	assert.Contains(t, html, `theme=light`)
	assert.NotContains(t, html, `<script>alert(1)</script>`)
	assert.Contains(t, html, `&lt;script&gt;`)
}

func TestToggleURL(t *testing.T) {
	u := toggleURL(templates.PageData{
		Theme:    templates.ThemeLight,
		Selected: domain.ReportRobot,
		Start:    "2026-10-10",
		End:      "2026-10-17",
	})

	assert.Equal(t, "/?end_date=2026-10-17&report=robot&start_date=2026-10-10&theme=dark", u)
}

func TestDashboard_LayoutFromTemplate(t *testing.T) {
	var buf bytes.Buffer
	err := Dashboard(templates.PageData{Theme: templates.ThemeLight, Selected: domain.ReportRobot},
		components.Report(
			[]templates.Card{{Icon: "📧", Value: "192", Label: "Всего писем", Color: "3498db"}},
			nil,
		)).Render(context.Background(), &buf)
	require.NoError(t, err)

	html := buf.String()
	assert.True(t, strings.HasPrefix(html, "<!doctype html><html lang=\"ru\">"))
	assert.Contains(t, html, `<body class="light">`)
	assert.Contains(t, html, `<div id="report-content"><div class="cards"><div class="card">`)
	assert.Contains(t, html, `<h3 style="color: #3498db;">192</h3>`)
	assert.True(t, strings.HasSuffix(html, "</div></div></body></html>"))
}

// Путь: internal/transport/web/dashboard.go
package web

import (
	"errors"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"robot-npa-dashboard/internal/domain"
	"robot-npa-dashboard/internal/service/report"
	"robot-npa-dashboard/internal/web/templates"
	"robot-npa-dashboard/internal/web/templates/components"
	"robot-npa-dashboard/internal/web/templates/pages"
)

// Dashboard отображает главную страницу с выбранным отчетом
func (h *Handler) Dashboard(c echo.Context) error {
	data := templates.PageData{
		Title:    "Аналитика работы робота и НПА",
		Theme:    theme(c.QueryParam("theme")),
		Selected: domain.ReportRobot,
		Start:    c.QueryParam("start_date"),
		End:      c.QueryParam("end_date"),
	}

	if value := c.QueryParam("report"); value != "" {
		selected, err := domain.ParseReportType(value)
		if err != nil {
			data.Error = err.Error()
			return render(c, http.StatusBadRequest, pages.Dashboard(data, nil))
		}
		data.Selected = selected
	}

	rng, err := h.reports.ResolveRange(data.Start, data.End)
	if err != nil {
		data.Error = err.Error()
		return render(c, http.StatusBadRequest, pages.Dashboard(data, nil))
	}
	data.Start, data.End = rng.Start.String(), rng.End.String()

	result, err := h.reports.Build(c.Request().Context(), report.Request{Type: data.Selected, Range: rng})
	if err != nil {
		var empty *domain.EmptyInputError
		var invalid *domain.InvalidInputError
		switch {
		case errors.As(err, &empty):
			return render(c, http.StatusOK, pages.Dashboard(data, components.Notice("Нет данных за выбранный период")))
		case errors.As(err, &invalid):
			data.Error = err.Error()
			return render(c, http.StatusBadRequest, pages.Dashboard(data, nil))
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to build report").SetInternal(err)
		}
	}

	var content templ.Component
	switch result.Type {
	case domain.ReportNpa:
		content = h.npaContent(result.Npa)
	default:
		content = h.robotContent(result.Robot)
	}

	return render(c, http.StatusOK, pages.Dashboard(data, content))
}

func (h *Handler) robotContent(r *domain.RobotReport) templ.Component {
	chartPanels := []templates.Chart{
		h.chart("email_distribution", "📊 Распределение обработки писем", false, func() ([]byte, error) {
			return h.charts.EmailDistribution(r.Distribution)
		}),
		h.chart("robot_trend", "📈 Динамика показателей", true, func() ([]byte, error) {
			return h.charts.RobotTrend(r.Days)
		}),
		h.chart("robot_efficiency", "📊 Эффективность работы", true, func() ([]byte, error) {
			return h.charts.RobotEfficiency(r.Days)
		}),
	}

	return components.Report(components.RobotCards(r), chartPanels)
}

func (h *Handler) npaContent(r *domain.NpaReport) templ.Component {
	chartPanels := []templates.Chart{
		h.chart("npa_status", "📊 Статус внедрения изменений", false, func() ([]byte, error) {
			return h.charts.NpaStatus(r.Summary)
		}),
		h.chart("npa_rates", "📈 Эффективность внедрения по документам", true, func() ([]byte, error) {
			return h.charts.NpaRates(r.Documents)
		}),
	}

	return templ.Join(
		components.Report(components.NpaCards(r), chartPanels),
		components.NpaTable(r.Documents),
	)
}

// Путь: internal/transport/web/handlers.go
package web

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"robot-npa-dashboard/internal/metrics"
	"robot-npa-dashboard/internal/service/charts"
	"robot-npa-dashboard/internal/service/report"
	"robot-npa-dashboard/internal/web/templates"
)

const chartPlaceholder = "Недостаточно данных для графика"

// Handler - обработчик веб-интерфейса
type Handler struct {
	reports *report.Service
	charts  *charts.Renderer
}

// NewHandler создает новый обработчик
func NewHandler(reports *report.Service, renderer *charts.Renderer) *Handler {
	return &Handler{
		reports: reports,
		charts:  renderer,
	}
}

// chart рисует график; при ошибке возвращает панель с заглушкой
func (h *Handler) chart(name, title string, wide bool, draw func() ([]byte, error)) templates.Chart {
	svg, err := draw()
	if err != nil {
		metrics.ChartRenderFailures.WithLabelValues(name).Inc()

		logEvent := log.Debug()
		if !errors.Is(err, charts.ErrNotEnoughData) {
			logEvent = log.Error()
		}
		logEvent.Err(err).Str("chart", name).Msg("chart replaced by placeholder")

		return templates.Chart{Title: title, Placeholder: chartPlaceholder, Wide: wide}
	}

	return templates.Chart{Title: title, SVG: svg, Wide: wide}
}

// render рендерит компонент в буфер, чтобы при ошибке не отдать половину страницы
func render(c echo.Context, status int, component templ.Component) error {
	var buf bytes.Buffer
	if err := component.Render(c.Request().Context(), &buf); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to render page").SetInternal(err)
	}
	return c.HTMLBlob(status, buf.Bytes())
}

func theme(value string) string {
	if value == templates.ThemeDark {
		return templates.ThemeDark
	}
	return templates.ThemeLight
}

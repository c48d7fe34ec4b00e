// Путь: internal/transport/api/reports.go
package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"robot-npa-dashboard/internal/domain"
	"robot-npa-dashboard/internal/service/formatter"
	"robot-npa-dashboard/internal/service/report"
)

type ReportAPI struct {
	reports   *report.Service
	summaries *formatter.SummaryFormatter
}

func NewReportAPI(reports *report.Service, summaries *formatter.SummaryFormatter) *ReportAPI {
	return &ReportAPI{
		reports:   reports,
		summaries: summaries,
	}
}

func (api *ReportAPI) Robot(c echo.Context) error {
	rng, err := api.reports.ResolveRange(c.QueryParam("start_date"), c.QueryParam("end_date"))
	if err != nil {
		return errorResponse(c, err)
	}

	robot, err := api.reports.Robot(c.Request().Context(), rng)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, robot)
}

func (api *ReportAPI) Npa(c echo.Context) error {
	npa, err := api.reports.Npa(c.Request().Context())
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, npa)
}

// Summary отдает текстовую сводку отчета
func (api *ReportAPI) Summary(c echo.Context) error {
	reportType, err := domain.ParseReportType(c.Param("type"))
	if err != nil {
		return errorResponse(c, err)
	}

	rng, err := api.reports.ResolveRange(c.QueryParam("start_date"), c.QueryParam("end_date"))
	if err != nil {
		return errorResponse(c, err)
	}

	result, err := api.reports.Build(c.Request().Context(), report.Request{Type: reportType, Range: rng})
	if err != nil {
		return errorResponse(c, err)
	}

	var text string
	switch result.Type {
	case domain.ReportNpa:
		text, err = api.summaries.FormatNpa(result.Npa)
	default:
		text, err = api.summaries.FormatRobot(result.Robot)
	}
	if err != nil {
		return errorResponse(c, err)
	}

	return c.String(http.StatusOK, text)
}

// errorResponse переводит доменные ошибки в HTTP-статусы
func errorResponse(c echo.Context, err error) error {
	switch report.ErrorKind(err) {
	case "invalid_input":
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case "empty_input":
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	default:
		log.Error().Err(err).Str("path", c.Request().URL.Path).Msg("report request failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}

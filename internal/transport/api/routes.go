package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes настраивает маршруты API
func SetupRoutes(e *echo.Echo, reportAPI *ReportAPI) {
	// Служебные маршруты
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Отчеты
	g := e.Group("/api/v1")
	g.GET("/reports/robot", reportAPI.Robot)
	g.GET("/reports/npa", reportAPI.Npa)
	g.GET("/reports/:type/summary", reportAPI.Summary)
}

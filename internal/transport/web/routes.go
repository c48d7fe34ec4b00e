package web

import (
	"github.com/labstack/echo/v4"
)

// SetupRoutes регистрирует страницы дашборда
func SetupRoutes(e *echo.Echo, handler *Handler) {
	e.GET("/", handler.Dashboard)
}

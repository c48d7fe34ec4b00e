package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// apiPrefix - пути JSON API, остальное отдает HTML-дашборд
const apiPrefix = "/api/"

// Recovery перехватывает панику обработчика и отвечает 500
// в формате маршрута: JSON для API, текст для страниц дашборда
func Recovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				panicErr, ok := r.(error)
				if !ok {
					panicErr = fmt.Errorf("%v", r)
				}

				req := c.Request()
				log.Error().
					Err(panicErr).
					Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
					Str("method", req.Method).
					Str("path", req.URL.Path).
					Str("stack", string(debug.Stack())).
					Msg("panic recovered")

				// Заголовки уже ушли клиенту, дописывать нечего
				if c.Response().Committed {
					err = nil
					return
				}

				if strings.HasPrefix(req.URL.Path, apiPrefix) {
					err = c.JSON(http.StatusInternalServerError, map[string]string{
						"error": "internal server error",
					})
					return
				}
				err = c.String(http.StatusInternalServerError, "Не удалось построить отчет")
			}()

			return next(c)
		}
	}
}

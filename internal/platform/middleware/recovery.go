package middleware

import (
	"fmt"
	"net/http"
	"runtime"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Recovery converts a handler panic into a 500 OperationOutcome response.
// The panic value and stack go to the log only; the response body carries a
// fixed diagnostic so nothing from the failure leaks to the client.
func Recovery(logger zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				var stack [4096]byte
				n := runtime.Stack(stack[:], false)
				rid, _ := c.Get("request_id").(string)
				logger.Error().
					Str("request_id", rid).
					Str("path", c.Request().URL.Path).
					Str("panic", fmt.Sprintf("%v", r)).
					Str("stack", string(stack[:n])).
					Msg("panic recovered")

				if c.Response().Committed {
					return
				}
				outcome := map[string]any{
					"resourceType": "OperationOutcome",
					"issue": []map[string]any{
						{
							"severity":    "fatal",
							"code":        "exception",
							"diagnostics": "internal server error",
						},
					},
				}
				err = c.JSON(http.StatusInternalServerError, outcome)
			}()
			return next(c)
		}
	}
}

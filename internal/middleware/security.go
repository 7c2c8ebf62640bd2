package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
)

// apiSecurityHeaders apply to every response of the JSON API
var apiSecurityHeaders = map[string]string{
	"X-Content-Type-Options":  "nosniff",
	"X-Frame-Options":         "DENY",
	"Content-Security-Policy": "default-src 'none'; frame-ancestors 'none'",
	"Referrer-Policy":         "no-referrer",
	"Permissions-Policy":      "geolocation=(), microphone=(), camera=()",
}

// SecurityHeaders adds security headers to responses. Register data under
// the API prefix is never cached.
func SecurityHeaders(apiPrefix string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			for name, value := range apiSecurityHeaders {
				h.Set(name, value)
			}

			if strings.HasPrefix(c.Request().URL.Path, apiPrefix) {
				h.Set("Cache-Control", "no-store")
				h.Set("Pragma", "no-cache")
			}

			return next(c)
		}
	}
}

package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Authorizer decides whether a request may perform an action. The platform
// ships without credentials: admin and investor operations are trusted on
// the basis of client-supplied identifiers alone, so the default
// implementation allows everything. The seam exists so a real credential
// check can be mounted without touching the handlers.
type Authorizer interface {
	Authorize(c echo.Context, action string) error
}

// AllowAll authorizes every request.
type AllowAll struct{}

// Authorize implements Authorizer.
func (AllowAll) Authorize(echo.Context, string) error { return nil }

// Middleware enforces an Authorizer on a route group.
func Middleware(a Authorizer, action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := a.Authorize(c, action); err != nil {
				return echo.NewHTTPError(http.StatusForbidden, err.Error())
			}
			return next(c)
		}
	}
}

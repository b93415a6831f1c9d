package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxClaims extracts the token claims injected by the Auth middleware and
// fast-fails before any further work: a present email proves the middleware
// ran on this route.
func ctxClaims(c echo.Context) (claimsView, error) {
	email, _ := c.Get("email").(string)
	if email == "" {
		return claimsView{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	id, _ := c.Get("id").(string)
	name, _ := c.Get("name").(string)
	return claimsView{ID: id, Email: email, Name: name}, nil
}

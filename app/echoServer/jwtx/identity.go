// app/echoServer/jwtx/identity.go
package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/omjee001/student-resource-rental/model"
)

// IdentityFromContext pulls the authenticated principal out of the parsed
// JWT placed on the context by echo-jwt.
func IdentityFromContext(c echo.Context) (model.Identity, error) {
	tok, ok := c.Get("user").(*jwt.Token)
	if !ok || tok == nil {
		return model.Identity{}, errors.New("no jwt token in context")
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return model.Identity{}, errors.New("invalid jwt claims")
	}

	sub, ok := claims["sub"].(float64)
	if !ok {
		return model.Identity{}, errors.New("sub missing in claims")
	}
	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return model.Identity{}, errors.New("email missing in claims")
	}

	return model.Identity{ID: int64(sub), Email: email}, nil
}

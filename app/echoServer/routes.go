package echoServer

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/omjee001/student-resource-rental/app/echoServer/controller/auth"
	"github.com/omjee001/student-resource-rental/app/echoServer/controller/request"
	"github.com/omjee001/student-resource-rental/app/echoServer/controller/resource"
	"github.com/omjee001/student-resource-rental/app/echoServer/jwtx"
)

type C struct {
	Auth      *auth.Controller
	Resource  *resource.Controller
	Request   *request.Controller
	JWTSecret string
}

func Register(e *echo.Echo, c C) {
	// Public
	pub := e.Group("/v1")
	pub.POST("/users/register", c.Auth.Register)
	pub.POST("/users/login", c.Auth.Login)

	// Auth
	authed := e.Group("/v1")
	authed.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey:    []byte(c.JWTSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims { return jwt.MapClaims{} },
		TokenLookup:   "header:Authorization",
	}))
	authed.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			id, err := jwtx.IdentityFromContext(ctx)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
			}
			ctx.Set("identity", id)
			return next(ctx)
		}
	})

	// Resources
	authed.POST("/resources", c.Resource.Create)
	authed.GET("/resources", c.Resource.Browse)
	authed.GET("/resources/mine", c.Resource.Mine)
	authed.GET("/resources/:id", c.Resource.Detail)

	// Borrow requests
	authed.POST("/requests", c.Request.Create)
	authed.POST("/requests/:id/return", c.Request.Return)
	authed.POST("/requests/:id/:action", c.Request.Decide)
	authed.GET("/requests/incoming", c.Request.Incoming)
	authed.GET("/requests/incoming/count", c.Request.PendingCount)
	authed.GET("/requests/my", c.Request.Mine)
}

// Package main student resource rental API.
//
// @title           Student Resource Rental API
// @version         1.0
// @description     Peer-to-peer lending of student resources (listings, borrow requests, billing).
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description  Use:  Bearer <JWT>
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/omjee001/student-resource-rental/app/echoServer"
	authctrl "github.com/omjee001/student-resource-rental/app/echoServer/controller/auth"
	requestctrl "github.com/omjee001/student-resource-rental/app/echoServer/controller/request"
	resourcectrl "github.com/omjee001/student-resource-rental/app/echoServer/controller/resource"
	"github.com/omjee001/student-resource-rental/app/echoServer/validation"
	"github.com/omjee001/student-resource-rental/config"
	requestrepo "github.com/omjee001/student-resource-rental/repository/request"
	resourcerepo "github.com/omjee001/student-resource-rental/repository/resource"
	userrepo "github.com/omjee001/student-resource-rental/repository/user"
	authsvc "github.com/omjee001/student-resource-rental/service/auth"
	requestsvc "github.com/omjee001/student-resource-rental/service/request"
	resourcesvc "github.com/omjee001/student-resource-rental/service/resource"
	"github.com/omjee001/student-resource-rental/util/database"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// DB: *sql.DB
	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	// repos
	ur := userrepo.New(db)
	rr := resourcerepo.New(db)
	qr := requestrepo.New(db)

	// services
	as := authsvc.New(ur, cfg.JWTSecret)
	rs := resourcesvc.New(rr)
	qs := requestsvc.New(qr, rr)

	// controllers
	v := validator.New()
	authC := &authctrl.Controller{Svc: as, V: v, Log: log}
	resourceC := &resourcectrl.Controller{Svc: rs, V: v, Log: log}
	requestC := &requestctrl.Controller{Svc: qs, V: v, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Auth:     authC,
		Resource: resourceC,
		Request:  requestC,

		JWTSecret: cfg.JWTSecret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	slog.Info("starting server", "port", port)

	e.Logger.Fatal(e.Start(":" + port))
}

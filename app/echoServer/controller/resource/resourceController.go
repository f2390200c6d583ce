package resource

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/omjee001/student-resource-rental/model"
	resourcesvc "github.com/omjee001/student-resource-rental/service/resource"
)

type Controller struct {
	Svc resourcesvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /v1/resources
func (h *Controller) Create(c echo.Context) error {
	var req CreateResourceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}
	actor, _ := c.Get("identity").(model.Identity)

	res, err := h.Svc.Create(c.Request().Context(), actor,
		req.Title, req.Description, model.Category(req.Category), req.PricePerDay, req.Image)
	if err != nil {
		if resourcesvc.Code(err) == resourcesvc.ErrBadInput {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "bad input"})
		}
		h.Log.Error("resource create", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"resource": res})
}

// GET /v1/resources
func (h *Controller) Browse(c echo.Context) error {
	actor, _ := c.Get("identity").(model.Identity)
	rows, err := h.Svc.Browse(c.Request().Context(), actor)
	if err != nil {
		h.Log.Error("resource browse", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"resources": rows})
}

// GET /v1/resources/mine
func (h *Controller) Mine(c echo.Context) error {
	actor, _ := c.Get("identity").(model.Identity)
	rows, err := h.Svc.Mine(c.Request().Context(), actor)
	if err != nil {
		h.Log.Error("resource mine", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"resources": rows})
}

// GET /v1/resources/:id
func (h *Controller) Detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	res, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		h.Log.Error("resource detail", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	if res == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "resource not found"})
	}
	return c.JSON(http.StatusOK, res)
}

package request

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/omjee001/student-resource-rental/model"
	requestsvc "github.com/omjee001/student-resource-rental/service/request"
)

type Controller struct {
	Svc requestsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /v1/requests
func (h *Controller) Create(c echo.Context) error {
	var req CreateRequestReq
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

	if err := h.Svc.Create(c.Request().Context(), actor, req.ResourceID); err != nil {
		return h.mapError(c, "request create", err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"ok": true})
}

// POST /v1/requests/:id/:action  (action: approve | reject)
func (h *Controller) Decide(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	action := model.RequestAction(c.Param("action"))
	if action != model.ActionApprove && action != model.ActionReject {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid action"})
	}
	actor, _ := c.Get("identity").(model.Identity)

	if err := h.Svc.Decide(c.Request().Context(), actor, id, action); err != nil {
		return h.mapError(c, "request decide", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

// POST /v1/requests/:id/return
func (h *Controller) Return(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	actor, _ := c.Get("identity").(model.Identity)

	out, err := h.Svc.Return(c.Request().Context(), actor, id)
	if err != nil {
		return h.mapError(c, "request return", err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"ok":              true,
		"days":            out.Days,
		"total_due":       out.TotalDue,
		"payment_methods": out.PaymentMethods,
	})
}

// GET /v1/requests/incoming
func (h *Controller) Incoming(c echo.Context) error {
	actor, _ := c.Get("identity").(model.Identity)
	rows, err := h.Svc.Incoming(c.Request().Context(), actor)
	if err != nil {
		h.Log.Error("request incoming", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"requests": rows})
}

// GET /v1/requests/my
func (h *Controller) Mine(c echo.Context) error {
	actor, _ := c.Get("identity").(model.Identity)
	rows, err := h.Svc.Mine(c.Request().Context(), actor)
	if err != nil {
		h.Log.Error("request mine", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"requests": rows})
}

// GET /v1/requests/incoming/count
func (h *Controller) PendingCount(c echo.Context) error {
	actor, _ := c.Get("identity").(model.Identity)
	n, err := h.Svc.PendingCount(c.Request().Context(), actor)
	if err != nil {
		h.Log.Error("request pending count", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"count": n})
}

func (h *Controller) mapError(c echo.Context, op string, err error) error {
	switch requestsvc.Code(err) {
	case requestsvc.ErrResourceNotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"message": "resource not found"})
	case requestsvc.ErrRequestNotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"message": "request not found"})
	case requestsvc.ErrForbidden:
		return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
	case requestsvc.ErrStateConflict:
		return c.JSON(http.StatusConflict, echo.Map{"message": "action not allowed in current status"})
	case requestsvc.ErrDuplicate:
		return c.JSON(http.StatusConflict, echo.Map{"message": "you already have an active request for this resource"})
	case requestsvc.ErrBadInput:
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "bad input"})
	default:
		h.Log.Error(op, "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
}

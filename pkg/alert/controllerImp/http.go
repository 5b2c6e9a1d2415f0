package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	svc "haven/pkg/alert/service"
	"haven/pkg/alert/serviceImp"
)

type AlertCtrl struct{ s svc.AlertService }

func New(s svc.AlertService) *AlertCtrl { return &AlertCtrl{s} }

func (h *AlertCtrl) Send(c echo.Context) error {
	uid := c.Get("uid").(string)
	var in svc.AlertInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	id, _ := strconv.Atoi(c.Param("id"))
	in.CommunityID = uint(id)
	a, err := h.s.Send(uid, in)
	if err != nil {
		switch {
		case errors.Is(err, serviceImp.ErrTitleRequired),
			errors.Is(err, serviceImp.ErrNoChannel),
			errors.Is(err, serviceImp.ErrBadChannel),
			errors.Is(err, serviceImp.ErrNoRecipients),
			errors.Is(err, serviceImp.ErrBadRecipientSet):
			return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		default:
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to save alert"})
		}
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *AlertCtrl) List(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	out, err := h.s.List(uint(id))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load alerts"})
	}
	return c.JSON(http.StatusOK, out)
}

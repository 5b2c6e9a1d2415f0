package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	svc "haven/pkg/event/service"
	"haven/pkg/event/serviceImp"
)

type EventCtrl struct{ s svc.EventService }

func New(s svc.EventService) *EventCtrl { return &EventCtrl{s} }

func (h *EventCtrl) Create(c echo.Context) error {
	uid := c.Get("uid").(string)
	var in svc.EventInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	id, _ := strconv.Atoi(c.Param("id"))
	in.CommunityID = uint(id)
	out, err := h.s.Create(uid, in)
	if err != nil {
		if errors.Is(err, serviceImp.ErrTitleRequired) || errors.Is(err, serviceImp.ErrBadKind) {
			return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to save event"})
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *EventCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("event_id"))
	out, err := h.s.Get(uint(id))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *EventCtrl) List(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	out, err := h.s.ListByCommunity(uint(id))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load events"})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *EventCtrl) RSVP(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("invite_id"))
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	out, err := h.s.RSVP(uint(id), body.Status)
	if err != nil {
		if errors.Is(err, serviceImp.ErrBadRSVP) {
			return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to update rsvp"})
	}
	return c.JSON(http.StatusOK, out)
}

package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	svc "haven/pkg/community/service"
	"haven/pkg/community/serviceImp"
)

type CommunityCtrl struct{ s svc.CommunityService }

func New(s svc.CommunityService) *CommunityCtrl { return &CommunityCtrl{s} }

func (h *CommunityCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(string)
	out, err := h.s.ListMine(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load communities"})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CommunityCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	d, err := h.s.Get(uint(id))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, d)
}

func (h *CommunityCtrl) Patch(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	var p svc.ProfilePatch
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	out, err := h.s.UpdateProfile(uint(id), p)
	if err != nil {
		if errors.Is(err, serviceImp.ErrNameRequired) {
			return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to save community"})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CommunityCtrl) ChangeRole(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("member_id"))
	var body struct {
		Role string `json:"role"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	m, err := h.s.ChangeRole(uint(id), body.Role)
	if err != nil {
		switch {
		case errors.Is(err, serviceImp.ErrLastAdmin), errors.Is(err, serviceImp.ErrBadRole):
			return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		default:
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to update member"})
		}
	}
	return c.JSON(http.StatusOK, m)
}

func (h *CommunityCtrl) RemoveMember(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("member_id"))
	if err := h.s.RemoveMember(uint(id)); err != nil {
		if errors.Is(err, serviceImp.ErrLastAdmin) {
			return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to remove member"})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *CommunityCtrl) Invite(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	var body struct {
		Email     string `json:"email"`
		GroupName string `json:"group_name"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	inv, err := h.s.Invite(uint(id), body.Email, body.GroupName)
	if err != nil {
		if errors.Is(err, serviceImp.ErrInvalidEmail) {
			return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to create invitation"})
	}
	return c.JSON(http.StatusCreated, inv)
}

func (h *CommunityCtrl) AcceptInvitation(c echo.Context) error {
	uid := c.Get("uid").(string)
	var body struct {
		Token string `json:"token"`
		Name  string `json:"name"`
	}
	if err := c.Bind(&body); err != nil || body.Token == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "token required"})
	}
	m, err := h.s.AcceptInvitation(body.Token, uid, body.Name)
	if err != nil {
		if errors.Is(err, serviceImp.ErrInviteClosed) {
			return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusNotFound, map[string]string{"error": "invitation not found"})
	}
	return c.JSON(http.StatusCreated, m)
}

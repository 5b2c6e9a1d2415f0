package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"haven/pkg/roster/service"
)

type RosterCtrl struct{ s service.RosterService }

func New(s service.RosterService) *RosterCtrl { return &RosterCtrl{s: s} }

// Import takes a multipart upload under the "file" field.
func (h *RosterCtrl) Import(c echo.Context) error {
	cid, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad community id"})
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "file field required"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	defer f.Close()

	rep, err := h.s.Import(uint(cid), f)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rep)
}

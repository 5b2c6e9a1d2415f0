package controllerImp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"haven/entities"
	"haven/pkg/feed"
	svc "haven/pkg/sop/service"
	"haven/pkg/sop/serviceImp"
)

type SOPCtrl struct {
	s    svc.SOPService
	feed *feed.Feed
}

func New(s svc.SOPService, f *feed.Feed) *SOPCtrl { return &SOPCtrl{s: s, feed: f} }

func (h *SOPCtrl) taskErr(c echo.Context, err error) error {
	switch {
	case errors.Is(err, serviceImp.ErrConflict):
		return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
	case errors.Is(err, serviceImp.ErrClosed):
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to save task"})
	}
}

func (h *SOPCtrl) UpsertTemplate(c echo.Context) error {
	var body struct {
		TemplateID uint                    `json:"template_id"`
		GuideID    uint                    `json:"guide_id"`
		Hazard     string                  `json:"hazard"`
		Name       string                  `json:"name"`
		Tasks      []svc.TemplateTaskInput `json:"tasks"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	t := &entities.SOPTemplate{
		TemplateID: body.TemplateID,
		GuideID:    body.GuideID,
		Hazard:     body.Hazard,
		Name:       body.Name,
	}
	out, err := h.s.UpsertTemplate(t, body.Tasks)
	if err != nil {
		if errors.Is(err, serviceImp.ErrNameRequired) {
			return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to save template"})
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *SOPCtrl) Templates(c echo.Context) error {
	out, err := h.s.TemplatesByHazard(c.QueryParam("hazard"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load templates"})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SOPCtrl) TemplateTasks(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	out, err := h.s.TemplateTasks(uint(id))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load tasks"})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SOPCtrl) Activate(c echo.Context) error {
	uid := c.Get("uid").(string)
	var body struct {
		CommunityID uint  `json:"community_id"`
		TemplateID  uint  `json:"template_id"`
		EventID     *uint `json:"event_id"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	out, err := h.s.Activate(body.CommunityID, body.TemplateID, body.EventID, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to activate"})
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *SOPCtrl) Get(c echo.Context) error {
	out, err := h.s.Activation(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SOPCtrl) ListByCommunity(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	out, err := h.s.ActivationsByCommunity(uint(id))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load activations"})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SOPCtrl) Close(c echo.Context) error {
	if err := h.s.CloseActivation(c.Param("id")); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to close activation"})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

type versionBody struct {
	Version int `json:"version"`
}

func (h *SOPCtrl) CycleStatus(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("task_id"))
	var body versionBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	out, err := h.s.CycleStatus(uint(id), body.Version)
	if err != nil {
		return h.taskErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SOPCtrl) Skip(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("task_id"))
	var body versionBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	out, err := h.s.SkipTask(uint(id), body.Version)
	if err != nil {
		return h.taskErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SOPCtrl) Assign(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("task_id"))
	var body struct {
		Version int `json:"version"`
		svc.AssignPatch
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	out, err := h.s.AssignTask(uint(id), body.Version, body.AssignPatch)
	if err != nil {
		return h.taskErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SOPCtrl) Reorder(c echo.Context) error {
	var body struct {
		TaskIDs []uint `json:"task_ids"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	out, err := h.s.Reorder(c.Param("id"), body.TaskIDs)
	if err != nil {
		if errors.Is(err, serviceImp.ErrBadReorder) {
			return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to reorder"})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SOPCtrl) AddNote(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, _ := strconv.Atoi(c.Param("task_id"))
	var body struct {
		Body string `json:"body"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	out, err := h.s.AddNote(uint(id), uid, body.Body)
	if err != nil {
		if errors.Is(err, serviceImp.ErrEmptyNote) {
			return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to add note"})
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *SOPCtrl) Notes(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("task_id"))
	out, err := h.s.Notes(uint(id))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load notes"})
	}
	return c.JSON(http.StatusOK, out)
}

// Stream pushes activation changes to the client as server-sent events.
// Every open viewer refetches on receipt; a resync event means deltas were
// dropped and the whole checklist must be reloaded.
func (h *SOPCtrl) Stream(c echo.Context) error {
	id := c.Param("id")
	if _, err := h.s.Activation(id); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}

	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set(echo.HeaderCacheControl, "no-cache")
	w.Header().Set(echo.HeaderConnection, "keep-alive")
	w.WriteHeader(http.StatusOK)
	w.Flush()

	ch, cancel := h.feed.Subscribe(id)
	defer cancel()

	heartbeat := time.NewTicker(25 * time.Second)
	defer heartbeat.Stop()

	for {
		select {
		case <-c.Request().Context().Done():
			return nil
		case <-heartbeat.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return nil
			}
			w.Flush()
		case change := <-ch:
			b, err := json.Marshal(change)
			if err != nil {
				continue
			}
			if _, err := fmt.Fprintf(w, "event: change\ndata: %s\n\n", b); err != nil {
				return nil
			}
			w.Flush()
		}
	}
}

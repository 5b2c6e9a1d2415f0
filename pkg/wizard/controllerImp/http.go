package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"haven/pkg/wizard"
)

type WizardCtrl struct{ mgr *wizard.Manager }

func New(mgr *wizard.Manager) *WizardCtrl { return &WizardCtrl{mgr} }

type stepMeta struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *WizardCtrl) state(f *wizard.Flow) map[string]any {
	steps := f.Steps()
	metas := make([]stepMeta, 0, len(steps))
	for _, s := range steps {
		metas = append(metas, stepMeta{ID: s.ID, Name: s.Name, Description: s.Description})
	}
	out := map[string]any{
		"phase":       f.Phase().String(),
		"step":        f.StepIndex(),
		"steps":       metas,
		"data":        f.Data(),
		"can_advance": f.CanAdvance(),
	}
	if p := f.Pending(); p != nil {
		out["pending_saved_at"] = p.SavedAt
		out["pending_step"] = p.CurrentStep
	}
	if c := f.Created(); c != nil {
		out["created"] = c
	}
	return out
}

func (h *WizardCtrl) Get(c echo.Context) error {
	uid := c.Get("uid").(string)
	return c.JSON(http.StatusOK, h.state(h.mgr.Get(uid)))
}

// PutData replaces the whole data bag, mirroring the save-on-every-edit
// behavior of the form client.
func (h *WizardCtrl) PutData(c echo.Context) error {
	uid := c.Get("uid").(string)
	var d wizard.WizardData
	if err := c.Bind(&d); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	f := h.mgr.Get(uid)
	if err := f.Update(func(cur *wizard.WizardData) { *cur = d }); err != nil {
		return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, h.state(f))
}

func (h *WizardCtrl) Advance(c echo.Context) error {
	uid := c.Get("uid").(string)
	f := h.mgr.Get(uid)
	if err := f.Advance(); err != nil {
		status := http.StatusConflict
		if err == wizard.ErrStepIncomplete {
			status = http.StatusUnprocessableEntity
		}
		return c.JSON(status, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, h.state(f))
}

func (h *WizardCtrl) Retreat(c echo.Context) error {
	uid := c.Get("uid").(string)
	f := h.mgr.Get(uid)
	if err := f.Retreat(); err != nil {
		return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, h.state(f))
}

func (h *WizardCtrl) Resume(c echo.Context) error {
	uid := c.Get("uid").(string)
	f := h.mgr.Get(uid)
	if err := f.Resume(); err != nil {
		return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, h.state(f))
}

func (h *WizardCtrl) Discard(c echo.Context) error {
	uid := c.Get("uid").(string)
	f := h.mgr.Get(uid)
	if err := f.Discard(); err != nil {
		return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, h.state(f))
}

func (h *WizardCtrl) Finish(c echo.Context) error {
	uid := c.Get("uid").(string)
	f := h.mgr.Get(uid)
	com, err := f.Finish()
	if err != nil {
		switch err {
		case wizard.ErrWrongPhase, wizard.ErrNotLastStep:
			return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
		case wizard.ErrStepIncomplete:
			return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		default:
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
	}
	return c.JSON(http.StatusCreated, map[string]any{"community": com, "state": h.state(f)})
}

func (h *WizardCtrl) Dismiss(c echo.Context) error {
	uid := c.Get("uid").(string)
	f := h.mgr.Get(uid)
	if err := f.DismissCompletion(); err != nil {
		return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, h.state(f))
}

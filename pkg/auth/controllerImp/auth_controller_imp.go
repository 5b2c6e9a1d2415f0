package controllerImp

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"haven/entities"
	"haven/pkg/auth/controller"
)

type authCtrl struct{ db *gorm.DB }

func NewAuthController(db *gorm.DB) controller.AuthController { return &authCtrl{db: db} }

func (h *authCtrl) DevLogin(c echo.Context) error {
	uid := c.QueryParam("uid")
	if uid == "" {
		uid = "U_DEV_DEFAULT"
	}
	c.SetCookie(&http.Cookie{Name: "HAVEN_UID", Value: uid, Path: "/"})
	return c.JSON(http.StatusOK, map[string]string{"uid": uid})
}

func (h *authCtrl) WhoAmI(c echo.Context) error {
	v := c.Get("uid")
	uid, _ := v.(string)
	return c.JSON(http.StatusOK, map[string]string{"uid": uid})
}

func (h *authCtrl) GetProfile(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	var p entities.Profile
	if err := h.db.First(&p, "user_id = ?", uid).Error; err != nil {
		// a fresh profile until the user saves one
		p = entities.Profile{UserID: uid}
	}
	return c.JSON(http.StatusOK, p)
}

func (h *authCtrl) UpdateProfile(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	var body struct {
		DisplayName string `json:"display_name"`
		Email       string `json:"email"`
		Phone       string `json:"phone"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json: " + err.Error()})
	}
	if strings.TrimSpace(body.DisplayName) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "display_name is required"})
	}
	p := entities.Profile{
		UserID:      uid,
		DisplayName: strings.TrimSpace(body.DisplayName),
		Email:       body.Email,
		Phone:       body.Phone,
	}
	if err := h.db.Save(&p).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, p)
}

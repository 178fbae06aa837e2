package handler

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"

	"fbverify/config"
	"fbverify/internal/domain"
	"fbverify/internal/service"
	"fbverify/internal/settings"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	cfg      *config.Config
	authSvc  *service.AuthService
	settings *settings.Service
}

func NewAdminHandler(cfg *config.Config, authSvc *service.AuthService, settingsSvc *settings.Service) *AdminHandler {
	return &AdminHandler{
		cfg:      cfg,
		authSvc:  authSvc,
		settings: settingsSvc,
	}
}

// LoginPage handles GET /admin/login.
func (h *AdminHandler) LoginPage(c *gin.Context) {
	body := `<form method="post" action="/admin/login">
<p><label for="email">Email</label> <input type="email" id="email" name="email" /></p>
<p><label for="password">Password</label> <input type="password" id="password" name="password" /></p>
<p class="submit"><input type="submit" class="button button-primary" value="Log In" /></p>
</form>`
	c.Data(http.StatusOK, "text/html; charset=utf-8", adminShell("Log In", body))
}

// Login handles POST /admin/login. JSON clients get the token in the body;
// form posts are redirected to the general settings page with the token cookie set.
func (h *AdminHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" form:"email" binding:"required"`
		Password string `json:"password" form:"password" binding:"required"`
	}
	if err := c.ShouldBind(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	token, err := h.authSvc.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCreds):
			fail(c, http.StatusUnauthorized, "invalid credentials")
		case errors.Is(err, service.ErrAdminNotEnabled):
			fail(c, http.StatusServiceUnavailable, err.Error())
		default:
			log.Printf("[http] admin login: %v", err)
			fail(c, http.StatusInternalServerError, "login failed")
		}
		return
	}
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(domain.AdminTokenCookie, token, int(h.cfg.JWT.AccessExpiry.Seconds()), "/", "",
		h.cfg.Server.Env == "production", true)
	if c.ContentType() == gin.MIMEJSON {
		c.JSON(http.StatusOK, gin.H{"access_token": token})
		return
	}
	c.Redirect(http.StatusSeeOther, optionsURL(h.cfg.Verification.Page, false))
}

// SettingsPage handles GET /admin/options/:page.
func (h *AdminHandler) SettingsPage(c *gin.Context) {
	page := c.Param("page")
	if !h.settings.HasPage(page) {
		fail(c, http.StatusNotFound, "unknown settings page")
		return
	}
	var body bytes.Buffer
	if c.Query(domain.SettingsUpdatedParam) == "true" {
		body.WriteString(`<div class="notice notice-success"><p>Settings saved.</p></div>` + "\n")
	}
	if err := h.settings.RenderPage(&body, page, optionsURL(page, false)); err != nil {
		log.Printf("[settings] render %s: %v", page, err)
		fail(c, http.StatusInternalServerError, "failed to load settings")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", adminShell("Settings", body.String()))
}

// SaveSettings handles POST /admin/options/:page.
func (h *AdminHandler) SaveSettings(c *gin.Context) {
	page := c.Param("page")
	if !h.settings.HasPage(page) {
		fail(c, http.StatusNotFound, "unknown settings page")
		return
	}
	if err := c.Request.ParseForm(); err != nil {
		fail(c, http.StatusBadRequest, "invalid form")
		return
	}
	form := make(map[string]string, len(c.Request.PostForm))
	for k := range c.Request.PostForm {
		form[k] = c.Request.PostForm.Get(k)
	}
	if _, err := h.settings.Save(page, form); err != nil {
		log.Printf("[settings] save %s: %v", page, err)
		fail(c, http.StatusInternalServerError, "failed to save settings")
		return
	}
	c.Redirect(http.StatusSeeOther, optionsURL(page, true))
}

// GetSettings handles GET /api/v1/admin/settings?page=general.
func (h *AdminHandler) GetSettings(c *gin.Context) {
	page := c.DefaultQuery("page", h.cfg.Verification.Page)
	values, err := h.settings.Values(page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load settings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": values})
}

// UpdateSettings handles PUT /api/v1/admin/settings?page=general.
func (h *AdminHandler) UpdateSettings(c *gin.Context) {
	var req struct {
		Settings map[string]string `json:"settings" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	page := c.DefaultQuery("page", h.cfg.Verification.Page)
	saved, err := h.settings.Save(page, req.Settings)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update settings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "data": saved})
}

// fail answers JSON requests with a JSON error and everything else, browser
// form posts included, with an admin error page.
func fail(c *gin.Context, status int, msg string) {
	if c.ContentType() == gin.MIMEJSON || c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON {
		c.JSON(status, gin.H{"error": msg})
		return
	}
	body := `<div class="notice notice-error"><p>` + settings.EscHTML(msg) + `</p></div>`
	c.Data(status, "text/html; charset=utf-8", adminShell("Error", body))
}

func optionsURL(page string, updated bool) string {
	u := "/admin/options/" + url.PathEscape(page)
	if updated {
		u += "?" + domain.SettingsUpdatedParam + "=true"
	}
	return u
}

func adminShell(title, body string) []byte {
	return []byte(fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8" />
<title>%s</title>
</head>
<body>
<div class="wrap">
<h1>%s</h1>
%s
</div>
</body>
</html>`, settings.EscHTML(title), settings.EscHTML(title), body))
}

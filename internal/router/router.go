package router

import (
	"net/http"

	"fbverify/config"
	"fbverify/internal/handler"
	"fbverify/internal/middleware"
	"fbverify/internal/service"
	"fbverify/internal/settings"
	"fbverify/web"

	"github.com/gin-gonic/gin"
)

// Setup wires the admin and public routes. settingsSvc must already hold the
// registrations made at startup.
func Setup(cfg *config.Config, options settings.OptionStore, settingsSvc *settings.Service) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	authSvc := service.NewAuthService(cfg)
	head := settings.NewHeadRenderer(options, cfg.Verification.OptionName)

	adminHandler := handler.NewAdminHandler(cfg, authSvc, settingsSvc)
	siteHandler := handler.NewSiteHandler(head, web.IndexHTML())

	authMw := middleware.AuthRequired(&cfg.JWT)
	loginLimit := middleware.RateLimit(middleware.NewInMemoryRateLimiter(cfg.Admin.LoginLimit, cfg.Admin.LoginWindow))

	r.GET("/", siteHandler.Index)
	r.GET("/head", siteHandler.Head)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	admin := r.Group("/admin")
	{
		admin.GET("/login", adminHandler.LoginPage)
		admin.POST("/login", loginLimit, adminHandler.Login)

		optionPages := admin.Group("/options")
		optionPages.Use(authMw, middleware.AdminRequired())
		{
			optionPages.GET("/:page", adminHandler.SettingsPage)
			optionPages.POST("/:page", adminHandler.SaveSettings)
		}
	}

	api := r.Group("/api/v1/admin")
	api.Use(authMw, middleware.AdminRequired())
	{
		api.GET("/settings", adminHandler.GetSettings)
		api.PUT("/settings", adminHandler.UpdateSettings)
	}

	return r
}

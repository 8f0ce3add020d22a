package server

import (
	"MockAuthPortal/internal/auth"
	"MockAuthPortal/internal/config"
	"MockAuthPortal/internal/handler"
	"MockAuthPortal/internal/middleware"
	"MockAuthPortal/internal/session"

	_ "MockAuthPortal/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func NewRouter(cfg *config.Config, svc *auth.Service) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	router.Use(middleware.Sessions(session.CookieOptions{
		MaxAge: cfg.SessionMaxAge,
		Secure: cfg.CookieSecure,
	}))
	router.SetHTMLTemplate(handler.Templates())

	// 폼/API 제출에만 적용
	limiter := middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst)

	pages := handler.NewPageHandler(svc)
	router.GET("/", pages.Index)
	router.GET("/login", pages.LoginPage)
	router.POST("/login", limiter, pages.Login)
	router.GET("/signup", pages.SignupPage)
	router.POST("/signup", limiter, pages.Signup)
	router.GET("/dashboard", middleware.RequireSession(svc, middleware.ModePage), pages.Dashboard)
	router.POST("/logout", pages.Logout)

	api := handler.NewAPIHandler(svc)
	apiGroup := router.Group("/api")
	{
		apiGroup.POST("/signup", limiter, api.Signup)
		apiGroup.POST("/login", limiter, api.Login)
		apiGroup.POST("/logout", api.Logout)
		apiGroup.GET("/me", middleware.RequireSession(svc, middleware.ModeAPI), api.Me)
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	return router
}

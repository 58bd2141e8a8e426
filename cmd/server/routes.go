package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"scanhub.backend/internal/interfaces/http/handlers"
	"scanhub.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler    *handlers.AuthHandler
	userHandler    *handlers.UserHandler
	apiKeyHandler  *handlers.ApiKeyHandler
	scanHandler    *handlers.ScanHandler
	authMiddleware gin.HandlerFunc
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-API-Key, X-Request-ID")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})
}

func registerProbeRoutes(r *gin.Engine, h *handlers.HealthHandler) {
	r.GET("/health", h.Health)
	r.GET("/ready", h.Ready)
	r.GET("/version", h.Version)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Login (public)
		v1.POST("/token", d.authHandler.Login)

		// Current user routes (any authenticated principal)
		me := v1.Group("/users/me")
		me.Use(d.authMiddleware)
		{
			me.GET("", d.authHandler.GetMe)
			me.GET("/roles", d.authHandler.GetMyRoles)
		}

		// API Key routes (protected)
		apiKeys := v1.Group("/api-keys")
		apiKeys.Use(d.authMiddleware, middleware.RequireAnyRole())
		{
			apiKeys.POST("", d.apiKeyHandler.CreateApiKey)
			apiKeys.GET("", d.apiKeyHandler.ListApiKeys)
			apiKeys.DELETE("/:id", d.apiKeyHandler.RevokeApiKey)
			apiKeys.PUT("/:id/extend", d.apiKeyHandler.ExtendApiKey)
			apiKeys.PUT("/:id/suspend", d.apiKeyHandler.SuspendApiKey)
			apiKeys.PUT("/:id/active", d.apiKeyHandler.SetApiKeyActive)
		}

		// Scan report routes (protected)
		scans := v1.Group("/scans")
		scans.Use(d.authMiddleware, middleware.RequireAnyRole())
		{
			scans.POST("", d.scanHandler.CreateScan)
			scans.GET("", d.scanHandler.ListScans)
			scans.GET("/:id", d.scanHandler.GetScan)
		}

		// Admin routes (protected, admin role)
		users := v1.Group("/users")
		users.Use(d.authMiddleware, middleware.RequireAdmin())
		{
			users.GET("", d.userHandler.ListUsers)
			users.POST("", d.userHandler.CreateUser)
			users.PUT("/:id/status", d.userHandler.UpdateStatus)
			users.PUT("/:id/password", d.userHandler.UpdatePassword)
			users.PUT("/:id/roles", d.userHandler.UpdateRoles)
		}
	}
}

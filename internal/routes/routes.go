package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/shortlyhq/shortly-backend/internal/handlers"
	"github.com/shortlyhq/shortly-backend/internal/middleware"
)

// Handlers bundles everything the router needs.
type Handlers struct {
	Auth     *handlers.AuthHandler
	Shorten  *handlers.ShortenHandler
	MyURLs   *handlers.MyURLsHandler
	Redirect *handlers.RedirectHandler
	Health   *handlers.HealthHandler

	// ShortenLimiter throttles link creation per client IP.
	ShortenLimiter gin.HandlerFunc
}

// Register wires the HTTP surface. The redirect wildcard goes last so every
// static route (and therefore every reserved path segment) wins over it.
func Register(r *gin.Engine, h Handlers) {
	RegisterAuthRoutes(r, h.Auth)

	r.POST("/shorten", h.ShortenLimiter, h.Shorten.Create)

	RegisterMyURLRoutes(r, h.MyURLs)

	r.GET("/healthcheck", h.Health.Check)

	r.GET("/:code", h.Redirect.Redirect)
}

func RegisterAuthRoutes(r gin.IRouter, h *handlers.AuthHandler) {
	group := r.Group("/auth")
	{
		group.POST("/register", h.Register)
		group.POST("/login", h.Login)
	}
}

func RegisterMyURLRoutes(r gin.IRouter, h *handlers.MyURLsHandler) {
	group := r.Group("/my-urls")
	group.Use(middleware.RequireAuth())
	{
		group.GET("", h.List)
		group.GET("/:id", h.Get)
		group.PUT("/:id", h.Update)
		group.DELETE("/:id", h.Delete)
	}
}

// Package router wires handlers and middleware onto the Echo instance.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/andesair/checkin-api/internal/config"
	"github.com/andesair/checkin-api/internal/handler"
	"github.com/andesair/checkin-api/internal/middleware"
)

// RegisterRoutes registers the unauthenticated routes. Only the health
// check lives here.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the agent auth endpoints. Register, login and
// refresh live under /v1/auth without a session; /v1/me requires a
// valid token. Logout works with either a Bearer token or a refresh
// token in the body, so it stays outside the protected group.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("AGENT", "SUPERVISOR"),
	)
	auth.GET("/me", a.Me)
}

// RegisterFlights registers the check-in endpoints under /v1. Both
// require an authenticated agent. The rate limiter guards the whole
// group; the response cache applies only to the bulk check-in GET,
// whose result is stable between assignments.
func RegisterFlights(e *echo.Echo, f *handler.FlightHandler, jwtSecret string, rdb *redis.Client, cacheCfg config.CacheConfig, rlCfg config.RateLimitConfig) {
	g := e.Group("/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("AGENT", "SUPERVISOR"),
		middleware.NewTokenBucket(rlCfg, rdb),
	)
	g.GET("/flights/:id/passengers", f.CheckinFlight, middleware.NewRedisCache(cacheCfg, rdb))
	g.PUT("/flights/:id/passengers/:passengerId/seat", f.AssignSeat)
}

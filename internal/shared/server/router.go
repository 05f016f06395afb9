package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/halee5027/RecruitNova/internal/fetch"
	"github.com/halee5027/RecruitNova/internal/insights"
	"github.com/halee5027/RecruitNova/internal/screening"
	"github.com/halee5027/RecruitNova/internal/shared/config"
	"github.com/halee5027/RecruitNova/internal/shared/metrics"
	"github.com/halee5027/RecruitNova/internal/shared/server/middleware"
	"github.com/halee5027/RecruitNova/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router mounts. Nil handlers are
// skipped so tests can wire only what they exercise.
type RouterDeps struct {
	Screenings *screening.Handler
	Insights   *insights.Handler
	Fetch      *fetch.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config, deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				"DEFAULT": {Rate: 10, Burst: 30},
				"POLLING": {Rate: 50, Burst: 100},
			},
			GroupFor: func(c *gin.Context) string {
				if c.Request.Method == http.MethodGet {
					return "POLLING"
				}
				return "DEFAULT"
			},
		}),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true, "env": cfg.Env})
	})
	api.GET("/metrics", metrics.Handler())
	if deps.Screenings != nil {
		deps.Screenings.RegisterRoutes(api)
	}
	if deps.Insights != nil {
		deps.Insights.RegisterRoutes(api)
	}
	if deps.Fetch != nil {
		deps.Fetch.RegisterRoutes(api)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}

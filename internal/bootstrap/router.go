package bootstrap

import (
	"database/sql"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/planloom/planloom-backend/config"
	httpapi "github.com/planloom/planloom-backend/internal/api/http"
	"github.com/planloom/planloom-backend/internal/api/http/middleware"
	calhttp "github.com/planloom/planloom-backend/internal/calendar/http"
	"github.com/planloom/planloom-backend/internal/calendar/repository"
	"github.com/planloom/planloom-backend/internal/calendar/service"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	DB          *sql.DB
	Redis       *redis.Client // nil disables the list cache
	Cfg         *config.Config
}

// BuildRouter wires repositories, the calendar service and all HTTP routes.
// It returns the engine together with the service so cmd/api can hand the
// service to the cache warmer.
func BuildRouter(dep RouterDeps) (*gin.Engine, *service.CalendarService) {
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins: dep.Cfg.Server.CORSAllowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
	}))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB)
	healthHandler.RegisterRoutes(r)

	projectRepo := repository.NewProjectRepository(dep.DB)
	contentRepo := repository.NewContentRepository(dep.DB)

	var cache *repository.ListCache
	if dep.Redis != nil {
		cache = repository.NewListCache(dep.Redis, dep.Cfg.Redis.CacheTTL)
	}

	svc := service.NewCalendarService(projectRepo, contentRepo, cache)

	api := r.Group("/api/v1")
	api.Use(middleware.RequestIDMiddleware())
	api.Use(middleware.RateLimitMiddleware(dep.Cfg.Server.RateLimitRPS, dep.Cfg.Server.RateLimitBurst))

	projectsGroup := api.Group("/projects")
	calhttp.New(svc).Register(projectsGroup)

	return r, svc
}

package bootstrap

import (
	"database/sql"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/jobdesk/jobdesk/config"
	"github.com/jobdesk/jobdesk/internal/data"
	"github.com/jobdesk/jobdesk/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Jobs     *service.JobService
	Requests *service.PremiumRequestService
	Auth     *service.AuthService
}

// ServiceDeps contains the dependencies needed to build services.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// NewServices creates all application services from shared infrastructure.
func NewServices(deps *ServiceDeps) ServiceContainer {
	if deps == nil {
		return ServiceContainer{}
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	jobRepo := data.NewJobRepo(deps.DB)
	categoryRepo := data.NewCategoryRepo(deps.DB)
	requestRepo := data.NewPremiumRequestRepo(deps.DB)

	var authCfg config.AuthConfig
	if deps.Config != nil {
		authCfg = deps.Config.Auth
	}

	return ServiceContainer{
		Jobs: service.NewJobService(service.JobServiceOptions{
			Jobs:       jobRepo,
			Categories: categoryRepo,
		}),
		Requests: service.NewPremiumRequestService(service.PremiumRequestServiceOptions{
			Requests: requestRepo,
		}),
		Auth: BuildAuthService(AuthConfig{
			Auth:        authCfg,
			RedisClient: deps.RedisClient,
			Logger:      logger,
		}),
	}
}

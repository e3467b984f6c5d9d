package directoryfx

import (
	"time"

	"go.uber.org/fx"

	"placedex/internal/config"
	"placedex/internal/services"
)

var Module = fx.Provide(
	provideDirectoryService, provideSessionManager)

func provideDirectoryService(cache services.PlaceCacheInterface) services.DirectoryServiceInterface {
	return services.NewDirectoryService(cache)
}

func provideSessionManager(cfg *config.Config) services.SessionManagerInterface {
	return services.NewSessionManager(time.Duration(cfg.SessionTTLMinutes) * time.Minute)
}

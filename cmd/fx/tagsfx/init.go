package tagsfx

import (
	"go.uber.org/fx"

	"placedex/internal/services"
)

var Module = fx.Provide(
	provideTagService)

func provideTagService(cache services.PlaceCacheInterface) services.TagServiceInterface {
	return services.NewTagService(cache)
}

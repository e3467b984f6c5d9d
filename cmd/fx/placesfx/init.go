package placesfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"placedex/internal/config"
	"placedex/internal/repositories"
	"placedex/internal/services"
)

var Module = fx.Provide(
	providePlacesRepo, providePlaceCache, providePlaceService)

func providePlacesRepo(db *gorm.DB) repositories.PlaceRepository {
	return repositories.NewPlaceRepository(db)
}

func providePlaceCache(placeRepo repositories.PlaceRepository, cfg *config.Config) services.PlaceCacheInterface {
	return services.NewPlaceCache(placeRepo, cfg.RecentOnly)
}

func providePlaceService(placeRepo repositories.PlaceRepository) services.PlaceServiceInterface {
	return services.NewPlaceService(placeRepo)
}

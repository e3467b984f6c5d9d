package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"placedex/cmd/fx/configfx"
	"placedex/cmd/fx/dbfx"
	"placedex/cmd/fx/directoryfx"
	"placedex/cmd/fx/placesfx"
	"placedex/cmd/fx/tagsfx"
	"placedex/internal/api/controllers"
	"placedex/internal/config"
	"placedex/internal/services"
	"placedex/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	app := fx.New(
		configfx.Module,
		dbfx.Module,
		placesfx.Module,
		directoryfx.Module,
		tagsfx.Module,

		fx.Provide(
			controllers.NewPlacesController,
			controllers.NewDirectoryController,
			controllers.NewTagsController,
		),
		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, cache services.PlaceCacheInterface) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// Warm the place snapshot before serving. A failed fetch logs
			// and leaves an empty directory; it never blocks startup.
			count := cache.Refresh(ctx)
			log.Printf("Loaded %d places into the directory snapshot", count)

			go func() {
				addr := fmt.Sprintf(":%d", cfg.Port)
				log.Printf("Starting HTTP server at %s", addr)
				if err := engine.Run(addr); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	placesController *controllers.PlacesController,
	directoryController *controllers.DirectoryController,
	tagsController *controllers.TagsController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.NewHTTPMetrics().Middleware())

	RegisterRoutes(r, placesController, directoryController, tagsController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	placesController *controllers.PlacesController,
	directoryController *controllers.DirectoryController,
	tagsController *controllers.TagsController) {

	placesGroup := r.Group("/places")
	placesGroup.GET("", placesController.BrowsePlaces)
	placesGroup.GET("/:id", placesController.GetPlaceById)

	directoryGroup := r.Group("/directory")
	directoryGroup.GET("", directoryController.BrowseDirectory)
	directoryGroup.POST("/refresh", directoryController.RefreshDirectory)

	tagsGroup := r.Group("/tags")
	tagsGroup.GET("", tagsController.ListCategoryTagsHandler)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

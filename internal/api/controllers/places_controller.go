package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"placedex/internal/models/request_models"
	"placedex/internal/services"
	"placedex/pkg/utils"
)

type PlacesController struct {
	placeService     services.PlaceServiceInterface
	directoryService services.DirectoryServiceInterface
}

func NewPlacesController(
	placeService services.PlaceServiceInterface,
	directoryService services.DirectoryServiceInterface) *PlacesController {
	return &PlacesController{
		placeService:     placeService,
		directoryService: directoryService,
	}
}

func (p *PlacesController) GetPlaceById(c *gin.Context) {
	placeId := c.Param("id")
	if placeId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Place ID is required")
		return
	}

	place, err := p.placeService.GetPlaceByID(placeId, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, place, "Place fetched successfully")
}

// BrowsePlaces is the stateless browse endpoint: every filter arrives as a
// query parameter and no session is involved.
func (p *PlacesController) BrowsePlaces(c *gin.Context) {
	var q request_models.BrowseQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	query := services.DirectoryQuery{
		Category: q.Category,
		Search:   q.Search,
		Tag:      q.Tag,
		Page:     q.Page,
		PageSize: q.PageSize,
	}
	// Both coordinates are required for a usable origin; anything less
	// degrades silently to "no user coordinate".
	if q.Lat != nil && q.Lng != nil {
		query.Origin = &utils.LatLng{Lat: *q.Lat, Lng: *q.Lng}
	}

	view, err := p.directoryService.BrowseView(c.Request.Context(), query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, view, "Places fetched successfully")
}

package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"placedex/internal/config"
	"placedex/internal/services"
	"placedex/pkg/utils"
)

const sessionHeader = "X-Session-ID"

type DirectoryController struct {
	directoryService services.DirectoryServiceInterface
	sessions         services.SessionManagerInterface
	pageSize         int
}

func NewDirectoryController(
	directoryService services.DirectoryServiceInterface,
	sessions services.SessionManagerInterface,
	cfg *config.Config) *DirectoryController {
	return &DirectoryController{
		directoryService: directoryService,
		sessions:         sessions,
		pageSize:         cfg.PageSize,
	}
}

// BrowseDirectory is the stateful browse endpoint. The session referenced by
// X-Session-ID carries the filter state between calls; query parameters
// apply the state transitions (set category, set search, set tag, load
// more), each with its pagination reset rules.
func (d *DirectoryController) BrowseDirectory(c *gin.Context) {
	id := c.GetHeader(sessionHeader)
	state, ok := d.sessions.Get(id)
	if !ok {
		id, state = d.sessions.NewSession()
	}
	c.Header(sessionHeader, id)

	if v, ok := c.GetQuery("category"); ok {
		state.SetCategory(v)
	}
	if v, ok := c.GetQuery("q"); ok {
		state.SetSearch(v)
	}
	if v, ok := c.GetQuery("tag"); ok {
		state.SetTag(v)
	}
	if latStr, ok := c.GetQuery("lat"); ok {
		if lngStr, ok := c.GetQuery("lng"); ok {
			lat, latErr := strconv.ParseFloat(latStr, 64)
			lng, lngErr := strconv.ParseFloat(lngStr, 64)
			if latErr == nil && lngErr == nil {
				state.SetOrigin(&utils.LatLng{Lat: lat, Lng: lng})
			}
		}
	}
	if c.Query("more") == "true" {
		state.LoadMore()
	}

	view, err := d.directoryService.BrowseView(c.Request.Context(), state.Query(d.pageSize))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	d.sessions.Touch(id, state)

	utils.RespondSuccess(c, view, "Directory fetched successfully")
}

// RefreshDirectory re-fetches the place snapshot from the store.
func (d *DirectoryController) RefreshDirectory(c *gin.Context) {
	count := d.directoryService.RefreshSnapshot(c.Request.Context())
	utils.RespondSuccess(c, gin.H{"places": count}, "Snapshot refreshed")
}

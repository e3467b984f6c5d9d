package services

import (
	"context"
	"log"
	"sync"

	"placedex/internal/models/db_models"
	"placedex/internal/repositories"
)

// RecentFetchLimit caps the snapshot when the recent-only fetch variant is
// selected.
const RecentFetchLimit = 200

type PlaceCacheInterface interface {
	Snapshot() []db_models.Place
	Refresh(ctx context.Context) int
}

// PlaceCache holds the in-memory snapshot of the place set. The snapshot is
// loaded once at startup and replaced wholesale on refresh; readers always
// see a complete, immutable slice. A failed fetch logs and degrades to an
// empty snapshot rather than surfacing an error.
type PlaceCache struct {
	mu         sync.RWMutex
	places     []db_models.Place
	repo       repositories.PlaceRepository
	recentOnly bool
}

func NewPlaceCache(repo repositories.PlaceRepository, recentOnly bool) *PlaceCache {
	return &PlaceCache{
		places:     []db_models.Place{},
		repo:       repo,
		recentOnly: recentOnly,
	}
}

func (c *PlaceCache) Snapshot() []db_models.Place {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.places
}

// Refresh re-fetches the place set and swaps the snapshot. Returns the
// number of places now held.
func (c *PlaceCache) Refresh(ctx context.Context) int {
	var (
		places []db_models.Place
		err    error
	)
	if c.recentOnly {
		places, err = c.repo.ListRecent(ctx, RecentFetchLimit)
	} else {
		places, err = c.repo.ListAll(ctx)
	}
	if err != nil {
		log.Printf("Error fetching places: %v", err)
		places = []db_models.Place{}
	}

	c.mu.Lock()
	c.places = places
	c.mu.Unlock()

	return len(places)
}

package services

import (
	"context"
	"sort"
	"strings"

	"placedex/internal/models/db_models"
	"placedex/internal/models/response_models"
	"placedex/pkg/utils"
)

// MaxTagOptions caps the tag vocabulary offered as a secondary filter.
const MaxTagOptions = 15

// DirectoryQuery is one snapshot of the browse inputs: filters, the viewer's
// coordinate (nil when geolocation is unavailable), and pagination.
type DirectoryQuery struct {
	Category string
	Search   string
	Tag      string
	Origin   *utils.LatLng
	Page     int
	PageSize int
}

// rankedPlace pairs a source record with its per-pass derived distance.
// Source records are never mutated; the annotation lives here.
type rankedPlace struct {
	place    *db_models.Place
	distance *float64
}

// ComputeView runs the full browse pipeline over an immutable snapshot:
// distance annotation, category filter, text search, tag filter, distance
// sort, pagination. It is a pure function of its inputs.
func ComputeView(places []db_models.Place, q DirectoryQuery) response_models.DirectoryView {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = 30
	}

	// Annotation covers the entire raw set, before any filter runs, so the
	// tag vocabulary below works from undistorted data.
	ranked := annotateDistances(places, q.Origin)
	ranked = filterByCategory(ranked, q.Category)
	ranked = filterBySearch(ranked, q.Search)
	ranked = filterByTag(ranked, q.Tag)
	sortByDistance(ranked)

	total := len(ranked)
	visible := q.PageSize * q.Page
	if visible > total {
		visible = total
	}

	views := make([]response_models.PlaceView, 0, visible)
	for _, rp := range ranked[:visible] {
		views = append(views, toPlaceView(rp))
	}

	return response_models.DirectoryView{
		Places:        views,
		Total:         total,
		Remaining:     total - visible,
		Page:          q.Page,
		PageSize:      q.PageSize,
		AvailableTags: AvailableTags(places, q.Category),
	}
}

func annotateDistances(places []db_models.Place, origin *utils.LatLng) []rankedPlace {
	ranked := make([]rankedPlace, 0, len(places))
	for i := range places {
		rp := rankedPlace{place: &places[i]}
		if origin != nil {
			if coord := places[i].Coordinate(); coord != nil {
				d := utils.HaversineKm(*origin, *coord)
				rp.distance = &d
			}
		}
		ranked = append(ranked, rp)
	}
	return ranked
}

func filterByCategory(in []rankedPlace, category string) []rankedPlace {
	if category == "" || category == db_models.CategoryAll {
		return in
	}
	out := in[:0:0]
	for _, rp := range in {
		if rp.place.Category == category {
			out = append(out, rp)
		}
	}
	return out
}

// filterBySearch keeps places whose name or any tag contains the term,
// case-insensitively. A blank term is a no-op.
func filterBySearch(in []rankedPlace, term string) []rankedPlace {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return in
	}
	out := in[:0:0]
	for _, rp := range in {
		if strings.Contains(strings.ToLower(rp.place.Name), term) {
			out = append(out, rp)
			continue
		}
		for _, tag := range rp.place.Tags {
			if strings.Contains(strings.ToLower(tag), term) {
				out = append(out, rp)
				break
			}
		}
	}
	return out
}

// filterByTag keeps places carrying the exact tag. Unlike search this is
// case-sensitive.
func filterByTag(in []rankedPlace, tag string) []rankedPlace {
	if tag == "" {
		return in
	}
	out := in[:0:0]
	for _, rp := range in {
		for _, t := range rp.place.Tags {
			if t == tag {
				out = append(out, rp)
				break
			}
		}
	}
	return out
}

// sortByDistance orders by ascending distance where both operands have one.
// A pair with a missing distance compares as "no change", so places without
// a coordinate keep their relative position instead of being pushed to
// either end.
func sortByDistance(ranked []rankedPlace) {
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].distance == nil || ranked[j].distance == nil {
			return false
		}
		return *ranked[i].distance < *ranked[j].distance
	})
}

// AvailableTags builds the tag vocabulary for a category: first-seen order,
// deduplicated, capped at MaxTagOptions. It deliberately looks only at the
// category filter, never at the active search or tag, so picking a tag
// never shrinks the offered options.
func AvailableTags(places []db_models.Place, category string) []string {
	seen := make(map[string]struct{})
	tags := make([]string, 0, MaxTagOptions)
	for i := range places {
		if category != "" && category != db_models.CategoryAll && places[i].Category != category {
			continue
		}
		for _, tag := range places[i].Tags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
			if len(tags) == MaxTagOptions {
				return tags
			}
		}
	}
	return tags
}

func toPlaceView(rp rankedPlace) response_models.PlaceView {
	p := rp.place
	view := response_models.PlaceView{
		ID:          p.ID.String(),
		Name:        p.Name,
		Category:    p.Category,
		Subcategory: p.Subcategory,
		Address:     p.FallbackText(),
		Rating:      p.Rating,
		DistanceKm:  rp.distance,
		MapURL:      utils.MapLink(p.Name, p.MapURL),
		Tags:        p.Tags,
	}
	if coord := p.Coordinate(); coord != nil {
		view.Latitude = &coord.Lat
		view.Longitude = &coord.Lng
	}
	return view
}

type DirectoryServiceInterface interface {
	BrowseView(ctx context.Context, query DirectoryQuery) (response_models.DirectoryView, error)
	RefreshSnapshot(ctx context.Context) int
}

type DirectoryService struct {
	cache PlaceCacheInterface
}

func NewDirectoryService(cache PlaceCacheInterface) DirectoryServiceInterface {
	return &DirectoryService{cache: cache}
}

func (d *DirectoryService) BrowseView(ctx context.Context, query DirectoryQuery) (response_models.DirectoryView, error) {
	if query.Page < 1 {
		return response_models.DirectoryView{}, utils.ErrInvalidPage
	}
	if query.PageSize < 1 || query.PageSize > 100 {
		return response_models.DirectoryView{}, utils.ErrInvalidPageSize
	}
	return ComputeView(d.cache.Snapshot(), query), nil
}

func (d *DirectoryService) RefreshSnapshot(ctx context.Context) int {
	return d.cache.Refresh(ctx)
}

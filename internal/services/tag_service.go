package services

import (
	"context"
)

type TagServiceInterface interface {
	VocabularyForCategory(ctx context.Context, category string) ([]string, error)
}

type TagService struct {
	cache PlaceCacheInterface
}

func NewTagService(cache PlaceCacheInterface) TagServiceInterface {
	return &TagService{cache: cache}
}

func (t *TagService) VocabularyForCategory(ctx context.Context, category string) ([]string, error) {
	return AvailableTags(t.cache.Snapshot(), category), nil
}

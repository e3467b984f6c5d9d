package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"placedex/internal/models/db_models"
)

type PlaceRepository interface {
	ListAll(ctx context.Context) ([]db_models.Place, error)
	ListRecent(ctx context.Context, limit int) ([]db_models.Place, error)
	GetByID(ctx context.Context, id string) (*db_models.Place, error)
}

type placeRepository struct {
	db *gorm.DB
}

func NewPlaceRepository(db *gorm.DB) PlaceRepository {
	return &placeRepository{db: db}
}

func (r *placeRepository) ListAll(ctx context.Context) ([]db_models.Place, error) {
	var places []db_models.Place
	if err := r.db.WithContext(ctx).Find(&places).Error; err != nil {
		return nil, err
	}
	return places, nil
}

func (r *placeRepository) ListRecent(ctx context.Context, limit int) ([]db_models.Place, error) {
	var places []db_models.Place
	err := r.db.WithContext(ctx).
		Order("updated_at DESC").
		Limit(limit).
		Find(&places).Error
	if err != nil {
		return nil, err
	}
	return places, nil
}

func (r *placeRepository) GetByID(ctx context.Context, id string) (*db_models.Place, error) {
	var place db_models.Place
	err := r.db.WithContext(ctx).First(&place, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &place, nil
}

package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"placedex/internal/models/response_models"
	"placedex/internal/repositories"
	"placedex/pkg/utils"
)

type PlaceServiceInterface interface {
	GetPlaceByID(id string, ctx context.Context) (response_models.PlaceView, error)
}

type PlaceService struct {
	placeRepository repositories.PlaceRepository
}

func NewPlaceService(placeRepository repositories.PlaceRepository) PlaceServiceInterface {
	return &PlaceService{
		placeRepository: placeRepository,
	}
}

func (p *PlaceService) GetPlaceByID(id string, ctx context.Context) (response_models.PlaceView, error) {
	// A non-UUID id can't name a row; reject it here rather than letting
	// the database choke on the cast.
	if _, err := uuid.Parse(id); err != nil {
		return response_models.PlaceView{}, utils.ErrPlaceNotFound
	}

	place, err := p.placeRepository.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching place: %v", err)
		return response_models.PlaceView{}, utils.ErrDatabaseError
	}

	if place == nil {
		return response_models.PlaceView{}, utils.ErrPlaceNotFound
	}

	return toPlaceView(rankedPlace{place: place}), nil
}

package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"placedex/internal/models/db_models"
	"placedex/pkg/utils"
)

func TestGetPlaceByID(t *testing.T) {
	place := &db_models.Place{Name: "Temple View Cafe", Category: db_models.CategoryFood}
	place.ID = uuid.New()

	repo := &stubPlaceRepo{byID: place}
	svc := NewPlaceService(repo)

	view, err := svc.GetPlaceByID(place.ID.String(), context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if view.Name != "Temple View Cafe" || view.ID != place.ID.String() {
		t.Errorf("view = %+v", view)
	}
}

func TestGetPlaceByIDRejectsMalformedID(t *testing.T) {
	repo := &stubPlaceRepo{}
	svc := NewPlaceService(repo)

	_, err := svc.GetPlaceByID("not-a-uuid", context.Background())
	if !errors.Is(err, utils.ErrPlaceNotFound) {
		t.Errorf("err = %v, want ErrPlaceNotFound", err)
	}
	if repo.lookups != 0 {
		t.Error("malformed id must not reach the repository")
	}
}

func TestGetPlaceByIDUnknown(t *testing.T) {
	repo := &stubPlaceRepo{}
	svc := NewPlaceService(repo)

	_, err := svc.GetPlaceByID(uuid.New().String(), context.Background())
	if !errors.Is(err, utils.ErrPlaceNotFound) {
		t.Errorf("err = %v, want ErrPlaceNotFound", err)
	}
}

func TestGetPlaceByIDRepoFailure(t *testing.T) {
	repo := &stubPlaceRepo{err: errors.New("connection refused")}
	svc := NewPlaceService(repo)

	_, err := svc.GetPlaceByID(uuid.New().String(), context.Background())
	if !errors.Is(err, utils.ErrDatabaseError) {
		t.Errorf("err = %v, want ErrDatabaseError", err)
	}
}

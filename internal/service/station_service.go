package service

import (
	"context"
	"errors"

	"github.com/railgoteam/railroad-api/internal/models"
	"github.com/railgoteam/railroad-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrStationNotFound = errors.New("station not found")
	ErrStationInUse    = errors.New("station is in use by existing trains")
)

type StationParams struct {
	Name      string
	OpenHour  string
	CloseHour string
	Image     string
}

type UpdateStationParams struct {
	Name      *string
	OpenHour  *string
	CloseHour *string
	Image     *string
}

type StationService interface {
	Create(ctx context.Context, params StationParams) (*models.Station, error)
	List(ctx context.Context, sort string) ([]models.Station, error)
	GetByID(ctx context.Context, id uint) (*models.Station, error)
	Update(ctx context.Context, id uint, patch UpdateStationParams) (*models.Station, error)
	Delete(ctx context.Context, id uint) error
}

type stationService struct {
	stationRepo repository.StationRepository
	trainRepo   repository.TrainRepository
}

func NewStationService(stationRepo repository.StationRepository, trainRepo repository.TrainRepository) StationService {
	return &stationService{
		stationRepo: stationRepo,
		trainRepo:   trainRepo,
	}
}

func (s *stationService) Create(ctx context.Context, params StationParams) (*models.Station, error) {
	station := &models.Station{
		Name:      params.Name,
		OpenHour:  params.OpenHour,
		CloseHour: params.CloseHour,
		Image:     params.Image,
	}
	if err := s.stationRepo.Create(ctx, station); err != nil {
		return nil, err
	}
	return station, nil
}

func (s *stationService) List(ctx context.Context, sort string) ([]models.Station, error) {
	return s.stationRepo.FindAll(ctx, sort)
}

func (s *stationService) GetByID(ctx context.Context, id uint) (*models.Station, error) {
	station, err := s.stationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStationNotFound
		}
		return nil, err
	}
	return station, nil
}

func (s *stationService) Update(ctx context.Context, id uint, patch UpdateStationParams) (*models.Station, error) {
	station, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		station.Name = *patch.Name
	}
	if patch.OpenHour != nil {
		station.OpenHour = *patch.OpenHour
	}
	if patch.CloseHour != nil {
		station.CloseHour = *patch.CloseHour
	}
	if patch.Image != nil {
		station.Image = *patch.Image
	}

	if err := s.stationRepo.Update(ctx, station); err != nil {
		return nil, err
	}
	return station, nil
}

// Delete refuses to remove a station still referenced by any train.
func (s *stationService) Delete(ctx context.Context, id uint) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	count, err := s.trainRepo.CountByStation(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrStationInUse
	}

	return s.stationRepo.Delete(ctx, id)
}

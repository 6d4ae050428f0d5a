package service

import (
	"context"
	"errors"
	"time"

	"github.com/railgoteam/railroad-api/internal/models"
	"github.com/railgoteam/railroad-api/internal/repository"
	"gorm.io/gorm"
)

var ErrTrainNotFound = errors.New("train not found")

const (
	DefaultTrainLimit = 10
	MaxTrainLimit     = 100
)

type CreateTrainParams struct {
	Name            string
	StartStationID  uint
	EndStationID    uint
	TimeOfDeparture time.Time
}

type UpdateTrainParams struct {
	Name            *string
	StartStationID  *uint
	EndStationID    *uint
	TimeOfDeparture *time.Time
}

type TrainService interface {
	Create(ctx context.Context, params CreateTrainParams) (*models.Train, error)
	List(ctx context.Context, sort string, limit int) ([]models.Train, error)
	GetByID(ctx context.Context, id uint) (*models.Train, error)
	Update(ctx context.Context, id uint, patch UpdateTrainParams) (*models.Train, error)
	Delete(ctx context.Context, id uint) error
}

type trainService struct {
	trainRepo   repository.TrainRepository
	stationRepo repository.StationRepository
}

func NewTrainService(trainRepo repository.TrainRepository, stationRepo repository.StationRepository) TrainService {
	return &trainService{
		trainRepo:   trainRepo,
		stationRepo: stationRepo,
	}
}

func (s *trainService) stationExists(ctx context.Context, id uint) error {
	if _, err := s.stationRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStationNotFound
		}
		return err
	}
	return nil
}

func (s *trainService) Create(ctx context.Context, params CreateTrainParams) (*models.Train, error) {
	if err := s.stationExists(ctx, params.StartStationID); err != nil {
		return nil, err
	}
	if err := s.stationExists(ctx, params.EndStationID); err != nil {
		return nil, err
	}

	train := &models.Train{
		Name:            params.Name,
		StartStationID:  params.StartStationID,
		EndStationID:    params.EndStationID,
		TimeOfDeparture: params.TimeOfDeparture,
	}
	if err := s.trainRepo.Create(ctx, train); err != nil {
		return nil, err
	}
	return train, nil
}

func (s *trainService) List(ctx context.Context, sort string, limit int) ([]models.Train, error) {
	if limit <= 0 {
		limit = DefaultTrainLimit
	}
	if limit > MaxTrainLimit {
		limit = MaxTrainLimit
	}
	return s.trainRepo.FindAll(ctx, sort, limit)
}

func (s *trainService) GetByID(ctx context.Context, id uint) (*models.Train, error) {
	train, err := s.trainRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTrainNotFound
		}
		return nil, err
	}
	return train, nil
}

func (s *trainService) Update(ctx context.Context, id uint, patch UpdateTrainParams) (*models.Train, error) {
	train, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.StartStationID != nil {
		if err := s.stationExists(ctx, *patch.StartStationID); err != nil {
			return nil, err
		}
		train.StartStationID = *patch.StartStationID
	}
	if patch.EndStationID != nil {
		if err := s.stationExists(ctx, *patch.EndStationID); err != nil {
			return nil, err
		}
		train.EndStationID = *patch.EndStationID
	}
	if patch.Name != nil {
		train.Name = *patch.Name
	}
	if patch.TimeOfDeparture != nil {
		train.TimeOfDeparture = *patch.TimeOfDeparture
	}

	if err := s.trainRepo.Update(ctx, train); err != nil {
		return nil, err
	}
	return train, nil
}

func (s *trainService) Delete(ctx context.Context, id uint) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.trainRepo.Delete(ctx, id)
}

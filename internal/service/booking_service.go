package service

import (
	"context"
	"errors"
	"time"

	"github.com/railgoteam/railroad-api/internal/models"
	"github.com/railgoteam/railroad-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrTrainDeparted   = errors.New("cannot validate booking: train has already departed")
)

type CreateBookingParams struct {
	UserID  uint
	TrainID uint
	Date    *time.Time
}

type UpdateBookingParams struct {
	TrainID *uint
	Date    *time.Time
}

type BookingService interface {
	Create(ctx context.Context, params CreateBookingParams) (*models.Booking, error)
	Get(ctx context.Context, id uint) (*models.Booking, error)
	Update(ctx context.Context, id uint, patch UpdateBookingParams) (*models.Booking, error)
	Delete(ctx context.Context, id uint) error
	Validate(ctx context.Context, id uint) (*models.Booking, error)
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	trainRepo   repository.TrainRepository
	userRepo    repository.UserRepository
}

func NewBookingService(bookingRepo repository.BookingRepository, trainRepo repository.TrainRepository, userRepo repository.UserRepository) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		trainRepo:   trainRepo,
		userRepo:    userRepo,
	}
}

func (s *bookingService) Create(ctx context.Context, params CreateBookingParams) (*models.Booking, error) {
	if _, err := s.trainRepo.FindByID(ctx, params.TrainID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTrainNotFound
		}
		return nil, err
	}
	if _, err := s.userRepo.FindByID(ctx, params.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	date := time.Now()
	if params.Date != nil {
		date = *params.Date
	}

	booking := &models.Booking{
		UserID:  params.UserID,
		TrainID: params.TrainID,
		Date:    date,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// Get returns the booking with its user and train expanded.
func (s *bookingService) Get(ctx context.Context, id uint) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByIDWithRelations(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) Update(ctx context.Context, id uint, patch UpdateBookingParams) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if patch.TrainID != nil {
		if _, err := s.trainRepo.FindByID(ctx, *patch.TrainID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrTrainNotFound
			}
			return nil, err
		}
		booking.TrainID = *patch.TrainID
	}
	if patch.Date != nil {
		booking.Date = *patch.Date
	}

	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) Delete(ctx context.Context, id uint) error {
	if _, err := s.bookingRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookingNotFound
		}
		return err
	}
	return s.bookingRepo.Delete(ctx, id)
}

// Validate marks the booking validated unless its train has departed.
func (s *bookingService) Validate(ctx context.Context, id uint) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	train, err := s.trainRepo.FindByID(ctx, booking.TrainID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTrainNotFound
		}
		return nil, err
	}

	if !time.Now().Before(train.TimeOfDeparture) {
		return nil, ErrTrainDeparted
	}

	booking.IsValidated = true
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

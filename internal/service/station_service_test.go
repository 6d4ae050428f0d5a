package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/railgoteam/railroad-api/internal/models"
)

// --- Mock StationRepository ---

type mockStationRepo struct {
	createFn   func(ctx context.Context, station *models.Station) error
	findAllFn  func(ctx context.Context, sort string) ([]models.Station, error)
	findByIDFn func(ctx context.Context, id uint) (*models.Station, error)
	updateFn   func(ctx context.Context, station *models.Station) error
	deleteFn   func(ctx context.Context, id uint) error
}

func (m *mockStationRepo) Create(ctx context.Context, station *models.Station) error {
	if m.createFn != nil {
		return m.createFn(ctx, station)
	}
	return nil
}
func (m *mockStationRepo) FindAll(ctx context.Context, sort string) ([]models.Station, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx, sort)
	}
	return nil, nil
}
func (m *mockStationRepo) FindByID(ctx context.Context, id uint) (*models.Station, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockStationRepo) Update(ctx context.Context, station *models.Station) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, station)
	}
	return nil
}
func (m *mockStationRepo) Delete(ctx context.Context, id uint) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func sampleStation(id uint) *models.Station {
	return &models.Station{
		ID:        id,
		Name:      "Gare Centrale",
		OpenHour:  "08:00",
		CloseHour: "22:00",
		Image:     "aW1hZ2U=",
	}
}

// --- Tests ---

func TestCreateStation_Success(t *testing.T) {
	repo := &mockStationRepo{
		createFn: func(ctx context.Context, station *models.Station) error {
			station.ID = 1
			return nil
		},
	}
	svc := NewStationService(repo, &mockTrainRepo{})

	station, err := svc.Create(context.Background(), StationParams{
		Name:      "Gare Centrale",
		OpenHour:  "08:00",
		CloseHour: "22:00",
		Image:     "aW1hZ2U=",
	})

	assert.NoError(t, err)
	assert.Equal(t, uint(1), station.ID)
}

func TestDeleteStation_InUse(t *testing.T) {
	deleted := false
	stations := &mockStationRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Station, error) {
			return sampleStation(id), nil
		},
		deleteFn: func(ctx context.Context, id uint) error {
			deleted = true
			return nil
		},
	}
	trains := &mockTrainRepo{
		countByStationFn: func(ctx context.Context, stationID uint) (int64, error) {
			return 2, nil
		},
	}
	svc := NewStationService(stations, trains)

	err := svc.Delete(context.Background(), 1)

	assert.ErrorIs(t, err, ErrStationInUse)
	assert.False(t, deleted)
}

func TestDeleteStation_Success(t *testing.T) {
	deleted := false
	stations := &mockStationRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Station, error) {
			return sampleStation(id), nil
		},
		deleteFn: func(ctx context.Context, id uint) error {
			deleted = true
			return nil
		},
	}
	svc := NewStationService(stations, &mockTrainRepo{})

	err := svc.Delete(context.Background(), 1)

	assert.NoError(t, err)
	assert.True(t, deleted)
}

func TestDeleteStation_NotFound(t *testing.T) {
	svc := NewStationService(&mockStationRepo{}, &mockTrainRepo{})

	err := svc.Delete(context.Background(), 42)

	assert.ErrorIs(t, err, ErrStationNotFound)
}

func TestUpdateStation_PatchesFields(t *testing.T) {
	var saved *models.Station
	stations := &mockStationRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Station, error) {
			return sampleStation(id), nil
		},
		updateFn: func(ctx context.Context, station *models.Station) error {
			saved = station
			return nil
		},
	}
	svc := NewStationService(stations, &mockTrainRepo{})

	name := "Gare du Nord"
	station, err := svc.Update(context.Background(), 1, UpdateStationParams{Name: &name})

	assert.NoError(t, err)
	assert.Equal(t, "Gare du Nord", station.Name)
	assert.Equal(t, "08:00", saved.OpenHour)
	assert.Equal(t, "22:00", saved.CloseHour)
}

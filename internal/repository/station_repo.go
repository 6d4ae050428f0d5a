package repository

import (
	"context"

	"github.com/railgoteam/railroad-api/internal/models"
	"gorm.io/gorm"
)

// stationSortColumns whitelists sortable columns; anything else falls
// back to name so user input never reaches the ORDER BY clause raw.
var stationSortColumns = map[string]string{
	"name":       "name",
	"open_hour":  "open_hour",
	"close_hour": "close_hour",
}

type StationRepository interface {
	Create(ctx context.Context, station *models.Station) error
	FindAll(ctx context.Context, sort string) ([]models.Station, error)
	FindByID(ctx context.Context, id uint) (*models.Station, error)
	Update(ctx context.Context, station *models.Station) error
	Delete(ctx context.Context, id uint) error
}

type stationRepository struct {
	db *gorm.DB
}

func NewStationRepository(db *gorm.DB) StationRepository {
	return &stationRepository{db: db}
}

func (r *stationRepository) Create(ctx context.Context, station *models.Station) error {
	return r.db.WithContext(ctx).Create(station).Error
}

func (r *stationRepository) FindAll(ctx context.Context, sort string) ([]models.Station, error) {
	column, ok := stationSortColumns[sort]
	if !ok {
		column = "name"
	}

	var stations []models.Station
	if err := r.db.WithContext(ctx).Order(column + " ASC").Find(&stations).Error; err != nil {
		return nil, err
	}
	return stations, nil
}

func (r *stationRepository) FindByID(ctx context.Context, id uint) (*models.Station, error) {
	var station models.Station
	if err := r.db.WithContext(ctx).First(&station, id).Error; err != nil {
		return nil, err
	}
	return &station, nil
}

func (r *stationRepository) Update(ctx context.Context, station *models.Station) error {
	return r.db.WithContext(ctx).Save(station).Error
}

func (r *stationRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Station{}, id).Error
}

package repository

import (
	"context"
	"strings"

	"github.com/railgoteam/railroad-api/internal/models"
	"gorm.io/gorm"
)

var trainSortColumns = map[string]string{
	"name":              "name",
	"time_of_departure": "time_of_departure",
}

type TrainRepository interface {
	Create(ctx context.Context, train *models.Train) error
	FindAll(ctx context.Context, sort string, limit int) ([]models.Train, error)
	FindByID(ctx context.Context, id uint) (*models.Train, error)
	Update(ctx context.Context, train *models.Train) error
	Delete(ctx context.Context, id uint) error
	CountByStation(ctx context.Context, stationID uint) (int64, error)
}

type trainRepository struct {
	db *gorm.DB
}

func NewTrainRepository(db *gorm.DB) TrainRepository {
	return &trainRepository{db: db}
}

func (r *trainRepository) Create(ctx context.Context, train *models.Train) error {
	return r.db.WithContext(ctx).Create(train).Error
}

// FindAll accepts a sort expression of the form "field" or "-field"
// for descending order; unknown fields sort by departure time.
func (r *trainRepository) FindAll(ctx context.Context, sort string, limit int) ([]models.Train, error) {
	direction := "ASC"
	if strings.HasPrefix(sort, "-") {
		direction = "DESC"
		sort = strings.TrimPrefix(sort, "-")
	}
	column, ok := trainSortColumns[sort]
	if !ok {
		column = "time_of_departure"
	}

	var trains []models.Train
	err := r.db.WithContext(ctx).
		Order(column + " " + direction).
		Limit(limit).
		Find(&trains).Error
	if err != nil {
		return nil, err
	}
	return trains, nil
}

func (r *trainRepository) FindByID(ctx context.Context, id uint) (*models.Train, error) {
	var train models.Train
	if err := r.db.WithContext(ctx).First(&train, id).Error; err != nil {
		return nil, err
	}
	return &train, nil
}

func (r *trainRepository) Update(ctx context.Context, train *models.Train) error {
	return r.db.WithContext(ctx).Save(train).Error
}

func (r *trainRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Train{}, id).Error
}

// CountByStation counts trains departing from or arriving at a station.
func (r *trainRepository) CountByStation(ctx context.Context, stationID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Train{}).
		Where("start_station_id = ? OR end_station_id = ?", stationID, stationID).
		Count(&count).Error
	return count, err
}

package dto

import (
	"time"

	"github.com/railgoteam/railroad-api/internal/models"
)

type RegisterRequest struct {
	Email    string      `json:"email" validate:"required,email"`
	Pseudo   string      `json:"pseudo" validate:"required"`
	Password string      `json:"password" validate:"required"`
	Role     models.Role `json:"role" validate:"omitempty,oneof=user admin"`
	Employee bool        `json:"employee"`
}

type LoginRequest struct {
	Pseudo   string `json:"pseudo" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UpdateUserRequest struct {
	Email    *string      `json:"email" validate:"omitempty,email"`
	Pseudo   *string      `json:"pseudo" validate:"omitempty,min=1"`
	Password *string      `json:"password" validate:"omitempty,min=1"`
	Role     *models.Role `json:"role" validate:"omitempty,oneof=user admin"`
	Employee *bool        `json:"employee"`
}

type CreateTrainRequest struct {
	Name            string    `json:"name" validate:"required"`
	StartStation    uint      `json:"start_station" validate:"required"`
	EndStation      uint      `json:"end_station" validate:"required"`
	TimeOfDeparture time.Time `json:"time_of_departure" validate:"required"`
}

type UpdateTrainRequest struct {
	Name            *string    `json:"name"`
	StartStation    *uint      `json:"start_station"`
	EndStation      *uint      `json:"end_station"`
	TimeOfDeparture *time.Time `json:"time_of_departure"`
}

type CreateBookingRequest struct {
	UserID  uint       `json:"userId" validate:"required"`
	TrainID uint       `json:"trainId" validate:"required"`
	Date    *time.Time `json:"date"`
}

type UpdateBookingRequest struct {
	TrainID *uint      `json:"trainId"`
	Date    *time.Time `json:"date"`
}

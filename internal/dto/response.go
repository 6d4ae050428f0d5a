package dto

import (
	"time"

	"github.com/railgoteam/railroad-api/internal/models"
)

type UserResponse struct {
	ID        uint        `json:"id"`
	Email     string      `json:"email"`
	Pseudo    string      `json:"pseudo"`
	Role      models.Role `json:"role"`
	Employee  bool        `json:"employee"`
	CreatedAt time.Time   `json:"created_at"`
}

type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type StationResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	OpenHour  string    `json:"open_hour"`
	CloseHour string    `json:"close_hour"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"created_at"`
}

type TrainResponse struct {
	ID              uint      `json:"id"`
	Name            string    `json:"name"`
	StartStation    uint      `json:"start_station"`
	EndStation      uint      `json:"end_station"`
	TimeOfDeparture time.Time `json:"time_of_departure"`
	CreatedAt       time.Time `json:"created_at"`
}

// BookingResponse carries user and train as plain identifiers.
type BookingResponse struct {
	ID          uint      `json:"id"`
	User        uint      `json:"user"`
	Train       uint      `json:"train"`
	Date        time.Time `json:"date"`
	IsValidated bool      `json:"is_validated"`
}

// BookingDetailResponse expands the user and train references.
type BookingDetailResponse struct {
	ID          uint          `json:"id"`
	User        UserResponse  `json:"user"`
	Train       TrainResponse `json:"train"`
	Date        time.Time     `json:"date"`
	IsValidated bool          `json:"is_validated"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type BookingStatusResponse struct {
	Message string          `json:"message"`
	Booking BookingResponse `json:"booking"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Pseudo:    u.Pseudo,
		Role:      u.Role,
		Employee:  u.Employee,
		CreatedAt: u.CreatedAt,
	}
}

func ToStationResponse(s *models.Station) StationResponse {
	return StationResponse{
		ID:        s.ID,
		Name:      s.Name,
		OpenHour:  s.OpenHour,
		CloseHour: s.CloseHour,
		Image:     s.Image,
		CreatedAt: s.CreatedAt,
	}
}

func ToTrainResponse(t *models.Train) TrainResponse {
	return TrainResponse{
		ID:              t.ID,
		Name:            t.Name,
		StartStation:    t.StartStationID,
		EndStation:      t.EndStationID,
		TimeOfDeparture: t.TimeOfDeparture,
		CreatedAt:       t.CreatedAt,
	}
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	return BookingResponse{
		ID:          b.ID,
		User:        b.UserID,
		Train:       b.TrainID,
		Date:        b.Date,
		IsValidated: b.IsValidated,
	}
}

// ToBookingDetailResponse expects User and Train to be preloaded.
func ToBookingDetailResponse(b *models.Booking) BookingDetailResponse {
	resp := BookingDetailResponse{
		ID:          b.ID,
		Date:        b.Date,
		IsValidated: b.IsValidated,
	}
	if b.User != nil {
		resp.User = ToUserResponse(b.User)
	}
	if b.Train != nil {
		resp.Train = ToTrainResponse(b.Train)
	}
	return resp
}

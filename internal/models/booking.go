package models

import "time"

type Booking struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null" json:"user"`
	TrainID     uint      `gorm:"not null" json:"train"`
	Date        time.Time `gorm:"not null" json:"date"`
	IsValidated bool      `gorm:"not null;default:false" json:"is_validated"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	User  *User  `gorm:"foreignKey:UserID" json:"-"`
	Train *Train `gorm:"foreignKey:TrainID" json:"-"`
}

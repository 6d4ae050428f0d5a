package models

import "time"

type Train struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"not null" json:"name"`
	StartStationID  uint      `gorm:"not null" json:"start_station"`
	EndStationID    uint      `gorm:"not null" json:"end_station"`
	TimeOfDeparture time.Time `gorm:"not null" json:"time_of_departure"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	StartStation *Station `gorm:"foreignKey:StartStationID" json:"-"`
	EndStation   *Station `gorm:"foreignKey:EndStationID" json:"-"`
}

package models

import "time"

// Station image payloads are stored inline, base64-encoded.
type Station struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	OpenHour  string    `gorm:"not null" json:"open_hour"`
	CloseHour string    `gorm:"not null" json:"close_hour"`
	Image     string    `gorm:"type:text;not null" json:"image"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package player

import (
	"time"

	"gorm.io/gorm"
)

// Player is a registered club member. IDs are UUID strings so that imported
// rosters can carry their own identifiers.
type Player struct {
	ID               string         `json:"id" gorm:"primaryKey;type:uuid"`
	FullName         string         `json:"full_name" gorm:"not null;index"`
	Email            string         `json:"email" gorm:"uniqueIndex;not null"`
	DateOfBirth      time.Time      `json:"date_of_birth"`
	Gender           string         `json:"gender,omitempty"`
	Role             string         `json:"role,omitempty"` // Batsman, Bowler, All-Rounder, Wicket-Keeper
	State            string         `json:"state,omitempty"`
	Country          string         `json:"country,omitempty"`
	PhotoURL         string         `json:"photo_url,omitempty"`
	JerseyNumber     *int           `json:"jersey_number,omitempty"`
	RegistrationDate time.Time      `json:"registration_date"`
	PasswordHash     string         `json:"-"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `json:"-" gorm:"index"`
}

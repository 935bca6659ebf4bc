package fees

import (
	"time"

	"gorm.io/gorm"
)

// Withdrawal is one payout from the collected fee pool.
type Withdrawal struct {
	ID          string         `json:"id" gorm:"primaryKey;type:uuid"`
	Amount      float64        `json:"amount" gorm:"not null"`
	Description string         `json:"description,omitempty"`
	WithdrawnAt time.Time      `json:"withdrawn_at" gorm:"index"`
	CreatedAt   time.Time      `json:"created_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

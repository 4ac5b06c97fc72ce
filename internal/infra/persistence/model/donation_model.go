package model

import (
	"time"

	"github.com/google/uuid"
)

// DonationModel is the GORM-specific struct for the 'donations' table.
type DonationModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RestaurantID   string     `gorm:"type:text;not null;index"`
	RestaurantName string     `gorm:"type:text;not null"`
	ContactEmail   string     `gorm:"type:text;not null;default:''"`
	ContactPhone   string     `gorm:"type:text;not null;default:''"`
	ContactAddress string     `gorm:"type:text;not null;default:''"`
	FoodName       string     `gorm:"type:text;not null"`
	Servings       int        `gorm:"not null;check:servings > 0"`
	Status         string     `gorm:"type:text;not null;default:'Available';index"`
	Latitude       *float64   `gorm:"type:double precision"`
	Longitude      *float64   `gorm:"type:double precision"`
	ClaimedBy      *string    `gorm:"type:text;index"`
	RequestID      *uuid.UUID `gorm:"type:uuid"`
	ClaimedAt      *time.Time
	ConfirmedAt    *time.Time
	CreatedAt      time.Time `gorm:"index"`
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (DonationModel) TableName() string {
	return "donations"
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// RequestModel is the GORM-specific struct for the 'requests' table.
type RequestModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrphanageID    string    `gorm:"type:text;not null;index"`
	OrphanageName  string    `gorm:"type:text;not null;default:''"`
	OrphanagePhone string    `gorm:"type:text;not null;default:''"`
	ItemNeeded     string    `gorm:"type:text;not null"`
	Quantity       int       `gorm:"not null;check:quantity > 0"`
	Latitude       *float64  `gorm:"type:double precision"`
	Longitude      *float64  `gorm:"type:double precision"`
	Status         string    `gorm:"type:text;not null;default:'Pending';index"`
	CreatedAt      time.Time `gorm:"index"`
	FulfilledAt    *time.Time
}

// TableName explicitly sets the table name for GORM.
func (RequestModel) TableName() string {
	return "requests"
}

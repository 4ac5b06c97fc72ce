package model

import (
	"time"
)

// ProfileModel is the GORM-specific struct for the 'profiles' table.
// Its primary key is the identity provider's user id.
type ProfileModel struct {
	ID                string   `gorm:"type:text;primary_key"`
	Role              string   `gorm:"type:text;not null;default:'';index"`
	RequestedRole     string   `gorm:"type:text;not null;default:''"`
	Name              string   `gorm:"type:text;not null;default:''"`
	Email             string   `gorm:"type:text;not null;default:''"`
	Phone             string   `gorm:"type:text;not null;default:''"`
	Address           string   `gorm:"type:text;not null;default:''"`
	Latitude          *float64 `gorm:"type:double precision"`
	Longitude         *float64 `gorm:"type:double precision"`
	IsDisabled        bool     `gorm:"not null;default:false"`
	NotificationToken *string  `gorm:"type:text;index"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}

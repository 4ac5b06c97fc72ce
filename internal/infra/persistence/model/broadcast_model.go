package model

import (
	"time"

	"github.com/google/uuid"
)

// BroadcastModel is the GORM-specific struct for the 'broadcasts' table.
// Rows are append-only apart from the Attempted statistic.
type BroadcastModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title          string    `gorm:"type:text;not null"`
	Message        string    `gorm:"type:text;not null"`
	TargetAudience string    `gorm:"type:text;not null"`
	TargetRole     string    `gorm:"type:text;not null;default:''"`
	TargetUserID   string    `gorm:"type:text;not null;default:''"`
	CreatedBy      string    `gorm:"type:text;not null"`
	Attempted      int       `gorm:"not null;default:0"`
	CreatedAt      time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (BroadcastModel) TableName() string {
	return "broadcasts"
}

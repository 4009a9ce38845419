package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type NotificationLog struct {
	gorm.Model

	UserID    uint           `gorm:"not null;index"`
	Kind      string         `gorm:"not null"` // "task_assigned", "task_status_changed", "team_addition"
	Recipient string         `gorm:"not null"`
	Subject   string         `gorm:"not null"`
	Status    string         `gorm:"not null"` // "sent", "failed"
	Payload   datatypes.JSON `gorm:"type:jsonb"`
	SentAt    *time.Time

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

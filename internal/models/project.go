package models

import "gorm.io/gorm"

type Project struct {
	gorm.Model

	Name        string `gorm:"not null"`
	Description string
	TeamID      uint `gorm:"not null;index"`
	CreatedBy   uint `gorm:"not null"` // audit field: the user who created the project

	// Relationships
	Team  Team   `gorm:"foreignKey:TeamID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Tasks []Task `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

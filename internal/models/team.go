package models

import "gorm.io/gorm"

type Team struct {
	gorm.Model

	Name     string `gorm:"not null"`
	LeaderID uint   `gorm:"not null;index"`

	// Relationships
	Leader      User             `gorm:"foreignKey:LeaderID"`
	Memberships []TeamMembership `gorm:"foreignKey:TeamID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Projects    []Project        `gorm:"foreignKey:TeamID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

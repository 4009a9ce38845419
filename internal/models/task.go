package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

const (
	TaskStatusTodo       = "TODO"
	TaskStatusInProgress = "IN_PROGRESS"
	TaskStatusDone       = "DONE"
)

type Task struct {
	gorm.Model

	Title       string `gorm:"not null"`
	Description string
	Status      string `gorm:"not null;default:TODO"`
	DueDate     *time.Time
	ProjectID   uint  `gorm:"not null;index"`
	AssigneeID  *uint `gorm:"index"`
	CreatedBy   uint  `gorm:"not null"`

	// Relationships
	Project  Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Assignee *User   `gorm:"foreignKey:AssigneeID;constraint:OnUpdate:Cascade,OnDelete:SET NULL"`
}

// NormalizeStatus maps a client-supplied status onto one of the known task
// states. The legacy "TO-DO" spelling is accepted and folded into TODO.
func NormalizeStatus(s string) (string, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case TaskStatusTodo, "TO-DO":
		return TaskStatusTodo, true
	case TaskStatusInProgress:
		return TaskStatusInProgress, true
	case TaskStatusDone:
		return TaskStatusDone, true
	}
	return "", false
}

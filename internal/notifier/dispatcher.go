package notifier

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/synergy-dev/synergysphere/internal/models"
	"github.com/synergy-dev/synergysphere/internal/store"
)

const (
	KindTaskAssigned      = "task_assigned"
	KindTaskStatusChanged = "task_status_changed"
	KindTeamAddition      = "team_addition"

	signature = "Regards,\nThe SynergySphere Team"
)

// Dispatcher formats and delivers notifications for domain events and writes
// a NotificationLog row per dispatch. Every method is safe to call from a
// goroutine detached from the originating request.
type Dispatcher struct {
	sender Notifier
	store  *store.Store
}

func NewDispatcher(sender Notifier, store *store.Store) *Dispatcher {
	return &Dispatcher{sender: sender, store: store}
}

func (d *Dispatcher) TaskAssigned(assignee models.User, taskTitle, projectName string) {
	subject := "New Task Assignment"
	body := fmt.Sprintf(
		"Hi %s,\n\nYou have been assigned a new task:\n\nTask: %s\nProject: %s\n\nLog in to the application to view the details.\n\n%s\n",
		assignee.Name, taskTitle, projectName, signature,
	)

	d.dispatch(assignee, KindTaskAssigned, subject, body, map[string]string{
		"task":    taskTitle,
		"project": projectName,
	})
}

func (d *Dispatcher) TaskStatusChanged(assignee models.User, taskTitle, oldStatus, newStatus string) {
	subject := "Task Status Update"
	body := fmt.Sprintf(
		"Hi %s,\n\nThe status of your task has changed:\n\nTask: %s\nPrevious Status: %s\nNew Status: %s\n\nLog in to the application for more information.\n\n%s\n",
		assignee.Name, taskTitle, oldStatus, newStatus, signature,
	)

	d.dispatch(assignee, KindTaskStatusChanged, subject, body, map[string]string{
		"task":       taskTitle,
		"old_status": oldStatus,
		"new_status": newStatus,
	})
}

func (d *Dispatcher) TeamAddition(user models.User, teamName string) {
	subject := "Team Membership Update"
	body := fmt.Sprintf(
		"Hi %s,\n\nYou have been added to team: %s\n\nLog in to the application to view your team's projects and tasks.\n\n%s\n",
		user.Name, teamName, signature,
	)

	d.dispatch(user, KindTeamAddition, subject, body, map[string]string{
		"team": teamName,
	})
}

func (d *Dispatcher) dispatch(user models.User, kind, subject, body string, payload map[string]string) {
	status := "sent"

	if err := d.sender.Send(user.Email, subject, body); err != nil {
		log.Printf("Failed to send %s notification to %s: %v", kind, user.Email, err)
		status = "failed"
	}

	payloadJSON, err := json.Marshal(payload)

	if err != nil {
		log.Printf("Failed to marshal %s notification payload: %v", kind, err)
		payloadJSON = nil
	}

	now := time.Now()

	entry := models.NotificationLog{
		UserID:    user.ID,
		Kind:      kind,
		Recipient: user.Email,
		Subject:   subject,
		Status:    status,
		Payload:   payloadJSON,
		SentAt:    &now,
	}

	if err := d.store.RecordNotification(&entry); err != nil {
		log.Printf("Failed to record %s notification for user %d: %v", kind, user.ID, err)
	}
}

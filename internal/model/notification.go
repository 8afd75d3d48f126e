package model

import (
	"time"

	"github.com/google/uuid"
)

// Notification types emitted by the workflow service.
const (
	NotificationTypeApplicationSubmitted = "doctor-application-submitted"
	NotificationTypeApplicationApproved  = "doctor-application-approved"
	NotificationTypeApplicationRejected  = "doctor-application-rejected"
	NotificationTypeNewAppointment       = "new-appointment-request"
	NotificationTypeAppointmentStatus    = "appointment-status-updated"
)

// Notification is one entry in an account's inbox. The workflow service
// appends them; only the owning account clears its own list.
type Notification struct {
	ID          uuid.UUID `json:"id" db:"id"`
	UserID      uuid.UUID `json:"user_id" db:"user_id"`
	Type        string    `json:"type" db:"type"`
	Message     string    `json:"message" db:"message"`
	Data        JSONMap   `json:"data" db:"data"`
	OnClickPath string    `json:"onClickPath" db:"on_click_path"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

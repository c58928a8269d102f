package therapy

import "time"

// Session statuses.
const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Session is a booked therapy appointment.
type Session struct {
	ID            string    `json:"id"`
	TherapistID   string    `json:"therapistId"`
	StudentID     string    `json:"studentId"`
	Type          string    `json:"type"`   // chat, call, video
	Status        string    `json:"status"` // scheduled, completed, cancelled
	ScheduledDate time.Time `json:"scheduledDate"`
	Duration      int       `json:"duration"` // minutes
	Notes         string    `json:"notes,omitempty"`
	Cost          int       `json:"cost,omitempty"`
}

// SessionsKey holds all bookings under one document.
const SessionsKey = "therapy_sessions"

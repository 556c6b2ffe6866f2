package models

import "time"

// SessionStatus represents the lifecycle status of a mentorship session
type SessionStatus string

const (
	StatusRequested SessionStatus = "requested"
	StatusActive    SessionStatus = "active"
	StatusCompleted SessionStatus = "completed"
)

// Session represents one mentoring engagement between a mentee and a mentor.
// The JSON field names are part of the public API and must not change.
type Session struct {
	ID            string        `json:"id"`
	MenteeID      string        `json:"menteeId"`
	MentorID      string        `json:"mentorId"`
	CourseID      *string       `json:"courseId"`
	Description   string        `json:"description"`
	PreferredTime *time.Time    `json:"preferredTime"`
	ScheduledTime *time.Time    `json:"scheduledTime"`
	StartedAt     *time.Time    `json:"startedAt"`
	EndedAt       *time.Time    `json:"endedAt"`
	Status        SessionStatus `json:"status"`
	Duration      int           `json:"duration"`
	Summary       string        `json:"summary"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// SessionDetail is a Session joined with the display fields the client
// renders alongside it (course and party names).
type SessionDetail struct {
	Session
	CourseName string `json:"courseName,omitempty"`
	MenteeName string `json:"menteeName,omitempty"`
	MentorName string `json:"mentorName,omitempty"`
}

// Log is the immutable completion record written exactly once per completed
// session. Duration is wall-clock elapsed minutes, not the requested duration.
type Log struct {
	ID        string    `json:"id"`
	SessionID string    `json:"sessionId"`
	MenteeID  string    `json:"menteeId"`
	MentorID  string    `json:"mentorId"`
	CourseID  *string   `json:"courseId"`
	Duration  int       `json:"duration"`
	Date      time.Time `json:"date"`
}

// DefaultDuration is the requested session length in minutes when the
// client does not specify one.
const DefaultDuration = 45

package models

import "time"

// Notification types emitted by the service.
const (
	NotifySessionScheduled = "session_scheduled"
	NotifyNewQuestion      = "new_question"
	NotifyQuestionAnswered = "question_answered"
)

// Notification is a per-user side-effect record created on state
// transitions. Creation is fire-and-forget: a failed notification never
// fails the operation that produced it.
type Notification struct {
	ID        string         `json:"id"`
	UserID    string         `json:"userId"`
	Type      string         `json:"type"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	Data      map[string]any `json:"data"`
	Read      bool           `json:"read"`
	CreatedAt time.Time      `json:"createdAt"`
}

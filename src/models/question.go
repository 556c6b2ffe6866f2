package models

import "time"

// QuestionStatus is the two-state question lifecycle.
type QuestionStatus string

const (
	QuestionOpen     QuestionStatus = "open"
	QuestionAnswered QuestionStatus = "answered"
)

// QuestionPriority orders questions in mentor-facing listings.
type QuestionPriority string

const (
	PriorityLow    QuestionPriority = "low"
	PriorityMedium QuestionPriority = "medium"
	PriorityHigh   QuestionPriority = "high"
)

// Question is a mentee-authored help request, loosely coupled to sessions:
// answering one may spawn a session offer in requested status.
type Question struct {
	ID          string           `json:"id"`
	MenteeID    string           `json:"menteeId"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	CourseID    *string          `json:"courseId"`
	Tags        []string         `json:"tags"`
	Priority    QuestionPriority `json:"priority"`
	Status      QuestionStatus   `json:"status"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// QuestionDetail adds the display fields joined in listings.
type QuestionDetail struct {
	Question
	CourseName      string `json:"courseName,omitempty"`
	MenteeFirstName string `json:"menteeFirstName,omitempty"`
	MenteeLastName  string `json:"menteeLastName,omitempty"`
}

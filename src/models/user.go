package models

import "time"

// UserRole distinguishes the three account types.
type UserRole string

const (
	RoleMentee UserRole = "mentee"
	RoleMentor UserRole = "mentor"
	RoleAdmin  UserRole = "admin"
)

// Profile is the free-form user profile document stored as JSONB.
type Profile struct {
	Bio      string   `json:"bio,omitempty"`
	Courses  []string `json:"courses,omitempty"`
	PhotoURL string   `json:"photoURL,omitempty"`
}

// User represents a platform account. Password is the bcrypt hash and is
// never serialized.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      UserRole  `json:"role"`
	Approved  bool      `json:"approved"`
	Profile   Profile   `json:"profile"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// StudentSummary is the listing projection for the student directory.
type StudentSummary struct {
	ID            string    `json:"id"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Email         string    `json:"email"`
	Profile       Profile   `json:"profile"`
	CreatedAt     time.Time `json:"createdAt"`
	TotalSessions int       `json:"totalSessions"`
}

// MentorSummary is the listing projection for mentor browsing and matching.
type MentorSummary struct {
	ID                string    `json:"id"`
	FirstName         string    `json:"firstName"`
	LastName          string    `json:"lastName"`
	Email             string    `json:"email"`
	Profile           Profile   `json:"profile"`
	CreatedAt         time.Time `json:"createdAt"`
	CompletedSessions int       `json:"completedSessions"`
}

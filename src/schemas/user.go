package schemas

import "mentorship-service/src/models"

// RegisterRequest is the body for creating a new account. Role must be
// mentee or mentor; mentors start unapproved.
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Role      string `json:"role" binding:"required,oneof=mentee mentor"`
}

// LoginRequest is the body for logging in.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the signed token and the authenticated user.
type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// UpdateProfileRequest is the body for updating the caller's profile
// document. Nil fields are left unchanged.
type UpdateProfileRequest struct {
	Bio     *string  `json:"bio"`
	Courses []string `json:"courses"`
}

// PhotoResponse is returned after a profile photo upload.
type PhotoResponse struct {
	PhotoURL string `json:"photoURL"`
}

// Pagination is the shared paging envelope for listings.
type Pagination struct {
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"hasMore"`
}

// StudentListResponse wraps the student directory listing.
type StudentListResponse struct {
	Students   []models.StudentSummary `json:"students"`
	Pagination Pagination              `json:"pagination"`
}

// MentorListResponse wraps mentor browsing and matching results.
type MentorListResponse struct {
	Mentors    []models.MentorSummary `json:"mentors"`
	TotalFound int                    `json:"totalFound"`
}

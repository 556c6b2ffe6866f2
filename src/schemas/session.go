package schemas

import "mentorship-service/src/models"

// RequestSessionRequest is the body for requesting a mentorship session.
// PreferredTime is RFC 3339 or empty.
type RequestSessionRequest struct {
	MentorID      string `json:"mentorId" binding:"required"`
	CourseID      string `json:"courseId"`
	Description   string `json:"description" binding:"required"`
	PreferredTime string `json:"preferredTime"`
}

// RequestSessionResponse wraps the created session row.
type RequestSessionResponse struct {
	Message string          `json:"message"`
	Session *models.Session `json:"session"`
}

// AcceptSessionRequest is the body for accepting a session request.
type AcceptSessionRequest struct {
	ScheduledTime string `json:"scheduledTime" binding:"required"`
}

// EndSessionRequest is the body for ending an active session.
type EndSessionRequest struct {
	Summary string `json:"summary"`
}

// SessionMessageResponse is the generic acknowledgement for accept/end.
type SessionMessageResponse struct {
	Message string `json:"message"`
}

package schemas

import "mentorship-service/src/models"

// CreateQuestionRequest is the body for posting a new question.
type CreateQuestionRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	CourseID    string   `json:"courseId"`
	Tags        []string `json:"tags"`
	Priority    string   `json:"priority" binding:"omitempty,oneof=low medium high"`
}

// CreateQuestionResponse wraps the created question row.
type CreateQuestionResponse struct {
	Message  string           `json:"message"`
	Question *models.Question `json:"question"`
}

// UpdateQuestionRequest carries partial question updates; nil fields are
// left unchanged.
type UpdateQuestionRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	CourseID    *string  `json:"courseId"`
	Tags        []string `json:"tags"`
	Priority    *string  `json:"priority"`
	Status      *string  `json:"status"`
}

// AnswerQuestionRequest is the mentor's answer, optionally offering a
// session.
type AnswerQuestionRequest struct {
	Answer       string `json:"answer" binding:"required"`
	OfferSession bool   `json:"offerSession"`
}

// AnswerQuestionResponse reports the answer outcome and any spawned session.
type AnswerQuestionResponse struct {
	Message        string  `json:"message"`
	SessionOffered bool    `json:"sessionOffered"`
	SessionID      *string `json:"sessionId"`
}

package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"mentorship-service/src/middleware"
	"mentorship-service/src/models"
	"mentorship-service/src/repository"
	"mentorship-service/src/schemas"
	"mentorship-service/src/service"
)

type QuestionController struct {
	Service *service.QuestionService
	Logger  *logrus.Logger
}

func NewQuestionController(svc *service.QuestionService, logger *logrus.Logger) *QuestionController {
	return &QuestionController{
		Service: svc,
		Logger:  logger,
	}
}

// CreateQuestion handles POST /api/questions.
func (qc *QuestionController) CreateQuestion(c *gin.Context) {
	var req schemas.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, qc.Logger, schemas.NewBadRequestError("Invalid JSON format: "+err.Error(), c.FullPath()))
		return
	}

	question, err := qc.Service.Create(c.Request.Context(),
		middleware.CallerID(c), req.Title, req.Description,
		optionalID(req.CourseID), req.Tags, models.QuestionPriority(req.Priority))
	if err != nil {
		respondDomainError(c, qc.Logger, err)
		return
	}

	c.JSON(http.StatusCreated, schemas.CreateQuestionResponse{
		Message:  "Question posted successfully",
		Question: question,
	})
}

// GetQuestion handles GET /api/questions/:id.
func (qc *QuestionController) GetQuestion(c *gin.Context) {
	question, err := qc.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondDomainError(c, qc.Logger, err)
		return
	}
	c.JSON(http.StatusOK, question)
}

// ListQuestions handles GET /api/questions.
func (qc *QuestionController) ListQuestions(c *gin.Context) {
	limit, offset := paging(c, 20)
	filter := repository.QuestionFilter{
		CourseID: c.Query("courseId"),
		Status:   c.Query("status"),
		MenteeID: c.Query("menteeId"),
		Tag:      c.Query("tag"),
		Limit:    limit,
		Offset:   offset,
	}

	questions, err := qc.Service.List(c.Request.Context(), filter)
	if err != nil {
		respondDomainError(c, qc.Logger, err)
		return
	}
	c.JSON(http.StatusOK, questions)
}

// UpdateQuestion handles PUT /api/questions/:id (owner only).
func (qc *QuestionController) UpdateQuestion(c *gin.Context) {
	var req schemas.UpdateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, qc.Logger, schemas.NewBadRequestError("Invalid JSON format: "+err.Error(), c.FullPath()))
		return
	}

	question, err := qc.Service.Update(c.Request.Context(), c.Param("id"), middleware.CallerID(c),
		repository.QuestionUpdate{
			Title:       req.Title,
			Description: req.Description,
			CourseID:    req.CourseID,
			Tags:        req.Tags,
			Priority:    req.Priority,
			Status:      req.Status,
		})
	if err != nil {
		respondDomainError(c, qc.Logger, err)
		return
	}
	c.JSON(http.StatusOK, question)
}

// DeleteQuestion handles DELETE /api/questions/:id (owner only).
func (qc *QuestionController) DeleteQuestion(c *gin.Context) {
	if err := qc.Service.Delete(c.Request.Context(), c.Param("id"), middleware.CallerID(c)); err != nil {
		respondDomainError(c, qc.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Question deleted"})
}

// AnswerQuestion handles POST /api/questions/:id/answer (mentor only).
func (qc *QuestionController) AnswerQuestion(c *gin.Context) {
	var req schemas.AnswerQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, qc.Logger, schemas.NewBadRequestError("Answer is required", c.FullPath()))
		return
	}

	sessionID, err := qc.Service.Answer(c.Request.Context(),
		c.Param("id"), middleware.CallerID(c), req.Answer, req.OfferSession)
	if err != nil {
		respondDomainError(c, qc.Logger, err)
		return
	}

	c.JSON(http.StatusOK, schemas.AnswerQuestionResponse{
		Message:        "Question answered successfully",
		SessionOffered: sessionID != nil,
		SessionID:      sessionID,
	})
}

package controller

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"mentorship-service/src/middleware"
	"mentorship-service/src/schemas"
	"mentorship-service/src/service"
)

type SessionController struct {
	Service *service.SessionService
	Logger  *logrus.Logger
}

func NewSessionController(svc *service.SessionService, logger *logrus.Logger) *SessionController {
	return &SessionController{
		Service: svc,
		Logger:  logger,
	}
}

// RequestSession handles POST /api/sessions/request.
func (sc *SessionController) RequestSession(c *gin.Context) {
	var req schemas.RequestSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, sc.Logger, schemas.NewBadRequestError("Invalid JSON format: "+err.Error(), c.FullPath()))
		return
	}

	preferredTime, err := parseTimestamp(req.PreferredTime)
	if err != nil {
		respondError(c, sc.Logger, schemas.NewBadRequestError("preferredTime must be RFC 3339", c.FullPath()))
		return
	}

	session, err := sc.Service.Request(c.Request.Context(),
		middleware.CallerID(c), req.MentorID, optionalID(req.CourseID), req.Description, preferredTime)
	if err != nil {
		respondDomainError(c, sc.Logger, err)
		return
	}

	c.JSON(http.StatusCreated, schemas.RequestSessionResponse{
		Message: "Session requested successfully",
		Session: session,
	})
}

// AcceptSession handles POST /api/sessions/:id/accept.
func (sc *SessionController) AcceptSession(c *gin.Context) {
	var req schemas.AcceptSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, sc.Logger, schemas.NewBadRequestError("Scheduled time is required", c.FullPath()))
		return
	}

	scheduledTime, err := time.Parse(time.RFC3339, req.ScheduledTime)
	if err != nil {
		respondError(c, sc.Logger, schemas.NewBadRequestError("scheduledTime must be RFC 3339", c.FullPath()))
		return
	}

	if err := sc.Service.Accept(c.Request.Context(), c.Param("id"), middleware.CallerID(c), scheduledTime); err != nil {
		respondDomainError(c, sc.Logger, err)
		return
	}

	c.JSON(http.StatusOK, schemas.SessionMessageResponse{
		Message: "Session accepted and scheduled successfully",
	})
}

// EndSession handles POST /api/sessions/:id/end. The body is optional; an
// absent summary is stored as "".
func (sc *SessionController) EndSession(c *gin.Context) {
	var req schemas.EndSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondError(c, sc.Logger, schemas.NewBadRequestError("Invalid JSON format: "+err.Error(), c.FullPath()))
		return
	}

	if err := sc.Service.End(c.Request.Context(), c.Param("id"), middleware.CallerID(c), req.Summary); err != nil {
		respondDomainError(c, sc.Logger, err)
		return
	}

	c.JSON(http.StatusOK, schemas.SessionMessageResponse{
		Message: "Session ended successfully",
	})
}

// ActiveSessions handles GET /api/sessions/active.
func (sc *SessionController) ActiveSessions(c *gin.Context) {
	sessions, err := sc.Service.ActiveSessions(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		respondDomainError(c, sc.Logger, err)
		return
	}
	c.JSON(http.StatusOK, sessions)
}

// SessionLogs handles GET /api/sessions/logs.
func (sc *SessionController) SessionLogs(c *gin.Context) {
	limit, offset := paging(c, 10)
	sessions, err := sc.Service.History(c.Request.Context(), middleware.CallerID(c), limit, offset)
	if err != nil {
		respondDomainError(c, sc.Logger, err)
		return
	}
	c.JSON(http.StatusOK, sessions)
}

// PendingSessions handles GET /api/sessions/pending (mentor only).
func (sc *SessionController) PendingSessions(c *gin.Context) {
	sessions, err := sc.Service.PendingRequests(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		respondDomainError(c, sc.Logger, err)
		return
	}
	c.JSON(http.StatusOK, sessions)
}

package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"mentorship-service/src/middleware"
	"mentorship-service/src/service"
)

type NotificationController struct {
	Service *service.NotificationService
	Logger  *logrus.Logger
}

func NewNotificationController(svc *service.NotificationService, logger *logrus.Logger) *NotificationController {
	return &NotificationController{
		Service: svc,
		Logger:  logger,
	}
}

// ListNotifications handles GET /api/notifications.
func (nc *NotificationController) ListNotifications(c *gin.Context) {
	notifications, err := nc.Service.ListForUser(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		respondDomainError(c, nc.Logger, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// MarkNotificationRead handles POST /api/notifications/:id/read.
func (nc *NotificationController) MarkNotificationRead(c *gin.Context) {
	if err := nc.Service.MarkRead(c.Request.Context(), c.Param("id"), middleware.CallerID(c)); err != nil {
		respondDomainError(c, nc.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}

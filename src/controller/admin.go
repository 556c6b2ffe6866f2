package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"mentorship-service/src/service"
)

type AdminController struct {
	Service *service.AdminService
	Logger  *logrus.Logger
}

func NewAdminController(svc *service.AdminService, logger *logrus.Logger) *AdminController {
	return &AdminController{
		Service: svc,
		Logger:  logger,
	}
}

// DashboardStats handles GET /api/admin/stats.
func (ac *AdminController) DashboardStats(c *gin.Context) {
	stats, err := ac.Service.Stats(c.Request.Context())
	if err != nil {
		respondDomainError(c, ac.Logger, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// PendingMentors handles GET /api/admin/mentors/pending.
func (ac *AdminController) PendingMentors(c *gin.Context) {
	mentors, err := ac.Service.PendingMentors(c.Request.Context())
	if err != nil {
		respondDomainError(c, ac.Logger, err)
		return
	}
	c.JSON(http.StatusOK, mentors)
}

// ApproveMentor handles POST /api/admin/mentors/:id/approve.
func (ac *AdminController) ApproveMentor(c *gin.Context) {
	if err := ac.Service.ReviewMentor(c.Request.Context(), c.Param("id"), true); err != nil {
		respondDomainError(c, ac.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Mentor approved"})
}

// RejectMentor handles POST /api/admin/mentors/:id/reject. Rejection
// removes the account.
func (ac *AdminController) RejectMentor(c *gin.Context) {
	if err := ac.Service.ReviewMentor(c.Request.Context(), c.Param("id"), false); err != nil {
		respondDomainError(c, ac.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Mentor rejected"})
}

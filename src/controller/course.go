package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"mentorship-service/src/repository"
)

type CourseController struct {
	Repo   *repository.CourseRepository
	Logger *logrus.Logger
}

func NewCourseController(repo *repository.CourseRepository, logger *logrus.Logger) *CourseController {
	return &CourseController{
		Repo:   repo,
		Logger: logger,
	}
}

// ListCourses handles GET /api/courses.
func (cc *CourseController) ListCourses(c *gin.Context) {
	courses, err := cc.Repo.List(c.Request.Context())
	if err != nil {
		respondDomainError(c, cc.Logger, err)
		return
	}
	c.JSON(http.StatusOK, courses)
}

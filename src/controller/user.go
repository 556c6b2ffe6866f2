package controller

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"mentorship-service/src/middleware"
	"mentorship-service/src/schemas"
	"mentorship-service/src/service"
)

// maxPhotoSize caps profile photo uploads at 5 MB.
const maxPhotoSize = 5 << 20

type UserController struct {
	Service   *service.UserService
	UploadDir string
	Logger    *logrus.Logger
}

func NewUserController(svc *service.UserService, uploadDir string, logger *logrus.Logger) *UserController {
	return &UserController{
		Service:   svc,
		UploadDir: uploadDir,
		Logger:    logger,
	}
}

// GetUser handles GET /api/users/:id.
func (uc *UserController) GetUser(c *gin.Context) {
	user, err := uc.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondDomainError(c, uc.Logger, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateProfile handles PUT /api/users/:id/profile.
func (uc *UserController) UpdateProfile(c *gin.Context) {
	var req schemas.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, uc.Logger, schemas.NewBadRequestError("Invalid JSON format: "+err.Error(), c.FullPath()))
		return
	}

	user, err := uc.Service.UpdateProfile(c.Request.Context(),
		c.Param("id"), middleware.CallerID(c), middleware.CallerRole(c), req.Bio, req.Courses)
	if err != nil {
		respondDomainError(c, uc.Logger, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UploadPhoto handles POST /api/users/:id/photo. The file lands in the
// upload directory and the stored URL points at the static route.
func (uc *UserController) UploadPhoto(c *gin.Context) {
	file, err := c.FormFile("photo")
	if err != nil {
		respondError(c, uc.Logger, schemas.NewBadRequestError("Photo file is required", c.FullPath()))
		return
	}
	if file.Size > maxPhotoSize {
		respondError(c, uc.Logger, schemas.NewBadRequestError("Photo must be smaller than 5MB", c.FullPath()))
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
	default:
		respondError(c, uc.Logger, schemas.NewBadRequestError("Unsupported image format", c.FullPath()))
		return
	}

	filename := fmt.Sprintf("%s%s", uuid.New().String(), ext)
	if err := c.SaveUploadedFile(file, filepath.Join(uc.UploadDir, filename)); err != nil {
		uc.Logger.WithError(err).Error("failed to store uploaded photo")
		respondError(c, uc.Logger, schemas.NewInternalError("Could not store photo", c.FullPath()))
		return
	}

	photoURL := "/uploads/" + filename
	if _, err := uc.Service.SetPhotoURL(c.Request.Context(),
		c.Param("id"), middleware.CallerID(c), middleware.CallerRole(c), photoURL); err != nil {
		respondDomainError(c, uc.Logger, err)
		return
	}

	c.JSON(http.StatusOK, schemas.PhotoResponse{PhotoURL: photoURL})
}

// DeletePhoto handles DELETE /api/users/:id/photo.
func (uc *UserController) DeletePhoto(c *gin.Context) {
	if _, err := uc.Service.SetPhotoURL(c.Request.Context(),
		c.Param("id"), middleware.CallerID(c), middleware.CallerRole(c), ""); err != nil {
		respondDomainError(c, uc.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Photo removed"})
}

// ListStudents handles GET /api/users/students.
func (uc *UserController) ListStudents(c *gin.Context) {
	limit, offset := paging(c, 20)
	students, total, err := uc.Service.Students(c.Request.Context(), c.Query("search"), limit, offset)
	if err != nil {
		respondDomainError(c, uc.Logger, err)
		return
	}

	c.JSON(http.StatusOK, schemas.StudentListResponse{
		Students: students,
		Pagination: schemas.Pagination{
			Total:   total,
			Limit:   limit,
			Offset:  offset,
			HasMore: offset+len(students) < total,
		},
	})
}

// MatchMentors handles GET /api/matching/mentors.
func (uc *UserController) MatchMentors(c *gin.Context) {
	limit, offset := paging(c, 20)
	mentors, err := uc.Service.Mentors(c.Request.Context(), c.Query("courseId"), limit, offset)
	if err != nil {
		respondDomainError(c, uc.Logger, err)
		return
	}

	c.JSON(http.StatusOK, schemas.MentorListResponse{
		Mentors:    mentors,
		TotalFound: len(mentors),
	})
}

package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"mentorship-service/src/controller"
	"mentorship-service/src/middleware"
	"mentorship-service/src/models"
)

// Controllers bundles the handler set the router wires up.
type Controllers struct {
	Auth         *controller.AuthController
	Session      *controller.SessionController
	User         *controller.UserController
	Question     *controller.QuestionController
	Admin        *controller.AdminController
	Notification *controller.NotificationController
	Chat         *controller.ChatController
	Course       *controller.CourseController
}

type Router struct {
	Logger      *logrus.Logger
	JWTSecret   string
	UploadDir   string
	Controllers Controllers
}

// SetUpRouter creates the gin engine and registers every API route.
func (r Router) SetUpRouter() (*gin.Engine, error) {
	router := gin.Default()

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.Static("/uploads", r.UploadDir)

	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", r.Controllers.Auth.Register)
		auth.POST("/login", r.Controllers.Auth.Login)
	}

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(r.JWTSecret))

	sessions := authed.Group("/sessions")
	{
		sessions.POST("/request", r.Controllers.Session.RequestSession)
		sessions.POST("/:id/accept", r.Controllers.Session.AcceptSession)
		sessions.POST("/:id/end", r.Controllers.Session.EndSession)
		sessions.GET("/active", r.Controllers.Session.ActiveSessions)
		sessions.GET("/logs", r.Controllers.Session.SessionLogs)
		sessions.GET("/pending", middleware.RequireRole(models.RoleMentor), r.Controllers.Session.PendingSessions)
	}

	users := authed.Group("/users")
	{
		users.GET("/students", r.Controllers.User.ListStudents)
		users.GET("/:id", r.Controllers.User.GetUser)
		users.PUT("/:id/profile", r.Controllers.User.UpdateProfile)
		users.POST("/:id/photo", r.Controllers.User.UploadPhoto)
		users.DELETE("/:id/photo", r.Controllers.User.DeletePhoto)
	}

	authed.GET("/matching/mentors", r.Controllers.User.MatchMentors)

	questions := authed.Group("/questions")
	{
		questions.POST("", r.Controllers.Question.CreateQuestion)
		questions.GET("", r.Controllers.Question.ListQuestions)
		questions.GET("/:id", r.Controllers.Question.GetQuestion)
		questions.PUT("/:id", r.Controllers.Question.UpdateQuestion)
		questions.DELETE("/:id", r.Controllers.Question.DeleteQuestion)
		questions.POST("/:id/answer", middleware.RequireRole(models.RoleMentor), r.Controllers.Question.AnswerQuestion)
	}

	notifications := authed.Group("/notifications")
	{
		notifications.GET("", r.Controllers.Notification.ListNotifications)
		notifications.POST("/:id/read", r.Controllers.Notification.MarkNotificationRead)
	}

	admin := authed.Group("/admin")
	admin.Use(middleware.RequireRole(models.RoleAdmin))
	{
		admin.GET("/stats", r.Controllers.Admin.DashboardStats)
		admin.GET("/mentors/pending", r.Controllers.Admin.PendingMentors)
		admin.POST("/mentors/:id/approve", r.Controllers.Admin.ApproveMentor)
		admin.POST("/mentors/:id/reject", r.Controllers.Admin.RejectMentor)
	}

	chat := api.Group("/chat")
	{
		chat.GET("/ws", r.Controllers.Chat.ServeWS)
		chat.GET("/history/:peerId", middleware.AuthRequired(r.JWTSecret), r.Controllers.Chat.ConversationHistory)
	}

	authed.GET("/courses", r.Controllers.Course.ListCourses)

	return router, nil
}

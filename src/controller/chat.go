package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"mentorship-service/src/auth"
	"mentorship-service/src/hub"
	"mentorship-service/src/middleware"
	"mentorship-service/src/schemas"
	"mentorship-service/src/service"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type ChatController struct {
	Service   *service.ChatService
	Hub       *hub.Hub
	JWTSecret string
	Logger    *logrus.Logger
}

func NewChatController(svc *service.ChatService, h *hub.Hub, jwtSecret string, logger *logrus.Logger) *ChatController {
	return &ChatController{
		Service:   svc,
		Hub:       h,
		JWTSecret: jwtSecret,
		Logger:    logger,
	}
}

// ServeWS handles GET /api/chat/ws. Browsers cannot set headers on the
// websocket handshake, so the token rides in the query string.
func (cc *ChatController) ServeWS(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		respondError(c, cc.Logger, schemas.NewUnauthorizedError("Token query parameter is required", c.FullPath()))
		return
	}

	claims, err := auth.ValidateJWT(cc.JWTSecret, token)
	if err != nil {
		respondError(c, cc.Logger, schemas.NewUnauthorizedError("Invalid or expired token", c.FullPath()))
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		cc.Logger.WithError(err).Error("websocket upgrade failed")
		return
	}

	client := hub.NewClient(claims.UserID, conn, cc.Hub)
	cc.Hub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}

// ConversationHistory handles GET /api/chat/history/:peerId.
func (cc *ChatController) ConversationHistory(c *gin.Context) {
	limit, offset := paging(c, 50)
	messages, err := cc.Service.Conversation(c.Request.Context(),
		middleware.CallerID(c), c.Param("peerId"), limit, offset)
	if err != nil {
		respondDomainError(c, cc.Logger, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

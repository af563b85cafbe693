package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gezi/internal/models/request_models"
	"gezi/internal/services"
	"gezi/pkg/utils"
)

type ChatController struct {
	chatService services.ChatServiceInterface
}

func NewChatController(chatService services.ChatServiceInterface) *ChatController {
	return &ChatController{
		chatService: chatService,
	}
}

// POST /chats
func (ch *ChatController) CreateChatHandler(c *gin.Context) {
	resp, err := ch.chatService.CreateChat(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Chat created successfully")
}

// POST /chats/:chatId/messages
func (ch *ChatController) SendMessageHandler(c *gin.Context) {
	var req request_models.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "content is required")
		return
	}

	resp, err := ch.chatService.SendMessage(c.Request.Context(), c.Param("chatId"), req.Content)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Message sent successfully")
}

func (ch *ChatController) DeleteChatHandler(c *gin.Context) {
	if err := ch.chatService.DeleteChat(c.Request.Context(), c.Param("chatId")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Chat deleted successfully")
}

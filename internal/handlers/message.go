package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jhony29a/bliss/internal/handlers/dto"
	"github.com/jhony29a/bliss/internal/middleware"
	"github.com/jhony29a/bliss/internal/service/messaging"
)

type MessageHandler struct {
	messages *messaging.Service
}

func NewMessageHandler(messages *messaging.Service) *MessageHandler {
	return &MessageHandler{messages: messages}
}

func (h *MessageHandler) Send(c *gin.Context) {
	var req dto.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	msg, err := h.messages.Send(c.Request.Context(), middleware.UserID(c), req.ReceiverID, req.Content, req.Read)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewMessageResponse(msg))
}

func (h *MessageHandler) Between(c *gin.Context) {
	otherID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "userId must be a valid id"})
		return
	}

	msgs, err := h.messages.Between(c.Request.Context(), middleware.UserID(c), otherID)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]dto.MessageResponse, len(msgs))
	for i := range msgs {
		out[i] = dto.NewMessageResponse(&msgs[i])
	}
	c.JSON(http.StatusOK, out)
}

func (h *MessageHandler) Conversations(c *gin.Context) {
	conversations, err := h.messages.Conversations(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]dto.ConversationResponse, len(conversations))
	for i, conv := range conversations {
		out[i] = dto.ConversationResponse{
			User:        dto.NewUserResponse(&conv.User),
			LastMessage: dto.NewMessageResponse(&conv.LastMessage),
		}
	}
	c.JSON(http.StatusOK, out)
}

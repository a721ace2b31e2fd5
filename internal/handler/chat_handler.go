package handler

import (
	"net/http"

	"farm-service/internal/chatbot"
	"farm-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ChatHandler serves the deterministic farming-advisor chatbot
type ChatHandler struct {
	responder *chatbot.Responder
}

// NewChatHandler creates a chat handler over the given responder
func NewChatHandler(responder *chatbot.Responder) *ChatHandler {
	return &ChatHandler{responder: responder}
}

// Greeting returns the assistant's opening message
func (h *ChatHandler) Greeting(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"reply": chatbot.Greeting})
}

// Send answers a user message with a canned keyword-matched response
func (h *ChatHandler) Send(c echo.Context) error {
	log := logger.FromEcho(c)

	var req struct {
		Message string `json:"message"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	if req.Message == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "message is required"})
	}

	reply := h.responder.Reply(req.Message)
	log.Debug("Chat reply generated", zap.Int("message_len", len(req.Message)))

	return c.JSON(http.StatusOK, echo.Map{"reply": reply})
}

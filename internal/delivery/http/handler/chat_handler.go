package handler

import (
	"pad2skills/internal/chat"
	"pad2skills/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// ChatHandler is the REST surface of the placeholder assistant. The
// websocket channel lives in the chat package; both serve the same canned
// replies.
type ChatHandler struct{}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func NewChatHandler() *ChatHandler {
	return &ChatHandler{}
}

func (h *ChatHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/chat")
	grp.Post("/", h.Ask)
	grp.Get("/suggestions", h.Suggestions)
}

func (h *ChatHandler) Ask(c fiber.Ctx) error {
	var req chatRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, chatResponse{
		Role:    "assistant",
		Content: chat.Reply(req.Message),
	})
}

func (h *ChatHandler) Suggestions(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, chat.Suggestions())
}

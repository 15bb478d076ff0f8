// FILE: internal/controller/chat_controller.go
package controller

import (
	"encoding/json"
	"errors"
	"strings"

	"ai-chat-be/internal/dto"
	"ai-chat-be/internal/pkg/serverutils"
	"ai-chat-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	SendMessage(ctx *fiber.Ctx) error
	GetSessions(ctx *fiber.Ctx) error
	GetSessionMessages(ctx *fiber.Ctx) error
	ContinueSession(ctx *fiber.Ctx) error
	Search(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IChatService
}

func NewChatController(service service.IChatService) IChatController {
	return &chatController{service: service}
}

func (c *chatController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group("/chat", auth)
	h.Post("/message", c.SendMessage)
	h.Get("/sessions", c.GetSessions)
	h.Get("/sessions/:id/messages", c.GetSessionMessages)
	h.Post("/sessions/:id/continue", c.ContinueSession)
	h.Post("/search", c.Search)
}

// currentUserId reads the subject claim the JWT middleware stored.
func currentUserId(ctx *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := ctx.Locals("user_id").(string)
	return uuid.Parse(raw)
}

func unauthorizedResponse(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"success": false,
		"code":    401,
		"message": "Invalid token",
	})
}

func (c *chatController) SendMessage(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return unauthorizedResponse(ctx)
	}

	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": "Invalid request body",
		})
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": err.Error(),
		})
	}

	res, err := c.service.SendMessage(ctx.Context(), userId, &req)
	if err != nil {
		return chatErrorResponse(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Message sent",
		"data":    res,
	})
}

func (c *chatController) GetSessions(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return unauthorizedResponse(ctx)
	}

	res, err := c.service.GetUserSessions(ctx.Context(), userId)
	if err != nil {
		return chatErrorResponse(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Sessions retrieved",
		"data":    res,
	})
}

func (c *chatController) GetSessionMessages(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return unauthorizedResponse(ctx)
	}

	sessionId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"code":    404,
			"message": "Session not found",
		})
	}

	res, err := c.service.GetSessionMessages(ctx.Context(), userId, sessionId)
	if err != nil {
		return chatErrorResponse(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Messages retrieved",
		"data":    res,
	})
}

func (c *chatController) ContinueSession(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return unauthorizedResponse(ctx)
	}

	sessionId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"code":    404,
			"message": "Session not found",
		})
	}

	res, err := c.service.ContinueSession(ctx.Context(), userId, sessionId)
	if err != nil {
		return chatErrorResponse(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Session continued",
		"data":    res,
	})
}

func (c *chatController) Search(ctx *fiber.Ctx) error {
	if _, err := currentUserId(ctx); err != nil {
		return unauthorizedResponse(ctx)
	}

	// The body is the raw query string, optionally JSON-quoted.
	query := searchQueryFromBody(ctx.Body())

	// Search never fails the request; backend faults degrade to empty results.
	results := c.service.Search(ctx.Context(), query)
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Search completed",
		"data":    dto.SearchResponse{Results: results},
	})
}

func searchQueryFromBody(body []byte) string {
	var quoted string
	if err := json.Unmarshal(body, &quoted); err == nil {
		return strings.TrimSpace(quoted)
	}
	return strings.TrimSpace(string(body))
}

func chatErrorResponse(ctx *fiber.Ctx, err error) error {
	if errors.Is(err, service.ErrNotFound) {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"code":    404,
			"message": "Session not found",
		})
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"code":    500,
		"message": "An error occurred while processing your request.",
	})
}

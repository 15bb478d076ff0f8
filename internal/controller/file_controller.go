// FILE: internal/controller/file_controller.go
package controller

import (
	"errors"

	"ai-chat-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IFileController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	Upload(ctx *fiber.Ctx) error
	Download(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type fileController struct {
	service service.IFileService
}

func NewFileController(service service.IFileService) IFileController {
	return &fileController{service: service}
}

func (c *fileController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group("/file", auth)
	h.Post("/upload", c.Upload)
	h.Get("/:name", c.Download)
	h.Delete("/:name", c.Delete)
}

func (c *fileController) Upload(ctx *fiber.Ctx) error {
	if _, err := currentUserId(ctx); err != nil {
		return unauthorizedResponse(ctx)
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": "No file provided",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return fileErrorResponse(ctx)
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	res, err := c.service.Upload(ctx.Context(), fileHeader.Filename, file, contentType)
	if err != nil {
		if errors.Is(err, service.ErrEmptyFile) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"code":    400,
				"message": err.Error(),
			})
		}
		return fileErrorResponse(ctx)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "File uploaded",
		"data":    res,
	})
}

func (c *fileController) Download(ctx *fiber.Ctx) error {
	if _, err := currentUserId(ctx); err != nil {
		return unauthorizedResponse(ctx)
	}

	reader, err := c.service.Download(ctx.Context(), ctx.Params("name"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"code":    404,
				"message": "File not found",
			})
		}
		return fileErrorResponse(ctx)
	}

	return ctx.SendStream(reader)
}

func (c *fileController) Delete(ctx *fiber.Ctx) error {
	if _, err := currentUserId(ctx); err != nil {
		return unauthorizedResponse(ctx)
	}

	if err := c.service.Delete(ctx.Context(), ctx.Params("name")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"code":    404,
				"message": "File not found",
			})
		}
		return fileErrorResponse(ctx)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "File deleted",
		"data":    nil,
	})
}

func fileErrorResponse(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"code":    500,
		"message": "An error occurred while processing your request.",
	})
}

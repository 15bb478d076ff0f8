// FILE: internal/controller/file_controller_test.go
package controller

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"ai-chat-be/internal/dto"
	"ai-chat-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFileService struct {
	deleteErr error
}

func (s *stubFileService) Upload(ctx context.Context, fileName string, content io.Reader, contentType string) (*dto.UploadFileResponse, error) {
	return &dto.UploadFileResponse{Url: "http://blob.test/" + fileName}, nil
}

func (s *stubFileService) Download(ctx context.Context, fileName string) (io.ReadCloser, error) {
	return nil, service.ErrNotFound
}

func (s *stubFileService) Delete(ctx context.Context, fileName string) error {
	return s.deleteErr
}

func newFileApp(svc service.IFileService) *fiber.App {
	app := fiber.New()
	authStub := func(ctx *fiber.Ctx) error {
		ctx.Locals("user_id", uuid.New().String())
		return ctx.Next()
	}
	NewFileController(svc).RegisterRoutes(app.Group("/api"), authStub)
	return app
}

func TestDeleteMapsNotFound(t *testing.T) {
	app := newFileApp(&stubFileService{deleteErr: service.ErrNotFound})

	resp, err := app.Test(httptest.NewRequest("DELETE", "/api/file/gone.txt", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestDeleteMapsUpstreamFaultToGeneric500(t *testing.T) {
	app := newFileApp(&stubFileService{deleteErr: errors.New("bucket unreachable")})

	resp, err := app.Test(httptest.NewRequest("DELETE", "/api/file/doc.txt", nil))
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)

	// Upstream detail never leaks; the envelope carries a generic message.
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "An error occurred while processing your request.", body["message"])
}

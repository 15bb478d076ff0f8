// FILE: internal/service/file_service.go
package service

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"ai-chat-be/internal/dto"
	"ai-chat-be/pkg/blobstore"

	"github.com/google/uuid"
)

type IFileService interface {
	Upload(ctx context.Context, fileName string, content io.Reader, contentType string) (*dto.UploadFileResponse, error)
	Download(ctx context.Context, fileName string) (io.ReadCloser, error)
	Delete(ctx context.Context, fileName string) error
}

type fileService struct {
	store blobstore.BlobStore
}

func NewFileService(store blobstore.BlobStore) IFileService {
	return &fileService{store: store}
}

func (s *fileService) Upload(ctx context.Context, fileName string, content io.Reader, contentType string) (*dto.UploadFileResponse, error) {
	data, err := io.ReadAll(content)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}

	// Prefix with a fresh UUID so repeated names never collide.
	key := fmt.Sprintf("%s_%s", uuid.New().String(), fileName)

	url, err := s.store.Upload(ctx, key, bytes.NewReader(data), contentType)
	if err != nil {
		return nil, err
	}

	return &dto.UploadFileResponse{Url: url}, nil
}

func (s *fileService) Download(ctx context.Context, fileName string) (io.ReadCloser, error) {
	reader, found, err := s.store.Download(ctx, fileName)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNotFound
	}
	return reader, nil
}

func (s *fileService) Delete(ctx context.Context, fileName string) error {
	deleted, err := s.store.Delete(ctx, fileName)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

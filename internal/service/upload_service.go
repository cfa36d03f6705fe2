package service

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/lwilly3/radioManager-SaaS-sub001/internal/pkg/logger"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/pkg/serverutils"
	"github.com/lwilly3/radioManager-SaaS-sub001/pkg/storage"
)

type IUploadService interface {
	UploadQuoteAudio(ctx context.Context, userId string, data []byte, filename, contentType string) (string, error)
}

// uploadService pushes recorded audio snippets to object storage and returns
// the public URL to store on the quote's source section.
type uploadService struct {
	storage *storage.SupabaseStorage
	logger  logger.ILogger
}

func NewUploadService(store *storage.SupabaseStorage, log logger.ILogger) IUploadService {
	return &uploadService{
		storage: store,
		logger:  log,
	}
}

func (s *uploadService) UploadQuoteAudio(ctx context.Context, userId string, data []byte, filename, contentType string) (string, error) {
	if userId == "" {
		return "", &serverutils.NotAuthenticatedError{Action: "téléverser un enregistrement"}
	}
	if s.storage == nil {
		return "", &serverutils.PersistenceError{Op: "upload audio", Err: fmt.Errorf("object storage not configured")}
	}

	// Object names are random so overlapping uploads never collide.
	objectName := uuid.NewString() + filepath.Ext(filename)

	url, err := s.storage.UploadAudio(data, objectName, contentType)
	if err != nil {
		s.logger.Error("UploadService", "Audio upload failed", map[string]interface{}{
			"error": err.Error(),
		})
		return "", &serverutils.PersistenceError{Op: "upload audio", Err: err}
	}

	s.logger.Info("UploadService", "Audio uploaded", map[string]interface{}{
		"object": objectName,
		"bytes":  len(data),
	})
	return url, nil
}

package storage

import (
	"context"
	"io"
	"path"

	"github.com/google/uuid"
)

type UploadResult struct {
	Key      string
	Location string
	ETag     string
}

type FileUploader interface {
	Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*UploadResult, error)
	Delete(ctx context.Context, key string) error
	GetPublicURL(key string) string
}

// ObjectKey builds a collision-free key such as club-users/<id>/<uuid>.png.
func ObjectKey(prefix, ownerID, ext string) string {
	return path.Join(prefix, ownerID, uuid.NewString()+ext)
}

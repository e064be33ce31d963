package upload

import (
	"context"
	"mime/multipart"

	"texarea-backend/internal/infrastructure/storage"
)

// UploadedFile is the wire form of one stored image.
type UploadedFile struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
	Size     int64  `json:"size"`
}

// ObjectStorage is the slice of the object store the upload service
// needs. *storage.MinIOStorage satisfies it.
type ObjectStorage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
	List(ctx context.Context, prefix string) ([]storage.ObjectInfo, error)
}

// Service validates and stores uploaded blog images.
type Service interface {
	// UploadOne stores a single image and returns its reference.
	UploadOne(ctx context.Context, file *multipart.FileHeader) (*UploadedFile, error)

	// UploadMany stores up to the configured maximum of images.
	UploadMany(ctx context.Context, files []*multipart.FileHeader) ([]UploadedFile, error)

	// Delete removes a stored image by its object key.
	Delete(ctx context.Context, filename string) error

	// List returns every stored image, newest first.
	List(ctx context.Context) ([]storage.ObjectInfo, error)
}

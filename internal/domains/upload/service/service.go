package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"texarea-backend/internal/domains/upload"
	"texarea-backend/internal/infrastructure/storage"
	"texarea-backend/pkg/logger"
)

// objectPrefix namespaces blog images inside the shared bucket.
const objectPrefix = "blog/"

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var allowedContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// Limits bounds a single upload request.
type Limits struct {
	MaxFileSize int64
	MaxFiles    int
}

type uploadService struct {
	storage upload.ObjectStorage
	limits  Limits
}

func NewUploadService(store upload.ObjectStorage, limits Limits) upload.Service {
	return &uploadService{
		storage: store,
		limits:  limits,
	}
}

func (s *uploadService) UploadOne(ctx context.Context, file *multipart.FileHeader) (*upload.UploadedFile, error) {
	if file == nil {
		return nil, upload.ErrNoFiles
	}

	stored, err := s.store(ctx, file)
	if err != nil {
		return nil, err
	}
	return stored, nil
}

func (s *uploadService) UploadMany(ctx context.Context, files []*multipart.FileHeader) ([]upload.UploadedFile, error) {
	if len(files) == 0 {
		return nil, upload.ErrNoFiles
	}
	if len(files) > s.limits.MaxFiles {
		return nil, fmt.Errorf("%w: got %d, limit is %d", upload.ErrTooManyFiles, len(files), s.limits.MaxFiles)
	}

	// Validate everything up front so a bad file in the middle does not
	// leave a partial batch in the bucket.
	for _, file := range files {
		if err := s.validate(file); err != nil {
			return nil, err
		}
	}

	uploaded := make([]upload.UploadedFile, 0, len(files))
	for _, file := range files {
		stored, err := s.store(ctx, file)
		if err != nil {
			return nil, err
		}
		uploaded = append(uploaded, *stored)
	}
	return uploaded, nil
}

func (s *uploadService) Delete(ctx context.Context, filename string) error {
	key, err := objectKey(filename)
	if err != nil {
		return err
	}

	if err := s.storage.Delete(ctx, key); err != nil {
		if err == storage.ErrObjectNotFound {
			return upload.ErrFileNotFound
		}
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logger.Info("Image deleted", map[string]interface{}{"key": key})
	return nil
}

func (s *uploadService) List(ctx context.Context) ([]storage.ObjectInfo, error) {
	objects, err := s.storage.List(ctx, objectPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}
	if objects == nil {
		objects = []storage.ObjectInfo{}
	}
	return objects, nil
}

func (s *uploadService) store(ctx context.Context, file *multipart.FileHeader) (*upload.UploadedFile, error) {
	if err := s.validate(file); err != nil {
		return nil, err
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	key := objectPrefix + uuid.NewString() + ext

	url, err := s.storage.Upload(ctx, key, data, file.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("failed to store file: %w", err)
	}

	logger.Info("Image uploaded", map[string]interface{}{
		"key":  key,
		"size": file.Size,
	})

	return &upload.UploadedFile{
		Filename: key,
		URL:      url,
		Size:     file.Size,
	}, nil
}

func (s *uploadService) validate(file *multipart.FileHeader) error {
	if file.Size > s.limits.MaxFileSize {
		return fmt.Errorf("%w: %s is %d bytes, limit is %d", upload.ErrFileTooLarge, file.Filename, file.Size, s.limits.MaxFileSize)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return fmt.Errorf("%w: extension %q", upload.ErrInvalidFileType, ext)
	}

	contentType := file.Header.Get("Content-Type")
	if !allowedContentTypes[contentType] {
		return fmt.Errorf("%w: content type %q", upload.ErrInvalidFileType, contentType)
	}

	return nil
}

// objectKey resolves a client-supplied filename to a bucket key,
// rejecting anything that escapes the blog prefix.
func objectKey(filename string) (string, error) {
	if filename == "" || strings.Contains(filename, "..") || strings.HasPrefix(filename, "/") {
		return "", upload.ErrFileNotFound
	}
	if strings.HasPrefix(filename, objectPrefix) {
		return filename, nil
	}
	return objectPrefix + filename, nil
}

package upload

import (
	"errors"
	"net/http"
)

var (
	ErrNoFiles         = errors.New("no files in request")
	ErrTooManyFiles    = errors.New("too many files in request")
	ErrFileTooLarge    = errors.New("file exceeds the size limit")
	ErrInvalidFileType = errors.New("file type is not allowed")
	ErrFileNotFound    = errors.New("file not found")
)

func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrNoFiles):
		return "NO_FILES"
	case errors.Is(err, ErrTooManyFiles):
		return "TOO_MANY_FILES"
	case errors.Is(err, ErrFileTooLarge):
		return "FILE_TOO_LARGE"
	case errors.Is(err, ErrInvalidFileType):
		return "INVALID_FILE_TYPE"
	case errors.Is(err, ErrFileNotFound):
		return "FILE_NOT_FOUND"
	default:
		return "STORAGE_ERROR"
	}
}

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNoFiles), errors.Is(err, ErrTooManyFiles), errors.Is(err, ErrInvalidFileType):
		return http.StatusBadRequest
	case errors.Is(err, ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, ErrFileNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

package blog

import (
	"errors"
	"net/http"
)

var (
	ErrBlogNotFound       = errors.New("blog not found")
	ErrInvalidLanguage    = errors.New("invalid language")
	ErrInvalidBlogID      = errors.New("invalid blog id")
	ErrTranslationExists  = errors.New("translation already exists for this language")
	ErrImageOrderConflict = errors.New("duplicate image order for this language")
)

// ToErrorCode maps a domain error to a stable machine-readable code.
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrBlogNotFound):
		return "BLOG_NOT_FOUND"
	case errors.Is(err, ErrInvalidLanguage):
		return "INVALID_LANGUAGE"
	case errors.Is(err, ErrInvalidBlogID):
		return "INVALID_BLOG_ID"
	case errors.Is(err, ErrTranslationExists):
		return "TRANSLATION_EXISTS"
	case errors.Is(err, ErrImageOrderConflict):
		return "IMAGE_ORDER_CONFLICT"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus maps a domain error to an HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrBlogNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidLanguage), errors.Is(err, ErrInvalidBlogID):
		return http.StatusBadRequest
	case errors.Is(err, ErrTranslationExists), errors.Is(err, ErrImageOrderConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

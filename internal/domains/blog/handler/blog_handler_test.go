package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"texarea-backend/internal/domains/blog"
)

type stubService struct {
	createResp *blog.CreateBlogResponse
	publicItem *blog.PublicBlog
	publicList *blog.PublicListResponse
	adminBlogs []blog.AdminBlog
	err        error
}

func (s *stubService) Create(_ context.Context, req *blog.CreateBlogRequest) (*blog.CreateBlogResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.createResp, s.err
}

func (s *stubService) Update(_ context.Context, _ int64, _ *blog.UpdateBlogRequest) error {
	return s.err
}

func (s *stubService) Delete(_ context.Context, _ int64) error {
	return s.err
}

func (s *stubService) GetAllForAdmin(_ context.Context) ([]blog.AdminBlog, error) {
	return s.adminBlogs, s.err
}

func (s *stubService) GetPublicList(_ context.Context, lang string) (*blog.PublicListResponse, error) {
	if !blog.IsValidLanguage(lang) {
		return nil, blog.ErrInvalidLanguage
	}
	return s.publicList, s.err
}

func (s *stubService) GetPublicByID(_ context.Context, lang string, _ int64) (*blog.PublicBlog, error) {
	if !blog.IsValidLanguage(lang) {
		return nil, blog.ErrInvalidLanguage
	}
	return s.publicItem, s.err
}

func setupRouter(svc blog.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBlogHandler(svc)

	router := gin.New()
	router.GET("/api/blog/:lang", h.GetPublicList)
	router.GET("/api/blog/:lang/:id", h.GetPublicByID)
	router.POST("/api/blog", h.Create)
	router.PUT("/api/blog/:id", h.Update)
	router.DELETE("/api/blog/:id", h.Delete)
	return router
}

func do(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	router.ServeHTTP(w, req)
	return w
}

func TestGetPublicByIDInvalidLanguage(t *testing.T) {
	router := setupRouter(&stubService{})

	w := do(router, http.MethodGet, "/api/blog/de/1", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_LANGUAGE")
}

func TestGetPublicByIDBadID(t *testing.T) {
	router := setupRouter(&stubService{})

	w := do(router, http.MethodGet, "/api/blog/en/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_BLOG_ID")
}

func TestGetPublicByIDNotFound(t *testing.T) {
	router := setupRouter(&stubService{err: blog.ErrBlogNotFound})

	w := do(router, http.MethodGet, "/api/blog/en/99", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "BLOG_NOT_FOUND")
}

func TestGetPublicByIDSuccess(t *testing.T) {
	title := "Hello"
	router := setupRouter(&stubService{
		publicItem: &blog.PublicBlog{ID: 5, Type: blog.TypeArticle, Title: &title, Images: []string{}},
	})

	w := do(router, http.MethodGet, "/api/blog/en/5", "")
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Success bool            `json:"success"`
		Data    blog.PublicBlog `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, int64(5), envelope.Data.ID)
	require.NotNil(t, envelope.Data.Title)
	assert.Equal(t, "Hello", *envelope.Data.Title)
}

func TestCreateValidationFailure(t *testing.T) {
	router := setupRouter(&stubService{})

	// Missing translations entirely.
	w := do(router, http.MethodPost, "/api/blog", `{"type":"article"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
}

func TestCreateMalformedJSON(t *testing.T) {
	router := setupRouter(&stubService{})

	w := do(router, http.MethodPost, "/api/blog", `{"type":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_PAYLOAD")
}

func TestCreateSuccess(t *testing.T) {
	router := setupRouter(&stubService{createResp: &blog.CreateBlogResponse{BlogID: 42}})

	body := `{
		"type": "article",
		"blogs": {
			"ru": {"title": "t", "date": "d", "content": [{"text": "x"}]},
			"en": {"title": "t", "date": "d", "content": [{"text": "x"}]},
			"es": {"title": "t", "date": "d", "content": [{"text": "x"}]},
			"fr": {"title": "t", "date": "d", "content": [{"text": "x"}]}
		}
	}`

	w := do(router, http.MethodPost, "/api/blog", body)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"blogId":42`)
}

func TestDeleteNotFound(t *testing.T) {
	router := setupRouter(&stubService{err: blog.ErrBlogNotFound})

	w := do(router, http.MethodDelete, "/api/blog/7", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateBadID(t *testing.T) {
	router := setupRouter(&stubService{})

	w := do(router, http.MethodPut, "/api/blog/abc", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_BLOG_ID")
}

package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"texarea-backend/internal/domains/blog"
	"texarea-backend/internal/shared/response"
)

type BlogHandler struct {
	service blog.Service
}

func NewBlogHandler(svc blog.Service) *BlogHandler {
	return &BlogHandler{
		service: svc,
	}
}

// GetAllForAdmin handles GET /api/blog/admin/all
func (h *BlogHandler) GetAllForAdmin(c *gin.Context) {
	blogs, err := h.service.GetAllForAdmin(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, blogs)
}

// GetPublicList handles GET /api/blog/:lang
func (h *BlogHandler) GetPublicList(c *gin.Context) {
	list, err := h.service.GetPublicList(c.Request.Context(), c.Param("lang"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, list)
}

// GetPublicByID handles GET /api/blog/:lang/:id
func (h *BlogHandler) GetPublicByID(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	item, err := h.service.GetPublicByID(c.Request.Context(), c.Param("lang"), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, item)
}

// Create handles POST /api/blog
func (h *BlogHandler) Create(c *gin.Context) {
	var req blog.CreateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_PAYLOAD", "failed to parse request body", err.Error())
		return
	}

	resp, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// Update handles PUT /api/blog/:id
func (h *BlogHandler) Update(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	var req blog.UpdateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_PAYLOAD", "failed to parse request body", err.Error())
		return
	}

	if err := h.service.Update(c.Request.Context(), id, &req); err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"blogId": id})
}

// Delete handles DELETE /api/blog/:id
func (h *BlogHandler) Delete(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"blogId": id})
}

func (h *BlogHandler) writeError(c *gin.Context, err error) {
	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "request validation failed", vErrs)
		return
	}

	status := blog.ToHTTPStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}
	response.ErrorResponse(c, status, blog.ToErrorCode(err), message)
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, blog.ErrInvalidBlogID
	}
	return id, nil
}

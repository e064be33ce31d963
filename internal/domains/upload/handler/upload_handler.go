package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"texarea-backend/internal/domains/upload"
	"texarea-backend/internal/shared/response"
)

type UploadHandler struct {
	service upload.Service
}

func NewUploadHandler(svc upload.Service) *UploadHandler {
	return &UploadHandler{
		service: svc,
	}
}

// UploadSingle handles POST /api/upload/single with form field "image".
func (h *UploadHandler) UploadSingle(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "NO_FILES", "image file is required")
		return
	}

	uploaded, err := h.service.UploadOne(c.Request.Context(), file)
	if err != nil {
		response.ErrorResponse(c, upload.ToHTTPStatus(err), upload.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusCreated, uploaded)
}

// UploadMultiple handles POST /api/upload/multiple with form field "images".
func (h *UploadHandler) UploadMultiple(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "NO_FILES", "multipart form is required")
		return
	}

	uploaded, err := h.service.UploadMany(c.Request.Context(), form.File["images"])
	if err != nil {
		response.ErrorResponse(c, upload.ToHTTPStatus(err), upload.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"files": uploaded})
}

// Delete handles DELETE /api/upload/:filename
func (h *UploadHandler) Delete(c *gin.Context) {
	filename := c.Param("filename")

	if err := h.service.Delete(c.Request.Context(), filename); err != nil {
		response.ErrorResponse(c, upload.ToHTTPStatus(err), upload.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"filename": filename})
}

// List handles GET /api/upload/list
func (h *UploadHandler) List(c *gin.Context) {
	objects, err := h.service.List(c.Request.Context())
	if err != nil {
		response.ErrorResponse(c, upload.ToHTTPStatus(err), upload.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"files": objects})
}

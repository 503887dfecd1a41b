package handlers

import (
	"net/http"
	"strconv"

	"homepro_backend/internal/middleware"
	"homepro_backend/internal/models"
	"homepro_backend/internal/services"
	"homepro_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

const maxUploadBytes = 10 << 20 // 10 MB

type UploadHandler struct {
	*BaseHandler
	uploadService services.UploadService
}

func NewUploadHandler(base *BaseHandler, uploadService services.UploadService) *UploadHandler {
	return &UploadHandler{
		BaseHandler:   base,
		uploadService: uploadService,
	}
}

func (h *UploadHandler) RegisterRoutes(rg *gin.RouterGroup) {
	uploads := rg.Group("/uploads")
	uploads.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleProvider))
	{
		uploads.POST("/portfolio", h.UploadPortfolioImage)
		uploads.DELETE("/portfolio/:id", h.DeletePortfolioImage)
	}
}

func (h *UploadHandler) UploadPortfolioImage(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("image file is required"))
		return
	}
	if fileHeader.Size > maxUploadBytes {
		apperrors.HandleError(c, apperrors.NewBadRequestError("image is too large"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		apperrors.HandleError(c, apperrors.InternalError(err))
		return
	}
	defer file.Close()

	db := h.GetDB(c)
	resp, err := h.uploadService.UploadPortfolioImage(c.Request.Context(), db, userID, fileHeader.Filename, file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *UploadHandler) DeletePortfolioImage(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	imageID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("invalid image id"))
		return
	}

	db := h.GetDB(c)
	if err := h.uploadService.DeletePortfolioImage(c.Request.Context(), db, userID, uint(imageID)); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Portfolio image removed"})
}

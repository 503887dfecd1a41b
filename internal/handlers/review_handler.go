package handlers

import (
	"net/http"

	"homepro_backend/internal/middleware"
	"homepro_backend/internal/models"
	"homepro_backend/internal/services"
	"homepro_backend/internal/services/dto"
	"homepro_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	*BaseHandler
	reviewService services.ReviewService
}

func NewReviewHandler(base *BaseHandler, reviewService services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		BaseHandler:   base,
		reviewService: reviewService,
	}
}

func (h *ReviewHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/providers/:id/reviews", h.GetProviderReviews)

	reviews := rg.Group("/reviews")
	reviews.Use(middleware.AuthMiddleware())
	{
		reviews.POST("", h.SubmitReview)
		reviews.POST("/:id/response", middleware.RequireRoles(models.UserRoleProvider), h.RespondToReview)
		reviews.POST("/:id/dispute", middleware.RequireRoles(models.UserRoleProvider), h.DisputeReview)
		reviews.POST("/disputes/:id/resolve", h.ResolveDispute)
	}
}

func (h *ReviewHandler) GetProviderReviews(c *gin.Context) {
	db := h.GetDB(c)
	resp, err := h.reviewService.GetProviderReviews(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": resp})
}

// SubmitReview принимает отзыв. Автор должен совпадать
// с аутентифицированным пользователем.
func (h *ReviewHandler) SubmitReview(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.SubmitReviewRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	authorID := req.CustomerID
	if req.ReviewerType == models.ReviewerTypeProvider {
		authorID = req.ProviderID
	}
	if authorID != userID {
		h.HandleServiceError(c, apperrors.ErrInsufficientPermissions)
		return
	}

	db := h.GetDB(c)
	resp, err := h.reviewService.SubmitReview(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ReviewHandler) RespondToReview(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.RespondToReviewRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	if err := h.reviewService.RespondToReview(db, userID, c.Param("id"), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Response posted"})
}

func (h *ReviewHandler) DisputeReview(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.DisputeReviewRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	resp, err := h.reviewService.DisputeReview(db, userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ResolveDispute закрывает спор. В проде это операция модерации;
// админ-ролей пока нет, поэтому маршрут доступен любому
// аутентифицированному пользователю.
func (h *ReviewHandler) ResolveDispute(c *gin.Context) {
	var body struct {
		Approve bool `json:"approve"`
	}
	if !h.BindAndValidateJSON(c, &body) {
		return
	}

	db := h.GetDB(c)
	if err := h.reviewService.ResolveDispute(db, c.Param("id"), body.Approve); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Dispute resolved"})
}

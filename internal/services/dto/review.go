package dto

import (
	"time"

	"homepro_backend/internal/models"
)

type SubmitReviewRequest struct {
	ProviderID   string              `json:"providerId" validate:"required"`
	CustomerID   string              `json:"customerId" validate:"required"`
	Rating       float64             `json:"rating" validate:"required,gte=1,lte=5"`
	Comment      string              `json:"comment" validate:"omitempty,max=2000"`
	ServiceType  string              `json:"serviceType" validate:"omitempty,max=100"`
	ReviewerType models.ReviewerType `json:"reviewerType" validate:"required,oneof=customer provider"`
}

type ReviewResponse struct {
	ID               string              `json:"id"`
	ProviderID       string              `json:"providerId"`
	CustomerID       string              `json:"customerId"`
	CustomerName     string              `json:"customerName"`
	Rating           float64             `json:"rating"`
	Comment          string              `json:"comment,omitempty"`
	ServiceType      string              `json:"serviceType,omitempty"`
	ProviderResponse *string             `json:"providerResponse,omitempty"`
	Disputed         bool                `json:"disputed"`
	ReviewerType     models.ReviewerType `json:"reviewerType"`
	CreatedAt        time.Time           `json:"createdAt"`
}

type RespondToReviewRequest struct {
	Response string `json:"response" validate:"required,max=2000"`
}

type DisputeReviewRequest struct {
	Description string   `json:"description" validate:"required,min=20,max=5000"`
	Attachments []string `json:"attachments" validate:"omitempty,dive,url"`
}

type DisputeResponse struct {
	ID         string               `json:"id"`
	ReviewID   string               `json:"reviewId"`
	ProviderID string               `json:"providerId"`
	Status     models.DisputeStatus `json:"status"`
	CreatedAt  time.Time            `json:"createdAt"`
}

func NewReviewResponse(review *models.Review) ReviewResponse {
	return ReviewResponse{
		ID:               review.ID,
		ProviderID:       review.ProviderID,
		CustomerID:       review.CustomerID,
		CustomerName:     review.CustomerName,
		Rating:           review.Rating,
		Comment:          review.Comment,
		ServiceType:      review.ServiceType,
		ProviderResponse: review.ProviderResponse,
		Disputed:         review.Disputed,
		ReviewerType:     review.ReviewerType,
		CreatedAt:        review.CreatedAt,
	}
}

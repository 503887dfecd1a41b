package services

import (
	"encoding/json"

	"homepro_backend/internal/leveling"
	"homepro_backend/internal/models"
	"homepro_backend/internal/repositories"
	"homepro_backend/internal/services/dto"
	"homepro_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ReviewService interface {
	SubmitReview(db *gorm.DB, req *dto.SubmitReviewRequest) (*dto.ReviewResponse, error)
	GetProviderReviews(db *gorm.DB, providerID string) ([]dto.ReviewResponse, error)
	RespondToReview(db *gorm.DB, providerID, reviewID string, req *dto.RespondToReviewRequest) error
	DisputeReview(db *gorm.DB, providerID, reviewID string, req *dto.DisputeReviewRequest) (*dto.DisputeResponse, error)
	ResolveDispute(db *gorm.DB, disputeID string, approve bool) error
}

type ReviewServiceImpl struct {
	reviewRepo   repositories.ReviewRepository
	providerRepo repositories.ProviderRepository
	customerRepo repositories.CustomerRepository
	userRepo     repositories.UserRepository
}

func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	providerRepo repositories.ProviderRepository,
	customerRepo repositories.CustomerRepository,
	userRepo repositories.UserRepository,
) ReviewService {
	return &ReviewServiceImpl{
		reviewRepo:   reviewRepo,
		providerRepo: providerRepo,
		customerRepo: customerRepo,
		userRepo:     userRepo,
	}
}

// SubmitReview сохраняет отзыв и пересчитывает агрегаты получателя.
// Отзыв клиента о провайдере влияет на рейтинг и уровень провайдера;
// отзыв провайдера о клиенте - на customer-рейтинг клиента.
func (s *ReviewServiceImpl) SubmitReview(db *gorm.DB, req *dto.SubmitReviewRequest) (*dto.ReviewResponse, error) {
	var reviewerID string
	switch req.ReviewerType {
	case models.ReviewerTypeCustomer:
		reviewerID = req.CustomerID
	case models.ReviewerTypeProvider:
		reviewerID = req.ProviderID
	default:
		return nil, apperrors.ErrInvalidUserRole
	}

	reviewer, err := s.userRepo.FindByID(db, reviewerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}

	review := &models.Review{
		ProviderID:   req.ProviderID,
		CustomerID:   req.CustomerID,
		CustomerName: reviewer.Name,
		Rating:       req.Rating,
		Comment:      req.Comment,
		ServiceType:  req.ServiceType,
		ReviewerType: req.ReviewerType,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.reviewRepo.CreateReview(tx, review); err != nil {
			if apperrors.Is(err, repositories.ErrSelfReviewNotAllowed) {
				return apperrors.ErrInvalidOperation("reviews", "Cannot review yourself")
			}
			return apperrors.DatabaseError(err)
		}
		return s.recalculateRatings(tx, review.ProviderID, review.CustomerID, review.ReviewerType)
	})
	if err != nil {
		return nil, err
	}

	resp := dto.NewReviewResponse(review)
	return &resp, nil
}

func (s *ReviewServiceImpl) GetProviderReviews(db *gorm.DB, providerID string) ([]dto.ReviewResponse, error) {
	reviews, err := s.reviewRepo.FindReviewsByProvider(db, providerID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	responses := make([]dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		responses = append(responses, dto.NewReviewResponse(&reviews[i]))
	}
	return responses, nil
}

// RespondToReview - публичный ответ провайдера на отзыв о нем
func (s *ReviewServiceImpl) RespondToReview(db *gorm.DB, providerID, reviewID string, req *dto.RespondToReviewRequest) error {
	review, err := s.reviewRepo.FindReviewByID(db, reviewID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrReviewNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.DatabaseError(err)
	}
	if review.ProviderID != providerID {
		return apperrors.ErrInsufficientPermissions
	}

	if err := s.reviewRepo.SetProviderResponse(db, reviewID, req.Response); err != nil {
		return apperrors.DatabaseError(err)
	}
	return nil
}

// DisputeReview открывает спор по отзыву с приложенными доказательствами
func (s *ReviewServiceImpl) DisputeReview(db *gorm.DB, providerID, reviewID string, req *dto.DisputeReviewRequest) (*dto.DisputeResponse, error) {
	review, err := s.reviewRepo.FindReviewByID(db, reviewID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrReviewNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}
	if review.ProviderID != providerID {
		return nil, apperrors.ErrInsufficientPermissions
	}
	if review.Disputed {
		return nil, apperrors.ErrReviewAlreadyDisputed
	}

	attachments, err := json.Marshal(req.Attachments)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	dispute := &models.DisputeEvidence{
		ReviewID:    reviewID,
		ProviderID:  providerID,
		Description: req.Description,
		Attachments: datatypes.JSON(attachments),
		Status:      models.DisputeStatusPending,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.reviewRepo.CreateDispute(tx, dispute); err != nil {
			return apperrors.DatabaseError(err)
		}
		if err := s.reviewRepo.MarkDisputed(tx, reviewID); err != nil {
			return apperrors.DatabaseError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.DisputeResponse{
		ID:         dispute.ID,
		ReviewID:   dispute.ReviewID,
		ProviderID: dispute.ProviderID,
		Status:     dispute.Status,
		CreatedAt:  dispute.CreatedAt,
	}, nil
}

// ResolveDispute закрывает спор. Одобренный спор удаляет отзыв
// и пересчитывает рейтинг без него.
func (s *ReviewServiceImpl) ResolveDispute(db *gorm.DB, disputeID string, approve bool) error {
	dispute, err := s.reviewRepo.FindDisputeByID(db, disputeID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrDisputeNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.DatabaseError(err)
	}
	if dispute.Status != models.DisputeStatusPending {
		return apperrors.ErrInvalidStatus("reviews", "Dispute is already resolved")
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if !approve {
			if err := s.reviewRepo.UpdateDisputeStatus(tx, disputeID, models.DisputeStatusRejected); err != nil {
				return apperrors.DatabaseError(err)
			}
			return nil
		}

		review, err := s.reviewRepo.FindReviewByID(tx, dispute.ReviewID)
		if err != nil {
			return apperrors.DatabaseError(err)
		}

		if err := s.reviewRepo.UpdateDisputeStatus(tx, disputeID, models.DisputeStatusApproved); err != nil {
			return apperrors.DatabaseError(err)
		}
		if err := s.reviewRepo.DeleteReview(tx, dispute.ReviewID); err != nil {
			return apperrors.DatabaseError(err)
		}
		return s.recalculateRatings(tx, review.ProviderID, review.CustomerID, review.ReviewerType)
	})
}

// recalculateRatings переписывает агрегаты стороны, которую оценили
func (s *ReviewServiceImpl) recalculateRatings(tx *gorm.DB, providerID, customerID string, reviewerType models.ReviewerType) error {
	switch reviewerType {
	case models.ReviewerTypeCustomer:
		stats, err := s.reviewRepo.GetCustomerRatingStats(tx, providerID)
		if err != nil {
			return apperrors.DatabaseError(err)
		}
		level := leveling.GetProviderLevel(stats.AverageRating)
		if err := s.providerRepo.UpdateRatingStats(tx, providerID, stats.AverageRating, int(stats.TotalReviews), level); err != nil {
			return apperrors.DatabaseError(err)
		}
	case models.ReviewerTypeProvider:
		stats, err := s.reviewRepo.GetProviderRatingStatsForCustomer(tx, customerID)
		if err != nil {
			return apperrors.DatabaseError(err)
		}
		if err := s.customerRepo.UpdateRatingStats(tx, customerID, stats.AverageRating, int(stats.TotalReviews)); err != nil {
			return apperrors.DatabaseError(err)
		}
	}
	return nil
}

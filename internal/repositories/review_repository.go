package repositories

import (
	"errors"
	"time"

	"homepro_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrReviewNotFound       = errors.New("review not found")
	ErrDisputeNotFound      = errors.New("dispute not found")
	ErrSelfReviewNotAllowed = errors.New("cannot review yourself")
)

// RatingStats - агрегаты по отзывам заказчиков об одном провайдере
type RatingStats struct {
	AverageRating float64 `json:"average_rating"`
	TotalReviews  int64   `json:"total_reviews"`
}

type ReviewRepository interface {
	CreateReview(db *gorm.DB, review *models.Review) error
	FindReviewByID(db *gorm.DB, id string) (*models.Review, error)
	FindReviewsByProvider(db *gorm.DB, providerID string) ([]models.Review, error)
	FindCustomerReviewsByProvider(db *gorm.DB, providerID string) ([]models.Review, error)
	FindReviewsAboutCustomer(db *gorm.DB, customerID string) ([]models.Review, error)
	SetProviderResponse(db *gorm.DB, reviewID, response string) error
	DeleteReview(db *gorm.DB, id string) error
	GetCustomerRatingStats(db *gorm.DB, providerID string) (*RatingStats, error)
	GetProviderRatingStatsForCustomer(db *gorm.DB, customerID string) (*RatingStats, error)

	// Dispute operations
	MarkDisputed(db *gorm.DB, reviewID string) error
	CreateDispute(db *gorm.DB, dispute *models.DisputeEvidence) error
	FindDisputeByID(db *gorm.DB, id string) (*models.DisputeEvidence, error)
	FindPendingDisputes(db *gorm.DB, limit, offset int) ([]models.DisputeEvidence, error)
	UpdateDisputeStatus(db *gorm.DB, disputeID string, status models.DisputeStatus) error
}

type ReviewRepositoryImpl struct{}

func NewReviewRepository() ReviewRepository {
	return &ReviewRepositoryImpl{}
}

func (r *ReviewRepositoryImpl) CreateReview(db *gorm.DB, review *models.Review) error {
	if review.ProviderID == review.CustomerID {
		return ErrSelfReviewNotAllowed
	}
	return db.Create(review).Error
}

func (r *ReviewRepositoryImpl) FindReviewByID(db *gorm.DB, id string) (*models.Review, error) {
	var review models.Review
	err := db.First(&review, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepositoryImpl) FindReviewsByProvider(db *gorm.DB, providerID string) ([]models.Review, error) {
	var reviews []models.Review
	err := db.Where("provider_id = ?", providerID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

// FindCustomerReviewsByProvider возвращает только отзывы заказчиков.
// Ответные отзывы самого провайдера о заказчиках в рейтинг не входят.
func (r *ReviewRepositoryImpl) FindCustomerReviewsByProvider(db *gorm.DB, providerID string) ([]models.Review, error) {
	var reviews []models.Review
	err := db.Where("provider_id = ? AND reviewer_type = ?", providerID, models.ReviewerTypeCustomer).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepositoryImpl) FindReviewsAboutCustomer(db *gorm.DB, customerID string) ([]models.Review, error) {
	var reviews []models.Review
	err := db.Where("customer_id = ? AND reviewer_type = ?", customerID, models.ReviewerTypeProvider).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepositoryImpl) SetProviderResponse(db *gorm.DB, reviewID, response string) error {
	result := db.Model(&models.Review{}).Where("id = ?", reviewID).Updates(map[string]interface{}{
		"provider_response": response,
		"updated_at":        time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReviewNotFound
	}
	return nil
}

func (r *ReviewRepositoryImpl) DeleteReview(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Review{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReviewNotFound
	}
	return nil
}

func (r *ReviewRepositoryImpl) GetCustomerRatingStats(db *gorm.DB, providerID string) (*RatingStats, error) {
	var stats RatingStats
	err := db.Model(&models.Review{}).
		Where("provider_id = ? AND reviewer_type = ?", providerID, models.ReviewerTypeCustomer).
		Select("COUNT(*) as total_reviews, COALESCE(AVG(rating), 0) as average_rating").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *ReviewRepositoryImpl) GetProviderRatingStatsForCustomer(db *gorm.DB, customerID string) (*RatingStats, error) {
	var stats RatingStats
	err := db.Model(&models.Review{}).
		Where("customer_id = ? AND reviewer_type = ?", customerID, models.ReviewerTypeProvider).
		Select("COUNT(*) as total_reviews, COALESCE(AVG(rating), 0) as average_rating").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// Dispute operations

func (r *ReviewRepositoryImpl) MarkDisputed(db *gorm.DB, reviewID string) error {
	result := db.Model(&models.Review{}).Where("id = ?", reviewID).Updates(map[string]interface{}{
		"disputed":   true,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReviewNotFound
	}
	return nil
}

func (r *ReviewRepositoryImpl) CreateDispute(db *gorm.DB, dispute *models.DisputeEvidence) error {
	return db.Create(dispute).Error
}

func (r *ReviewRepositoryImpl) FindDisputeByID(db *gorm.DB, id string) (*models.DisputeEvidence, error) {
	var dispute models.DisputeEvidence
	err := db.First(&dispute, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDisputeNotFound
		}
		return nil, err
	}
	return &dispute, nil
}

func (r *ReviewRepositoryImpl) FindPendingDisputes(db *gorm.DB, limit, offset int) ([]models.DisputeEvidence, error) {
	var disputes []models.DisputeEvidence
	err := db.Where("status = ?", models.DisputeStatusPending).
		Order("created_at ASC").
		Limit(limit).Offset(offset).
		Find(&disputes).Error
	return disputes, err
}

func (r *ReviewRepositoryImpl) UpdateDisputeStatus(db *gorm.DB, disputeID string, status models.DisputeStatus) error {
	result := db.Model(&models.DisputeEvidence{}).Where("id = ?", disputeID).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDisputeNotFound
	}
	return nil
}

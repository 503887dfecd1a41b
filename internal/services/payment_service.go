package services

import (
	"strings"

	"homepro_backend/internal/logger"
	"homepro_backend/internal/models"
	"homepro_backend/internal/pricing"
	"homepro_backend/internal/repositories"
	"homepro_backend/internal/services/dto"
	"homepro_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type PaymentService interface {
	AddMethod(db *gorm.DB, userID string, req *dto.AddPaymentMethodRequest) (*dto.PaymentMethodResponse, error)
	GetMethods(db *gorm.DB, userID string) ([]dto.PaymentMethodResponse, error)
	SetDefaultMethod(db *gorm.DB, userID, methodID string) error
	DeleteMethod(db *gorm.DB, userID, methodID string) error
	GetTransactions(db *gorm.DB, userID string, limit, offset int) ([]dto.TransactionResponse, error)

	// Charge проводит платеж через симулированный шлюз и записывает
	// транзакцию. Сумма в amount уже включает комиссию шлюза.
	Charge(db *gorm.DB, userID string, amount float64, paymentType models.PaymentType, methodID, description string) (*models.PaymentTransaction, error)
}

type PaymentServiceImpl struct {
	paymentRepo repositories.PaymentRepository
}

func NewPaymentService(paymentRepo repositories.PaymentRepository) PaymentService {
	return &PaymentServiceImpl{paymentRepo: paymentRepo}
}

func (s *PaymentServiceImpl) AddMethod(db *gorm.DB, userID string, req *dto.AddPaymentMethodRequest) (*dto.PaymentMethodResponse, error) {
	last4 := req.CardNumber
	if len(last4) > 4 {
		last4 = last4[len(last4)-4:]
	}

	method := &models.PaymentMethod{
		UserID:      userID,
		Type:        req.Type,
		Last4:       last4,
		Brand:       strings.ToLower(req.Brand),
		ExpiryMonth: req.ExpiryMonth,
		ExpiryYear:  req.ExpiryYear,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := s.paymentRepo.CreateMethod(tx, method); err != nil {
			return apperrors.DatabaseError(err)
		}
		if req.MakeDefault {
			if err := s.paymentRepo.SetDefaultMethod(tx, userID, method.ID); err != nil {
				return apperrors.DatabaseError(err)
			}
			method.IsDefault = true
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := dto.NewPaymentMethodResponse(method)
	return &resp, nil
}

func (s *PaymentServiceImpl) GetMethods(db *gorm.DB, userID string) ([]dto.PaymentMethodResponse, error) {
	methods, err := s.paymentRepo.FindMethodsByUser(db, userID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	responses := make([]dto.PaymentMethodResponse, 0, len(methods))
	for i := range methods {
		responses = append(responses, dto.NewPaymentMethodResponse(&methods[i]))
	}
	return responses, nil
}

func (s *PaymentServiceImpl) SetDefaultMethod(db *gorm.DB, userID, methodID string) error {
	if err := s.paymentRepo.SetDefaultMethod(db, userID, methodID); err != nil {
		if apperrors.Is(err, repositories.ErrPaymentMethodNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.DatabaseError(err)
	}
	return nil
}

func (s *PaymentServiceImpl) DeleteMethod(db *gorm.DB, userID, methodID string) error {
	method, err := s.paymentRepo.FindMethodByID(db, methodID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPaymentMethodNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.DatabaseError(err)
	}
	if method.UserID != userID {
		return apperrors.ErrInsufficientPermissions
	}

	if err := s.paymentRepo.DeleteMethod(db, methodID); err != nil {
		return apperrors.DatabaseError(err)
	}
	return nil
}

func (s *PaymentServiceImpl) GetTransactions(db *gorm.DB, userID string, limit, offset int) ([]dto.TransactionResponse, error) {
	if limit <= 0 {
		limit = 50
	}
	txns, err := s.paymentRepo.FindTransactionsByUser(db, userID, limit, offset)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	responses := make([]dto.TransactionResponse, 0, len(txns))
	for i := range txns {
		responses = append(responses, dto.NewTransactionResponse(&txns[i]))
	}
	return responses, nil
}

// Charge - симулированный платежный шлюз. Реальной интеграции нет:
// платеж проходит всегда, если у пользователя есть способ оплаты.
func (s *PaymentServiceImpl) Charge(db *gorm.DB, userID string, amount float64, paymentType models.PaymentType, methodID, description string) (*models.PaymentTransaction, error) {
	var method *models.PaymentMethod
	var err error

	if methodID != "" {
		method, err = s.paymentRepo.FindMethodByID(db, methodID)
	} else {
		method, err = s.paymentRepo.FindDefaultMethod(db, userID)
	}
	if err != nil {
		if apperrors.Is(err, repositories.ErrPaymentMethodNotFound) {
			return nil, apperrors.ErrNoPaymentMethod
		}
		return nil, apperrors.DatabaseError(err)
	}
	if method.UserID != userID {
		return nil, apperrors.ErrInsufficientPermissions
	}

	txn := &models.PaymentTransaction{
		UserID:          userID,
		Amount:          amount,
		Currency:        "USD",
		Type:            paymentType,
		Status:          models.PaymentStatusCompleted,
		PaymentMethodID: method.ID,
		Description:     description,
	}
	if err := s.paymentRepo.CreateTransaction(db, txn); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	logger.Info("✅ Payment processed",
		"user_id", userID,
		"amount", pricing.FormatCurrency(amount),
		"type", string(paymentType))

	return txn, nil
}

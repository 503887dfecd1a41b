package services

import (
	"homepro_backend/internal/repositories"
	"homepro_backend/internal/services/dto"
	"homepro_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type UserService interface {
	GetAccount(db *gorm.DB, userID string) (*dto.AccountResponse, error)
	UpdateUser(db *gorm.DB, userID string, req *dto.UpdateUserRequest) (*dto.AccountResponse, error)
	DeleteUser(db *gorm.DB, userID string) error
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

// GetAccount возвращает аккаунт с ролевым профилем
func (s *UserServiceImpl) GetAccount(db *gorm.DB, userID string) (*dto.AccountResponse, error) {
	account, err := hydrateAccount(db, s.userRepo, userID)
	if err != nil {
		return nil, err
	}
	return dto.NewAccountResponse(account), nil
}

// UpdateUser обновляет только переданные поля
func (s *UserServiceImpl) UpdateUser(db *gorm.DB, userID string, req *dto.UpdateUserRequest) (*dto.AccountResponse, error) {
	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.ZipCode != nil {
		fields["zip_code"] = *req.ZipCode
	}
	if req.City != nil {
		fields["city"] = *req.City
	}
	if req.State != nil {
		fields["state"] = *req.State
	}
	if req.ProfileImage != nil {
		fields["profile_image"] = *req.ProfileImage
	}

	if err := s.userRepo.Update(db, userID, fields); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}

	return s.GetAccount(db, userID)
}

func (s *UserServiceImpl) DeleteUser(db *gorm.DB, userID string) error {
	// Ролевые профили удаляются каскадом по FK
	err := db.Transaction(func(tx *gorm.DB) error {
		return s.userRepo.Delete(tx, userID)
	})
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.DatabaseError(err)
	}
	return nil
}

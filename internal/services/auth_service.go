package services

import (
	"time"

	"gorm.io/gorm"

	"lciportal_backend/internal/auth"
	"lciportal_backend/internal/models"
	"lciportal_backend/internal/repositories"
	"lciportal_backend/internal/services/dto"
	"lciportal_backend/pkg/apperrors"
)

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)
}

type AuthServiceImpl struct {
	userRepo repositories.UserRepository
	tokens   *auth.TokenManager
}

func NewAuthService(userRepo repositories.UserRepository, tokens *auth.TokenManager) AuthService {
	return &AuthServiceImpl{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Register creates a client account. Registration auto-approves: the user
// status field exists only for the separate admin moderation feature.
func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	now := time.Now()
	user := &models.User{
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: hash,
		Phone:        req.Phone,
		Company:      req.Company,
		Role:         models.UserRoleClient,
		Status:       models.UserStatusApproved,
		ApprovedAt:   &now,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.DatabaseError(err)
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		Message: "Registration successful",
		Token:   token,
		User:    SanitizeUser(user),
	}, nil
}

// Login authenticates a user. The status field is deliberately not
// checked here; see the resolver's RequireApprovedUser policy.
func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.DatabaseError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		Message: "Login successful",
		Token:   token,
		User:    SanitizeUser(user),
	}, nil
}

// SanitizeUser strips everything a client must not see.
func SanitizeUser(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:         user.ID,
		FullName:   user.FullName,
		Email:      user.Email,
		Phone:      user.Phone,
		Company:    user.Company,
		Role:       string(user.Role),
		Status:     string(user.Status),
		CreatedAt:  user.CreatedAt,
		ApprovedAt: user.ApprovedAt,
	}
}

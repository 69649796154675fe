package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"walkin-queue/internal/data/entity"
	"walkin-queue/internal/data/repository"
	"walkin-queue/internal/dto/request"
	"walkin-queue/internal/dto/response"
	"walkin-queue/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *request.UpdateProfileRequest) (*response.UserResponse, error)
	RefreshToken(ctx context.Context, userID uuid.UUID) (*response.TokenResponse, error)
	CheckEmail(ctx context.Context, email string) (*response.AvailabilityResponse, error)
	CheckPhone(ctx context.Context, phone string) (*response.AvailabilityResponse, error)
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

// Register creates a business-owner account together with its business,
// seeded with the default queue policy.
func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", entity.ErrInvalidArgument, utils.FormatValidationErrors(errs))
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, entity.ErrEmailTaken
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("process password: %w", err)
	}

	now := time.Now()
	business := &entity.Business{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:    strings.TrimSpace(req.BusinessName),
		Slug:    utils.Slugify(req.BusinessName),
		Type:    req.BusinessType,
		Email:   email,
		Phone:   req.Phone,
		Address: req.Address,
		Policy:  entity.DefaultQueuePolicy(),
	}

	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         entity.RoleBusiness,
		BusinessID:   &business.ID,
		IsActive:     true,
	}
	business.OwnerID = user.ID

	if err := s.repo.User.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}
	if err := s.repo.Business.Create(ctx, business); err != nil {
		return nil, fmt.Errorf("create business: %w", err)
	}

	token, err := utils.GenerateToken(s.config.JWT, user.ID, string(user.Role), user.BusinessID)
	if err != nil {
		s.log.Error("Failed to issue token after register", zap.Error(err))
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info("Business owner registered",
		zap.String("user_id", user.ID.String()),
		zap.String("business_id", business.ID.String()),
		zap.String("slug", business.Slug),
	)

	businessResp := response.BusinessToResponse(business)
	return &response.AuthResponse{
		User:     response.UserToResponse(user),
		Business: &businessResp,
		Token:    token,
	}, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", entity.ErrInvalidArgument, utils.FormatValidationErrors(errs))
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to look up user", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("look up user: %w", err)
	}
	if user == nil || !user.IsActive || !utils.CheckPassword(user.PasswordHash, req.Password) {
		return nil, entity.ErrInvalidLogin
	}

	token, err := utils.GenerateToken(s.config.JWT, user.ID, string(user.Role), user.BusinessID)
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err))
		return nil, fmt.Errorf("issue token: %w", err)
	}

	resp := &response.AuthResponse{
		User:  response.UserToResponse(user),
		Token: token,
	}

	if user.BusinessID != nil {
		business, err := s.repo.Business.FindByID(ctx, *user.BusinessID)
		if err == nil && business != nil {
			businessResp := response.BusinessToResponse(business)
			resp.Business = &businessResp
		}
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID.String()))

	return resp, nil
}

// RefreshToken re-issues a token for an authenticated caller. Inactive
// accounts are cut off at refresh time even when their old token is
// still valid.
func (s *authService) RefreshToken(ctx context.Context, userID uuid.UUID) (*response.TokenResponse, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil || !user.IsActive {
		return nil, entity.ErrInvalidLogin
	}

	token, err := utils.GenerateToken(s.config.JWT, user.ID, string(user.Role), user.BusinessID)
	if err != nil {
		s.log.Error("Failed to refresh token", zap.Error(err))
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info("Token refreshed", zap.String("user_id", userID.String()))

	return &response.TokenResponse{Token: token}, nil
}

// CheckEmail is the public pre-registration availability check.
func (s *authService) CheckEmail(ctx context.Context, email string) (*response.AvailabilityResponse, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return nil, fmt.Errorf("%w: email is required", entity.ErrInvalidArgument)
	}

	existing, err := s.repo.User.FindByEmail(ctx, normalized)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", normalized))
		return nil, fmt.Errorf("check email: %w", err)
	}

	exists := existing != nil
	return &response.AvailabilityResponse{Available: !exists, Exists: exists}, nil
}

// CheckPhone reports whether a business is already registered under the
// given phone number.
func (s *authService) CheckPhone(ctx context.Context, phone string) (*response.AvailabilityResponse, error) {
	normalized := strings.TrimSpace(phone)
	if normalized == "" {
		return nil, fmt.Errorf("%w: phone is required", entity.ErrInvalidArgument)
	}

	existing, err := s.repo.Business.FindByPhone(ctx, normalized)
	if err != nil {
		s.log.Error("Failed to check phone", zap.Error(err), zap.String("phone", normalized))
		return nil, fmt.Errorf("check phone: %w", err)
	}

	exists := existing != nil
	return &response.AvailabilityResponse{Available: !exists, Exists: exists}, nil
}

func (s *authService) GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if user == nil {
		return nil, entity.ErrUserNotFound
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *authService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *request.UpdateProfileRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", entity.ErrInvalidArgument, utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, entity.ErrUserNotFound
	}

	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if email != user.Email {
			existing, err := s.repo.User.FindByEmail(ctx, email)
			if err != nil {
				return nil, fmt.Errorf("check email: %w", err)
			}
			if existing != nil {
				return nil, entity.ErrEmailTaken
			}
			user.Email = email
		}
	}

	if req.Password != nil {
		hashed, err := utils.HashPassword(*req.Password)
		if err != nil {
			s.log.Error("Failed to hash password", zap.Error(err))
			return nil, fmt.Errorf("process password: %w", err)
		}
		user.PasswordHash = hashed
	}

	if err := s.repo.User.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	s.log.Info("Profile updated", zap.String("user_id", userID.String()))

	resp := response.UserToResponse(user)
	return &resp, nil
}

package usecase

import (
	"context"
	"fmt"
	"strings"

	"walkin-queue/internal/data/entity"
	"walkin-queue/internal/data/repository"
	"walkin-queue/internal/dto/request"
	"walkin-queue/internal/dto/response"
	"walkin-queue/pkg/qrcode"
	"walkin-queue/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BusinessService interface {
	ListBusinesses(ctx context.Context, actor Actor) ([]response.BusinessResponse, error)
	GetBusiness(ctx context.Context, actor Actor, businessID string) (*response.BusinessResponse, error)
	GetBusinessBySlug(ctx context.Context, actor Actor, slug string) (*response.BusinessResponse, error)
	GetPublicBusiness(ctx context.Context, slug string) (*response.PublicBusinessResponse, error)

	GetSettings(ctx context.Context, actor Actor, businessID string) (*entity.QueuePolicy, error)
	UpdateSettings(ctx context.Context, actor Actor, businessID string, req *request.UpdateSettingsRequest) (*entity.QueuePolicy, error)

	GetPublicQRCode(ctx context.Context, slug string) (*response.QRCodeResponse, error)
}

type businessService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewBusinessService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) BusinessService {
	return &businessService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "business")),
	}
}

func (s *businessService) ListBusinesses(ctx context.Context, actor Actor) ([]response.BusinessResponse, error) {
	if actor.Role != entity.RoleAdmin {
		return nil, entity.ErrAccessDenied
	}

	businesses, err := s.repo.Business.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list businesses", zap.Error(err))
		return nil, fmt.Errorf("list businesses: %w", err)
	}

	responses := make([]response.BusinessResponse, len(businesses))
	for i, b := range businesses {
		responses[i] = response.BusinessToResponse(b)
	}

	return responses, nil
}

func (s *businessService) GetBusiness(ctx context.Context, actor Actor, businessID string) (*response.BusinessResponse, error) {
	businessUUID, err := uuid.Parse(businessID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid business ID", entity.ErrInvalidArgument)
	}

	business, err := s.repo.Business.FindByID(ctx, businessUUID)
	if err != nil {
		return nil, fmt.Errorf("get business: %w", err)
	}
	if business == nil {
		return nil, entity.ErrBusinessNotFound
	}

	if !actor.CanAccess(business.ID) && actor.ID != business.OwnerID {
		return nil, entity.ErrAccessDenied
	}

	resp := response.BusinessToResponse(business)
	return &resp, nil
}

func (s *businessService) GetBusinessBySlug(ctx context.Context, actor Actor, slug string) (*response.BusinessResponse, error) {
	business, err := s.repo.Business.FindBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get business by slug: %w", err)
	}
	if business == nil {
		return nil, entity.ErrBusinessNotFound
	}

	if !actor.CanAccess(business.ID) && actor.ID != business.OwnerID {
		return nil, entity.ErrAccessDenied
	}

	resp := response.BusinessToResponse(business)
	return &resp, nil
}

func (s *businessService) GetPublicBusiness(ctx context.Context, slug string) (*response.PublicBusinessResponse, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, fmt.Errorf("%w: slug is required", entity.ErrInvalidArgument)
	}

	business, err := s.repo.Business.FindBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get public business: %w", err)
	}
	if business == nil {
		return nil, entity.ErrBusinessNotFound
	}

	resp := response.BusinessToPublicResponse(business)
	return &resp, nil
}

func (s *businessService) GetSettings(ctx context.Context, actor Actor, businessID string) (*entity.QueuePolicy, error) {
	businessUUID, err := uuid.Parse(businessID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid business ID", entity.ErrInvalidArgument)
	}

	business, err := s.repo.Business.FindByID(ctx, businessUUID)
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	if business == nil {
		return nil, entity.ErrBusinessNotFound
	}

	if !actor.CanAccess(business.ID) && actor.ID != business.OwnerID {
		return nil, entity.ErrAccessDenied
	}

	policy := business.Policy
	return &policy, nil
}

// UpdateSettings merges provided quota fields into the stored policy.
// Only the owner or an admin may change admission policy.
func (s *businessService) UpdateSettings(ctx context.Context, actor Actor, businessID string, req *request.UpdateSettingsRequest) (*entity.QueuePolicy, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", entity.ErrInvalidArgument, utils.FormatValidationErrors(errs))
	}

	businessUUID, err := uuid.Parse(businessID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid business ID", entity.ErrInvalidArgument)
	}

	business, err := s.repo.Business.FindByID(ctx, businessUUID)
	if err != nil {
		return nil, fmt.Errorf("get business: %w", err)
	}
	if business == nil {
		return nil, entity.ErrBusinessNotFound
	}

	if actor.Role != entity.RoleAdmin && actor.ID != business.OwnerID {
		return nil, entity.ErrAccessDenied
	}

	policy := business.Policy
	if req.MaxQueueLength != nil {
		policy.MaxQueueLength = *req.MaxQueueLength
	}
	if req.ReservedPrioritySlots != nil {
		policy.ReservedPrioritySlots = *req.ReservedPrioritySlots
	}
	if req.PriorityExtensionTime != nil {
		policy.PriorityExtensionTime = *req.PriorityExtensionTime
	}
	if req.AutoWaitTimes != nil {
		policy.AutoWaitTimes = *req.AutoWaitTimes
	}

	if err := s.repo.Business.UpdatePolicy(ctx, business.ID, policy); err != nil {
		s.log.Error("Failed to update business settings",
			zap.Error(err),
			zap.String("business_id", businessID),
		)
		return nil, fmt.Errorf("update settings: %w", err)
	}

	s.log.Info("Business settings updated",
		zap.String("business_id", businessID),
		zap.String("actor_id", actor.ID.String()),
		zap.Int("max_queue_length", policy.MaxQueueLength),
		zap.Int("priority_slots", policy.ReservedPrioritySlots),
	)

	return &policy, nil
}

// GetPublicQRCode generates (or reuses) the QR PNG pointing customers at
// the business landing page and returns its public URL.
func (s *businessService) GetPublicQRCode(ctx context.Context, slug string) (*response.QRCodeResponse, error) {
	business, err := s.repo.Business.FindBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get business by slug: %w", err)
	}
	if business == nil {
		return nil, entity.ErrBusinessNotFound
	}

	filename := business.ID.String() + ".png"
	customerURL := fmt.Sprintf("%s/customer/%s", strings.TrimRight(s.config.QR.FrontendURL, "/"), business.Slug)

	if _, err := qrcode.EnsureFile(s.config.QR.UploadDir, filename, customerURL); err != nil {
		s.log.Error("Failed to generate QR code",
			zap.Error(err),
			zap.String("business_id", business.ID.String()),
		)
		return nil, fmt.Errorf("generate QR code: %w", err)
	}

	publicURL := fmt.Sprintf("%s/uploads/qrcodes/%s", strings.TrimRight(s.config.QR.APIBaseURL, "/"), filename)

	if business.QRURL == nil || *business.QRURL != publicURL {
		if err := s.repo.Business.UpdateQRURL(ctx, business.ID, publicURL); err != nil {
			s.log.Warn("Failed to store QR URL",
				zap.Error(err),
				zap.String("business_id", business.ID.String()),
			)
		}
	}

	return &response.QRCodeResponse{URL: publicURL}, nil
}

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

type StaffService interface {
	GetStaff(ctx context.Context, actor Actor, businessID string, status, role *string) ([]response.StaffResponse, error)
	GetStaffMember(ctx context.Context, actor Actor, staffID string) (*response.StaffResponse, error)
	CreateStaff(ctx context.Context, actor Actor, req *request.CreateStaffRequest) (*response.StaffResponse, error)
	UpdateStaff(ctx context.Context, actor Actor, staffID string, req *request.UpdateStaffRequest) (*response.StaffResponse, error)
	DeleteStaff(ctx context.Context, actor Actor, staffID string) error
	GetStaffActivity(ctx context.Context, actor Actor, staffID string, from, to *time.Time) (*response.StaffActivityResponse, error)
}

type staffService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewStaffService(repo *repository.Repository, log *zap.Logger) StaffService {
	return &staffService{
		repo: repo,
		log:  log.With(zap.String("service", "staff")),
	}
}

func (s *staffService) GetStaff(ctx context.Context, actor Actor, businessID string, status, role *string) ([]response.StaffResponse, error) {
	businessUUID, err := uuid.Parse(businessID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid business ID", entity.ErrInvalidArgument)
	}

	if !actor.CanAccess(businessUUID) {
		return nil, entity.ErrAccessDenied
	}

	staff, err := s.repo.Staff.FindByBusinessID(ctx, businessUUID)
	if err != nil {
		s.log.Error("Failed to get staff members",
			zap.Error(err),
			zap.String("business_id", businessID),
		)
		return nil, fmt.Errorf("get staff members: %w", err)
	}

	responses := make([]response.StaffResponse, 0, len(staff))
	for _, member := range staff {
		if status != nil && *status != "" && member.Status != *status {
			continue
		}
		if role != nil && *role != "" && string(member.Role) != *role {
			continue
		}
		responses = append(responses, response.StaffToResponse(member))
	}

	return responses, nil
}

func (s *staffService) GetStaffMember(ctx context.Context, actor Actor, staffID string) (*response.StaffResponse, error) {
	member, err := s.loadStaffForActor(ctx, actor, staffID)
	if err != nil {
		return nil, err
	}

	resp := response.StaffToResponse(member)
	return &resp, nil
}

func (s *staffService) CreateStaff(ctx context.Context, actor Actor, req *request.CreateStaffRequest) (*response.StaffResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create staff validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", entity.ErrInvalidArgument, utils.FormatValidationErrors(errs))
	}

	businessUUID, err := uuid.Parse(req.BusinessID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid business ID", entity.ErrInvalidArgument)
	}

	if !actor.CanAccess(businessUUID) {
		return nil, entity.ErrAccessDenied
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, entity.ErrEmailTaken
	}

	now := time.Now()
	member := &entity.StaffMember{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BusinessID: businessUUID,
		Name:       strings.TrimSpace(req.Name),
		Email:      email,
		Role:       entity.StaffRole(req.Role),
		Status:     "active",
		LastActive: now,
	}

	if err := s.repo.Staff.Create(ctx, member); err != nil {
		return nil, fmt.Errorf("create staff member: %w", err)
	}

	// A login account is only created when a password is supplied.
	if req.Password != "" {
		hashed, err := utils.HashPassword(req.Password)
		if err != nil {
			s.log.Error("Failed to hash staff password", zap.Error(err))
			return nil, fmt.Errorf("process password: %w", err)
		}

		user := &entity.User{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			Email:        email,
			PasswordHash: hashed,
			Role:         entity.RoleStaff,
			BusinessID:   &businessUUID,
			IsActive:     true,
		}
		if err := s.repo.User.Create(ctx, user); err != nil {
			s.log.Error("Failed to create staff login account",
				zap.Error(err),
				zap.String("email", email),
			)
			return nil, fmt.Errorf("create staff account: %w", err)
		}
	}

	s.log.Info("Staff member created",
		zap.String("staff_id", member.ID.String()),
		zap.String("business_id", req.BusinessID),
		zap.String("role", req.Role),
	)

	resp := response.StaffToResponse(member)
	return &resp, nil
}

func (s *staffService) UpdateStaff(ctx context.Context, actor Actor, staffID string, req *request.UpdateStaffRequest) (*response.StaffResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", entity.ErrInvalidArgument, utils.FormatValidationErrors(errs))
	}

	member, err := s.loadStaffForActor(ctx, actor, staffID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		member.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		member.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Role != nil {
		member.Role = entity.StaffRole(*req.Role)
	}
	if req.Status != nil {
		member.Status = *req.Status
	}

	if err := s.repo.Staff.Update(ctx, member); err != nil {
		return nil, fmt.Errorf("update staff member: %w", err)
	}

	s.log.Info("Staff member updated",
		zap.String("staff_id", staffID),
		zap.String("actor_id", actor.ID.String()),
	)

	resp := response.StaffToResponse(member)
	return &resp, nil
}

func (s *staffService) DeleteStaff(ctx context.Context, actor Actor, staffID string) error {
	member, err := s.loadStaffForActor(ctx, actor, staffID)
	if err != nil {
		return err
	}

	if err := s.repo.Staff.Delete(ctx, member.ID); err != nil {
		return fmt.Errorf("delete staff member: %w", err)
	}

	s.log.Info("Staff member deleted",
		zap.String("staff_id", staffID),
		zap.String("actor_id", actor.ID.String()),
	)

	return nil
}

// GetStaffActivity reports which queue entries the member touched,
// folded into per-action counts. Audit stamps carry the login account
// ID, so the member's account is resolved first; members without an
// account are matched on their staff ID and report empty.
func (s *staffService) GetStaffActivity(ctx context.Context, actor Actor, staffID string, from, to *time.Time) (*response.StaffActivityResponse, error) {
	member, err := s.loadStaffForActor(ctx, actor, staffID)
	if err != nil {
		return nil, err
	}

	actorID := member.ID
	account, err := s.repo.User.FindByEmail(ctx, member.Email)
	if err != nil {
		return nil, fmt.Errorf("resolve staff account: %w", err)
	}
	if account != nil {
		actorID = account.ID
	}

	entries, err := s.repo.Queue.FindByBusinessID(ctx, member.BusinessID, nil)
	if err != nil {
		s.log.Error("Failed to get staff activity",
			zap.Error(err),
			zap.String("staff_id", staffID),
		)
		return nil, fmt.Errorf("get staff activity: %w", err)
	}

	matches := func(stamp *uuid.UUID) bool {
		return stamp != nil && *stamp == actorID
	}

	resp := &response.StaffActivityResponse{
		StaffMember: response.StaffToResponse(member),
		Activities:  []response.QueueEntryResponse{},
	}

	for _, e := range entries {
		if from != nil && e.JoinedAt.Before(*from) {
			continue
		}
		if to != nil && e.JoinedAt.After(*to) {
			continue
		}

		called := matches(e.CalledBy)
		completed := matches(e.CompletedBy)
		extended := matches(e.ExtendedByUser)
		payment := matches(e.PaymentUpdatedBy)
		if !called && !completed && !extended && !payment {
			continue
		}

		resp.Stats.TotalCustomersHandled++
		if called {
			resp.Stats.CustomersCalled++
		}
		if completed {
			resp.Stats.CustomersCompleted++
		}
		if extended {
			resp.Stats.TimeExtensions++
		}
		if payment {
			resp.Stats.PaymentUpdates++
		}
		resp.Activities = append(resp.Activities, response.QueueEntryToResponse(e))
	}

	return resp, nil
}

func (s *staffService) loadStaffForActor(ctx context.Context, actor Actor, staffID string) (*entity.StaffMember, error) {
	staffUUID, err := uuid.Parse(staffID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid staff ID", entity.ErrInvalidArgument)
	}

	member, err := s.repo.Staff.FindByID(ctx, staffUUID)
	if err != nil {
		return nil, fmt.Errorf("find staff member: %w", err)
	}
	if member == nil {
		return nil, entity.ErrStaffNotFound
	}

	if !actor.CanAccess(member.BusinessID) {
		return nil, entity.ErrAccessDenied
	}

	return member, nil
}

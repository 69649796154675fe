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

type MenuService interface {
	GetMenu(ctx context.Context, businessID string, category *string) ([]response.MenuItemResponse, error)
	GetMenuItem(ctx context.Context, itemID string) (*response.MenuItemResponse, error)
	GetCategories(ctx context.Context, businessID string) ([]string, error)
	CreateMenuItem(ctx context.Context, actor Actor, req *request.CreateMenuItemRequest) (*response.MenuItemResponse, error)
	UpdateMenuItem(ctx context.Context, actor Actor, itemID string, req *request.UpdateMenuItemRequest) (*response.MenuItemResponse, error)
	DeleteMenuItem(ctx context.Context, actor Actor, itemID string) error
}

type menuService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMenuService(repo *repository.Repository, log *zap.Logger) MenuService {
	return &menuService{
		repo: repo,
		log:  log.With(zap.String("service", "menu")),
	}
}

func (s *menuService) GetMenu(ctx context.Context, businessID string, category *string) ([]response.MenuItemResponse, error) {
	businessUUID, err := uuid.Parse(businessID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid business ID", entity.ErrInvalidArgument)
	}

	items, err := s.repo.Menu.FindByBusinessID(ctx, businessUUID, category)
	if err != nil {
		s.log.Error("Failed to get menu",
			zap.Error(err),
			zap.String("business_id", businessID),
		)
		return nil, fmt.Errorf("get menu: %w", err)
	}

	responses := make([]response.MenuItemResponse, len(items))
	for i, item := range items {
		responses[i] = response.MenuItemToResponse(item)
	}

	return responses, nil
}

func (s *menuService) GetMenuItem(ctx context.Context, itemID string) (*response.MenuItemResponse, error) {
	itemUUID, err := uuid.Parse(itemID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid menu item ID", entity.ErrInvalidArgument)
	}

	item, err := s.repo.Menu.FindByID(ctx, itemUUID)
	if err != nil {
		return nil, fmt.Errorf("get menu item: %w", err)
	}
	if item == nil {
		return nil, entity.ErrMenuItemNotFound
	}

	resp := response.MenuItemToResponse(item)
	return &resp, nil
}

func (s *menuService) GetCategories(ctx context.Context, businessID string) ([]string, error) {
	businessUUID, err := uuid.Parse(businessID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid business ID", entity.ErrInvalidArgument)
	}

	categories, err := s.repo.Menu.FindCategories(ctx, businessUUID)
	if err != nil {
		s.log.Error("Failed to get menu categories",
			zap.Error(err),
			zap.String("business_id", businessID),
		)
		return nil, fmt.Errorf("get menu categories: %w", err)
	}

	return categories, nil
}

func (s *menuService) CreateMenuItem(ctx context.Context, actor Actor, req *request.CreateMenuItemRequest) (*response.MenuItemResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create menu item validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", entity.ErrInvalidArgument, utils.FormatValidationErrors(errs))
	}

	businessUUID, err := uuid.Parse(req.BusinessID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid business ID", entity.ErrInvalidArgument)
	}

	if !actor.CanAccess(businessUUID) {
		return nil, entity.ErrAccessDenied
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	now := time.Now()
	item := &entity.MenuItem{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BusinessID:  businessUUID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Available:   available,
	}

	if err := s.repo.Menu.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create menu item: %w", err)
	}

	s.log.Info("Menu item created",
		zap.String("menu_item_id", item.ID.String()),
		zap.String("business_id", req.BusinessID),
		zap.String("name", item.Name),
	)

	resp := response.MenuItemToResponse(item)
	return &resp, nil
}

func (s *menuService) UpdateMenuItem(ctx context.Context, actor Actor, itemID string, req *request.UpdateMenuItemRequest) (*response.MenuItemResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", entity.ErrInvalidArgument, utils.FormatValidationErrors(errs))
	}

	item, err := s.loadItemForActor(ctx, actor, itemID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		item.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Available != nil {
		item.Available = *req.Available
	}

	if err := s.repo.Menu.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("update menu item: %w", err)
	}

	s.log.Info("Menu item updated",
		zap.String("menu_item_id", itemID),
		zap.String("actor_id", actor.ID.String()),
	)

	resp := response.MenuItemToResponse(item)
	return &resp, nil
}

func (s *menuService) DeleteMenuItem(ctx context.Context, actor Actor, itemID string) error {
	item, err := s.loadItemForActor(ctx, actor, itemID)
	if err != nil {
		return err
	}

	if err := s.repo.Menu.Delete(ctx, item.ID); err != nil {
		return fmt.Errorf("delete menu item: %w", err)
	}

	s.log.Info("Menu item deleted",
		zap.String("menu_item_id", itemID),
		zap.String("actor_id", actor.ID.String()),
	)

	return nil
}

func (s *menuService) loadItemForActor(ctx context.Context, actor Actor, itemID string) (*entity.MenuItem, error) {
	itemUUID, err := uuid.Parse(itemID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid menu item ID", entity.ErrInvalidArgument)
	}

	item, err := s.repo.Menu.FindByID(ctx, itemUUID)
	if err != nil {
		return nil, fmt.Errorf("find menu item: %w", err)
	}
	if item == nil {
		return nil, entity.ErrMenuItemNotFound
	}

	if !actor.CanAccess(item.BusinessID) {
		return nil, entity.ErrAccessDenied
	}

	return item, nil
}

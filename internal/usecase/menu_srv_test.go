package usecase

import (
	"context"
	"testing"

	"walkin-queue/internal/data/entity"
	"walkin-queue/internal/data/repository"
	"walkin-queue/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newMenuTestService(menuRepo *MockMenuRepository) MenuService {
	repo := &repository.Repository{
		Menu: menuRepo,
	}
	return NewMenuService(repo, zap.NewNop())
}

func TestCreateMenuItem_DefaultsAvailable(t *testing.T) {
	menuRepo := new(MockMenuRepository)
	service := newMenuTestService(menuRepo)

	businessID := uuid.New()
	actor := Actor{ID: uuid.New(), Role: entity.RoleBusiness, BusinessID: &businessID}

	menuRepo.On("Create", mock.Anything, mock.MatchedBy(func(item *entity.MenuItem) bool {
		return item.Name == "Nasi Goreng" && item.Available
	})).Return(nil)

	resp, err := service.CreateMenuItem(context.Background(), actor, &request.CreateMenuItemRequest{
		BusinessID: businessID.String(),
		Name:       "Nasi Goreng",
		Category:   "mains",
		Price:      25000,
	})

	assert.NoError(t, err)
	assert.True(t, resp.Available)
	menuRepo.AssertExpectations(t)
}

func TestCreateMenuItem_WrongBusiness(t *testing.T) {
	menuRepo := new(MockMenuRepository)
	service := newMenuTestService(menuRepo)

	actor := staffActor(uuid.New())

	resp, err := service.CreateMenuItem(context.Background(), actor, &request.CreateMenuItemRequest{
		BusinessID: uuid.New().String(),
		Name:       "Nasi Goreng",
		Category:   "mains",
		Price:      25000,
	})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, entity.ErrAccessDenied)
	menuRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdateMenuItem_MergesFields(t *testing.T) {
	menuRepo := new(MockMenuRepository)
	service := newMenuTestService(menuRepo)

	businessID := uuid.New()
	actor := Actor{ID: uuid.New(), Role: entity.RoleBusiness, BusinessID: &businessID}

	item := &entity.MenuItem{
		BusinessID: businessID,
		Name:       "Es Teh",
		Category:   "drinks",
		Price:      5000,
		Available:  true,
	}
	item.ID = uuid.New()

	menuRepo.On("FindByID", mock.Anything, item.ID).Return(item, nil)
	menuRepo.On("Update", mock.Anything, mock.MatchedBy(func(updated *entity.MenuItem) bool {
		return updated.Price == 6000 && updated.Name == "Es Teh" && !updated.Available
	})).Return(nil)

	price := 6000.0
	available := false
	resp, err := service.UpdateMenuItem(context.Background(), actor, item.ID.String(), &request.UpdateMenuItemRequest{
		Price:     &price,
		Available: &available,
	})

	assert.NoError(t, err)
	assert.Equal(t, 6000.0, resp.Price)
	assert.False(t, resp.Available)
}

func TestGetMenuItem_NotFound(t *testing.T) {
	menuRepo := new(MockMenuRepository)
	service := newMenuTestService(menuRepo)

	id := uuid.New()
	menuRepo.On("FindByID", mock.Anything, id).Return(nil, nil)

	resp, err := service.GetMenuItem(context.Background(), id.String())

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, entity.ErrMenuItemNotFound)
}

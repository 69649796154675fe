package usecase

import (
	"context"
	"time"

	"walkin-queue/internal/data/entity"
	"walkin-queue/internal/data/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockQueueRepository is a mock implementation of repository.QueueRepository
type MockQueueRepository struct {
	mock.Mock
}

func (m *MockQueueRepository) InsertWithCapacity(ctx context.Context, entry *entity.QueueEntry, policy entity.QueuePolicy) error {
	args := m.Called(ctx, entry, policy)
	return args.Error(0)
}

func (m *MockQueueRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.QueueEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.QueueEntry), args.Error(1)
}

func (m *MockQueueRepository) FindByBusinessID(ctx context.Context, businessID uuid.UUID, status *entity.QueueStatus) ([]*entity.QueueEntry, error) {
	args := m.Called(ctx, businessID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.QueueEntry), args.Error(1)
}

func (m *MockQueueRepository) MarkCalled(ctx context.Context, id, actorID uuid.UUID, at time.Time) (*entity.QueueEntry, error) {
	args := m.Called(ctx, id, actorID, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.QueueEntry), args.Error(1)
}

func (m *MockQueueRepository) MarkCompleted(ctx context.Context, id, actorID uuid.UUID, at time.Time) (*entity.QueueEntry, error) {
	args := m.Called(ctx, id, actorID, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.QueueEntry), args.Error(1)
}

func (m *MockQueueRepository) ExtendWait(ctx context.Context, id uuid.UUID, minutes int, actorID uuid.UUID, at time.Time) (*entity.QueueEntry, error) {
	args := m.Called(ctx, id, minutes, actorID, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.QueueEntry), args.Error(1)
}

func (m *MockQueueRepository) SetPayment(ctx context.Context, id uuid.UUID, status entity.PaymentStatus, actorID uuid.UUID, notes string, at time.Time) (*entity.QueueEntry, error) {
	args := m.Called(ctx, id, status, actorID, notes, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.QueueEntry), args.Error(1)
}

func (m *MockQueueRepository) UpdateFields(ctx context.Context, id uuid.UUID, update repository.QueueEntryUpdate) (*entity.QueueEntry, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.QueueEntry), args.Error(1)
}

func (m *MockQueueRepository) Delete(ctx context.Context, id uuid.UUID) (*entity.QueueEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.QueueEntry), args.Error(1)
}

// MockBusinessRepository is a mock implementation of repository.BusinessRepository
type MockBusinessRepository struct {
	mock.Mock
}

func (m *MockBusinessRepository) Create(ctx context.Context, business *entity.Business) error {
	args := m.Called(ctx, business)
	return args.Error(0)
}

func (m *MockBusinessRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Business), args.Error(1)
}

func (m *MockBusinessRepository) FindBySlug(ctx context.Context, slug string) (*entity.Business, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Business), args.Error(1)
}

func (m *MockBusinessRepository) FindByPhone(ctx context.Context, phone string) (*entity.Business, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Business), args.Error(1)
}

func (m *MockBusinessRepository) FindAll(ctx context.Context) ([]*entity.Business, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Business), args.Error(1)
}

func (m *MockBusinessRepository) UpdatePolicy(ctx context.Context, id uuid.UUID, policy entity.QueuePolicy) error {
	args := m.Called(ctx, id, policy)
	return args.Error(0)
}

func (m *MockBusinessRepository) UpdateQRURL(ctx context.Context, id uuid.UUID, url string) error {
	args := m.Called(ctx, id, url)
	return args.Error(0)
}

// MockUserRepository is a mock implementation of repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockStaffRepository is a mock implementation of repository.StaffRepository
type MockStaffRepository struct {
	mock.Mock
}

func (m *MockStaffRepository) Create(ctx context.Context, staff *entity.StaffMember) error {
	args := m.Called(ctx, staff)
	return args.Error(0)
}

func (m *MockStaffRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.StaffMember, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.StaffMember), args.Error(1)
}

func (m *MockStaffRepository) FindByBusinessID(ctx context.Context, businessID uuid.UUID) ([]*entity.StaffMember, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.StaffMember), args.Error(1)
}

func (m *MockStaffRepository) Update(ctx context.Context, staff *entity.StaffMember) error {
	args := m.Called(ctx, staff)
	return args.Error(0)
}

func (m *MockStaffRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockMenuRepository is a mock implementation of repository.MenuRepository
type MockMenuRepository struct {
	mock.Mock
}

func (m *MockMenuRepository) Create(ctx context.Context, item *entity.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMenuRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) FindByBusinessID(ctx context.Context, businessID uuid.UUID, category *string) ([]*entity.MenuItem, error) {
	args := m.Called(ctx, businessID, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) FindCategories(ctx context.Context, businessID uuid.UUID) ([]string, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockMenuRepository) Update(ctx context.Context, item *entity.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMenuRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

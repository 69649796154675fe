package usecase

import (
	"context"
	"testing"
	"time"

	"walkin-queue/internal/data/entity"
	"walkin-queue/internal/data/repository"
	"walkin-queue/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newQueueTestService(queueRepo *MockQueueRepository, businessRepo *MockBusinessRepository) QueueService {
	repo := &repository.Repository{
		Queue:    queueRepo,
		Business: businessRepo,
	}
	return NewQueueService(repo, zap.NewNop())
}

func testBusiness() *entity.Business {
	b := &entity.Business{
		Name:   "Warung Kopi Sudirman",
		Slug:   "warung-kopi-sudirman",
		Policy: entity.DefaultQueuePolicy(),
	}
	b.ID = uuid.New()
	return b
}

func testEntry(businessID uuid.UUID) *entity.QueueEntry {
	return &entity.QueueEntry{
		ID:            uuid.New(),
		BusinessID:    businessID,
		CustomerName:  "Alice",
		Status:        entity.StatusWaiting,
		PaymentStatus: entity.PaymentPending,
		JoinedAt:      time.Now(),
	}
}

func staffActor(businessID uuid.UUID) Actor {
	return Actor{
		ID:         uuid.New(),
		Role:       entity.RoleStaff,
		BusinessID: &businessID,
	}
}

func TestJoin_Success(t *testing.T) {
	queueRepo := new(MockQueueRepository)
	businessRepo := new(MockBusinessRepository)
	service := newQueueTestService(queueRepo, businessRepo)

	business := testBusiness()
	businessRepo.On("FindByID", mock.Anything, business.ID).Return(business, nil)
	queueRepo.On("InsertWithCapacity", mock.Anything, mock.MatchedBy(func(e *entity.QueueEntry) bool {
		return e.CustomerName == "Alice" &&
			e.Status == entity.StatusWaiting &&
			e.PaymentStatus == entity.PaymentPending &&
			!e.IsPriority
	}), business.Policy).Return(nil)

	resp, err := service.Join(context.Background(), &request.JoinQueueRequest{
		BusinessID:   business.ID.String(),
		CustomerName: "Alice",
	})

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, "Alice", resp.CustomerName)
	assert.Equal(t, entity.StatusWaiting, resp.Status)
	assert.Equal(t, entity.PaymentPending, resp.PaymentStatus)
	queueRepo.AssertExpectations(t)
}

func TestJoin_ComputesOrderTotal(t *testing.T) {
	queueRepo := new(MockQueueRepository)
	businessRepo := new(MockBusinessRepository)
	service := newQueueTestService(queueRepo, businessRepo)

	business := testBusiness()
	businessRepo.On("FindByID", mock.Anything, business.ID).Return(business, nil)
	queueRepo.On("InsertWithCapacity", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	resp, err := service.Join(context.Background(), &request.JoinQueueRequest{
		BusinessID:   business.ID.String(),
		CustomerName: "Bob",
		OrderItems: []request.OrderItemRequest{
			{Name: "Nasi Goreng", Price: 25000, Quantity: 2},
			{Name: "Es Teh", Price: 5000, Quantity: 3},
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, 65000.0, resp.OrderTotal)
}

func TestJoin_QueueFull(t *testing.T) {
	queueRepo := new(MockQueueRepository)
	businessRepo := new(MockBusinessRepository)
	service := newQueueTestService(queueRepo, businessRepo)

	business := testBusiness()
	businessRepo.On("FindByID", mock.Anything, business.ID).Return(business, nil)
	queueRepo.On("InsertWithCapacity", mock.Anything, mock.Anything, mock.Anything).
		Return(entity.ErrQueueFull)

	resp, err := service.Join(context.Background(), &request.JoinQueueRequest{
		BusinessID:   business.ID.String(),
		CustomerName: "Carol",
	})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, entity.ErrQueueFull)
}

func TestJoin_PrioritySlotsFull(t *testing.T) {
	queueRepo := new(MockQueueRepository)
	businessRepo := new(MockBusinessRepository)
	service := newQueueTestService(queueRepo, businessRepo)

	business := testBusiness()
	businessRepo.On("FindByID", mock.Anything, business.ID).Return(business, nil)
	queueRepo.On("InsertWithCapacity", mock.Anything, mock.Anything, mock.Anything).
		Return(entity.ErrPrioritySlotsFull)

	resp, err := service.Join(context.Background(), &request.JoinQueueRequest{
		BusinessID:   business.ID.String(),
		CustomerName: "Eve",
		IsPriority:   true,
	})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, entity.ErrPrioritySlotsFull)
}

func TestJoin_BusinessNotFound(t *testing.T) {
	queueRepo := new(MockQueueRepository)
	businessRepo := new(MockBusinessRepository)
	service := newQueueTestService(queueRepo, businessRepo)

	unknown := uuid.New()
	businessRepo.On("FindByID", mock.Anything, unknown).Return(nil, nil)

	resp, err := service.Join(context.Background(), &request.JoinQueueRequest{
		BusinessID:   unknown.String(),
		CustomerName: "Frank",
	})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, entity.ErrBusinessNotFound)
	queueRepo.AssertNotCalled(t, "InsertWithCapacity", mock.Anything, mock.Anything, mock.Anything)
}

func TestJoin_MissingCustomerName(t *testing.T) {
	queueRepo := new(MockQueueRepository)
	businessRepo := new(MockBusinessRepository)
	service := newQueueTestService(queueRepo, businessRepo)

	resp, err := service.Join(context.Background(), &request.JoinQueueRequest{
		BusinessID: uuid.New().String(),
	})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, entity.ErrInvalidArgument)
}

func TestGetCustomerStatus_Position(t *testing.T) {
	queueRepo := new(MockQueueRepository)
	businessRepo := new(MockBusinessRepository)
	service := newQueueTestService(queueRepo, businessRepo)

	businessID := uuid.New()
	first := testEntry(businessID)
	second := testEntry(businessID)
	second.CustomerName = "Bob"
	third := testEntry(businessID)
	third.CustomerName = "Carol"

	queueRepo.On("FindByID", mock.Anything, second.ID).Return(second, nil)
	queueRepo.On("FindByBusinessID", mock.Anything, businessID, mock.Anything).
		Return([]*entity.QueueEntry{first, second, third}, nil)

	resp, err := service.GetCustomerStatus(context.Background(), second.ID.String())

	assert.NoError(t, err)
	assert.NotNil(t, resp.Position)
	assert.Equal(t, 2, *resp.Position)
	assert.Equal(t, 3, resp.QueueLength)
}

func TestGetCustomerStatus_NoPositionWhenCalled(t *testing.T) {
	queueRepo := new(MockQueueRepository)
	businessRepo := new(MockBusinessRepository)
	service := newQueueTestService(queueRepo, businessRepo)

	businessID := uuid.New()
	called := testEntry(businessID)
	called.Status = entity.StatusCalled
	stillWaiting := testEntry(businessID)

	queueRepo.On("FindByID", mock.Anything, called.ID).Return(called, nil)
	// Called entries no longer appear in the waiting list.
	queueRepo.On("FindByBusinessID", mock.Anything, businessID, mock.Anything).
		Return([]*entity.QueueEntry{stillWaiting}, nil)

	resp, err := service.GetCustomerStatus(context.Background(), called.ID.String())

	assert.NoError(t, err)
	assert.Nil(t, resp.Position)
	assert.Equal(t, 1, resp.QueueLength)
}

func TestGetCustomerStatus_NotFound(t *testing.T) {
	queueRepo := new(MockQueueRepository)
	businessRepo := new(MockBusinessRepository)
	service := newQueueTestService(queueRepo, businessRepo)

	id := uuid.New()
	queueRepo.On("FindByID", mock.Anything, id).Return(nil, nil)

	resp, err := service.GetCustomerStatus(context.Background(), id.String())

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, entity.ErrEntryNotFound)
}

func TestCallCustomer_Success(t *testing.T) {
	queueRepo := new(MockQueueRepository)
	businessRepo := new(MockBusinessRepository)
	service := newQueueTestService(queueRepo, businessRepo)

	businessID := uuid.New()
	entry := testEntry(businessID)
	actor := staffActor(businessID)

	calledEntry := *entry
	now := time.Now()
	calledEntry.Status = entity.StatusCalled
	calledEntry.CalledAt = &now
	calledEntry.CalledBy = &actor.ID

	queueRepo.On("FindByID", mock.Anything, entry.ID).Return(entry, nil)
	queueRepo.On("MarkCalled", mock.Anything, entry.ID, actor.ID, mock.Anything).Return(&calledEntry, nil)

	resp, err := service.CallCustomer(context.Background(), actor, entry.ID.String())

	assert.NoError(t, err)
	assert.Equal(t, entity.StatusCalled, resp.Status)
	assert.NotNil(t, resp.CalledBy)
	assert.Equal(t, actor.ID.String(), *resp.CalledBy)
}

func TestCallCustomer_WrongBusiness(t *testing.T) {
	queueRepo := new(MockQueueRepository)
	businessRepo := new(MockBusinessRepository)
	service := newQueueTestService(queueRepo, businessRepo)

	entry := testEntry(uuid.New())
	actor := staffActor(uuid.New())

	queueRepo.On("FindByID", mock.Anything, entry.ID).Return(entry, nil)

	resp, err := service.CallCustomer(context.Background(), actor, entry.ID.String())

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, entity.ErrAccessDenied)
	queueRepo.AssertNotCalled(t, "MarkCalled", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCallCustomer_AdminAnyBusiness(t *testing.T) {
	queueRepo := new(MockQueueRepository)
	businessRepo := new(MockBusinessRepository)
	service := newQueueTestService(queueRepo, businessRepo)

	entry := testEntry(uuid.New())
	admin := Actor{ID: uuid.New(), Role: entity.RoleAdmin}

	queueRepo.On("FindByID", mock.Anything, entry.ID).Return(entry, nil)
	queueRepo.On("MarkCalled", mock.Anything, entry.ID, admin.ID, mock.Anything).Return(entry, nil)

	_, err := service.CallCustomer(context.Background(), admin, entry.ID.String())

	assert.NoError(t, err)
	queueRepo.AssertExpectations(t)
}

func TestCompleteCustomer_StampsActor(t *testing.T) {
	queueRepo := new(MockQueueRepository)
	businessRepo := new(MockBusinessRepository)
	service := newQueueTestService(queueRepo, businessRepo)

	businessID := uuid.New()
	entry := testEntry(businessID)
	entry.Status = entity.StatusCalled
	actor := staffActor(businessID)

	completedEntry := *entry
	now := time.Now()
	completedEntry.Status = entity.StatusCompleted
	completedEntry.CompletedAt = &now
	completedEntry.CompletedBy = &actor.ID

	queueRepo.On("FindByID", mock.Anything, entry.ID).Return(entry, nil)
	queueRepo.On("MarkCompleted", mock.Anything, entry.ID, actor.ID, mock.Anything).Return(&completedEntry, nil)

	resp, err := service.CompleteCustomer(context.Background(), actor, entry.ID.String())

	assert.NoError(t, err)
	assert.Equal(t, entity.StatusCompleted, resp.Status)
	assert.Equal(t, actor.ID.String(), *resp.CompletedBy)
	// The called stamp survives completion untouched.
	assert.Nil(t, resp.CalledBy)
}

func TestCompleteCustomer_FromWaiting(t *testing.T) {
	queueRepo := new(MockQueueRepository)
	businessRepo := new(MockBusinessRepository)
	service := newQueueTestService(queueRepo, businessRepo)

	businessID := uuid.New()
	entry := testEntry(businessID)
	actor := staffActor(businessID)

	completedEntry := *entry
	now := time.Now()
	completedEntry.Status = entity.StatusCompleted
	completedEntry.CompletedAt = &now
	completedEntry.CompletedBy = &actor.ID

	queueRepo.On("FindByID", mock.Anything, entry.ID).Return(entry, nil)
	queueRepo.On("MarkCompleted", mock.Anything, entry.ID, actor.ID, mock.Anything).Return(&completedEntry, nil)

	// A waiting entry may be completed without ever being called.
	resp, err := service.CompleteCustomer(context.Background(), actor, entry.ID.String())

	assert.NoError(t, err)
	assert.Equal(t, entity.StatusCompleted, resp.Status)
	queueRepo.AssertExpectations(t)
}

func TestCallCustomer_RecallCompleted(t *testing.T) {
	queueRepo := new(MockQueueRepository)
	businessRepo := new(MockBusinessRepository)
	service := newQueueTestService(queueRepo, businessRepo)

	businessID := uuid.New()
	entry := testEntry(businessID)
	actor := staffActor(businessID)

	now := time.Now()
	entry.Status = entity.StatusCompleted
	entry.CompletedAt = &now
	entry.CompletedBy = &actor.ID

	recalledEntry := *entry
	recalledEntry.Status = entity.StatusCalled
	recalledEntry.CalledAt = &now
	recalledEntry.CalledBy = &actor.ID

	queueRepo.On("FindByID", mock.Anything, entry.ID).Return(entry, nil)
	queueRepo.On("MarkCalled", mock.Anything, entry.ID, actor.ID, mock.Anything).Return(&recalledEntry, nil)

	// Completed entries may be called again; the completion stamps stay.
	resp, err := service.CallCustomer(context.Background(), actor, entry.ID.String())

	assert.NoError(t, err)
	assert.Equal(t, entity.StatusCalled, resp.Status)
	assert.NotNil(t, resp.CompletedBy)
	queueRepo.AssertExpectations(t)
}

func TestExtendWait_Bounds(t *testing.T) {
	queueRepo := new(MockQueueRepository)
	businessRepo := new(MockBusinessRepository)
	service := newQueueTestService(queueRepo, businessRepo)

	actor := staffActor(uuid.New())

	for _, minutes := range []int{0, -5, 121} {
		resp, err := service.ExtendWait(context.Background(), actor, uuid.New().String(), &request.ExtendWaitRequest{
			Minutes: minutes,
		})
		assert.Nil(t, resp)
		assert.ErrorIs(t, err, entity.ErrInvalidArgument)
	}
	queueRepo.AssertNotCalled(t, "ExtendWait", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestExtendWait_MaxAllowed(t *testing.T) {
	queueRepo := new(MockQueueRepository)
	businessRepo := new(MockBusinessRepository)
	service := newQueueTestService(queueRepo, businessRepo)

	businessID := uuid.New()
	entry := testEntry(businessID)
	entry.EstimatedWaitTime = 15
	actor := staffActor(businessID)

	extendedEntry := *entry
	extendedEntry.EstimatedWaitTime = 135

	queueRepo.On("FindByID", mock.Anything, entry.ID).Return(entry, nil)
	queueRepo.On("ExtendWait", mock.Anything, entry.ID, 120, actor.ID, mock.Anything).Return(&extendedEntry, nil)

	resp, err := service.ExtendWait(context.Background(), actor, entry.ID.String(), &request.ExtendWaitRequest{
		Minutes: 120,
	})

	assert.NoError(t, err)
	assert.Equal(t, 135, resp.EstimatedWaitTime)
}

func TestUpdatePayment_InvalidStatus(t *testing.T) {
	queueRepo := new(MockQueueRepository)
	businessRepo := new(MockBusinessRepository)
	service := newQueueTestService(queueRepo, businessRepo)

	actor := staffActor(uuid.New())

	resp, err := service.UpdatePayment(context.Background(), actor, uuid.New().String(), &request.UpdatePaymentRequest{
		PaymentStatus: "refunded",
	})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, entity.ErrInvalidArgument)
}

func TestUpdatePayment_Paid(t *testing.T) {
	queueRepo := new(MockQueueRepository)
	businessRepo := new(MockBusinessRepository)
	service := newQueueTestService(queueRepo, businessRepo)

	businessID := uuid.New()
	entry := testEntry(businessID)
	actor := staffActor(businessID)

	paidEntry := *entry
	paidEntry.PaymentStatus = entity.PaymentPaid
	paidEntry.PaymentNotes = "cash"

	queueRepo.On("FindByID", mock.Anything, entry.ID).Return(entry, nil)
	queueRepo.On("SetPayment", mock.Anything, entry.ID, entity.PaymentPaid, actor.ID, "cash", mock.Anything).
		Return(&paidEntry, nil)

	resp, err := service.UpdatePayment(context.Background(), actor, entry.ID.String(), &request.UpdatePaymentRequest{
		PaymentStatus: "paid",
		Notes:         "cash",
	})

	assert.NoError(t, err)
	assert.Equal(t, entity.PaymentPaid, resp.PaymentStatus)
	assert.Equal(t, "cash", resp.PaymentNotes)
	// The queue status is untouched by payment updates.
	assert.Equal(t, entity.StatusWaiting, resp.Status)
}

func TestUpdateEntry_RecomputesOrderTotal(t *testing.T) {
	queueRepo := new(MockQueueRepository)
	businessRepo := new(MockBusinessRepository)
	service := newQueueTestService(queueRepo, businessRepo)

	businessID := uuid.New()
	entry := testEntry(businessID)
	actor := staffActor(businessID)

	queueRepo.On("FindByID", mock.Anything, entry.ID).Return(entry, nil)
	queueRepo.On("UpdateFields", mock.Anything, entry.ID, mock.MatchedBy(func(u repository.QueueEntryUpdate) bool {
		return u.OrderTotal != nil && *u.OrderTotal == 30000.0
	})).Return(entry, nil)

	_, err := service.UpdateEntry(context.Background(), actor, entry.ID.String(), &request.UpdateEntryRequest{
		OrderItems: []request.OrderItemRequest{
			{Name: "Mie Ayam", Price: 15000, Quantity: 2},
		},
	})

	assert.NoError(t, err)
	queueRepo.AssertExpectations(t)
}

func TestRemoveCustomer_ReturnsSnapshot(t *testing.T) {
	queueRepo := new(MockQueueRepository)
	businessRepo := new(MockBusinessRepository)
	service := newQueueTestService(queueRepo, businessRepo)

	businessID := uuid.New()
	entry := testEntry(businessID)
	actor := staffActor(businessID)

	queueRepo.On("FindByID", mock.Anything, entry.ID).Return(entry, nil)
	queueRepo.On("Delete", mock.Anything, entry.ID).Return(entry, nil)

	resp, err := service.RemoveCustomer(context.Background(), actor, entry.ID.String())

	assert.NoError(t, err)
	assert.Equal(t, entry.ID.String(), resp.ID)
	assert.Equal(t, "Alice", resp.CustomerName)
}

func TestGetStats_Fold(t *testing.T) {
	queueRepo := new(MockQueueRepository)
	businessRepo := new(MockBusinessRepository)
	service := newQueueTestService(queueRepo, businessRepo)

	businessID := uuid.New()
	actor := staffActor(businessID)

	waiting := testEntry(businessID)
	waiting.EstimatedWaitTime = 10
	waiting.IsPriority = true

	called := testEntry(businessID)
	called.Status = entity.StatusCalled
	called.EstimatedWaitTime = 20

	completedPaid := testEntry(businessID)
	completedPaid.Status = entity.StatusCompleted
	completedPaid.PaymentStatus = entity.PaymentPaid
	completedPaid.OrderTotal = 50000
	completedPaid.EstimatedWaitTime = 30

	completedUnpaid := testEntry(businessID)
	completedUnpaid.Status = entity.StatusCompleted
	completedUnpaid.OrderTotal = 80000

	queueRepo.On("FindByBusinessID", mock.Anything, businessID, (*entity.QueueStatus)(nil)).
		Return([]*entity.QueueEntry{waiting, called, completedPaid, completedUnpaid}, nil)

	stats, err := service.GetStats(context.Background(), actor, businessID.String())

	assert.NoError(t, err)
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 1, stats.Waiting)
	assert.Equal(t, 1, stats.Called)
	assert.Equal(t, 2, stats.Completed)
	assert.Equal(t, 1, stats.Priority)
	assert.Equal(t, 15.0, stats.AverageWaitTime)
	// Only paid orders count toward revenue.
	assert.Equal(t, 50000.0, stats.TotalRevenue)
}

func TestGetStats_EmptyQueue(t *testing.T) {
	queueRepo := new(MockQueueRepository)
	businessRepo := new(MockBusinessRepository)
	service := newQueueTestService(queueRepo, businessRepo)

	businessID := uuid.New()
	actor := staffActor(businessID)

	queueRepo.On("FindByBusinessID", mock.Anything, businessID, (*entity.QueueStatus)(nil)).
		Return([]*entity.QueueEntry{}, nil)

	stats, err := service.GetStats(context.Background(), actor, businessID.String())

	assert.NoError(t, err)
	assert.Equal(t, 0, stats.Total)
	assert.Equal(t, 0.0, stats.AverageWaitTime)
	assert.Equal(t, 0.0, stats.TotalRevenue)
}

func TestGetStats_WrongBusiness(t *testing.T) {
	queueRepo := new(MockQueueRepository)
	businessRepo := new(MockBusinessRepository)
	service := newQueueTestService(queueRepo, businessRepo)

	actor := staffActor(uuid.New())

	stats, err := service.GetStats(context.Background(), actor, uuid.New().String())

	assert.Nil(t, stats)
	assert.ErrorIs(t, err, entity.ErrAccessDenied)
	queueRepo.AssertNotCalled(t, "FindByBusinessID", mock.Anything, mock.Anything, mock.Anything)
}

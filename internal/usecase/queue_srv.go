package usecase

import (
	"context"
	"fmt"
	"time"

	"walkin-queue/internal/data/entity"
	"walkin-queue/internal/data/repository"
	"walkin-queue/internal/dto/request"
	"walkin-queue/internal/dto/response"
	"walkin-queue/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Actor is the authenticated caller identity resolved by the auth
// middleware. BusinessID is nil for platform admins.
type Actor struct {
	ID         uuid.UUID
	Role       entity.UserRole
	BusinessID *uuid.UUID
}

// CanAccess reports whether the actor may operate on entries of the
// given business: admins always, everyone else only within their own.
func (a Actor) CanAccess(businessID uuid.UUID) bool {
	if a.Role == entity.RoleAdmin {
		return true
	}
	return a.BusinessID != nil && *a.BusinessID == businessID
}

type QueueService interface {
	// Public operations
	Join(ctx context.Context, req *request.JoinQueueRequest) (*response.QueueEntryResponse, error)
	GetQueue(ctx context.Context, businessID string, status *string) ([]response.QueueEntryResponse, error)
	GetCustomerStatus(ctx context.Context, entryID string) (*response.CustomerStatusResponse, error)

	// Staff operations, authorized against the actor's business
	GetEntry(ctx context.Context, actor Actor, entryID string) (*response.QueueEntryResponse, error)
	UpdateEntry(ctx context.Context, actor Actor, entryID string, req *request.UpdateEntryRequest) (*response.QueueEntryResponse, error)
	CallCustomer(ctx context.Context, actor Actor, entryID string) (*response.QueueEntryResponse, error)
	CompleteCustomer(ctx context.Context, actor Actor, entryID string) (*response.QueueEntryResponse, error)
	ExtendWait(ctx context.Context, actor Actor, entryID string, req *request.ExtendWaitRequest) (*response.QueueEntryResponse, error)
	UpdatePayment(ctx context.Context, actor Actor, entryID string, req *request.UpdatePaymentRequest) (*response.QueueEntryResponse, error)
	RemoveCustomer(ctx context.Context, actor Actor, entryID string) (*response.QueueEntryResponse, error)

	GetStats(ctx context.Context, actor Actor, businessID string) (*response.QueueStatsResponse, error)
}

type queueService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewQueueService(repo *repository.Repository, log *zap.Logger) QueueService {
	return &queueService{
		repo: repo,
		log:  log.With(zap.String("service", "queue")),
	}
}

func (s *queueService) Join(ctx context.Context, req *request.JoinQueueRequest) (*response.QueueEntryResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Join queue validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", entity.ErrInvalidArgument, utils.FormatValidationErrors(errs))
	}

	businessID, err := uuid.Parse(req.BusinessID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid business ID", entity.ErrInvalidArgument)
	}

	business, err := s.repo.Business.FindByID(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("resolve business: %w", err)
	}
	if business == nil {
		return nil, entity.ErrBusinessNotFound
	}

	orderItems := make(entity.OrderItems, 0, len(req.OrderItems))
	for _, item := range req.OrderItems {
		menuItemID := uuid.Nil
		if item.MenuItemID != "" {
			menuItemID, _ = uuid.Parse(item.MenuItemID)
		}
		orderItems = append(orderItems, entity.OrderItem{
			MenuItemID: menuItemID,
			Name:       item.Name,
			Price:      item.Price,
			Quantity:   item.Quantity,
		})
	}

	entry := &entity.QueueEntry{
		ID:            uuid.New(),
		BusinessID:    businessID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		OrderItems:    orderItems,
		OrderTotal:    orderItems.Total(),
		IsPriority:    req.IsPriority,
		Status:        entity.StatusWaiting,
		PaymentStatus: entity.PaymentPending,
		JoinedAt:      time.Now(),
	}

	// Capacity and priority quotas are re-checked inside the insert
	// transaction; a rejection leaves no partial state behind.
	if err := s.repo.Queue.InsertWithCapacity(ctx, entry, business.Policy); err != nil {
		if err == entity.ErrQueueFull || err == entity.ErrPrioritySlotsFull {
			s.log.Info("Join rejected",
				zap.String("business_id", businessID.String()),
				zap.Bool("is_priority", req.IsPriority),
				zap.String("reason", err.Error()),
			)
			return nil, err
		}
		s.log.Error("Failed to admit customer",
			zap.Error(err),
			zap.String("business_id", businessID.String()),
		)
		return nil, fmt.Errorf("admit customer: %w", err)
	}

	s.log.Info("Customer joined queue",
		zap.String("entry_id", entry.ID.String()),
		zap.String("business_id", businessID.String()),
		zap.String("customer_name", entry.CustomerName),
		zap.Bool("is_priority", entry.IsPriority),
		zap.Float64("order_total", entry.OrderTotal),
	)

	resp := response.QueueEntryToResponse(entry)
	return &resp, nil
}

func (s *queueService) GetQueue(ctx context.Context, businessID string, status *string) ([]response.QueueEntryResponse, error) {
	businessUUID, err := uuid.Parse(businessID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid business ID", entity.ErrInvalidArgument)
	}

	var statusFilter *entity.QueueStatus
	if status != nil && *status != "" {
		qs := entity.QueueStatus(*status)
		statusFilter = &qs
	}

	entries, err := s.repo.Queue.FindByBusinessID(ctx, businessUUID, statusFilter)
	if err != nil {
		s.log.Error("Failed to get queue",
			zap.Error(err),
			zap.String("business_id", businessID),
		)
		return nil, fmt.Errorf("get queue: %w", err)
	}

	responses := make([]response.QueueEntryResponse, len(entries))
	for i, e := range entries {
		responses[i] = response.QueueEntryToResponse(e)
	}

	return responses, nil
}

func (s *queueService) GetCustomerStatus(ctx context.Context, entryID string) (*response.CustomerStatusResponse, error) {
	entryUUID, err := uuid.Parse(entryID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid entry ID", entity.ErrInvalidArgument)
	}

	entry, err := s.repo.Queue.FindByID(ctx, entryUUID)
	if err != nil {
		return nil, fmt.Errorf("find entry: %w", err)
	}
	if entry == nil {
		return nil, entity.ErrEntryNotFound
	}

	// Position is the 1-based rank among waiting entries ordered by join
	// time. Priority gates admission only; it does not reorder serving.
	waiting := entity.StatusWaiting
	waitingEntries, err := s.repo.Queue.FindByBusinessID(ctx, entry.BusinessID, &waiting)
	if err != nil {
		s.log.Error("Failed to compute queue position",
			zap.Error(err),
			zap.String("entry_id", entryID),
		)
		return nil, fmt.Errorf("compute position: %w", err)
	}

	var position *int
	for i, e := range waitingEntries {
		if e.ID == entry.ID {
			p := i + 1
			position = &p
			break
		}
	}

	resp := &response.CustomerStatusResponse{
		QueueEntryResponse: response.QueueEntryToResponse(entry),
		Position:           position,
		QueueLength:        len(waitingEntries),
	}

	return resp, nil
}

// loadEntryForActor fetches the entry and enforces the gateway
// invariant: admin role or same business, otherwise ErrAccessDenied.
func (s *queueService) loadEntryForActor(ctx context.Context, actor Actor, entryID string) (*entity.QueueEntry, error) {
	entryUUID, err := uuid.Parse(entryID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid entry ID", entity.ErrInvalidArgument)
	}

	entry, err := s.repo.Queue.FindByID(ctx, entryUUID)
	if err != nil {
		return nil, fmt.Errorf("find entry: %w", err)
	}
	if entry == nil {
		return nil, entity.ErrEntryNotFound
	}

	if !actor.CanAccess(entry.BusinessID) {
		s.log.Warn("Staff access denied to queue entry",
			zap.String("entry_id", entryID),
			zap.String("actor_id", actor.ID.String()),
			zap.String("actor_role", string(actor.Role)),
		)
		return nil, entity.ErrAccessDenied
	}

	return entry, nil
}

func (s *queueService) GetEntry(ctx context.Context, actor Actor, entryID string) (*response.QueueEntryResponse, error) {
	entry, err := s.loadEntryForActor(ctx, actor, entryID)
	if err != nil {
		return nil, err
	}

	resp := response.QueueEntryToResponse(entry)
	return &resp, nil
}

func (s *queueService) UpdateEntry(ctx context.Context, actor Actor, entryID string, req *request.UpdateEntryRequest) (*response.QueueEntryResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", entity.ErrInvalidArgument, utils.FormatValidationErrors(errs))
	}

	entry, err := s.loadEntryForActor(ctx, actor, entryID)
	if err != nil {
		return nil, err
	}

	update := repository.QueueEntryUpdate{
		CustomerName:      req.CustomerName,
		CustomerPhone:     req.CustomerPhone,
		CustomerEmail:     req.CustomerEmail,
		EstimatedWaitTime: req.EstimatedWaitTime,
	}

	// Order total is recomputed whenever items change.
	if req.OrderItems != nil {
		items := make(entity.OrderItems, 0, len(req.OrderItems))
		for _, item := range req.OrderItems {
			menuItemID := uuid.Nil
			if item.MenuItemID != "" {
				menuItemID, _ = uuid.Parse(item.MenuItemID)
			}
			items = append(items, entity.OrderItem{
				MenuItemID: menuItemID,
				Name:       item.Name,
				Price:      item.Price,
				Quantity:   item.Quantity,
			})
		}
		total := items.Total()
		update.OrderItems = items
		update.OrderTotal = &total
	}

	updated, err := s.repo.Queue.UpdateFields(ctx, entry.ID, update)
	if err != nil {
		s.log.Error("Failed to update queue entry",
			zap.Error(err),
			zap.String("entry_id", entryID),
		)
		return nil, fmt.Errorf("update entry: %w", err)
	}
	if updated == nil {
		return nil, entity.ErrEntryNotFound
	}

	s.log.Info("Queue entry updated",
		zap.String("entry_id", entryID),
		zap.String("actor_id", actor.ID.String()),
	)

	resp := response.QueueEntryToResponse(updated)
	return &resp, nil
}

func (s *queueService) CallCustomer(ctx context.Context, actor Actor, entryID string) (*response.QueueEntryResponse, error) {
	entry, err := s.loadEntryForActor(ctx, actor, entryID)
	if err != nil {
		return nil, err
	}

	// No precondition on current status: staff may re-call an already
	// called or completed entry.
	updated, err := s.repo.Queue.MarkCalled(ctx, entry.ID, actor.ID, time.Now())
	if err != nil {
		s.log.Error("Failed to call customer",
			zap.Error(err),
			zap.String("entry_id", entryID),
		)
		return nil, fmt.Errorf("call customer: %w", err)
	}
	if updated == nil {
		return nil, entity.ErrEntryNotFound
	}

	s.log.Info("Customer called",
		zap.String("entry_id", entryID),
		zap.String("called_by", actor.ID.String()),
	)

	resp := response.QueueEntryToResponse(updated)
	return &resp, nil
}

func (s *queueService) CompleteCustomer(ctx context.Context, actor Actor, entryID string) (*response.QueueEntryResponse, error) {
	entry, err := s.loadEntryForActor(ctx, actor, entryID)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.Queue.MarkCompleted(ctx, entry.ID, actor.ID, time.Now())
	if err != nil {
		s.log.Error("Failed to complete customer service",
			zap.Error(err),
			zap.String("entry_id", entryID),
		)
		return nil, fmt.Errorf("complete customer: %w", err)
	}
	if updated == nil {
		return nil, entity.ErrEntryNotFound
	}

	s.log.Info("Customer service completed",
		zap.String("entry_id", entryID),
		zap.String("completed_by", actor.ID.String()),
	)

	resp := response.QueueEntryToResponse(updated)
	return &resp, nil
}

func (s *queueService) ExtendWait(ctx context.Context, actor Actor, entryID string, req *request.ExtendWaitRequest) (*response.QueueEntryResponse, error) {
	if req.Minutes < 1 || req.Minutes > 120 {
		return nil, fmt.Errorf("%w: minutes must be between 1 and 120", entity.ErrInvalidArgument)
	}

	entry, err := s.loadEntryForActor(ctx, actor, entryID)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.Queue.ExtendWait(ctx, entry.ID, req.Minutes, actor.ID, time.Now())
	if err != nil {
		s.log.Error("Failed to extend wait time",
			zap.Error(err),
			zap.String("entry_id", entryID),
			zap.Int("minutes", req.Minutes),
		)
		return nil, fmt.Errorf("extend wait time: %w", err)
	}
	if updated == nil {
		return nil, entity.ErrEntryNotFound
	}

	s.log.Info("Customer wait time extended",
		zap.String("entry_id", entryID),
		zap.Int("minutes", req.Minutes),
		zap.String("extended_by", actor.ID.String()),
	)

	resp := response.QueueEntryToResponse(updated)
	return &resp, nil
}

func (s *queueService) UpdatePayment(ctx context.Context, actor Actor, entryID string, req *request.UpdatePaymentRequest) (*response.QueueEntryResponse, error) {
	status := entity.PaymentStatus(req.PaymentStatus)
	if !entity.ValidPaymentStatus(status) {
		return nil, fmt.Errorf("%w: payment status must be pending, paid, or cancelled", entity.ErrInvalidArgument)
	}

	entry, err := s.loadEntryForActor(ctx, actor, entryID)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.Queue.SetPayment(ctx, entry.ID, status, actor.ID, req.Notes, time.Now())
	if err != nil {
		s.log.Error("Failed to update payment status",
			zap.Error(err),
			zap.String("entry_id", entryID),
			zap.String("payment_status", req.PaymentStatus),
		)
		return nil, fmt.Errorf("update payment status: %w", err)
	}
	if updated == nil {
		return nil, entity.ErrEntryNotFound
	}

	s.log.Info("Payment status updated",
		zap.String("entry_id", entryID),
		zap.String("payment_status", req.PaymentStatus),
		zap.String("updated_by", actor.ID.String()),
	)

	resp := response.QueueEntryToResponse(updated)
	return &resp, nil
}

func (s *queueService) RemoveCustomer(ctx context.Context, actor Actor, entryID string) (*response.QueueEntryResponse, error) {
	entry, err := s.loadEntryForActor(ctx, actor, entryID)
	if err != nil {
		return nil, err
	}

	removed, err := s.repo.Queue.Delete(ctx, entry.ID)
	if err != nil {
		s.log.Error("Failed to remove customer from queue",
			zap.Error(err),
			zap.String("entry_id", entryID),
		)
		return nil, fmt.Errorf("remove customer: %w", err)
	}
	if removed == nil {
		return nil, entity.ErrEntryNotFound
	}

	s.log.Info("Customer removed from queue",
		zap.String("entry_id", entryID),
		zap.String("removed_by", actor.ID.String()),
	)

	resp := response.QueueEntryToResponse(removed)
	return &resp, nil
}

func (s *queueService) GetStats(ctx context.Context, actor Actor, businessID string) (*response.QueueStatsResponse, error) {
	businessUUID, err := uuid.Parse(businessID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid business ID", entity.ErrInvalidArgument)
	}

	if !actor.CanAccess(businessUUID) {
		return nil, entity.ErrAccessDenied
	}

	entries, err := s.repo.Queue.FindByBusinessID(ctx, businessUUID, nil)
	if err != nil {
		s.log.Error("Failed to get queue stats",
			zap.Error(err),
			zap.String("business_id", businessID),
		)
		return nil, fmt.Errorf("get queue stats: %w", err)
	}

	stats := &response.QueueStatsResponse{Total: len(entries)}

	totalWait := 0
	for _, e := range entries {
		switch e.Status {
		case entity.StatusWaiting:
			stats.Waiting++
		case entity.StatusCalled:
			stats.Called++
		case entity.StatusCompleted:
			stats.Completed++
		}
		if e.IsPriority {
			stats.Priority++
		}
		totalWait += e.EstimatedWaitTime
		if e.PaymentStatus == entity.PaymentPaid {
			stats.TotalRevenue += e.OrderTotal
		}
	}

	if len(entries) > 0 {
		stats.AverageWaitTime = float64(totalWait) / float64(len(entries))
	}

	return stats, nil
}

package adaptor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"walkin-queue/internal/data/entity"
	"walkin-queue/internal/dto/request"
	"walkin-queue/internal/dto/response"
	"walkin-queue/internal/usecase"
	"walkin-queue/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// MockQueueService is a mock implementation of usecase.QueueService
type MockQueueService struct {
	mock.Mock
}

func (m *MockQueueService) Join(ctx context.Context, req *request.JoinQueueRequest) (*response.QueueEntryResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.QueueEntryResponse), args.Error(1)
}

func (m *MockQueueService) GetQueue(ctx context.Context, businessID string, status *string) ([]response.QueueEntryResponse, error) {
	args := m.Called(ctx, businessID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]response.QueueEntryResponse), args.Error(1)
}

func (m *MockQueueService) GetCustomerStatus(ctx context.Context, entryID string) (*response.CustomerStatusResponse, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.CustomerStatusResponse), args.Error(1)
}

func (m *MockQueueService) GetEntry(ctx context.Context, actor usecase.Actor, entryID string) (*response.QueueEntryResponse, error) {
	args := m.Called(ctx, actor, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.QueueEntryResponse), args.Error(1)
}

func (m *MockQueueService) UpdateEntry(ctx context.Context, actor usecase.Actor, entryID string, req *request.UpdateEntryRequest) (*response.QueueEntryResponse, error) {
	args := m.Called(ctx, actor, entryID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.QueueEntryResponse), args.Error(1)
}

func (m *MockQueueService) CallCustomer(ctx context.Context, actor usecase.Actor, entryID string) (*response.QueueEntryResponse, error) {
	args := m.Called(ctx, actor, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.QueueEntryResponse), args.Error(1)
}

func (m *MockQueueService) CompleteCustomer(ctx context.Context, actor usecase.Actor, entryID string) (*response.QueueEntryResponse, error) {
	args := m.Called(ctx, actor, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.QueueEntryResponse), args.Error(1)
}

func (m *MockQueueService) ExtendWait(ctx context.Context, actor usecase.Actor, entryID string, req *request.ExtendWaitRequest) (*response.QueueEntryResponse, error) {
	args := m.Called(ctx, actor, entryID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.QueueEntryResponse), args.Error(1)
}

func (m *MockQueueService) UpdatePayment(ctx context.Context, actor usecase.Actor, entryID string, req *request.UpdatePaymentRequest) (*response.QueueEntryResponse, error) {
	args := m.Called(ctx, actor, entryID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.QueueEntryResponse), args.Error(1)
}

func (m *MockQueueService) RemoveCustomer(ctx context.Context, actor usecase.Actor, entryID string) (*response.QueueEntryResponse, error) {
	args := m.Called(ctx, actor, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.QueueEntryResponse), args.Error(1)
}

func (m *MockQueueService) GetStats(ctx context.Context, actor usecase.Actor, businessID string) (*response.QueueStatsResponse, error) {
	args := m.Called(ctx, actor, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.QueueStatsResponse), args.Error(1)
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) utils.Response {
	t.Helper()
	var resp utils.Response
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestJoinQueueHandler_Created(t *testing.T) {
	service := new(MockQueueService)
	handler := NewQueueHandler(service, zap.NewNop())

	entry := &response.QueueEntryResponse{
		ID:           uuid.New().String(),
		CustomerName: "Alice",
		Status:       entity.StatusWaiting,
	}
	service.On("Join", mock.Anything, mock.MatchedBy(func(req *request.JoinQueueRequest) bool {
		return req.CustomerName == "Alice"
	})).Return(entry, nil)

	body := `{"businessId":"` + uuid.New().String() + `","customerName":"Alice"}`
	req := httptest.NewRequest(http.MethodPost, "/api/queue/join", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.JoinQueue(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Status)
}

func TestJoinQueueHandler_QueueFull(t *testing.T) {
	service := new(MockQueueService)
	handler := NewQueueHandler(service, zap.NewNop())

	service.On("Join", mock.Anything, mock.Anything).Return(nil, entity.ErrQueueFull)

	body := `{"businessId":"` + uuid.New().String() + `","customerName":"Bob"}`
	req := httptest.NewRequest(http.MethodPost, "/api/queue/join", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.JoinQueue(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Status)
	assert.Contains(t, resp.Message, "full")
}

func TestJoinQueueHandler_InvalidBody(t *testing.T) {
	service := new(MockQueueService)
	handler := NewQueueHandler(service, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/queue/join", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	handler.JoinQueue(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	service.AssertNotCalled(t, "Join", mock.Anything, mock.Anything)
}

func TestJoinQueueHandler_ValidationFailed(t *testing.T) {
	service := new(MockQueueService)
	handler := NewQueueHandler(service, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/queue/join", strings.NewReader(`{"businessId":""}`))
	rec := httptest.NewRecorder()

	handler.JoinQueue(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	service.AssertNotCalled(t, "Join", mock.Anything, mock.Anything)
}

func TestCallCustomerHandler_RequiresAuth(t *testing.T) {
	service := new(MockQueueService)
	handler := NewQueueHandler(service, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/queue/abc/call", nil)
	rec := httptest.NewRecorder()

	handler.CallCustomer(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	service.AssertNotCalled(t, "CallCustomer", mock.Anything, mock.Anything, mock.Anything)
}

func TestCallCustomerHandler_NotFound(t *testing.T) {
	service := new(MockQueueService)
	handler := NewQueueHandler(service, zap.NewNop())

	service.On("CallCustomer", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, entity.ErrEntryNotFound)

	req := httptest.NewRequest(http.MethodPost, "/api/queue/abc/call", nil)
	req = req.WithContext(utils.SetUserContext(req.Context(), uuid.New(), "staff", nil))
	rec := httptest.NewRecorder()

	handler.CallCustomer(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCallCustomerHandler_AccessDenied(t *testing.T) {
	service := new(MockQueueService)
	handler := NewQueueHandler(service, zap.NewNop())

	service.On("CallCustomer", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, entity.ErrAccessDenied)

	req := httptest.NewRequest(http.MethodPost, "/api/queue/abc/call", nil)
	req = req.WithContext(utils.SetUserContext(req.Context(), uuid.New(), "staff", nil))
	rec := httptest.NewRecorder()

	handler.CallCustomer(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestActorFromContext_CarriesBusinessID(t *testing.T) {
	userID := uuid.New()
	businessID := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(utils.SetUserContext(req.Context(), userID, "business", &businessID))

	actor, ok := actorFromContext(req)

	assert.True(t, ok)
	assert.Equal(t, userID, actor.ID)
	assert.Equal(t, entity.RoleBusiness, actor.Role)
	assert.NotNil(t, actor.BusinessID)
	assert.Equal(t, businessID, *actor.BusinessID)
}

func TestActorFromContext_NoIdentity(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := actorFromContext(req)

	assert.False(t, ok)
}

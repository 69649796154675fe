package usecase

import (
	"context"
	"path/filepath"
	"testing"

	"walkin-queue/internal/data/entity"
	"walkin-queue/internal/data/repository"
	"walkin-queue/internal/dto/request"
	"walkin-queue/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newBusinessTestService(businessRepo *MockBusinessRepository, config *utils.Config) BusinessService {
	repo := &repository.Repository{
		Business: businessRepo,
	}
	if config == nil {
		config = &utils.Config{}
	}
	return NewBusinessService(repo, config, zap.NewNop())
}

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func TestUpdateSettings_MergesProvidedFields(t *testing.T) {
	businessRepo := new(MockBusinessRepository)
	service := newBusinessTestService(businessRepo, nil)

	business := testBusiness()
	owner := Actor{ID: uuid.New(), Role: entity.RoleBusiness, BusinessID: &business.ID}
	business.OwnerID = owner.ID

	businessRepo.On("FindByID", mock.Anything, business.ID).Return(business, nil)
	businessRepo.On("UpdatePolicy", mock.Anything, business.ID, mock.MatchedBy(func(p entity.QueuePolicy) bool {
		return p.MaxQueueLength == 30 &&
			p.ReservedPrioritySlots == business.Policy.ReservedPrioritySlots &&
			p.AutoWaitTimes == false
	})).Return(nil)

	policy, err := service.UpdateSettings(context.Background(), owner, business.ID.String(), &request.UpdateSettingsRequest{
		MaxQueueLength: intPtr(30),
		AutoWaitTimes:  boolPtr(false),
	})

	assert.NoError(t, err)
	assert.Equal(t, 30, policy.MaxQueueLength)
	// Untouched fields keep their stored values.
	assert.Equal(t, 10, policy.ReservedPrioritySlots)
	businessRepo.AssertExpectations(t)
}

func TestUpdateSettings_NotOwner(t *testing.T) {
	businessRepo := new(MockBusinessRepository)
	service := newBusinessTestService(businessRepo, nil)

	business := testBusiness()
	business.OwnerID = uuid.New()
	stranger := Actor{ID: uuid.New(), Role: entity.RoleBusiness}

	businessRepo.On("FindByID", mock.Anything, business.ID).Return(business, nil)

	policy, err := service.UpdateSettings(context.Background(), stranger, business.ID.String(), &request.UpdateSettingsRequest{
		MaxQueueLength: intPtr(10),
	})

	assert.Nil(t, policy)
	assert.ErrorIs(t, err, entity.ErrAccessDenied)
	businessRepo.AssertNotCalled(t, "UpdatePolicy", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateSettings_RejectsZeroQueueLength(t *testing.T) {
	businessRepo := new(MockBusinessRepository)
	service := newBusinessTestService(businessRepo, nil)

	owner := Actor{ID: uuid.New(), Role: entity.RoleBusiness}

	policy, err := service.UpdateSettings(context.Background(), owner, uuid.New().String(), &request.UpdateSettingsRequest{
		MaxQueueLength: intPtr(0),
	})

	assert.Nil(t, policy)
	assert.ErrorIs(t, err, entity.ErrInvalidArgument)
}

func TestListBusinesses_AdminOnly(t *testing.T) {
	businessRepo := new(MockBusinessRepository)
	service := newBusinessTestService(businessRepo, nil)

	owner := Actor{ID: uuid.New(), Role: entity.RoleBusiness}

	businesses, err := service.ListBusinesses(context.Background(), owner)

	assert.Nil(t, businesses)
	assert.ErrorIs(t, err, entity.ErrAccessDenied)
	businessRepo.AssertNotCalled(t, "FindAll", mock.Anything)
}

func TestGetPublicBusiness_NotFound(t *testing.T) {
	businessRepo := new(MockBusinessRepository)
	service := newBusinessTestService(businessRepo, nil)

	businessRepo.On("FindBySlug", mock.Anything, "no-such-cafe").Return(nil, nil)

	resp, err := service.GetPublicBusiness(context.Background(), "no-such-cafe")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, entity.ErrBusinessNotFound)
}

func TestGetPublicQRCode_GeneratesAndStoresURL(t *testing.T) {
	businessRepo := new(MockBusinessRepository)
	config := &utils.Config{
		QR: utils.QRConfig{
			UploadDir:   filepath.Join(t.TempDir(), "qrcodes"),
			APIBaseURL:  "http://localhost:8080",
			FrontendURL: "http://localhost:8100",
		},
	}
	service := newBusinessTestService(businessRepo, config)

	business := testBusiness()
	expectedURL := "http://localhost:8080/uploads/qrcodes/" + business.ID.String() + ".png"

	businessRepo.On("FindBySlug", mock.Anything, business.Slug).Return(business, nil)
	businessRepo.On("UpdateQRURL", mock.Anything, business.ID, expectedURL).Return(nil)

	resp, err := service.GetPublicQRCode(context.Background(), business.Slug)

	assert.NoError(t, err)
	assert.Equal(t, expectedURL, resp.URL)
	businessRepo.AssertExpectations(t)
}

package usecase

import (
	"walkin-queue/internal/data/repository"
	"walkin-queue/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	Business BusinessService
	Queue    QueueService
	Staff    StaffService
	Menu     MenuService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:     NewAuthService(repo, config, log),
		Business: NewBusinessService(repo, config, log),
		Queue:    NewQueueService(repo, log),
		Staff:    NewStaffService(repo, log),
		Menu:     NewMenuService(repo, log),
	}
}

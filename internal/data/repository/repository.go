package repository

import (
	"walkin-queue/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User     UserRepository
	Business BusinessRepository
	Queue    QueueRepository
	Staff    StaffRepository
	Menu     MenuRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Business: NewBusinessRepository(db, log),
		Queue:    NewQueueRepository(db, log),
		Staff:    NewStaffRepository(db, log),
		Menu:     NewMenuRepository(db, log),
	}
}

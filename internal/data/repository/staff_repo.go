package repository

import (
	"context"
	"fmt"

	"walkin-queue/internal/data/entity"
	"walkin-queue/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type StaffRepository interface {
	Create(ctx context.Context, staff *entity.StaffMember) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.StaffMember, error)
	FindByBusinessID(ctx context.Context, businessID uuid.UUID) ([]*entity.StaffMember, error)
	Update(ctx context.Context, staff *entity.StaffMember) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type staffRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewStaffRepository(db database.PgxIface, log *zap.Logger) StaffRepository {
	return &staffRepository{
		db:  db,
		log: log.With(zap.String("repository", "staff")),
	}
}

const staffColumns = `id, business_id, name, email, role, status, last_active, created_at, updated_at`

func scanStaff(row rowScanner) (*entity.StaffMember, error) {
	var s entity.StaffMember
	err := row.Scan(
		&s.ID,
		&s.BusinessID,
		&s.Name,
		&s.Email,
		&s.Role,
		&s.Status,
		&s.LastActive,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *staffRepository) Create(ctx context.Context, staff *entity.StaffMember) error {
	query := `
		INSERT INTO staff_members (id, business_id, name, email, role, status, last_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		staff.ID,
		staff.BusinessID,
		staff.Name,
		staff.Email,
		staff.Role,
		staff.Status,
		staff.LastActive,
		staff.CreatedAt,
		staff.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create staff member",
			zap.Error(err),
			zap.String("email", staff.Email),
			zap.String("business_id", staff.BusinessID.String()),
		)
		return fmt.Errorf("create staff member %s: %w", staff.Email, err)
	}

	return nil
}

func (r *staffRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.StaffMember, error) {
	query := `SELECT ` + staffColumns + ` FROM staff_members WHERE id = $1`

	s, err := scanStaff(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find staff member by ID",
			zap.Error(err),
			zap.String("staff_id", id.String()),
		)
		return nil, fmt.Errorf("find staff member by ID %s: %w", id.String(), err)
	}

	return s, nil
}

func (r *staffRepository) FindByBusinessID(ctx context.Context, businessID uuid.UUID) ([]*entity.StaffMember, error) {
	query := `SELECT ` + staffColumns + ` FROM staff_members WHERE business_id = $1 ORDER BY name`

	rows, err := r.db.Query(ctx, query, businessID)
	if err != nil {
		r.log.Error("Failed to find staff by business ID",
			zap.Error(err),
			zap.String("business_id", businessID.String()),
		)
		return nil, fmt.Errorf("find staff by business ID %s: %w", businessID.String(), err)
	}
	defer rows.Close()

	var staff []*entity.StaffMember
	for rows.Next() {
		s, err := scanStaff(rows)
		if err != nil {
			r.log.Error("Failed to scan staff row", zap.Error(err))
			return nil, fmt.Errorf("scan staff row: %w", err)
		}
		staff = append(staff, s)
	}

	return staff, nil
}

func (r *staffRepository) Update(ctx context.Context, staff *entity.StaffMember) error {
	query := `
		UPDATE staff_members
		SET name = $2, email = $3, role = $4, status = $5, last_active = $6, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		staff.ID,
		staff.Name,
		staff.Email,
		staff.Role,
		staff.Status,
		staff.LastActive,
	)
	if err != nil {
		r.log.Error("Failed to update staff member",
			zap.Error(err),
			zap.String("staff_id", staff.ID.String()),
		)
		return fmt.Errorf("update staff member %s: %w", staff.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("staff member %s not found", staff.ID.String())
	}

	return nil
}

func (r *staffRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM staff_members WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete staff member",
			zap.Error(err),
			zap.String("staff_id", id.String()),
		)
		return fmt.Errorf("delete staff member %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("staff member %s not found", id.String())
	}

	r.log.Info("Staff member deleted", zap.String("staff_id", id.String()))
	return nil
}

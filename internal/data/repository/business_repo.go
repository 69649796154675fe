package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"walkin-queue/internal/data/entity"
	"walkin-queue/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BusinessRepository interface {
	Create(ctx context.Context, business *entity.Business) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Business, error)
	FindByPhone(ctx context.Context, phone string) (*entity.Business, error)
	FindAll(ctx context.Context) ([]*entity.Business, error)
	UpdatePolicy(ctx context.Context, id uuid.UUID, policy entity.QueuePolicy) error
	UpdateQRURL(ctx context.Context, id uuid.UUID, url string) error
}

type businessRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBusinessRepository(db database.PgxIface, log *zap.Logger) BusinessRepository {
	return &businessRepository{
		db:  db,
		log: log.With(zap.String("repository", "business")),
	}
}

const businessColumns = `id, owner_id, name, slug, type, email, phone, address, qr_code_url, settings, created_at, updated_at`

func scanBusiness(row rowScanner) (*entity.Business, error) {
	var b entity.Business
	var settings []byte

	err := row.Scan(
		&b.ID,
		&b.OwnerID,
		&b.Name,
		&b.Slug,
		&b.Type,
		&b.Email,
		&b.Phone,
		&b.Address,
		&b.QRURL,
		&settings,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(settings) > 0 {
		if err := json.Unmarshal(settings, &b.Policy); err != nil {
			return nil, fmt.Errorf("decode settings for business %s: %w", b.ID.String(), err)
		}
	}

	return &b, nil
}

func (r *businessRepository) Create(ctx context.Context, business *entity.Business) error {
	settings, err := json.Marshal(business.Policy)
	if err != nil {
		return fmt.Errorf("encode business settings: %w", err)
	}

	query := `
		INSERT INTO businesses (id, owner_id, name, slug, type, email, phone, address, settings, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err = r.db.Exec(ctx, query,
		business.ID,
		business.OwnerID,
		business.Name,
		business.Slug,
		business.Type,
		business.Email,
		business.Phone,
		business.Address,
		settings,
		business.CreatedAt,
		business.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create business",
			zap.Error(err),
			zap.String("name", business.Name),
			zap.String("slug", business.Slug),
		)
		return fmt.Errorf("create business %s: %w", business.Slug, err)
	}

	return nil
}

func (r *businessRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE id = $1`

	b, err := scanBusiness(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find business by ID",
			zap.Error(err),
			zap.String("business_id", id.String()),
		)
		return nil, fmt.Errorf("find business by ID %s: %w", id.String(), err)
	}

	return b, nil
}

func (r *businessRepository) FindBySlug(ctx context.Context, slug string) (*entity.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE slug = $1`

	b, err := scanBusiness(r.db.QueryRow(ctx, query, slug))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find business by slug",
			zap.Error(err),
			zap.String("slug", slug),
		)
		return nil, fmt.Errorf("find business by slug %s: %w", slug, err)
	}

	return b, nil
}

func (r *businessRepository) FindByPhone(ctx context.Context, phone string) (*entity.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE phone = $1`

	b, err := scanBusiness(r.db.QueryRow(ctx, query, phone))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find business by phone",
			zap.Error(err),
			zap.String("phone", phone),
		)
		return nil, fmt.Errorf("find business by phone %s: %w", phone, err)
	}

	return b, nil
}

func (r *businessRepository) FindAll(ctx context.Context) ([]*entity.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list businesses", zap.Error(err))
		return nil, fmt.Errorf("list businesses: %w", err)
	}
	defer rows.Close()

	var businesses []*entity.Business
	for rows.Next() {
		b, err := scanBusiness(rows)
		if err != nil {
			r.log.Error("Failed to scan business row", zap.Error(err))
			return nil, fmt.Errorf("scan business row: %w", err)
		}
		businesses = append(businesses, b)
	}

	return businesses, nil
}

func (r *businessRepository) UpdatePolicy(ctx context.Context, id uuid.UUID, policy entity.QueuePolicy) error {
	settings, err := json.Marshal(policy)
	if err != nil {
		return fmt.Errorf("encode business settings: %w", err)
	}

	query := `UPDATE businesses SET settings = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, settings)
	if err != nil {
		r.log.Error("Failed to update business settings",
			zap.Error(err),
			zap.String("business_id", id.String()),
		)
		return fmt.Errorf("update business %s settings: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("business %s not found", id.String())
	}

	return nil
}

func (r *businessRepository) UpdateQRURL(ctx context.Context, id uuid.UUID, url string) error {
	query := `UPDATE businesses SET qr_code_url = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, url)
	if err != nil {
		r.log.Error("Failed to update business QR URL",
			zap.Error(err),
			zap.String("business_id", id.String()),
		)
		return fmt.Errorf("update business %s QR URL: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("business %s not found", id.String())
	}

	return nil
}

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

type MenuRepository interface {
	Create(ctx context.Context, item *entity.MenuItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error)
	FindByBusinessID(ctx context.Context, businessID uuid.UUID, category *string) ([]*entity.MenuItem, error)
	FindCategories(ctx context.Context, businessID uuid.UUID) ([]string, error)
	Update(ctx context.Context, item *entity.MenuItem) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type menuRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMenuRepository(db database.PgxIface, log *zap.Logger) MenuRepository {
	return &menuRepository{
		db:  db,
		log: log.With(zap.String("repository", "menu")),
	}
}

const menuColumns = `id, business_id, name, description, category, price, available, created_at, updated_at`

func scanMenuItem(row rowScanner) (*entity.MenuItem, error) {
	var m entity.MenuItem
	err := row.Scan(
		&m.ID,
		&m.BusinessID,
		&m.Name,
		&m.Description,
		&m.Category,
		&m.Price,
		&m.Available,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *menuRepository) Create(ctx context.Context, item *entity.MenuItem) error {
	query := `
		INSERT INTO menu_items (id, business_id, name, description, category, price, available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		item.ID,
		item.BusinessID,
		item.Name,
		item.Description,
		item.Category,
		item.Price,
		item.Available,
		item.CreatedAt,
		item.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create menu item",
			zap.Error(err),
			zap.String("name", item.Name),
			zap.String("business_id", item.BusinessID.String()),
		)
		return fmt.Errorf("create menu item %s: %w", item.Name, err)
	}

	return nil
}

func (r *menuRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	query := `SELECT ` + menuColumns + ` FROM menu_items WHERE id = $1`

	m, err := scanMenuItem(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find menu item by ID",
			zap.Error(err),
			zap.String("menu_item_id", id.String()),
		)
		return nil, fmt.Errorf("find menu item by ID %s: %w", id.String(), err)
	}

	return m, nil
}

func (r *menuRepository) FindByBusinessID(ctx context.Context, businessID uuid.UUID, category *string) ([]*entity.MenuItem, error) {
	query := `SELECT ` + menuColumns + ` FROM menu_items WHERE business_id = $1`
	args := []any{businessID}

	if category != nil {
		query += ` AND category = $2`
		args = append(args, *category)
	}
	query += ` ORDER BY category, name`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find menu items by business ID",
			zap.Error(err),
			zap.String("business_id", businessID.String()),
		)
		return nil, fmt.Errorf("find menu items by business ID %s: %w", businessID.String(), err)
	}
	defer rows.Close()

	var items []*entity.MenuItem
	for rows.Next() {
		m, err := scanMenuItem(rows)
		if err != nil {
			r.log.Error("Failed to scan menu item row", zap.Error(err))
			return nil, fmt.Errorf("scan menu item row: %w", err)
		}
		items = append(items, m)
	}

	return items, nil
}

func (r *menuRepository) FindCategories(ctx context.Context, businessID uuid.UUID) ([]string, error) {
	query := `SELECT DISTINCT category FROM menu_items WHERE business_id = $1 ORDER BY category`

	rows, err := r.db.Query(ctx, query, businessID)
	if err != nil {
		r.log.Error("Failed to find menu categories",
			zap.Error(err),
			zap.String("business_id", businessID.String()),
		)
		return nil, fmt.Errorf("find menu categories for business %s: %w", businessID.String(), err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, fmt.Errorf("scan category row: %w", err)
		}
		categories = append(categories, category)
	}

	return categories, nil
}

func (r *menuRepository) Update(ctx context.Context, item *entity.MenuItem) error {
	query := `
		UPDATE menu_items
		SET name = $2, description = $3, category = $4, price = $5, available = $6, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		item.ID,
		item.Name,
		item.Description,
		item.Category,
		item.Price,
		item.Available,
	)
	if err != nil {
		r.log.Error("Failed to update menu item",
			zap.Error(err),
			zap.String("menu_item_id", item.ID.String()),
		)
		return fmt.Errorf("update menu item %s: %w", item.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("menu item %s not found", item.ID.String())
	}

	return nil
}

func (r *menuRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM menu_items WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete menu item",
			zap.Error(err),
			zap.String("menu_item_id", id.String()),
		)
		return fmt.Errorf("delete menu item %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("menu item %s not found", id.String())
	}

	return nil
}

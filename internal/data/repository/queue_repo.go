package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"walkin-queue/internal/data/entity"
	"walkin-queue/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// QueueEntryUpdate is the allowlist for generic entry updates. Status,
// payment and audit stamps are only reachable through their dedicated
// transition methods.
type QueueEntryUpdate struct {
	CustomerName      *string
	CustomerPhone     *string
	CustomerEmail     *string
	OrderItems        entity.OrderItems
	OrderTotal        *float64
	EstimatedWaitTime *int
}

type QueueRepository interface {
	// InsertWithCapacity persists the entry only if the business quotas
	// still hold at commit time. Returns entity.ErrQueueFull or
	// entity.ErrPrioritySlotsFull when admission is rejected.
	InsertWithCapacity(ctx context.Context, entry *entity.QueueEntry, policy entity.QueuePolicy) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.QueueEntry, error)
	FindByBusinessID(ctx context.Context, businessID uuid.UUID, status *entity.QueueStatus) ([]*entity.QueueEntry, error)

	// Transition updates. Each is a single fixed-field UPDATE so concurrent
	// writers to different field subsets cannot lose each other's writes.
	MarkCalled(ctx context.Context, id, actorID uuid.UUID, at time.Time) (*entity.QueueEntry, error)
	MarkCompleted(ctx context.Context, id, actorID uuid.UUID, at time.Time) (*entity.QueueEntry, error)
	ExtendWait(ctx context.Context, id uuid.UUID, minutes int, actorID uuid.UUID, at time.Time) (*entity.QueueEntry, error)
	SetPayment(ctx context.Context, id uuid.UUID, status entity.PaymentStatus, actorID uuid.UUID, notes string, at time.Time) (*entity.QueueEntry, error)

	UpdateFields(ctx context.Context, id uuid.UUID, update QueueEntryUpdate) (*entity.QueueEntry, error)
	Delete(ctx context.Context, id uuid.UUID) (*entity.QueueEntry, error)
}

type queueRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewQueueRepository(db database.PgxIface, log *zap.Logger) QueueRepository {
	return &queueRepository{
		db:  db,
		log: log.With(zap.String("repository", "queue")),
	}
}

const queueEntryColumns = `id, business_id, customer_name, customer_phone, customer_email,
		order_items, order_total, is_priority, status, payment_status, estimated_wait_time,
		joined_at, called_at, called_by, completed_at, completed_by,
		extended_at, extended_by, extended_by_user,
		payment_updated_at, payment_updated_by, payment_notes`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQueueEntry(row rowScanner) (*entity.QueueEntry, error) {
	var e entity.QueueEntry
	var orderItems []byte

	err := row.Scan(
		&e.ID,
		&e.BusinessID,
		&e.CustomerName,
		&e.CustomerPhone,
		&e.CustomerEmail,
		&orderItems,
		&e.OrderTotal,
		&e.IsPriority,
		&e.Status,
		&e.PaymentStatus,
		&e.EstimatedWaitTime,
		&e.JoinedAt,
		&e.CalledAt,
		&e.CalledBy,
		&e.CompletedAt,
		&e.CompletedBy,
		&e.ExtendedAt,
		&e.ExtendedBy,
		&e.ExtendedByUser,
		&e.PaymentUpdatedAt,
		&e.PaymentUpdatedBy,
		&e.PaymentNotes,
	)
	if err != nil {
		return nil, err
	}

	if len(orderItems) > 0 {
		if err := json.Unmarshal(orderItems, &e.OrderItems); err != nil {
			return nil, fmt.Errorf("decode order items for entry %s: %w", e.ID.String(), err)
		}
	}

	return &e, nil
}

func (r *queueRepository) InsertWithCapacity(ctx context.Context, entry *entity.QueueEntry, policy entity.QueuePolicy) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin admission transaction", zap.Error(err))
		return fmt.Errorf("begin admission tx: %w", err)
	}
	defer tx.Rollback(ctx)

	// Serialize admissions per business; the counts below stay valid
	// until commit.
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1::text))`, entry.BusinessID.String()); err != nil {
		r.log.Error("Failed to take admission lock",
			zap.Error(err),
			zap.String("business_id", entry.BusinessID.String()),
		)
		return fmt.Errorf("admission lock for business %s: %w", entry.BusinessID.String(), err)
	}

	var waiting, priorityWaiting int
	err = tx.QueryRow(ctx, `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE is_priority)
		FROM queue_entries
		WHERE business_id = $1 AND status = 'waiting'
	`, entry.BusinessID).Scan(&waiting, &priorityWaiting)
	if err != nil {
		r.log.Error("Failed to count waiting entries",
			zap.Error(err),
			zap.String("business_id", entry.BusinessID.String()),
		)
		return fmt.Errorf("count waiting entries: %w", err)
	}

	if err := policy.Admit(waiting, priorityWaiting, entry.IsPriority); err != nil {
		return err
	}

	orderItems, err := json.Marshal(entry.OrderItems)
	if err != nil {
		return fmt.Errorf("encode order items: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO queue_entries (id, business_id, customer_name, customer_phone, customer_email,
			order_items, order_total, is_priority, status, payment_status, estimated_wait_time,
			joined_at, payment_notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, '')
	`,
		entry.ID,
		entry.BusinessID,
		entry.CustomerName,
		entry.CustomerPhone,
		entry.CustomerEmail,
		orderItems,
		entry.OrderTotal,
		entry.IsPriority,
		entry.Status,
		entry.PaymentStatus,
		entry.EstimatedWaitTime,
		entry.JoinedAt,
	)
	if err != nil {
		r.log.Error("Failed to insert queue entry",
			zap.Error(err),
			zap.String("business_id", entry.BusinessID.String()),
			zap.String("customer_name", entry.CustomerName),
		)
		return fmt.Errorf("insert queue entry: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit admission: %w", err)
	}

	return nil
}

func (r *queueRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.QueueEntry, error) {
	query := `SELECT ` + queueEntryColumns + ` FROM queue_entries WHERE id = $1`

	e, err := scanQueueEntry(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find queue entry by ID",
			zap.Error(err),
			zap.String("entry_id", id.String()),
		)
		return nil, fmt.Errorf("find queue entry by ID %s: %w", id.String(), err)
	}

	return e, nil
}

func (r *queueRepository) FindByBusinessID(ctx context.Context, businessID uuid.UUID, status *entity.QueueStatus) ([]*entity.QueueEntry, error) {
	query := `SELECT ` + queueEntryColumns + ` FROM queue_entries WHERE business_id = $1`
	args := []any{businessID}

	if status != nil {
		query += ` AND status = $2`
		args = append(args, *status)
	}
	query += ` ORDER BY joined_at`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find queue entries by business ID",
			zap.Error(err),
			zap.String("business_id", businessID.String()),
		)
		return nil, fmt.Errorf("find queue entries by business ID %s: %w", businessID.String(), err)
	}
	defer rows.Close()

	var entries []*entity.QueueEntry
	for rows.Next() {
		e, err := scanQueueEntry(rows)
		if err != nil {
			r.log.Error("Failed to scan queue entry row", zap.Error(err))
			return nil, fmt.Errorf("scan queue entry row: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, nil
}

func (r *queueRepository) MarkCalled(ctx context.Context, id, actorID uuid.UUID, at time.Time) (*entity.QueueEntry, error) {
	query := `
		UPDATE queue_entries
		SET status = 'called', called_at = $2, called_by = $3
		WHERE id = $1
		RETURNING ` + queueEntryColumns

	e, err := scanQueueEntry(r.db.QueryRow(ctx, query, id, at, actorID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to mark entry called",
			zap.Error(err),
			zap.String("entry_id", id.String()),
		)
		return nil, fmt.Errorf("mark entry %s called: %w", id.String(), err)
	}

	return e, nil
}

func (r *queueRepository) MarkCompleted(ctx context.Context, id, actorID uuid.UUID, at time.Time) (*entity.QueueEntry, error) {
	query := `
		UPDATE queue_entries
		SET status = 'completed', completed_at = $2, completed_by = $3
		WHERE id = $1
		RETURNING ` + queueEntryColumns

	e, err := scanQueueEntry(r.db.QueryRow(ctx, query, id, at, actorID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to mark entry completed",
			zap.Error(err),
			zap.String("entry_id", id.String()),
		)
		return nil, fmt.Errorf("mark entry %s completed: %w", id.String(), err)
	}

	return e, nil
}

func (r *queueRepository) ExtendWait(ctx context.Context, id uuid.UUID, minutes int, actorID uuid.UUID, at time.Time) (*entity.QueueEntry, error) {
	// Increment happens in SQL so concurrent extensions add up.
	query := `
		UPDATE queue_entries
		SET estimated_wait_time = estimated_wait_time + $2,
		    extended_at = $3, extended_by = $2, extended_by_user = $4
		WHERE id = $1
		RETURNING ` + queueEntryColumns

	e, err := scanQueueEntry(r.db.QueryRow(ctx, query, id, minutes, at, actorID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to extend entry wait time",
			zap.Error(err),
			zap.String("entry_id", id.String()),
			zap.Int("minutes", minutes),
		)
		return nil, fmt.Errorf("extend entry %s wait time: %w", id.String(), err)
	}

	return e, nil
}

func (r *queueRepository) SetPayment(ctx context.Context, id uuid.UUID, status entity.PaymentStatus, actorID uuid.UUID, notes string, at time.Time) (*entity.QueueEntry, error) {
	query := `
		UPDATE queue_entries
		SET payment_status = $2, payment_updated_at = $3, payment_updated_by = $4, payment_notes = $5
		WHERE id = $1
		RETURNING ` + queueEntryColumns

	e, err := scanQueueEntry(r.db.QueryRow(ctx, query, id, status, at, actorID, notes))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to set entry payment status",
			zap.Error(err),
			zap.String("entry_id", id.String()),
			zap.String("payment_status", string(status)),
		)
		return nil, fmt.Errorf("set entry %s payment status: %w", id.String(), err)
	}

	return e, nil
}

func (r *queueRepository) UpdateFields(ctx context.Context, id uuid.UUID, update QueueEntryUpdate) (*entity.QueueEntry, error) {
	sets := []string{}
	args := []any{id}

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.CustomerName != nil {
		add("customer_name", *update.CustomerName)
	}
	if update.CustomerPhone != nil {
		add("customer_phone", *update.CustomerPhone)
	}
	if update.CustomerEmail != nil {
		add("customer_email", *update.CustomerEmail)
	}
	if update.OrderItems != nil {
		encoded, err := json.Marshal(update.OrderItems)
		if err != nil {
			return nil, fmt.Errorf("encode order items: %w", err)
		}
		add("order_items", encoded)
	}
	if update.OrderTotal != nil {
		add("order_total", *update.OrderTotal)
	}
	if update.EstimatedWaitTime != nil {
		add("estimated_wait_time", *update.EstimatedWaitTime)
	}

	if len(sets) == 0 {
		return r.FindByID(ctx, id)
	}

	query := `UPDATE queue_entries SET ` + strings.Join(sets, ", ") + `
		WHERE id = $1
		RETURNING ` + queueEntryColumns

	e, err := scanQueueEntry(r.db.QueryRow(ctx, query, args...))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to update queue entry",
			zap.Error(err),
			zap.String("entry_id", id.String()),
		)
		return nil, fmt.Errorf("update queue entry %s: %w", id.String(), err)
	}

	return e, nil
}

func (r *queueRepository) Delete(ctx context.Context, id uuid.UUID) (*entity.QueueEntry, error) {
	query := `DELETE FROM queue_entries WHERE id = $1 RETURNING ` + queueEntryColumns

	e, err := scanQueueEntry(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to delete queue entry",
			zap.Error(err),
			zap.String("entry_id", id.String()),
		)
		return nil, fmt.Errorf("delete queue entry %s: %w", id.String(), err)
	}

	r.log.Info("Queue entry removed", zap.String("entry_id", id.String()))
	return e, nil
}

package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/quickstampnotary/QSN-PricingService/internal/domain"
	"github.com/quickstampnotary/QSN-PricingService/pkg/txmanager"
)

var psqlbuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const pqUniqueViolation = "23505"

// Repository persists slot reservations. Concurrency correctness relies
// on the partial unique index over active reservations: two concurrent
// holds on the same (slot_datetime, service_type) cannot both insert.
type Repository struct {
	db txmanager.Executor
}

// NewRepository creates a reservation repository.
func NewRepository(db txmanager.Executor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new active reservation. Stale holds on the slot are
// lazily expired first so the unique index only sees live rows; the
// insert itself is the single serialization point.
func (r *Repository) Create(ctx context.Context, res *domain.SlotReservation) (*domain.SlotReservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	if err := r.expireStale(ctx, executor, res.SlotDateTime, res.ServiceType); err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Insert("slot_reservations").
		Columns(
			"id",
			"slot_datetime",
			"service_type",
			"customer_email",
			"duration_minutes",
			"status",
			"expires_at",
		).
		Values(
			res.ID,
			res.SlotDateTime,
			res.ServiceType,
			res.CustomerEmail,
			res.DurationMinutes,
			res.Status,
			res.ExpiresAt,
		).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return nil, ErrSlotConflict
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	return res, nil
}

// expireStale marks past-TTL holds on the slot as expired so they stop
// occupying the partial unique index.
func (r *Repository) expireStale(ctx context.Context, executor txmanager.Executor, slot time.Time, serviceType domain.ServiceType) error {
	query, args, err := psqlbuilder.Update("slot_reservations").
		Set("status", domain.ReservationExpired).
		Where(squirrel.Eq{
			"slot_datetime": slot,
			"service_type":  serviceType,
			"status":        domain.ReservationReserved,
		}).
		Where(squirrel.LtOrEq{"expires_at": time.Now()}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: expireStale - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: expireStale - execute update: %v", ErrExecQuery, err)
	}
	return nil
}

// GetByID fetches a reservation regardless of state.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.SlotReservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"slot_datetime",
		"service_type",
		"customer_email",
		"duration_minutes",
		"status",
		"expires_at",
		"created_at",
		"consumed_at",
	).
		From("slot_reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var res domain.SlotReservation
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&res.SlotDateTime,
		&res.ServiceType,
		&res.CustomerEmail,
		&res.DurationMinutes,
		&res.Status,
		&res.ExpiresAt,
		&res.CreatedAt,
		&res.ConsumedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return &res, nil
}

// Consume marks an active, unexpired reservation as consumed by a
// finalized booking. Zero affected rows means the hold is gone (never
// existed, already consumed, or past its TTL).
func (r *Repository) Consume(ctx context.Context, id string, now time.Time) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slot_reservations").
		Set("status", domain.ReservationConsumed).
		Set("consumed_at", now).
		Where(squirrel.Eq{
			"id":     id,
			"status": domain.ReservationReserved,
		}).
		Where(squirrel.Gt{"expires_at": now}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Consume - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Consume - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Consume - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrReservationNotFound
	}
	return nil
}

// DeleteExpired sweeps reservations past their TTL, independent of any
// slot. Used by the periodic background sweep; lazy expiry in Create
// keeps correctness even when the sweep lags.
func (r *Repository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slot_reservations").
		Set("status", domain.ReservationExpired).
		Where(squirrel.Eq{"status": domain.ReservationReserved}).
		Where(squirrel.LtOrEq{"expires_at": now}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - execute update: %v", ErrExecQuery, err)
	}

	return result.RowsAffected()
}

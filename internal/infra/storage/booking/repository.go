package booking

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

var bookingColumns = []string{
	"id",
	"customer_email",
	"customer_name",
	"service_type",
	"scheduled_at",
	"duration_minutes",
	"address",
	"document_count",
	"signer_count",
	"status",
	"service_name",
	"quoted_total",
	"notes",
	"reservation_id",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository persists finalized bookings.
type Repository struct {
	db txmanager.Executor
}

// NewRepository creates a booking repository.
func NewRepository(db txmanager.Executor) *Repository {
	return &Repository{db: db}
}

// Create inserts a confirmed booking and returns it with generated fields.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"customer_email",
			"customer_name",
			"service_type",
			"scheduled_at",
			"duration_minutes",
			"address",
			"document_count",
			"signer_count",
			"status",
			"service_name",
			"quoted_total",
			"notes",
			"reservation_id",
		).
		Values(
			b.CustomerEmail,
			b.CustomerName,
			b.ServiceType,
			b.ScheduledAt,
			b.DurationMinutes,
			b.Address,
			b.DocumentCount,
			b.SignerCount,
			b.Status,
			b.ServiceName,
			b.QuotedTotal,
			b.Notes,
			b.ReservationID,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return b, nil
}

// GetByID fetches a booking by its numeric ID.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	b, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}
	return b, nil
}

// GetByCustomerEmail lists a customer's bookings, newest first.
func (r *Repository) GetByCustomerEmail(ctx context.Context, email string) ([]domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"customer_email": email}).
		OrderBy("scheduled_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerEmail - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerEmail - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByCustomerEmail - scan booking: %v", ErrScanRow, err)
		}
		bookings = append(bookings, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerEmail - iterate rows: %v", ErrExecQuery, err)
	}

	return bookings, nil
}

// CountCompletedByEmail reports how many bookings the customer has
// completed. Feeds the loyalty discount tier.
func (r *Repository) CountCompletedByEmail(ctx context.Context, email string) (int, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("bookings").
		Where(squirrel.Eq{
			"customer_email": email,
			"status":         domain.BookingCompleted,
		}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountCompletedByEmail - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountCompletedByEmail - scan count: %v", ErrScanRow, err)
	}
	return count, nil
}

// Cancel marks a cancellable booking as cancelled by the user. Zero
// affected rows means the booking is missing or already terminal.
func (r *Repository) Cancel(ctx context.Context, id int64, reason string, now time.Time) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.BookingCancelledByUser).
		Set("cancellation_reason", reason).
		Set("cancelled_at", now).
		Set("updated_at", now).
		Where(squirrel.Eq{
			"id":     id,
			"status": []domain.BookingStatus{domain.BookingConfirmed, domain.BookingInProgress},
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// UpdateStatus transitions a booking to the given status.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus, now time.Time) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(
		&b.ID,
		&b.CustomerEmail,
		&b.CustomerName,
		&b.ServiceType,
		&b.ScheduledAt,
		&b.DurationMinutes,
		&b.Address,
		&b.DocumentCount,
		&b.SignerCount,
		&b.Status,
		&b.ServiceName,
		&b.QuotedTotal,
		&b.Notes,
		&b.ReservationID,
		&b.CancellationReason,
		&b.CancelledAt,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

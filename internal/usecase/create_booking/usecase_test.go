package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickstampnotary/QSN-PricingService/internal/domain"
	bookingRepo "github.com/quickstampnotary/QSN-PricingService/internal/infra/storage/booking"
	reservationRepo "github.com/quickstampnotary/QSN-PricingService/internal/infra/storage/reservation"
	"github.com/quickstampnotary/QSN-PricingService/pkg/ptr"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

// passthroughTx runs the function without a real transaction.
type passthroughTx struct{}

func (passthroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeBookingRepo struct {
	err     error
	created *domain.Booking
}

func (r *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if r.err != nil {
		return nil, r.err
	}
	b.ID = 42
	b.CreatedAt = time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	b.UpdatedAt = b.CreatedAt
	r.created = b
	return b, nil
}

type fakeReservationRepo struct {
	reservation *domain.SlotReservation
	getErr      error
	consumeErr  error
	consumed    []string
}

func (r *fakeReservationRepo) GetByID(_ context.Context, id string) (*domain.SlotReservation, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	return r.reservation, nil
}

func (r *fakeReservationRepo) Consume(_ context.Context, id string, _ time.Time) error {
	if r.consumeErr != nil {
		return r.consumeErr
	}
	r.consumed = append(r.consumed, id)
	return nil
}

var testNow = time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

func validRequest() *Request {
	return &Request{
		CustomerEmail: "ann@example.com",
		CustomerName:  "Ann Doe",
		ServiceType:   "STANDARD_NOTARY",
		ScheduledAt:   testNow.Add(48 * time.Hour),
		DocumentCount: 2,
		SignerCount:   1,
		QuotedTotal:   87.5,
	}
}

func newUseCase(bookings *fakeBookingRepo, reservations *fakeReservationRepo) *UseCase {
	return NewUseCase(bookings, reservations, passthroughTx{}, noopLogger{}).
		WithTimeProvider(fixedClock{now: testNow})
}

func TestCreateBooking_Success(t *testing.T) {
	bookings := &fakeBookingRepo{}
	uc := newUseCase(bookings, &fakeReservationRepo{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, domain.ServiceStandardNotary, resp.ServiceType)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, "Standard Mobile Notary", resp.ServiceName, "service name is denormalized from the catalog")
	assert.Equal(t, 87.5, resp.QuotedTotal)
	assert.Equal(t, domain.DefaultAppointmentMinutes, resp.DurationMinutes)
}

func TestCreateBooking_ConsumesReservation(t *testing.T) {
	slot := testNow.Add(48 * time.Hour)
	reservations := &fakeReservationRepo{
		reservation: &domain.SlotReservation{
			ID:           "res-1",
			SlotDateTime: slot.UTC().Truncate(time.Minute),
			ServiceType:  domain.ServiceStandardNotary,
			Status:       domain.ReservationReserved,
			ExpiresAt:    testNow.Add(5 * time.Minute),
		},
	}
	bookings := &fakeBookingRepo{}
	uc := newUseCase(bookings, reservations)

	req := validRequest()
	req.ReservationID = ptr.Ptr("res-1")

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, []string{"res-1"}, reservations.consumed)
	require.NotNil(t, resp.ReservationID)
	assert.Equal(t, "res-1", *resp.ReservationID)
}

func TestCreateBooking_ReservationGone(t *testing.T) {
	reservations := &fakeReservationRepo{getErr: reservationRepo.ErrReservationNotFound}
	uc := newUseCase(&fakeBookingRepo{}, reservations)

	req := validRequest()
	req.ReservationID = ptr.Ptr("res-missing")

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrReservationGone)
}

func TestCreateBooking_ReservationExpiredOnConsume(t *testing.T) {
	slot := testNow.Add(48 * time.Hour)
	reservations := &fakeReservationRepo{
		reservation: &domain.SlotReservation{
			ID:           "res-1",
			SlotDateTime: slot.UTC().Truncate(time.Minute),
			ServiceType:  domain.ServiceStandardNotary,
		},
		consumeErr: reservationRepo.ErrReservationNotFound,
	}
	uc := newUseCase(&fakeBookingRepo{}, reservations)

	req := validRequest()
	req.ReservationID = ptr.Ptr("res-1")

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrReservationGone)
}

func TestCreateBooking_ReservationMismatch(t *testing.T) {
	reservations := &fakeReservationRepo{
		reservation: &domain.SlotReservation{
			ID:           "res-1",
			SlotDateTime: testNow.Add(96 * time.Hour), // different slot
			ServiceType:  domain.ServiceStandardNotary,
		},
	}
	uc := newUseCase(&fakeBookingRepo{}, reservations)

	req := validRequest()
	req.ReservationID = ptr.Ptr("res-1")

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrReservationMismatch)
}

func TestCreateBooking_SlotTaken(t *testing.T) {
	bookings := &fakeBookingRepo{err: bookingRepo.ErrSlotTaken}
	uc := newUseCase(bookings, &fakeReservationRepo{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestCreateBooking_Validation(t *testing.T) {
	uc := newUseCase(&fakeBookingRepo{}, &fakeReservationRepo{})

	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{"missing email", func(r *Request) { r.CustomerEmail = "" }, ErrInvalidInput},
		{"missing name", func(r *Request) { r.CustomerName = "" }, ErrInvalidInput},
		{"unknown service", func(r *Request) { r.ServiceType = "NOT_REAL" }, ErrServiceNotFound},
		{"scheduled in past", func(r *Request) { r.ScheduledAt = testNow.Add(-time.Hour) }, ErrSlotInPast},
		{"zero documents", func(r *Request) { r.DocumentCount = 0 }, ErrInvalidInput},
		{"zero signers", func(r *Request) { r.SignerCount = 0 }, ErrInvalidInput},
		{"negative total", func(r *Request) { r.QuotedTotal = -1 }, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

package get_booking

import (
	"context"

	getBooking "github.com/quickstampnotary/QSN-PricingService/internal/usecase/get_booking"
)

type GetBookingUseCase interface {
	GetByID(ctx context.Context, id int64) (*getBooking.Booking, error)
	GetByCustomerEmail(ctx context.Context, email string) ([]getBooking.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

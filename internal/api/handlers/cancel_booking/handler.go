package cancel_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/quickstampnotary/QSN-PricingService/internal/api/handlers"
	cancelBooking "github.com/quickstampnotary/QSN-PricingService/internal/usecase/cancel_booking"
)

const (
	codeInvalidBookingID = "INVALID_BOOKING_ID"
	codeInvalidBody      = "INVALID_REQUEST_BODY"
	codeBookingNotFound  = "BOOKING_NOT_FOUND"
	codeAlreadyTerminal  = "BOOKING_NOT_CANCELLABLE"
	codeTooLate          = "CANCELLATION_WINDOW_CLOSED"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	Reason string `json:"reason,omitempty"`
}

type Handler struct {
	useCase CancelBookingUseCase
	logger  Logger
}

func NewHandler(useCase CancelBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /bookings/{bookingId} - Invalid booking ID: %q", vars["bookingId"])
		handlers.RespondBadRequest(w, codeInvalidBookingID, "bookingId must be a positive integer")
		return
	}

	// Reason is optional; an empty or absent body is fine.
	var req CancelBookingRequest
	if r.Body != nil && r.ContentLength > 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			h.logger.Warn("DELETE /bookings/{bookingId} - Invalid request body: %v", err)
			handlers.RespondBadRequest(w, codeInvalidBody, "invalid request body")
			return
		}
	}

	err = h.useCase.Execute(r.Context(), id, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, cancelBooking.ErrBookingNotFound):
			handlers.RespondNotFound(w, codeBookingNotFound, "booking not found")

		case errors.Is(err, cancelBooking.ErrAlreadyTerminal):
			handlers.RespondConflict(w, codeAlreadyTerminal, "booking is already completed or cancelled")

		case errors.Is(err, cancelBooking.ErrTooLateToCancel):
			handlers.RespondConflict(w, codeTooLate, err.Error())

		case errors.Is(err, cancelBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, codeInvalidBookingID, "bookingId must be a positive integer")

		default:
			h.logger.Error("DELETE /bookings/{bookingId} - Failed to cancel booking id=%d: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /bookings/{bookingId} - Booking cancelled: id=%d", id)
	w.WriteHeader(http.StatusNoContent)
}

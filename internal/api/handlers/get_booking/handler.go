package get_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/quickstampnotary/QSN-PricingService/internal/api/handlers"
	getBooking "github.com/quickstampnotary/QSN-PricingService/internal/usecase/get_booking"
)

const (
	codeInvalidBookingID = "INVALID_BOOKING_ID"
	codeMissingEmail     = "MISSING_CUSTOMER_EMAIL"
	codeBookingNotFound  = "BOOKING_NOT_FOUND"
)

type Handler struct {
	useCase GetBookingUseCase
	logger  Logger
}

func NewHandler(useCase GetBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// HandleGetByID GET /api/v1/bookings/{bookingId}
func (h *Handler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /bookings/{bookingId} - Invalid booking ID: %q", vars["bookingId"])
		handlers.RespondBadRequest(w, codeInvalidBookingID, "bookingId must be a positive integer")
		return
	}

	booking, err := h.useCase.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, getBooking.ErrBookingNotFound):
			handlers.RespondNotFound(w, codeBookingNotFound, "booking not found")

		case errors.Is(err, getBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, codeInvalidBookingID, "bookingId must be a positive integer")

		default:
			h.logger.Error("GET /bookings/{bookingId} - Failed to get booking id=%d: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseBooking(booking))
}

// HandleList GET /api/v1/bookings?customerEmail=
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("customerEmail")
	if email == "" {
		handlers.RespondBadRequest(w, codeMissingEmail, "customerEmail query parameter is required")
		return
	}

	bookings, err := h.useCase.GetByCustomerEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, getBooking.ErrInvalidInput) {
			handlers.RespondBadRequest(w, codeMissingEmail, "customerEmail query parameter is required")
			return
		}
		h.logger.Error("GET /bookings - Failed to list bookings for email=%s: %v", email, err)
		handlers.RespondInternalError(w)
		return
	}

	response := BookingListResponse{Bookings: make([]BookingResponse, 0, len(bookings))}
	for i := range bookings {
		response.Bookings = append(response.Bookings, *FromUseCaseBooking(&bookings[i]))
	}
	handlers.RespondJSON(w, http.StatusOK, response)
}

package create_booking

import (
	"errors"
	"net/http"

	"github.com/quickstampnotary/QSN-PricingService/internal/api/handlers"
	createBooking "github.com/quickstampnotary/QSN-PricingService/internal/usecase/create_booking"
)

const (
	codeInvalidBody         = "INVALID_REQUEST_BODY"
	codeInvalidDateTime     = "INVALID_SCHEDULED_AT"
	codeInvalidInput        = "INVALID_INPUT"
	codeServiceNotFound     = "INVALID_SERVICE_TYPE"
	codeSlotInPast          = "SLOT_IN_PAST"
	codeReservationGone     = "RESERVATION_GONE"
	codeReservationMismatch = "RESERVATION_MISMATCH"
	codeSlotTaken           = "SLOT_CONFLICT"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/booking/create
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking/create - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, codeInvalidBody, "invalid request body")
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /booking/create - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, codeInvalidDateTime, "scheduledAt must be RFC3339")
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrReservationGone):
			h.logger.Warn("POST /booking/create - Reservation gone: email=%s", req.CustomerEmail)
			handlers.RespondConflict(w, codeReservationGone, "the slot reservation has expired, please reserve again")

		case errors.Is(err, createBooking.ErrSlotTaken):
			h.logger.Warn("POST /booking/create - Slot taken: slot=%s service=%s", req.ScheduledAt, req.ServiceType)
			handlers.RespondConflict(w, codeSlotTaken, "this slot was just booked by another customer")

		case errors.Is(err, createBooking.ErrReservationMismatch):
			handlers.RespondBadRequest(w, codeReservationMismatch, err.Error())

		case errors.Is(err, createBooking.ErrServiceNotFound):
			handlers.RespondBadRequest(w, codeServiceNotFound, "unknown serviceType")

		case errors.Is(err, createBooking.ErrSlotInPast):
			handlers.RespondBadRequest(w, codeSlotInPast, "scheduledAt is in the past")

		case errors.Is(err, createBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, codeInvalidInput, err.Error())

		default:
			h.logger.Error("POST /booking/create - Failed to create booking: email=%s error=%v",
				req.CustomerEmail, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /booking/create - Booking created: id=%d service=%s total=%.2f",
		result.ID, req.ServiceType, result.QuotedTotal)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

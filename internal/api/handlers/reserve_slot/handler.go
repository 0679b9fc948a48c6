package reserve_slot

import (
	"errors"
	"net/http"

	"github.com/quickstampnotary/QSN-PricingService/internal/api/handlers"
	reserveSlot "github.com/quickstampnotary/QSN-PricingService/internal/usecase/reserve_slot"
)

const (
	codeInvalidBody     = "INVALID_REQUEST_BODY"
	codeInvalidDateTime = "INVALID_SLOT_DATETIME"
	codeInvalidInput    = "INVALID_INPUT"
	codeServiceNotFound = "INVALID_SERVICE_TYPE"
	codeSlotInPast      = "SLOT_IN_PAST"
	codeSlotConflict    = "SLOT_CONFLICT"
)

type Handler struct {
	useCase ReserveSlotUseCase
	logger  Logger
}

func NewHandler(useCase ReserveSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/booking/reserve-slot
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ReserveSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking/reserve-slot - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, codeInvalidBody, "invalid request body")
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /booking/reserve-slot - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, codeInvalidDateTime, "slotDateTime must be RFC3339")
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, reserveSlot.ErrSlotConflict):
			h.logger.Warn("POST /booking/reserve-slot - Slot conflict: slot=%s service=%s",
				req.SlotDateTime, req.ServiceType)
			handlers.RespondConflict(w, codeSlotConflict, "this slot was just reserved by another customer")

		case errors.Is(err, reserveSlot.ErrServiceNotFound):
			handlers.RespondBadRequest(w, codeServiceNotFound, "unknown serviceType")

		case errors.Is(err, reserveSlot.ErrSlotInPast):
			handlers.RespondBadRequest(w, codeSlotInPast, "slotDateTime is in the past")

		case errors.Is(err, reserveSlot.ErrInvalidInput):
			handlers.RespondBadRequest(w, codeInvalidInput, err.Error())

		default:
			h.logger.Error("POST /booking/reserve-slot - Failed to reserve slot: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /booking/reserve-slot - Reservation created: id=%s slot=%s service=%s",
		result.ID, req.SlotDateTime, req.ServiceType)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

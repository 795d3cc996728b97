package schedule_booking

import (
	"errors"
	"net/http"

	"github.com/venuebook/venue-scheduler/internal/api/handlers"
	"github.com/venuebook/venue-scheduler/internal/api/middleware"
	scheduleBooking "github.com/venuebook/venue-scheduler/internal/usecase/schedule_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDateFormat  = "start and end must be RFC 3339 timestamps"
	msgInvalidTimeRange   = "start must be strictly before end"
	msgInsufficientLead   = "the booking starts too soon"
	msgBookingTooShort    = "the booking is shorter than the minimum duration"
	msgBookingTooLong     = "the booking is longer than the maximum duration"
	msgCapacityExceeded   = "guest count exceeds the venue capacity"
	msgVenueNotFound      = "venue not found"
	msgSlotNotFound       = "slot not found"
	msgBookingConflict    = "the requested window overlaps an existing booking"
)

type Handler struct {
	useCase ScheduleBookingUseCase
	logger  Logger
}

func NewHandler(useCase ScheduleBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.TenantID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, handlers.CodeInvalidRequest, "missing tenant")
		return
	}

	var req ScheduleBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeInvalidRequest, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(tenantID))
	if err != nil {
		h.respondError(w, &req, tenantID, err)
		return
	}

	h.logger.Info("POST /bookings - booking created: id=%d reference=%s tenant=%d venue=%d",
		result.ID, result.Reference, tenantID, req.VenueID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

func (h *Handler) respondError(w http.ResponseWriter, req *ScheduleBookingRequest, tenantID int64, err error) {
	switch {
	case errors.Is(err, scheduleBooking.ErrBookingConflict):
		h.logger.Warn("POST /bookings - conflict: tenant=%d venue=%d window=[%s, %s)",
			tenantID, req.VenueID, req.Start, req.End)

		response := &ConflictResponse{
			Code:    handlers.CodeBookingConflict,
			Message: msgBookingConflict,
		}
		var conflictErr *scheduleBooking.ConflictError
		if errors.As(err, &conflictErr) && conflictErr.Conflict != nil {
			response.Conflict = FromDomainConflict(conflictErr.Conflict)
		}
		handlers.RespondJSON(w, http.StatusConflict, response)

	case errors.Is(err, scheduleBooking.ErrInvalidDateFormat):
		h.logger.Warn("POST /bookings - bad timestamps: tenant=%d venue=%d", tenantID, req.VenueID)
		handlers.RespondBadRequest(w, handlers.CodeInvalidDateFormat, msgInvalidDateFormat)

	case errors.Is(err, scheduleBooking.ErrInvalidTimeRange):
		handlers.RespondBadRequest(w, handlers.CodeInvalidTimeRange, msgInvalidTimeRange)

	case errors.Is(err, scheduleBooking.ErrInsufficientLeadTime):
		handlers.RespondBadRequest(w, handlers.CodeInsufficientLeadTime, msgInsufficientLead)

	case errors.Is(err, scheduleBooking.ErrBookingTooShort):
		handlers.RespondBadRequest(w, handlers.CodeBookingTooShort, msgBookingTooShort)

	case errors.Is(err, scheduleBooking.ErrBookingTooLong):
		handlers.RespondBadRequest(w, handlers.CodeBookingTooLong, msgBookingTooLong)

	case errors.Is(err, scheduleBooking.ErrCapacityExceeded):
		h.logger.Warn("POST /bookings - capacity exceeded: tenant=%d venue=%d guests=%d",
			tenantID, req.VenueID, req.GuestCount)
		handlers.RespondError(w, http.StatusUnprocessableEntity, handlers.CodeCapacityExceeded, msgCapacityExceeded)

	case errors.Is(err, scheduleBooking.ErrVenueNotFound):
		handlers.RespondNotFound(w, handlers.CodeVenueNotFound, msgVenueNotFound)

	case errors.Is(err, scheduleBooking.ErrSlotNotFound):
		handlers.RespondNotFound(w, handlers.CodeSlotNotFound, msgSlotNotFound)

	case errors.Is(err, scheduleBooking.ErrInvalidInput):
		handlers.RespondBadRequest(w, handlers.CodeInvalidRequest, err.Error())

	case errors.Is(err, scheduleBooking.ErrUpstreamUnavailable):
		h.logger.Error("POST /bookings - upstream unavailable: tenant=%d venue=%d: %v", tenantID, req.VenueID, err)
		handlers.RespondUpstreamUnavailable(w)

	default:
		h.logger.Error("POST /bookings - failed: tenant=%d venue=%d: %v", tenantID, req.VenueID, err)
		handlers.RespondInternalError(w)
	}
}

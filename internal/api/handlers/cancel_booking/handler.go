package cancel_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/venuebook/venue-scheduler/internal/api/handlers"
	"github.com/venuebook/venue-scheduler/internal/api/middleware"
	"github.com/venuebook/venue-scheduler/internal/domain"
	bookingsSvc "github.com/venuebook/venue-scheduler/internal/service/bookings"
)

const (
	msgInvalidBookingID   = "invalid booking id"
	msgInvalidRequestBody = "invalid request body"
	msgBookingNotFound    = "booking not found"
	msgCannotCancel       = "the booking is already in a terminal state"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.TenantID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, handlers.CodeInvalidRequest, "missing tenant")
		return
	}

	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, handlers.CodeInvalidRequest, msgInvalidBookingID)
		return
	}

	var req CancelBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/%d/cancel - invalid request body: %v", bookingID, err)
		handlers.RespondBadRequest(w, handlers.CodeInvalidRequest, msgInvalidRequestBody)
		return
	}

	if err := h.service.Cancel(r.Context(), tenantID, bookingID, req.Reason); err != nil {
		switch {
		case errors.Is(err, bookingsSvc.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/%d/cancel - not found: tenant=%d", bookingID, tenantID)
			handlers.RespondNotFound(w, handlers.CodeBookingNotFound, msgBookingNotFound)

		case errors.Is(err, bookingsSvc.ErrCannotCancel):
			h.logger.Warn("PATCH /bookings/%d/cancel - already terminal", bookingID)
			handlers.RespondError(w, http.StatusConflict, handlers.CodeCannotCancel, msgCannotCancel)

		case errors.Is(err, bookingsSvc.ErrInvalidInput):
			handlers.RespondBadRequest(w, handlers.CodeInvalidRequest, err.Error())

		case errors.Is(err, bookingsSvc.ErrUpstreamUnavailable):
			h.logger.Error("PATCH /bookings/%d/cancel - upstream unavailable: %v", bookingID, err)
			handlers.RespondUpstreamUnavailable(w)

		default:
			h.logger.Error("PATCH /bookings/%d/cancel - failed: %v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/%d/cancel - cancelled: tenant=%d", bookingID, tenantID)
	handlers.RespondJSON(w, http.StatusOK, CancelBookingResponse{
		ID:     bookingID,
		Status: string(domain.StatusCancelled),
	})
}

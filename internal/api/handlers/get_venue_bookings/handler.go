package get_venue_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/venuebook/venue-scheduler/internal/api/handlers"
	"github.com/venuebook/venue-scheduler/internal/api/middleware"
	bookingsSvc "github.com/venuebook/venue-scheduler/internal/service/bookings"
)

const (
	msgInvalidVenueID = "invalid venue id"
	msgVenueNotFound  = "venue not found"
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

// Handle GET /api/v1/venues/{venueId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.TenantID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, handlers.CodeInvalidRequest, "missing tenant")
		return
	}

	venueID, err := strconv.ParseInt(mux.Vars(r)["venueId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, handlers.CodeInvalidRequest, msgInvalidVenueID)
		return
	}

	req, err := ParseQuery(tenantID, venueID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /venues/%d/bookings - bad query: %v", venueID, err)
		handlers.RespondBadRequest(w, handlers.CodeInvalidRequest, err.Error())
		return
	}

	list, err := h.service.GetVenueBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookingsSvc.ErrVenueNotFound):
			h.logger.Warn("GET /venues/%d/bookings - venue not found: tenant=%d", venueID, tenantID)
			handlers.RespondNotFound(w, handlers.CodeVenueNotFound, msgVenueNotFound)

		case errors.Is(err, bookingsSvc.ErrInvalidInput):
			handlers.RespondBadRequest(w, handlers.CodeInvalidRequest, err.Error())

		case errors.Is(err, bookingsSvc.ErrUpstreamUnavailable):
			h.logger.Error("GET /venues/%d/bookings - upstream unavailable: %v", venueID, err)
			handlers.RespondUpstreamUnavailable(w)

		default:
			h.logger.Error("GET /venues/%d/bookings - failed: %v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceList(list))
}

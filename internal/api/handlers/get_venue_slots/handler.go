package get_venue_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/venuebook/venue-scheduler/internal/api/handlers"
	catalogSvc "github.com/venuebook/venue-scheduler/internal/service/catalog"
)

const msgInvalidVenueID = "invalid venue id"

type Handler struct {
	catalog SlotCatalog
	logger  Logger
}

func NewHandler(catalog SlotCatalog, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues/{venueId}/slots
//
// Public endpoint: slot definitions carry no tenant data, so the listing
// skips the auth middleware.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venueID, err := strconv.ParseInt(mux.Vars(r)["venueId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, handlers.CodeInvalidRequest, msgInvalidVenueID)
		return
	}

	slots, err := h.catalog.SlotsFor(r.Context(), venueID)
	if err != nil {
		switch {
		case errors.Is(err, catalogSvc.ErrUpstreamUnavailable):
			h.logger.Error("GET /venues/%d/slots - upstream unavailable: %v", venueID, err)
			handlers.RespondUpstreamUnavailable(w)

		default:
			h.logger.Error("GET /venues/%d/slots - failed: %v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainSlots(venueID, slots))
}

package quote_price

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/venuebook/venue-scheduler/internal/api/handlers"
	"github.com/venuebook/venue-scheduler/internal/api/middleware"
	quotePrice "github.com/venuebook/venue-scheduler/internal/usecase/quote_price"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidVenueID     = "invalid venue id"
	msgInvalidDateFormat  = "dates must be YYYY-MM-DD"
	msgVenueNotFound      = "venue not found"
	msgSlotNotFound       = "slot not found"
)

type Handler struct {
	useCase QuotePriceUseCase
	logger  Logger
}

func NewHandler(useCase QuotePriceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/venues/{venueId}/quotes
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

	var req QuotePriceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /venues/%d/quotes - invalid request body: %v", venueID, err)
		handlers.RespondBadRequest(w, handlers.CodeInvalidRequest, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(tenantID, venueID))
	if err != nil {
		switch {
		case errors.Is(err, quotePrice.ErrVenueNotFound):
			h.logger.Warn("POST /venues/%d/quotes - venue not found: tenant=%d", venueID, tenantID)
			handlers.RespondNotFound(w, handlers.CodeVenueNotFound, msgVenueNotFound)

		case errors.Is(err, quotePrice.ErrSlotNotFound):
			h.logger.Warn("POST /venues/%d/quotes - slot %q not found", venueID, req.SlotID)
			handlers.RespondNotFound(w, handlers.CodeSlotNotFound, msgSlotNotFound)

		case errors.Is(err, quotePrice.ErrInvalidDateFormat):
			handlers.RespondBadRequest(w, handlers.CodeInvalidDateFormat, msgInvalidDateFormat)

		case errors.Is(err, quotePrice.ErrInvalidInput):
			handlers.RespondBadRequest(w, handlers.CodeInvalidRequest, err.Error())

		case errors.Is(err, quotePrice.ErrUpstreamUnavailable):
			h.logger.Error("POST /venues/%d/quotes - upstream unavailable: %v", venueID, err)
			handlers.RespondUpstreamUnavailable(w)

		default:
			h.logger.Error("POST /venues/%d/quotes - failed: %v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

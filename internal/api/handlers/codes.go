package handlers

// Stable machine-readable rejection codes. These are part of the API
// contract; renaming one breaks consumers.
const (
	CodeInvalidRequest       = "INVALID_REQUEST"
	CodeInvalidDateFormat    = "INVALID_DATE_FORMAT"
	CodeInvalidTimeRange     = "INVALID_TIME_RANGE"
	CodeInsufficientLeadTime = "INSUFFICIENT_LEAD_TIME"
	CodeBookingTooShort      = "BOOKING_TOO_SHORT"
	CodeBookingTooLong       = "BOOKING_TOO_LONG"
	CodeCapacityExceeded     = "CAPACITY_EXCEEDED"
	CodeVenueNotFound        = "VENUE_NOT_FOUND"
	CodeSlotNotFound         = "SLOT_NOT_FOUND"
	CodeBookingNotFound      = "BOOKING_NOT_FOUND"
	CodeBookingConflict      = "BOOKING_CONFLICT"
	CodeCannotCancel         = "CANNOT_CANCEL"
	CodeUpstreamUnavailable  = "UPSTREAM_UNAVAILABLE"
	CodeInternalError        = "INTERNAL_ERROR"
)

package cancel_booking

// CancelBookingRequest is the HTTP request model.
type CancelBookingRequest struct {
	Reason string `json:"reason"`
}

// CancelBookingResponse acknowledges the cancellation.
type CancelBookingResponse struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

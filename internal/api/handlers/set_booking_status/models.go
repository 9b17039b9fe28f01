package set_booking_status

// SetStatusRequest HTTP request model
type SetStatusRequest struct {
	Status string `json:"status"` // pending, confirmed, checked_in, checked_out, cancelled
}

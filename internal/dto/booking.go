package dto

// CreateBookingRequest is the payload for creating a booking
type CreateBookingRequest struct {
	UserID    string `json:"userId"`
	EventSlug string `json:"eventSlug"`
	// BookedAt is optional; when empty the server stamps the current time
	BookedAt string `json:"bookedAt"`
}

// Validate validates the create booking request
func (r *CreateBookingRequest) Validate() (bool, string) {
	if r.UserID == "" || r.EventSlug == "" {
		return false, "Missing required fields: userId, eventSlug."
	}
	return true, ""
}

// BookingListFilter contains optional query filters for listing bookings
type BookingListFilter struct {
	UserID    string `form:"userId"`
	EventSlug string `form:"eventSlug"`
}

// DeleteBookingResponse is the payload returned after deleting a booking
type DeleteBookingResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}

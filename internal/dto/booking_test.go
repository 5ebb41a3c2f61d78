package dto

import "testing"

func TestCreateBookingRequestValidate(t *testing.T) {
	tests := []struct {
		name  string
		req   CreateBookingRequest
		valid bool
	}{
		{
			name:  "valid request",
			req:   CreateBookingRequest{UserID: "user-1", EventSlug: "rock-fest"},
			valid: true,
		},
		{
			name:  "valid request with bookedAt",
			req:   CreateBookingRequest{UserID: "user-1", EventSlug: "rock-fest", BookedAt: "2026-05-01T10:00:00Z"},
			valid: true,
		},
		{
			name:  "missing userId",
			req:   CreateBookingRequest{EventSlug: "rock-fest"},
			valid: false,
		},
		{
			name:  "missing eventSlug",
			req:   CreateBookingRequest{UserID: "user-1"},
			valid: false,
		},
		{
			name:  "missing both",
			req:   CreateBookingRequest{},
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, msg := tt.req.Validate()
			if valid != tt.valid {
				t.Errorf("Validate() = %v, want %v", valid, tt.valid)
			}
			if !valid && msg == "" {
				t.Error("expected validation message for invalid request")
			}
		})
	}
}

package models

// ConfirmationPayload is the task payload queued after a slip verification
// commits, consumed by the email worker.
type ConfirmationPayload struct {
	BookingID string  `json:"bookingId"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Date      string  `json:"date"`
	Time      string  `json:"time"`
	Amount    float64 `json:"amount"`
}

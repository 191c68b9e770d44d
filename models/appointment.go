package models

import "time"

// UserDetails holds the patient contact details captured when the
// appointment is booked.
type UserDetails struct {
	Name  string `bson:"name" json:"name" binding:"required"`
	Email string `bson:"email" json:"email" binding:"required,email"`
}

// TimeSlot is the booked slot in clinic-local terms.
type TimeSlot struct {
	Date string `bson:"date" json:"date" binding:"required"` // "YYYY-MM-DD"
	Time string `bson:"time" json:"time" binding:"required"` // e.g. "14:30"
}

// PaymentVerification is set exactly once, when a payment slip for the
// appointment passes verification. DecodedString holds the slip reference
// number and doubles as the idempotency key: the collection carries a
// unique partial index on it, so a reference can never verify two bookings.
type PaymentVerification struct {
	Status        string    `bson:"status" json:"status"`
	VerifiedAt    time.Time `bson:"verified_at" json:"verifiedAt"`
	DecodedString string    `bson:"decoded_string" json:"decodedString"`
	Notes         string    `bson:"notes,omitempty" json:"notes,omitempty"`
}

// Appointment represents a booking record awaiting or holding payment.
type Appointment struct {
	BookingID           string               `bson:"booking_id" json:"bookingId"`
	UserDetails         UserDetails          `bson:"user_details" json:"userDetails"`
	TimeSlot            TimeSlot             `bson:"time_slot" json:"timeSlot"`
	Amount              float64              `bson:"amount" json:"amount"`
	PaymentVerification *PaymentVerification `bson:"payment_verification,omitempty" json:"paymentVerification,omitempty"`
	CreatedAt           time.Time            `bson:"created_at" json:"createdAt"`
	UpdatedAt           time.Time            `bson:"updated_at" json:"updatedAt"`
}

// PaymentVerified is the status a successful slip verification writes.
const PaymentVerified = "verified"

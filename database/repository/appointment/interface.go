package appointmentRepo

import (
	"errors"

	"clinicbook/models"
)

// Sentinel errors the service layer maps onto its failure taxonomy.
var (
	// ErrNotFound means no appointment matches the booking id.
	ErrNotFound = errors.New("appointment not found")
	// ErrAlreadyVerified means the appointment already carries a payment
	// verification record.
	ErrAlreadyVerified = errors.New("appointment already verified")
	// ErrDuplicateReference means the slip reference is already consumed by
	// another appointment (unique index rejection).
	ErrDuplicateReference = errors.New("slip reference already used")
)

// AppointmentRepository defines the interface for appointment data access.
type AppointmentRepository interface {
	Create(appt *models.Appointment) error
	GetByBookingID(bookingID string) (*models.Appointment, error)
	// FindByReference returns the appointment holding the given slip
	// reference, or (nil, nil) when the reference is unused.
	FindByReference(refNbr string) (*models.Appointment, error)
	// MarkVerified atomically attaches the payment verification record to an
	// appointment that has none yet, and returns the updated document.
	MarkVerified(bookingID string, pv models.PaymentVerification) (*models.Appointment, error)
}

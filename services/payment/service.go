package payment

import (
	"context"
	"errors"
	"time"

	appointmentRepo "clinicbook/database/repository/appointment"
	"clinicbook/models"
	"clinicbook/services/notification"

	"go.uber.org/zap"
)

// SlipVerificationService verifies a bank-transfer slip against the external
// provider and marks the matching appointment as paid.
type SlipVerificationService interface {
	VerifySlip(ctx context.Context, input models.SlipVerifyInput) (*models.Appointment, error)
}

// DefaultSlipVerificationService implements SlipVerificationService. The
// flow is strictly ordered: idempotency pre-check, provider call, receiver
// identity check, conditional appointment write, then the post-commit
// confirmation enqueue.
type DefaultSlipVerificationService struct {
	Repo         appointmentRepo.AppointmentRepository
	Verifier     SlipVerifier
	Notifier     notification.NotificationService
	ReceiverName string
	Logger       *zap.Logger
}

func (s *DefaultSlipVerificationService) VerifySlip(ctx context.Context, input models.SlipVerifyInput) (*models.Appointment, error) {
	if input.BookingID == "" || input.RefNbr == "" || input.Amount == nil {
		return nil, errInvalidRequest("bookingID, refNbr and amount are required")
	}
	if s.ReceiverName == "" || s.Verifier == nil {
		return nil, errMisconfiguration("slip verification is not configured")
	}

	// Advisory pre-check: reject a consumed reference before spending a
	// provider call on it. The write below re-enforces this atomically.
	existing, err := s.Repo.FindByReference(input.RefNbr)
	if err != nil {
		return nil, errPersistence(err)
	}
	if existing != nil {
		return nil, errDuplicateReference(input.RefNbr)
	}

	resp, err := s.Verifier.Verify(ctx, input.RefNbr, *input.Amount)
	if err != nil {
		return nil, errProviderUnavailable(err)
	}
	if !resp.Success {
		return nil, errVerificationRejected(resp.Message())
	}

	expected := NormalizeReceiverName(s.ReceiverName)
	got := ""
	if resp.Data != nil {
		got = NormalizeReceiverName(resp.Data.Receiver.Name)
	}
	if got == "" || got != expected {
		return nil, errReceiverMismatch(expected, got)
	}

	pv := models.PaymentVerification{
		Status:        models.PaymentVerified,
		VerifiedAt:    time.Now(),
		DecodedString: input.RefNbr,
		Notes:         resp.Message(),
	}
	updated, err := s.Repo.MarkVerified(input.BookingID, pv)
	if err != nil {
		switch {
		case errors.Is(err, appointmentRepo.ErrNotFound):
			return nil, errAppointmentNotFound(input.BookingID)
		case errors.Is(err, appointmentRepo.ErrAlreadyVerified),
			errors.Is(err, appointmentRepo.ErrDuplicateReference):
			return nil, errDuplicateReference(input.RefNbr)
		default:
			return nil, errPersistence(err)
		}
	}

	s.Logger.Info("slip verified",
		zap.String("bookingId", updated.BookingID),
		zap.String("refNbr", input.RefNbr))

	s.dispatchConfirmation(ctx, updated)

	return updated, nil
}

// dispatchConfirmation queues the confirmation email. The verification is
// already committed; a failed enqueue is logged and otherwise ignored.
func (s *DefaultSlipVerificationService) dispatchConfirmation(ctx context.Context, appt *models.Appointment) {
	if s.Notifier == nil {
		return
	}
	payload := models.ConfirmationPayload{
		BookingID: appt.BookingID,
		Name:      appt.UserDetails.Name,
		Email:     appt.UserDetails.Email,
		Date:      appt.TimeSlot.Date,
		Time:      appt.TimeSlot.Time,
		Amount:    appt.Amount,
	}
	if err := s.Notifier.EnqueueConfirmation(ctx, payload); err != nil {
		s.Logger.Error("failed to queue confirmation email",
			zap.String("bookingId", appt.BookingID),
			zap.Error(err))
	}
}

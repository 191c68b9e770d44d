package payment

import (
	"errors"
	"fmt"
	"net/http"
)

// Failure codes for the slip verification flow.
const (
	CodeInvalidRequest       = "invalidRequest"
	CodeMisconfiguration     = "misconfiguration"
	CodeDuplicateReference   = "duplicateReference"
	CodeProviderUnavailable  = "providerUnavailable"
	CodeVerificationRejected = "verificationRejected"
	CodeReceiverMismatch     = "receiverMismatch"
	CodeAppointmentNotFound  = "appointmentNotFound"
	CodePersistence          = "persistenceError"
)

// VerifyError is the typed failure the verification service returns. Status
// is the HTTP status the handler should answer with; Debug carries extra
// diagnostic fields for the response body.
type VerifyError struct {
	Code    string
	Status  int
	Message string
	Debug   map[string]string
	Err     error
}

func (e *VerifyError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *VerifyError) Unwrap() error {
	return e.Err
}

// AsVerifyError extracts a VerifyError from an error chain.
func AsVerifyError(err error) (*VerifyError, bool) {
	var verr *VerifyError
	ok := errors.As(err, &verr)
	return verr, ok
}

func errInvalidRequest(msg string) *VerifyError {
	return &VerifyError{Code: CodeInvalidRequest, Status: http.StatusBadRequest, Message: msg}
}

func errMisconfiguration(msg string) *VerifyError {
	return &VerifyError{Code: CodeMisconfiguration, Status: http.StatusInternalServerError, Message: msg}
}

func errDuplicateReference(refNbr string) *VerifyError {
	return &VerifyError{
		Code:    CodeDuplicateReference,
		Status:  http.StatusConflict,
		Message: fmt.Sprintf("slip reference %s has already been used", refNbr),
	}
}

func errProviderUnavailable(err error) *VerifyError {
	return &VerifyError{
		Code:    CodeProviderUnavailable,
		Status:  http.StatusInternalServerError,
		Message: "slip verification service is unavailable, please try again later",
		Err:     err,
	}
}

func errVerificationRejected(providerMsg string) *VerifyError {
	msg := "slip verification was rejected by the provider"
	if providerMsg != "" {
		msg = providerMsg
	}
	return &VerifyError{Code: CodeVerificationRejected, Status: http.StatusBadRequest, Message: msg}
}

func errReceiverMismatch(expected, got string) *VerifyError {
	return &VerifyError{
		Code:    CodeReceiverMismatch,
		Status:  http.StatusBadRequest,
		Message: "slip receiver does not match the clinic account",
		Debug:   map[string]string{"expected": expected, "got": got},
	}
}

func errAppointmentNotFound(bookingID string) *VerifyError {
	return &VerifyError{
		Code:    CodeAppointmentNotFound,
		Status:  http.StatusNotFound,
		Message: fmt.Sprintf("no appointment found for booking %s", bookingID),
	}
}

func errPersistence(err error) *VerifyError {
	return &VerifyError{
		Code:    CodePersistence,
		Status:  http.StatusInternalServerError,
		Message: "failed to update appointment",
		Err:     err,
	}
}

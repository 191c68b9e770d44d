package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinicbook/models"
	"clinicbook/services/payment"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubVerificationService struct {
	appt  *models.Appointment
	err   error
	calls int
}

func (s *stubVerificationService) VerifySlip(ctx context.Context, input models.SlipVerifyInput) (*models.Appointment, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.appt, nil
}

func newPaymentRouter(svc payment.SlipVerificationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewPaymentHandler(svc, zap.NewNop())
	r.POST("/api/payments/slip/verify", h.VerifySlipHandler)
	return r
}

func postSlipVerify(t *testing.T, r *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest(http.MethodPost, "/api/payments/slip/verify", &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestVerifySlipHandlerInputValidation(t *testing.T) {
	cases := []struct {
		name string
		body map[string]any
	}{
		{"Missing BookingID", map[string]any{"refNbr": "REF1", "amount": 100}},
		{"Missing RefNbr", map[string]any{"bookingID": "b-1", "amount": 100}},
		{"Missing Amount", map[string]any{"bookingID": "b-1", "refNbr": "REF1"}},
		{"Empty Body", map[string]any{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &stubVerificationService{}
			r := newPaymentRouter(svc)

			w := postSlipVerify(t, r, tc.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			body := decodeBody(t, w)
			assert.Equal(t, "failed", body["status"])
			assert.Zero(t, svc.calls, "service must not run on invalid input")
		})
	}
}

func TestVerifySlipHandlerStatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "Duplicate Reference Conflicts",
			err:        &payment.VerifyError{Code: payment.CodeDuplicateReference, Status: http.StatusConflict, Message: "slip reference REF1 has already been used"},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "Provider Unavailable Is Server Error",
			err:        &payment.VerifyError{Code: payment.CodeProviderUnavailable, Status: http.StatusInternalServerError, Message: "slip verification service is unavailable, please try again later"},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "Rejected Slip Is Bad Request",
			err:        &payment.VerifyError{Code: payment.CodeVerificationRejected, Status: http.StatusBadRequest, Message: "slip not found"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Unknown Booking Is Not Found",
			err:        &payment.VerifyError{Code: payment.CodeAppointmentNotFound, Status: http.StatusNotFound, Message: "no appointment found for booking b-1"},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newPaymentRouter(&stubVerificationService{err: tc.err})

			w := postSlipVerify(t, r, map[string]any{"bookingID": "b-1", "refNbr": "REF1", "amount": 100})

			assert.Equal(t, tc.wantStatus, w.Code)
			body := decodeBody(t, w)
			assert.Equal(t, "failed", body["status"])
			assert.NotEmpty(t, body["message"])
		})
	}
}

func TestVerifySlipHandlerReceiverMismatchDebug(t *testing.T) {
	verr := &payment.VerifyError{
		Code:    payment.CodeReceiverMismatch,
		Status:  http.StatusBadRequest,
		Message: "slip receiver does not match the clinic account",
		Debug:   map[string]string{"expected": "ACMECLINICCOLTD", "got": "SOMCHAIPRASERT"},
	}
	r := newPaymentRouter(&stubVerificationService{err: verr})

	w := postSlipVerify(t, r, map[string]any{"bookingID": "b-1", "refNbr": "REF1", "amount": 100})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	debug, ok := body["debug"].(map[string]any)
	require.True(t, ok, "mismatch response must carry the debug payload")
	assert.Equal(t, "ACMECLINICCOLTD", debug["expected"])
	assert.Equal(t, "SOMCHAIPRASERT", debug["got"])
}

func TestVerifySlipHandlerSuccess(t *testing.T) {
	appt := &models.Appointment{
		BookingID:   "b-1",
		UserDetails: models.UserDetails{Name: "Jane O'Brien", Email: "jane@example.com"},
		TimeSlot:    models.TimeSlot{Date: "2026-09-14", Time: "10:30"},
		Amount:      1500,
		PaymentVerification: &models.PaymentVerification{
			Status:        models.PaymentVerified,
			DecodedString: "REF-OK",
		},
	}
	r := newPaymentRouter(&stubVerificationService{appt: appt})

	w := postSlipVerify(t, r, map[string]any{"bookingID": "b-1", "refNbr": "REF-OK", "amount": 1500})

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "verified", body["status"])

	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "b-1", data["bookingId"])
	pv, ok := data["paymentVerification"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "verified", pv["status"])
	assert.Equal(t, "REF-OK", pv["decodedString"])
}

func TestVerifySlipHandlerUnexpectedError(t *testing.T) {
	r := newPaymentRouter(&stubVerificationService{err: assert.AnError})

	w := postSlipVerify(t, r, map[string]any{"bookingID": "b-1", "refNbr": "REF1", "amount": 100})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "failed", body["status"])
}

package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clinicbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func instantRetry(maxAttempts int) RetryPolicy {
	return RetryPolicy{
		MaxAttempts: maxAttempts,
		Backoff:     LinearBackoff(time.Second),
		Sleep: func(ctx context.Context, d time.Duration) error {
			return nil
		},
	}
}

func TestOpenSlipClientVerify(t *testing.T) {
	t.Run("Sends Token And Slip Details", func(t *testing.T) {
		var got models.SlipProviderRequest
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			json.NewEncoder(w).Encode(models.SlipProviderResponse{
				Success: true,
				Data:    &models.SlipProviderData{Receiver: models.SlipReceiver{Name: "ACME Clinic"}},
			})
		}))
		defer srv.Close()

		client := NewOpenSlipClient(srv.URL, "secret-token", time.Second, instantRetry(3), zap.NewNop())
		resp, err := client.Verify(context.Background(), "REF123", 499.50)

		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, "ACME Clinic", resp.Data.Receiver.Name)
		assert.Equal(t, "REF123", got.RefNbr)
		assert.Equal(t, 499.50, got.Amount)
		assert.Equal(t, "secret-token", got.Token)
	})

	t.Run("Retries Server Errors Then Succeeds", func(t *testing.T) {
		attempts := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			attempts++
			if attempts < 3 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			json.NewEncoder(w).Encode(models.SlipProviderResponse{Success: true})
		}))
		defer srv.Close()

		client := NewOpenSlipClient(srv.URL, "t", time.Second, instantRetry(3), zap.NewNop())
		resp, err := client.Verify(context.Background(), "REF123", 100)

		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, 3, attempts)
	})

	t.Run("Gives Up After Max Attempts", func(t *testing.T) {
		attempts := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			attempts++
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		client := NewOpenSlipClient(srv.URL, "t", time.Second, instantRetry(3), zap.NewNop())
		_, err := client.Verify(context.Background(), "REF123", 100)

		assert.Error(t, err)
		assert.Equal(t, 3, attempts)
	})

	t.Run("Rejected Verdict Is Returned Without Retry", func(t *testing.T) {
		attempts := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			attempts++
			json.NewEncoder(w).Encode(models.SlipProviderResponse{Success: false, Msg: "slip not found"})
		}))
		defer srv.Close()

		client := NewOpenSlipClient(srv.URL, "t", time.Second, instantRetry(3), zap.NewNop())
		resp, err := client.Verify(context.Background(), "REF123", 100)

		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, "slip not found", resp.Message())
		assert.Equal(t, 1, attempts, "a decoded rejection is a verdict, not a transport failure")
	})
}

package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"clinicbook/models"

	"go.uber.org/zap"
)

// SlipVerifier calls the external verification provider with a slip
// reference and the paid amount.
type SlipVerifier interface {
	Verify(ctx context.Context, refNbr string, amount float64) (*models.SlipProviderResponse, error)
}

// OpenSlipClient verifies slips against the OpenSlipVerify HTTP API. Each
// attempt gets its own timeout; network errors, timeouts and non-2xx
// responses are retried uniformly under the configured policy. A decoded
// success:false verdict is a provider decision and is not retried.
type OpenSlipClient struct {
	url    string
	token  string
	client *http.Client
	retry  RetryPolicy
	logger *zap.Logger
}

// NewOpenSlipClient builds a provider client. attemptTimeout bounds each
// individual HTTP attempt, not the whole retried call.
func NewOpenSlipClient(url, token string, attemptTimeout time.Duration, retry RetryPolicy, logger *zap.Logger) *OpenSlipClient {
	return &OpenSlipClient{
		url:    url,
		token:  token,
		client: &http.Client{Timeout: attemptTimeout},
		retry:  retry,
		logger: logger,
	}
}

func (c *OpenSlipClient) Verify(ctx context.Context, refNbr string, amount float64) (*models.SlipProviderResponse, error) {
	payload, err := json.Marshal(models.SlipProviderRequest{
		RefNbr: refNbr,
		Amount: amount,
		Token:  c.token,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode verification request: %w", err)
	}

	var resp *models.SlipProviderResponse
	attempt := 0
	err = c.retry.Do(ctx, func(ctx context.Context) error {
		attempt++
		r, attemptErr := c.doAttempt(ctx, payload)
		if attemptErr != nil {
			c.logger.Warn("slip verification attempt failed",
				zap.Int("attempt", attempt),
				zap.String("refNbr", refNbr),
				zap.Error(attemptErr))
			return attemptErr
		}
		resp = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *OpenSlipClient) doAttempt(ctx context.Context, payload []byte) (*models.SlipProviderResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build provider request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("provider call failed: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read provider response: %w", err)
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("provider returned status %d: %s", res.StatusCode, string(body))
	}

	var out models.SlipProviderResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to decode provider response: %w", err)
	}
	return &out, nil
}

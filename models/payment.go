package models

// SlipVerifyInput is the request body for the slip verification endpoint.
type SlipVerifyInput struct {
	BookingID string   `json:"bookingID" binding:"required"`
	RefNbr    string   `json:"refNbr" binding:"required"`
	Amount    *float64 `json:"amount" binding:"required"`
}

// SlipProviderRequest is the outbound payload for the verification provider.
type SlipProviderRequest struct {
	RefNbr string  `json:"refNbr"`
	Amount float64 `json:"amount"`
	Token  string  `json:"token"`
}

// SlipReceiver is the payee identity inside a provider response.
type SlipReceiver struct {
	Name string `json:"name"`
}

// SlipProviderData carries the decoded slip details on success.
type SlipProviderData struct {
	Receiver SlipReceiver `json:"receiver"`
}

// SlipProviderResponse is the provider's verification verdict. The provider
// reports its message under either statusMessage or msg depending on the
// failure path.
type SlipProviderResponse struct {
	Success       bool              `json:"success"`
	Data          *SlipProviderData `json:"data,omitempty"`
	StatusMessage string            `json:"statusMessage,omitempty"`
	Msg           string            `json:"msg,omitempty"`
}

// Message returns whichever provider message field is populated.
func (r SlipProviderResponse) Message() string {
	if r.StatusMessage != "" {
		return r.StatusMessage
	}
	return r.Msg
}

// Package api - Request and response types
package api

import (
	"bytes"
	"encoding/json"
	"fmt"

	"solar-quote/core/types"
)

// Amount is a number sent either as a JSON number or as a string, so
// clients can forward user-entered text unchanged.
type Amount string

// UnmarshalJSON implements json.Unmarshaler
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("amount must be a number or a string: %w", err)
	}
	*a = Amount(n.String())
	return nil
}

// InstallationRequest is the body of POST /v1/installation
type InstallationRequest struct {
	Consumption Amount `json:"consumption"`
}

// SavingsRequest is the body of POST /v1/savings
type SavingsRequest struct {
	Consumption Amount `json:"consumption"`
	Rate        Amount `json:"rate"`
}

// PaybackResponse adds the display text to a payback
type PaybackResponse struct {
	types.Payback
	Text string `json:"text"`
}

// ErrorResponse is the error envelope
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail describes an error
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

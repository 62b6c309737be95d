// Package api defines response types shared by every HTTP endpoint.
package api

import (
	"encoding/json"
	"math"
)

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NullableFloat is a float64 that marshals NaN (and infinities) as JSON null.
// Aggregations over an empty selection produce NaN means and undefined
// correlation cells; encoding/json rejects those values, so response DTOs
// use this type wherever a statistic can be undefined.
type NullableFloat float64

// MarshalJSON encodes the value, mapping NaN and ±Inf to null.
func (f NullableFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(v)
}

// UnmarshalJSON decodes the value, mapping null back to NaN.
func (f *NullableFloat) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*f = NullableFloat(math.NaN())
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*f = NullableFloat(v)
	return nil
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Money and quantities go over the wire as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// DataResponse is the success envelope.
type DataResponse struct {
	OK   bool `json:"ok"`
	Data any  `json:"data"`
}

// ErrorResponse is the error envelope written by every handler.
type ErrorResponse struct {
	OK      bool   `json:"ok"`
	Code    string `json:"code"`
	Message string `json:"error"`
}

// HealthResponse body of GET /health, also the shape expected from the upstream.
type HealthResponse struct {
	OK   bool      `json:"ok"`
	Time time.Time `json:"time"`
}

// LicenseResponse body of GET /license/verify.
type LicenseResponse struct {
	OK        bool       `json:"ok"`
	Active    bool       `json:"active"`
	ExpiresAt *time.Time `json:"expires_at"`
}

// Money rounds a full-precision amount to whole currency units for presentation.
func Money(d decimal.Decimal) decimal.Decimal {
	return d.Round(0)
}

// MoneyPtr is Money for optional amounts.
func MoneyPtr(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}
	r := Money(*d)
	return &r
}

package dto

import "strings"

// QrPayload is the JSON document encoded into the QR image and sent back
// verbatim by the scanner on redemption.
type QrPayload struct {
	Type       string `json:"type"`
	EntityID   string `json:"entityId"`
	UniqueCode string `json:"uniqueCode"`
}

type ProcessPaymentRequest struct {
	QrData string `json:"qrData" validate:"required"`
}

func (r *ProcessPaymentRequest) Normalize() {
	r.QrData = strings.TrimSpace(r.QrData)
}

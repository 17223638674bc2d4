package dto

import "strings"

// MidtransNotification carries the subset of the payment gateway webhook
// body the order state machine needs.
type MidtransNotification struct {
	OrderID           string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
}

func (n *MidtransNotification) Normalize() {
	n.OrderID = strings.TrimSpace(n.OrderID)
	n.TransactionStatus = strings.TrimSpace(n.TransactionStatus)
	n.FraudStatus = strings.TrimSpace(n.FraudStatus)
}

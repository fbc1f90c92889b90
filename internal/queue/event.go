// Package queue defines message payloads exchanged over the message broker.
package queue

// PaymentRecordedEvent is published when a payment is successfully recorded.
// It carries enough information for downstream consumers (ledger exports,
// receipts, notifications) without querying the primary database.
type PaymentRecordedEvent struct {
	PaymentID   int64   `json:"payment_id"`
	MemberID    int64   `json:"member_id"`
	Amount      float64 `json:"amount"`
	PaymentType string  `json:"payment_type"`
	PaymentDate string  `json:"payment_date"`
	Status      string  `json:"status"`
	RecordedAt  string  `json:"recorded_at"`
}

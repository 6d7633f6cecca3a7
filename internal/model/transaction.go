// Package model defines the core domain models used throughout the application.
package model

import "time"

// TransactionType indicates the direction of money movement.
type TransactionType string

// Transaction type constants.
const (
	TypeCredit TransactionType = "CREDIT"
	TypeDebit  TransactionType = "DEBIT"
)

// PaymentMode identifies the payment rail a transaction travelled on.
type PaymentMode string

// Payment mode constants.
const (
	ModeUPI     PaymentMode = "UPI"
	ModeCard    PaymentMode = "CARD"
	ModeNEFT    PaymentMode = "NEFT"
	ModeIMPS    PaymentMode = "IMPS"
	ModeCash    PaymentMode = "CASH"
	ModeMandate PaymentMode = "MANDATE"
	ModeCheque  PaymentMode = "CHEQUE"
)

// Transaction represents a single financial transaction from any source.
// Amount is always positive in currency units; direction is carried by Type.
type Transaction struct {
	Date         time.Time       `json:"date"`
	Metadata     map[string]any  `json:"metadata,omitempty"`
	ID           string          `json:"id"`
	Description  string          `json:"description"`
	Type         TransactionType `json:"type"`
	Mode         PaymentMode     `json:"mode,omitempty"`
	MerchantID   string          `json:"merchant_id,omitempty"`
	MerchantName string          `json:"merchant_name,omitempty"`
	MCC          string          `json:"mcc,omitempty"`
	UPIHandle    string          `json:"upi_handle,omitempty"`
	Amount       float64         `json:"amount"`
}

// CategorizedTransaction is a Transaction after classification.
// Tags records which resolution step fired (e.g. "mcc", "cached", "ai",
// or a subcategory name) and is never nil.
type CategorizedTransaction struct {
	Transaction
	Category         Category `json:"category"`
	SubCategory      string   `json:"sub_category,omitempty"`
	MerchantCategory string   `json:"merchant_category,omitempty"`
	Tags             []string `json:"tags"`
	Confidence       float64  `json:"confidence"`
	IsRecurring      bool     `json:"is_recurring"`
}

// HasTag reports whether the classification carries the given tag.
func (t *CategorizedTransaction) HasTag(tag string) bool {
	for _, existing := range t.Tags {
		if existing == tag {
			return true
		}
	}
	return false
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// PaymentCategory is the closed set of payment kinds
type PaymentCategory string

const (
	PaymentCategoryOneTime PaymentCategory = "OneTime"
)

// Valid reports whether c is a known category
func (c PaymentCategory) Valid() bool {
	switch c {
	case PaymentCategoryOneTime:
		return true
	default:
		return false
	}
}

// Payment represents a payment link owned by a merchant user
type Payment struct {
	ID          int64           `json:"-" db:"id"`
	PublicID    uuid.UUID       `json:"id" db:"public_id"`
	Title       string          `json:"title" db:"title"`
	Description string          `json:"description" db:"description"`
	Category    PaymentCategory `json:"category" db:"category"`
	Amount      int64           `json:"amount" db:"amount"`
	UserID      int64           `json:"user_id" db:"user_id"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
}

// PaymentWithReceiver is a payment joined with its owner's receiving wallet
type PaymentWithReceiver struct {
	Payment
	ReceiverWallet *string `db:"wallet_address"`
}

// CreatePaymentRequest represents a request to create a payment
type CreatePaymentRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    PaymentCategory `json:"category"`
	Amount      int64           `json:"amount"`
}

// Package dto defines the data transfer objects crossing the repository
// boundary for bank accounts.
package dto

import (
	"time"

	"github.com/google/uuid"
)

// BankAccountCreate carries the fields needed to insert a new bank account.
// ID is assigned by the service before the repository is called.
type BankAccountCreate struct {
	ID            uuid.UUID
	AccountName   string
	BankName      string
	AccountNumber string
	HolderName    string
	Balance       int64
	Currency      string
}

// BankAccountUpdate carries a partial update; nil fields are left untouched.
type BankAccountUpdate struct {
	AccountName   *string
	BankName      *string
	AccountNumber *string
	HolderName    *string
	Balance       *int64
	Currency      *string
}

// BankAccountRead is the read-optimized representation returned by queries
// and serialized on the HTTP surface.
type BankAccountRead struct {
	ID            uuid.UUID `json:"id"`
	AccountName   string    `json:"accountName"`
	BankName      string    `json:"bankName"`
	AccountNumber string    `json:"accountNumber"`
	HolderName    string    `json:"holderName,omitempty"`
	Balance       int64     `json:"balance"`
	Currency      string    `json:"currency"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

package bankaccount

import (
	"time"

	"github.com/google/uuid"
)

// BankAccount represents a bank account record in the database.
type BankAccount struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountName   string    `gorm:"not null"`
	BankName      string    `gorm:"not null"`
	AccountNumber string    `gorm:"not null;index"`
	HolderName    string
	Balance       int64
	Currency      string `gorm:"type:varchar(3);not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the table name for the BankAccount model.
func (BankAccount) TableName() string {
	return "bank_accounts"
}

package bankaccount

import (
	"github.com/google/uuid"

	"github.com/mycompany/bankapp/pkg/dto"
)

// BankAccountRequest is the JSON body accepted by the create and update
// endpoints. ID must be omitted on create; its absence on update turns the
// request into a creation.
type BankAccountRequest struct {
	ID            uuid.UUID `json:"id,omitempty"`
	AccountName   string    `json:"accountName" validate:"required"`
	BankName      string    `json:"bankName" validate:"required"`
	AccountNumber string    `json:"accountNumber" validate:"required"`
	HolderName    string    `json:"holderName"`
	Balance       int64     `json:"balance"`
	Currency      string    `json:"currency" validate:"omitempty,len=3,alpha"`
}

func (r *BankAccountRequest) toCreateDTO() dto.BankAccountCreate {
	return dto.BankAccountCreate{
		AccountName:   r.AccountName,
		BankName:      r.BankName,
		AccountNumber: r.AccountNumber,
		HolderName:    r.HolderName,
		Balance:       r.Balance,
		Currency:      r.Currency,
	}
}

func (r *BankAccountRequest) toUpdateDTO() dto.BankAccountUpdate {
	// PUT carries the full representation, so every field is applied.
	update := dto.BankAccountUpdate{
		AccountName:   &r.AccountName,
		BankName:      &r.BankName,
		AccountNumber: &r.AccountNumber,
		HolderName:    &r.HolderName,
		Balance:       &r.Balance,
	}
	if r.Currency != "" {
		update.Currency = &r.Currency
	}
	return update
}

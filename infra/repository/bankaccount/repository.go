// Package bankaccount implements the primary-store repository on GORM.
package bankaccount

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mycompany/bankapp/pkg/domain"
	"github.com/mycompany/bankapp/pkg/dto"
	repo "github.com/mycompany/bankapp/pkg/repository"
)

type repository struct {
	db *gorm.DB
}

// New creates a bank account repository using the provided *gorm.DB.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

// Create implements repository.Repository.
func (r *repository) Create(ctx context.Context, create dto.BankAccountCreate) error {
	acct := mapCreateDTOToModel(create)
	return r.db.WithContext(ctx).Create(&acct).Error
}

// Update implements repository.Repository.
func (r *repository) Update(ctx context.Context, id uuid.UUID, update dto.BankAccountUpdate) error {
	updates := mapUpdateDTOToModel(update)
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&BankAccount{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// Get implements repository.Repository.
func (r *repository) Get(ctx context.Context, id uuid.UUID) (*dto.BankAccountRead, error) {
	var acct BankAccount
	if err := r.db.WithContext(ctx).First(&acct, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBankAccountNotFound
		}
		return nil, err
	}
	return mapModelToDTO(&acct), nil
}

// List implements repository.Repository.
func (r *repository) List(ctx context.Context) ([]*dto.BankAccountRead, error) {
	var accts []BankAccount
	if err := r.db.WithContext(ctx).Find(&accts).Error; err != nil {
		return nil, err
	}
	result := make([]*dto.BankAccountRead, 0, len(accts))
	for i := range accts {
		result = append(result, mapModelToDTO(&accts[i]))
	}
	return result, nil
}

// Delete implements repository.Repository.
func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	tx := r.db.WithContext(ctx).Delete(&BankAccount{}, "id = ?", id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrBankAccountNotFound
	}
	return nil
}

// mapCreateDTOToModel maps a BankAccountCreate DTO to the GORM model.
func mapCreateDTOToModel(create dto.BankAccountCreate) BankAccount {
	currency := create.Currency
	if currency == "" {
		currency = "USD"
	}
	return BankAccount{
		ID:            create.ID,
		AccountName:   create.AccountName,
		BankName:      create.BankName,
		AccountNumber: create.AccountNumber,
		HolderName:    create.HolderName,
		Balance:       create.Balance,
		Currency:      currency,
	}
}

// mapUpdateDTOToModel maps a BankAccountUpdate DTO to a map for GORM Updates.
func mapUpdateDTOToModel(update dto.BankAccountUpdate) map[string]any {
	updates := make(map[string]any)
	if update.AccountName != nil {
		updates["account_name"] = *update.AccountName
	}
	if update.BankName != nil {
		updates["bank_name"] = *update.BankName
	}
	if update.AccountNumber != nil {
		updates["account_number"] = *update.AccountNumber
	}
	if update.HolderName != nil {
		updates["holder_name"] = *update.HolderName
	}
	if update.Balance != nil {
		updates["balance"] = *update.Balance
	}
	if update.Currency != nil {
		updates["currency"] = *update.Currency
	}
	return updates
}

// mapModelToDTO maps a GORM model to a read-optimized DTO.
func mapModelToDTO(acct *BankAccount) *dto.BankAccountRead {
	return &dto.BankAccountRead{
		ID:            acct.ID,
		AccountName:   acct.AccountName,
		BankName:      acct.BankName,
		AccountNumber: acct.AccountNumber,
		HolderName:    acct.HolderName,
		Balance:       acct.Balance,
		Currency:      acct.Currency,
		CreatedAt:     acct.CreatedAt,
		UpdatedAt:     acct.UpdatedAt,
	}
}

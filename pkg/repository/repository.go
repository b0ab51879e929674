// Package repository defines the persistence interfaces for bank accounts.
// The primary store holds the source of truth; the search store is a
// secondary index kept in sync on every write.
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/mycompany/bankapp/pkg/dto"
)

// Repository is the primary-store contract for bank accounts.
type Repository interface {
	// Create inserts a new bank account record from a DTO.
	Create(ctx context.Context, create dto.BankAccountCreate) error

	// Update applies a partial update to the bank account with the given ID.
	Update(ctx context.Context, id uuid.UUID, update dto.BankAccountUpdate) error

	// Get retrieves a bank account by its ID as a read-optimized DTO.
	// Returns domain.ErrBankAccountNotFound when no record matches.
	Get(ctx context.Context, id uuid.UUID) (*dto.BankAccountRead, error)

	// List returns all bank accounts.
	List(ctx context.Context) ([]*dto.BankAccountRead, error)

	// Delete removes the bank account with the given ID.
	// Returns domain.ErrBankAccountNotFound when no record matches.
	Delete(ctx context.Context, id uuid.UUID) error
}

// SearchRepository is the secondary free-text index contract.
type SearchRepository interface {
	// Index stores or replaces the searchable document for a bank account.
	Index(ctx context.Context, doc *dto.BankAccountRead) error

	// Search returns all bank accounts matching the free-text query.
	Search(ctx context.Context, query string) ([]*dto.BankAccountRead, error)

	// Delete removes a bank account from the index. Deleting an ID that was
	// never indexed is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}

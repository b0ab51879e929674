// Package bankaccount implements the application service for the BankAccount
// resource: writes go to the primary store first and are then mirrored into
// the search index so the two stay in sync.
package bankaccount

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mycompany/bankapp/pkg/domain"
	"github.com/mycompany/bankapp/pkg/dto"
	"github.com/mycompany/bankapp/pkg/repository"
)

// Service coordinates the primary repository and the search index.
type Service struct {
	repo   repository.Repository
	search repository.SearchRepository
	logger *slog.Logger
}

// New creates a bank account service.
func New(
	repo repository.Repository,
	search repository.SearchRepository,
	logger *slog.Logger,
) *Service {
	return &Service{repo: repo, search: search, logger: logger}
}

// Create stores a new bank account and indexes it. The submitted DTO must not
// carry an ID; the service assigns one.
func (s *Service) Create(
	ctx context.Context,
	create dto.BankAccountCreate,
) (*dto.BankAccountRead, error) {
	if create.ID != uuid.Nil {
		return nil, domain.ErrIDAlreadySet
	}
	create.ID = uuid.New()
	if create.Currency == "" {
		create.Currency = "USD"
	}

	if err := s.repo.Create(ctx, create); err != nil {
		s.logger.Error("failed to create bank account", "error", err)
		return nil, err
	}
	read, err := s.repo.Get(ctx, create.ID)
	if err != nil {
		return nil, err
	}
	if err := s.search.Index(ctx, read); err != nil {
		s.logger.Error("failed to index bank account", "id", read.ID, "error", err)
		return nil, err
	}
	s.logger.Info("bank account created", "id", read.ID)
	return read, nil
}

// Update applies the update to an existing bank account and re-indexes the
// stored state. Returns domain.ErrBankAccountNotFound when the ID is unknown.
func (s *Service) Update(
	ctx context.Context,
	id uuid.UUID,
	update dto.BankAccountUpdate,
) (*dto.BankAccountRead, error) {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, id, update); err != nil {
		s.logger.Error("failed to update bank account", "id", id, "error", err)
		return nil, err
	}
	read, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.search.Index(ctx, read); err != nil {
		s.logger.Error("failed to re-index bank account", "id", id, "error", err)
		return nil, err
	}
	s.logger.Info("bank account updated", "id", id)
	return read, nil
}

// Get returns a single bank account by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*dto.BankAccountRead, error) {
	return s.repo.Get(ctx, id)
}

// List returns all bank accounts from the primary store.
func (s *Service) List(ctx context.Context) ([]*dto.BankAccountRead, error) {
	return s.repo.List(ctx)
}

// Delete removes a bank account from the primary store and the search index.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.search.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete bank account from index", "id", id, "error", err)
		return err
	}
	s.logger.Info("bank account deleted", "id", id)
	return nil
}

// Search runs a free-text query against the search index.
func (s *Service) Search(ctx context.Context, query string) ([]*dto.BankAccountRead, error) {
	return s.search.Search(ctx, query)
}

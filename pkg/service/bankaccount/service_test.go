package bankaccount

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mycompany/bankapp/pkg/domain"
	"github.com/mycompany/bankapp/pkg/dto"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, create dto.BankAccountCreate) error {
	args := m.Called(ctx, create)
	return args.Error(0)
}

func (m *mockRepository) Update(ctx context.Context, id uuid.UUID, update dto.BankAccountUpdate) error {
	args := m.Called(ctx, id, update)
	return args.Error(0)
}

func (m *mockRepository) Get(ctx context.Context, id uuid.UUID) (*dto.BankAccountRead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BankAccountRead), args.Error(1)
}

func (m *mockRepository) List(ctx context.Context) ([]*dto.BankAccountRead, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*dto.BankAccountRead), args.Error(1)
}

func (m *mockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockSearchRepository struct {
	mock.Mock
}

func (m *mockSearchRepository) Index(ctx context.Context, doc *dto.BankAccountRead) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *mockSearchRepository) Search(ctx context.Context, query string) ([]*dto.BankAccountRead, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*dto.BankAccountRead), args.Error(1)
}

func (m *mockSearchRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newService(t *testing.T) (*Service, *mockRepository, *mockSearchRepository) {
	t.Helper()
	repo := new(mockRepository)
	search := new(mockSearchRepository)
	svc := New(repo, search, slog.Default())
	return svc, repo, search
}

func TestCreateRejectsPresetID(t *testing.T) {
	svc, repo, search := newService(t)

	_, err := svc.Create(context.Background(), dto.BankAccountCreate{
		ID:          uuid.New(),
		AccountName: "Checking",
	})

	require.ErrorIs(t, err, domain.ErrIDAlreadySet)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	search.AssertNotCalled(t, "Index", mock.Anything, mock.Anything)
}

func TestCreateAssignsIDAndIndexes(t *testing.T) {
	svc, repo, search := newService(t)

	var assignedID uuid.UUID
	repo.On("Create", mock.Anything, mock.MatchedBy(func(c dto.BankAccountCreate) bool {
		assignedID = c.ID
		return c.ID != uuid.Nil && c.Currency == "USD"
	})).Return(nil)
	read := &dto.BankAccountRead{AccountName: "Checking"}
	repo.On("Get", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		read.ID = args.Get(1).(uuid.UUID)
	}).Return(read, nil)
	search.On("Index", mock.Anything, read).Return(nil)

	got, err := svc.Create(context.Background(), dto.BankAccountCreate{AccountName: "Checking"})
	require.NoError(t, err)
	assert.Equal(t, assignedID, got.ID)

	repo.AssertExpectations(t)
	search.AssertExpectations(t)
}

func TestCreateDoesNotIndexOnStoreError(t *testing.T) {
	svc, repo, search := newService(t)

	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("insert failed"))

	_, err := svc.Create(context.Background(), dto.BankAccountCreate{AccountName: "Checking"})
	require.Error(t, err)
	search.AssertNotCalled(t, "Index", mock.Anything, mock.Anything)
}

func TestUpdateReindexesStoredState(t *testing.T) {
	svc, repo, search := newService(t)
	id := uuid.New()

	name := "Renamed"
	read := &dto.BankAccountRead{ID: id, AccountName: name}
	repo.On("Get", mock.Anything, id).Return(read, nil)
	repo.On("Update", mock.Anything, id, mock.Anything).Return(nil)
	search.On("Index", mock.Anything, read).Return(nil)

	got, err := svc.Update(context.Background(), id, dto.BankAccountUpdate{AccountName: &name})
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)

	repo.AssertExpectations(t)
	search.AssertExpectations(t)
}

func TestUpdateMissingAccount(t *testing.T) {
	svc, repo, search := newService(t)
	id := uuid.New()

	repo.On("Get", mock.Anything, id).Return(nil, domain.ErrBankAccountNotFound)

	_, err := svc.Update(context.Background(), id, dto.BankAccountUpdate{})
	require.ErrorIs(t, err, domain.ErrBankAccountNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	search.AssertNotCalled(t, "Index", mock.Anything, mock.Anything)
}

func TestDeleteRemovesFromBothStores(t *testing.T) {
	svc, repo, search := newService(t)
	id := uuid.New()

	repo.On("Delete", mock.Anything, id).Return(nil)
	search.On("Delete", mock.Anything, id).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), id))
	repo.AssertExpectations(t)
	search.AssertExpectations(t)
}

func TestDeleteMissingAccountSkipsIndex(t *testing.T) {
	svc, repo, search := newService(t)
	id := uuid.New()

	repo.On("Delete", mock.Anything, id).Return(domain.ErrBankAccountNotFound)

	err := svc.Delete(context.Background(), id)
	require.ErrorIs(t, err, domain.ErrBankAccountNotFound)
	search.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestSearchDelegatesToIndex(t *testing.T) {
	svc, _, search := newService(t)

	want := []*dto.BankAccountRead{{ID: uuid.New(), AccountName: "Savings"}}
	search.On("Search", mock.Anything, "savings").Return(want, nil)

	got, err := svc.Search(context.Background(), "savings")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// Package domain holds the BankAccount entity and the domain errors shared
// across the service, repository, and HTTP layers.
package domain

import "errors"

var (
	// ErrBankAccountNotFound is returned when no bank account matches the
	// requested identifier.
	ErrBankAccountNotFound = errors.New("bank account not found")

	// ErrIDAlreadySet is returned when a bank account submitted for creation
	// already carries an identifier.
	ErrIDAlreadySet = errors.New("a new bankAccount cannot already have an ID")
)

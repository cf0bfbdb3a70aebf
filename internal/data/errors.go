// internal/data/errors.go
// This file defines the closed set of error kinds the data layer may produce
// and the classification of raw driver failures into that set. Classification
// happens exactly once, here; handlers only ever switch on the resulting kind.
package data

import (
	"errors"

	"github.com/lib/pq"
)

// ErrorKind identifies one of the failure categories a store operation can
// report. The set is closed: every error leaving this package is either the
// ErrRecordNotFound sentinel or a *StoreError carrying one of these kinds.
type ErrorKind int

const (
	// NotFound means the operation targeted an id with no matching row.
	NotFound ErrorKind = iota
	// DuplicateKey means a unique constraint (category name, ISBN, or the
	// title/author/category triple) rejected the write.
	DuplicateKey
	// ReferentialConstraint means a delete was blocked by rows that still
	// reference the target.
	ReferentialConstraint
	// InvalidInput means malformed or dangling values reached the store
	// despite validation, e.g. a category_id that no longer exists.
	InvalidInput
	// Internal covers everything unclassified: connectivity, syntax, driver bugs.
	Internal
)

// String returns the kind's name for logging.
func (k ErrorKind) String() string {
	switch k {
	case NotFound:
		return "not_found"
	case DuplicateKey:
		return "duplicate_key"
	case ReferentialConstraint:
		return "referential_constraint"
	case InvalidInput:
		return "invalid_input"
	default:
		return "internal"
	}
}

// StoreError is the tagged result type for store-layer failures. Message is
// safe to show to users; Cause is the raw driver error, kept for logging.
type StoreError struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

// Error returns the user-facing message, falling back to the cause.
func (e *StoreError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return e.Kind.String()
}

// Unwrap exposes the original driver error so classification never loses the cause.
func (e *StoreError) Unwrap() error {
	return e.Cause
}

// ErrRecordNotFound is returned when a query finds no matching row. It is a
// sentinel, not a failure: repositories return it instead of an error for the
// simply-missing case, and reserve classified errors for real store failures.
var ErrRecordNotFound = &StoreError{Kind: NotFound, Message: "record not found"}

// PostgreSQL error codes the classifier recognizes.
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
	pgInvalidTextRep      = "22P02"
)

// classify wraps a raw driver error into the taxonomy. Unique violations are
// named by constraint; foreign-key violations are split by the table postgres
// reports against: a blocked DELETE on categories is a referential-constraint
// failure, while a bad category_id on a book write is invalid input.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return &StoreError{Kind: Internal, Message: "the server encountered a problem and could not process your request", Cause: err}
	}

	switch pqErr.Code {
	case pgUniqueViolation:
		return &StoreError{Kind: DuplicateKey, Message: duplicateKeyMessage(pqErr.Constraint), Cause: err}

	case pgForeignKeyViolation:
		if pqErr.Table == "categories" {
			return &StoreError{
				Kind:    ReferentialConstraint,
				Message: "This category still has books assigned to it. Reassign or delete those books first.",
				Cause:   err,
			}
		}
		return &StoreError{Kind: InvalidInput, Message: "The selected category does not exist.", Cause: err}

	case pgCheckViolation, pgInvalidTextRep:
		return &StoreError{Kind: InvalidInput, Message: "One or more submitted values are out of range.", Cause: err}

	default:
		return &StoreError{Kind: Internal, Message: "the server encountered a problem and could not process your request", Cause: err}
	}
}

// duplicateKeyMessage maps a unique constraint name to a message that names
// the conflicting field, matching the schema created by cmd/seed.
func duplicateKeyMessage(constraint string) string {
	switch constraint {
	case "categories_name_key":
		return "A category with this name already exists."
	case "books_isbn_key":
		return "A book with this ISBN already exists."
	case "books_title_author_category_id_key":
		return "This title by this author already exists in the selected category."
	default:
		return "A record with these values already exists."
	}
}

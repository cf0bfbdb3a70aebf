package data

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyNil(t *testing.T) {
	assert.NoError(t, classify(nil))
}

func TestClassifyUniqueViolations(t *testing.T) {
	tests := []struct {
		constraint string
		message    string
	}{
		{"categories_name_key", "A category with this name already exists."},
		{"books_isbn_key", "A book with this ISBN already exists."},
		{"books_title_author_category_id_key", "This title by this author already exists in the selected category."},
		{"some_other_key", "A record with these values already exists."},
	}

	for _, tt := range tests {
		t.Run(tt.constraint, func(t *testing.T) {
			cause := &pq.Error{Code: "23505", Constraint: tt.constraint}
			err := classify(cause)

			var storeErr *StoreError
			require.ErrorAs(t, err, &storeErr)
			assert.Equal(t, DuplicateKey, storeErr.Kind)
			assert.Equal(t, tt.message, storeErr.Message)
		})
	}
}

func TestClassifyForeignKeyViolations(t *testing.T) {
	// A blocked DELETE reports against the categories table.
	err := classify(&pq.Error{Code: "23503", Table: "categories", Constraint: "books_category_id_fkey"})

	var storeErr *StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, ReferentialConstraint, storeErr.Kind)
	assert.Contains(t, storeErr.Message, "Reassign or delete those books first")

	// A dangling category_id on a book write reports against the books table.
	err = classify(&pq.Error{Code: "23503", Table: "books", Constraint: "books_category_id_fkey"})

	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, InvalidInput, storeErr.Kind)
	assert.Equal(t, "The selected category does not exist.", storeErr.Message)
}

func TestClassifyCheckAndCoercionViolations(t *testing.T) {
	for _, code := range []pq.ErrorCode{"23514", "22P02"} {
		err := classify(&pq.Error{Code: code})

		var storeErr *StoreError
		require.ErrorAs(t, err, &storeErr)
		assert.Equal(t, InvalidInput, storeErr.Kind)
	}
}

func TestClassifyUnknownErrorIsInternal(t *testing.T) {
	cause := errors.New("connection reset by peer")
	err := classify(cause)

	var storeErr *StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, Internal, storeErr.Kind)

	// Classification never loses the original cause.
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestClassifyUnrecognizedPqCodeIsInternal(t *testing.T) {
	cause := &pq.Error{Code: "42601", Message: "syntax error"}
	err := classify(cause)

	var storeErr *StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, Internal, storeErr.Kind)
	assert.ErrorIs(t, err, cause)
}

func TestClassifyKeepsCauseThroughWrapping(t *testing.T) {
	// Errors already wrapped by fmt.Errorf still classify by the pq cause.
	cause := &pq.Error{Code: "23505", Constraint: "books_isbn_key"}
	err := classify(fmt.Errorf("insert book: %w", cause))

	var storeErr *StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, DuplicateKey, storeErr.Kind)
}

func TestRecordNotFoundSentinel(t *testing.T) {
	// The sentinel is both Is-able as itself and As-able into the taxonomy.
	var err error = ErrRecordNotFound
	assert.ErrorIs(t, err, ErrRecordNotFound)

	var storeErr *StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, NotFound, storeErr.Kind)
	assert.Equal(t, "record not found", storeErr.Error())
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "not_found", NotFound.String())
	assert.Equal(t, "duplicate_key", DuplicateKey.String())
	assert.Equal(t, "referential_constraint", ReferentialConstraint.String())
	assert.Equal(t, "invalid_input", InvalidInput.String())
	assert.Equal(t, "internal", Internal.String())
}

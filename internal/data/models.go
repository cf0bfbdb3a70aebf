// internal/data/models.go
package data

import "database/sql"

// BookStore is the operation set handlers need over the books table.
// The concrete implementation is BookModel; tests substitute stubs.
type BookStore interface {
	GetAll() ([]*Book, error)
	GetAllByCategory(categoryID int64) ([]*Book, error)
	Get(id int64) (*Book, error)
	Insert(input BookInput) (*Book, error)
	Update(id int64, input BookInput) (*Book, error)
	Delete(id int64) (*Book, error)
}

// CategoryStore is the operation set handlers need over the categories table.
type CategoryStore interface {
	GetAll() ([]*Category, error)
	Get(id int64) (*Category, error)
	Insert(input CategoryInput) (*Category, error)
	Update(id int64, input CategoryInput) (*Category, error)
	Delete(id int64) (*Category, error)
}

// Models is a top-level container that groups all database model types
// together. It is passed around the application via the dependency struct so
// every handler has access to the database without importing sql directly.
type Models struct {
	Books      BookStore
	Categories CategoryStore
}

// NewModels constructs a Models value wired up to the given database
// connection pool. Call this once during application startup.
func NewModels(db *sql.DB) Models {
	return Models{
		Books:      BookModel{DB: db},
		Categories: CategoryModel{DB: db},
	}
}

// nullable converts a cleaned optional string into its SQL representation:
// a blank value is stored as NULL rather than an empty string.
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// Package data provides the data models, form validation, and database
// interaction logic for the book inventory.
package data

import (
	"database/sql"
	"errors"
)

// Book represents a single book record stored in the database.
// CategoryName is denormalized from the left join against categories and is
// only populated by read operations.
type Book struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Author       string  `json:"author"`
	ISBN         string  `json:"isbn"`
	Description  string  `json:"description,omitempty"`
	Price        float64 `json:"price"`
	Stock        int     `json:"stock"`
	CategoryID   int64   `json:"category_id"`
	CategoryName string  `json:"category_name,omitempty"`
}

// BookInput holds the cleaned, coerced field set produced by ValidateBookForm.
// It is the only shape the repository accepts for writes, so persistence never
// sees untrimmed or wrongly-typed data.
type BookInput struct {
	Title       string
	Author      string
	ISBN        string
	Description string
	Price       float64
	Stock       int
	CategoryID  int64
}

// BookModel wraps a *sql.DB connection and provides methods for
// creating, reading, updating, and deleting book records.
type BookModel struct {
	DB *sql.DB // Shared database connection pool
}

// bookColumns is the select list shared by every book read, including the
// joined category name.
const bookColumns = `
	books.id, books.title, books.author, books.isbn, books.description,
	books.price, books.stock, books.category_id, categories.name AS category_name`

// scanBook reads one joined row into a Book. description and category_name
// are nullable in the schema, so both go through sql.NullString.
func scanBook(row interface{ Scan(...any) error }) (*Book, error) {
	var (
		book         Book
		description  sql.NullString
		categoryName sql.NullString
	)
	err := row.Scan(
		&book.ID,
		&book.Title,
		&book.Author,
		&book.ISBN,
		&description,
		&book.Price,
		&book.Stock,
		&book.CategoryID,
		&categoryName,
	)
	if err != nil {
		return nil, err
	}
	book.Description = description.String
	book.CategoryName = categoryName.String
	return &book, nil
}

// GetAll retrieves every book joined with its category name, ordered by id.
func (m BookModel) GetAll() ([]*Book, error) {
	query := `
		SELECT ` + bookColumns + `
		FROM books
		LEFT JOIN categories ON books.category_id = categories.id
		ORDER BY books.id`

	return m.queryBooks(query)
}

// GetAllByCategory retrieves the books assigned to one category, ordered by title.
func (m BookModel) GetAllByCategory(categoryID int64) ([]*Book, error) {
	query := `
		SELECT ` + bookColumns + `
		FROM books
		LEFT JOIN categories ON books.category_id = categories.id
		WHERE books.category_id = $1
		ORDER BY books.title`

	return m.queryBooks(query, categoryID)
}

// queryBooks runs a multi-row book select and scans the result set.
func (m BookModel) queryBooks(query string, args ...any) ([]*Book, error) {
	rows, err := m.DB.Query(query, args...)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	books := []*Book{}
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			return nil, classify(err)
		}
		books = append(books, book)
	}
	if err = rows.Err(); err != nil {
		return nil, classify(err)
	}
	return books, nil
}

// Get retrieves a single book by its primary key.
// Returns ErrRecordNotFound if no book with the given id exists.
func (m BookModel) Get(id int64) (*Book, error) {
	if id < 1 {
		return nil, ErrRecordNotFound
	}

	query := `
		SELECT ` + bookColumns + `
		FROM books
		LEFT JOIN categories ON books.category_id = categories.id
		WHERE books.id = $1`

	book, err := scanBook(m.DB.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		return nil, classify(err)
	}
	return book, nil
}

// Insert adds a new book record to the database and returns the persisted
// book including its database-assigned id. Constraint violations come back
// classified, never as raw driver errors.
func (m BookModel) Insert(input BookInput) (*Book, error) {
	query := `
		INSERT INTO books (title, author, isbn, description, price, stock, category_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	book := &Book{
		Title:       input.Title,
		Author:      input.Author,
		ISBN:        input.ISBN,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		CategoryID:  input.CategoryID,
	}

	err := m.DB.QueryRow(
		query,
		input.Title,
		input.Author,
		input.ISBN,
		nullable(input.Description),
		input.Price,
		input.Stock,
		input.CategoryID,
	).Scan(&book.ID)
	if err != nil {
		return nil, classify(err)
	}

	return book, nil
}

// Update replaces every mutable field of the book with the given id in one
// statement. Returns ErrRecordNotFound if no row matched the id; a matched
// row that fails a constraint surfaces as a classified error instead.
func (m BookModel) Update(id int64, input BookInput) (*Book, error) {
	if id < 1 {
		return nil, ErrRecordNotFound
	}

	query := `
		UPDATE books
		SET title = $1, author = $2, isbn = $3, description = $4,
		    price = $5, stock = $6, category_id = $7
		WHERE id = $8
		RETURNING id`

	args := []any{
		input.Title,
		input.Author,
		input.ISBN,
		nullable(input.Description),
		input.Price,
		input.Stock,
		input.CategoryID,
		id,
	}

	book := &Book{
		Title:       input.Title,
		Author:      input.Author,
		ISBN:        input.ISBN,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		CategoryID:  input.CategoryID,
	}

	err := m.DB.QueryRow(query, args...).Scan(&book.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		return nil, classify(err)
	}

	return book, nil
}

// Delete removes the book with the given id and returns the row that was
// deleted. Returns ErrRecordNotFound if no matching record exists.
func (m BookModel) Delete(id int64) (*Book, error) {
	if id < 1 {
		return nil, ErrRecordNotFound
	}

	query := `
		DELETE FROM books
		WHERE id = $1
		RETURNING id, title, author, isbn, description, price, stock, category_id`

	var (
		book        Book
		description sql.NullString
	)
	err := m.DB.QueryRow(query, id).Scan(
		&book.ID,
		&book.Title,
		&book.Author,
		&book.ISBN,
		&description,
		&book.Price,
		&book.Stock,
		&book.CategoryID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		return nil, classify(err)
	}
	book.Description = description.String

	return &book, nil
}

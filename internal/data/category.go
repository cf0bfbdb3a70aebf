// internal/data/category.go
package data

import (
	"database/sql"
	"errors"
)

// Category represents a single category record stored in the database.
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CategoryInput holds the cleaned field set produced by ValidateCategoryForm.
type CategoryInput struct {
	Name        string
	Description string
}

// CategoryModel wraps a *sql.DB connection and provides methods for
// creating, reading, updating, and deleting category records.
type CategoryModel struct {
	DB *sql.DB // Shared database connection pool
}

// scanCategory reads one row into a Category, handling the nullable description.
func scanCategory(row interface{ Scan(...any) error }) (*Category, error) {
	var (
		category    Category
		description sql.NullString
	)
	if err := row.Scan(&category.ID, &category.Name, &description); err != nil {
		return nil, err
	}
	category.Description = description.String
	return &category, nil
}

// GetAll retrieves every category ordered by id.
func (m CategoryModel) GetAll() ([]*Category, error) {
	query := `
		SELECT id, name, description
		FROM categories
		ORDER BY id`

	rows, err := m.DB.Query(query)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	categories := []*Category{}
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, classify(err)
		}
		categories = append(categories, category)
	}
	if err = rows.Err(); err != nil {
		return nil, classify(err)
	}
	return categories, nil
}

// Get retrieves a single category by its primary key.
// Returns ErrRecordNotFound if no category with the given id exists.
func (m CategoryModel) Get(id int64) (*Category, error) {
	if id < 1 {
		return nil, ErrRecordNotFound
	}

	query := `
		SELECT id, name, description
		FROM categories
		WHERE id = $1`

	category, err := scanCategory(m.DB.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		return nil, classify(err)
	}
	return category, nil
}

// Insert adds a new category and returns it with its database-assigned id.
// A name collision comes back as a classified DuplicateKey error.
func (m CategoryModel) Insert(input CategoryInput) (*Category, error) {
	query := `
		INSERT INTO categories (name, description)
		VALUES ($1, $2)
		RETURNING id`

	category := &Category{Name: input.Name, Description: input.Description}

	err := m.DB.QueryRow(query, input.Name, nullable(input.Description)).Scan(&category.ID)
	if err != nil {
		return nil, classify(err)
	}

	return category, nil
}

// Update replaces the category's mutable fields in one statement.
// Returns ErrRecordNotFound if no row matched the id.
func (m CategoryModel) Update(id int64, input CategoryInput) (*Category, error) {
	if id < 1 {
		return nil, ErrRecordNotFound
	}

	query := `
		UPDATE categories
		SET name = $1, description = $2
		WHERE id = $3
		RETURNING id`

	category := &Category{Name: input.Name, Description: input.Description}

	err := m.DB.QueryRow(query, input.Name, nullable(input.Description), id).Scan(&category.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		return nil, classify(err)
	}

	return category, nil
}

// Delete removes the category with the given id and returns the row that was
// deleted. Returns ErrRecordNotFound if no matching record exists. If books
// still reference the category the restrict rule fires and the failure comes
// back classified as ReferentialConstraint, never swallowed.
func (m CategoryModel) Delete(id int64) (*Category, error) {
	if id < 1 {
		return nil, ErrRecordNotFound
	}

	query := `
		DELETE FROM categories
		WHERE id = $1
		RETURNING id, name, description`

	category, err := scanCategory(m.DB.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		return nil, classify(err)
	}

	return category, nil
}

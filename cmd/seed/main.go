// Package main creates the book inventory schema and loads the starter data.
// Run it once against a fresh database; it is idempotent, so re-running it
// leaves existing rows alone.
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq" // Register the PostgreSQL driver with database/sql.
)

// schema mirrors the invariants the application depends on: unique category
// names, unique ISBNs, the unique (title, author, category) triple, the
// non-negative price/stock checks, and restrict-on-delete for the category
// reference.
const schema = `
CREATE TABLE IF NOT EXISTS categories (
    id SERIAL PRIMARY KEY,
    name VARCHAR(255) NOT NULL UNIQUE,
    description TEXT
);

CREATE TABLE IF NOT EXISTS books (
    id SERIAL PRIMARY KEY,
    title VARCHAR(255) NOT NULL,
    author VARCHAR(255) NOT NULL,
    isbn VARCHAR(20) NOT NULL UNIQUE,
    description TEXT,
    price NUMERIC(10,2) NOT NULL CHECK (price >= 0),
    stock INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
    category_id INTEGER NOT NULL REFERENCES categories(id) ON DELETE RESTRICT,
    UNIQUE (title, author, category_id)
);`

// seedCategory is one starter category row.
type seedCategory struct {
	name        string
	description string
}

// seedBook is one starter book row; the category is referenced by name and
// resolved to an id inside the seeding transaction.
type seedBook struct {
	title       string
	author      string
	isbn        string
	description string
	price       float64
	stock       int
	category    string
}

var seedCategories = []seedCategory{
	{"Fiction", "Fictional stories and novels"},
	{"Science", "Science and technology books"},
	{"History", "Historical books and biographies"},
	{"Self-Help", "Personal development and self-improvement"},
	{"Programming", "Software development and coding books"},
}

var seedBooks = []seedBook{
	{"The Great Gatsby", "F. Scott Fitzgerald", "978-0743273565", "A classic American novel set in the Jazz Age", 12.99, 15, "Fiction"},
	{"To Kill a Mockingbird", "Harper Lee", "978-0061120084", "A gripping tale of racial injustice and childhood innocence", 14.99, 20, "Fiction"},
	{"1984", "George Orwell", "978-0451524935", "A dystopian social science fiction novel", 13.99, 25, "Fiction"},
	{"A Brief History of Time", "Stephen Hawking", "978-0553380163", "A landmark volume in science writing", 18.99, 10, "Science"},
	{"Cosmos", "Carl Sagan", "978-0345331359", "A journey through space and time", 16.99, 12, "Science"},
	{"Sapiens", "Yuval Noah Harari", "978-0062316110", "A brief history of humankind", 19.99, 30, "History"},
	{"The Diary of a Young Girl", "Anne Frank", "978-0553296983", "The writings of a young Jewish girl during the Holocaust", 11.99, 18, "History"},
	{"Atomic Habits", "James Clear", "978-0735211292", "An easy and proven way to build good habits", 16.99, 40, "Self-Help"},
	{"The 7 Habits of Highly Effective People", "Stephen Covey", "978-1982137274", "Powerful lessons in personal change", 17.99, 35, "Self-Help"},
	{"Clean Code", "Robert C. Martin", "978-0132350884", "A handbook of agile software craftsmanship", 42.99, 22, "Programming"},
	{"The Pragmatic Programmer", "Andrew Hunt", "978-0135957059", "Your journey to mastery", 45.99, 18, "Programming"},
	{"JavaScript: The Good Parts", "Douglas Crockford", "978-0596517748", "Unearthing the excellence in JavaScript", 29.99, 25, "Programming"},
}

func main() {
	_ = godotenv.Load()

	var (
		host     = flag.String("db-host", envString("DB_HOST", "localhost"), "Database host")
		port     = flag.Int("db-port", envInt("DB_PORT", 5432), "Database port")
		user     = flag.String("db-user", envString("DB_USER", "postgres"), "Database user")
		password = flag.String("db-password", envString("DB_PASSWORD", ""), "Database password")
		name     = flag.String("db-name", envString("DB_NAME", "books_inventory"), "Database name")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		*host, *port, *user, *password, *name,
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
	defer db.Close()

	if err := run(db); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}

	logger.Info("schema created and data seeded")
}

// run creates the tables, then loads the starter rows inside one transaction
// so a partial seed never survives a failure.
func run(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, c := range seedCategories {
		_, err := tx.Exec(
			`INSERT INTO categories (name, description) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING`,
			c.name, c.description,
		)
		if err != nil {
			return fmt.Errorf("seeding category %q: %w", c.name, err)
		}
	}

	// Resolve category ids by name so the books reference whatever ids the
	// database actually assigned.
	idByName := make(map[string]int64)
	rows, err := tx.Query(`SELECT id, name FROM categories`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var (
			id   int64
			name string
		)
		if err := rows.Scan(&id, &name); err != nil {
			return err
		}
		idByName[name] = id
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, b := range seedBooks {
		categoryID, ok := idByName[b.category]
		if !ok {
			return fmt.Errorf("category %q could not be resolved to an id", b.category)
		}

		_, err := tx.Exec(
			`INSERT INTO books (title, author, isbn, description, price, stock, category_id)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 ON CONFLICT DO NOTHING`,
			b.title, b.author, b.isbn, b.description, b.price, b.stock, categoryID,
		)
		if err != nil {
			return fmt.Errorf("seeding book %q: %w", b.title, err)
		}
	}

	return tx.Commit()
}

// envString reads a string environment variable, returning fallback when unset.
func envString(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// envInt reads an integer environment variable, returning fallback when unset
// or unparseable.
func envInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}

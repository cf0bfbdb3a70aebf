// Package main is the entry point for the book inventory web server.
// It wires together configuration, the database connection, the template
// cache, and the HTTP router.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"strconv"
	"time"

	"bookinventory/internal/data"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq" // Register the PostgreSQL driver with database/sql.
)

// serverConfig holds all the values that can be tweaked at startup.
// Flag defaults come from environment variables (optionally loaded from a
// .env file), so either mechanism works.
type serverConfig struct {
	port          int    // TCP port the HTTP server listens on
	environment   string // Runtime environment: development or production
	adminPassword string // Secret required by destructive routes; empty disables the gate
	db            struct {
		host         string
		port         int
		user         string
		password     string
		name         string
		maxOpenConns int // Upper bound on concurrent database connections
	}
}

// dsn assembles the PostgreSQL connection string from the individual settings.
func (cfg serverConfig) dsn() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.db.host, cfg.db.port, cfg.db.user, cfg.db.password, cfg.db.name,
	)
}

// applicationDependencies bundles every shared resource that HTTP handlers need.
// A pointer to this struct is passed as the receiver on all handler and route methods.
type applicationDependencies struct {
	config    serverConfig
	logger    *slog.Logger
	models    data.Models
	templates map[string]*template.Template
	navLinks  []navLink // Shared navigation, passed explicitly into every render
}

func main() {
	// A .env file is optional; real environment variables win either way.
	_ = godotenv.Load()

	var settings serverConfig

	flag.IntVar(&settings.port, "port", envInt("PORT", 3000), "Server port")
	flag.StringVar(&settings.environment, "env", envString("ENVIRONMENT", "development"), "Environment(development|production)")
	flag.StringVar(&settings.adminPassword, "admin-password", envString("ADMIN_PASSWORD", ""), "Admin password required for deletes (empty disables the check)")
	flag.StringVar(&settings.db.host, "db-host", envString("DB_HOST", "localhost"), "Database host")
	flag.IntVar(&settings.db.port, "db-port", envInt("DB_PORT", 5432), "Database port")
	flag.StringVar(&settings.db.user, "db-user", envString("DB_USER", "postgres"), "Database user")
	flag.StringVar(&settings.db.password, "db-password", envString("DB_PASSWORD", ""), "Database password")
	flag.StringVar(&settings.db.name, "db-name", envString("DB_NAME", "books_inventory"), "Database name")
	flag.IntVar(&settings.db.maxOpenConns, "db-max-open-conns", envInt("DB_CONNECTION_LIMIT", 10), "Maximum open database connections")

	flag.Parse()

	logger := newLogger(settings.environment)

	db, err := openDB(settings)
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
	defer db.Close()

	logger.Info("database connection pool established")

	templates, err := newTemplateCache()
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}

	appInstance := &applicationDependencies{
		config:    settings,
		logger:    logger,
		models:    data.NewModels(db),
		templates: templates,
		navLinks: []navLink{
			{Href: "/", Text: "Home"},
			{Href: "/category", Text: "Categories"},
			{Href: "/book", Text: "Books"},
		},
	}

	err = appInstance.serve()
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

// newLogger builds the structured logger for the given environment:
// human-readable text in development, JSON in production.
func newLogger(environment string) *slog.Logger {
	if environment == "production" {
		return slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// openDB opens a bounded PostgreSQL connection pool, then pings the database
// with a 5-second timeout to confirm it is reachable. Requests beyond the
// connection limit queue inside database/sql rather than failing fast.
func openDB(settings serverConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", settings.dsn())
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(settings.db.maxOpenConns)
	db.SetMaxIdleConns(settings.db.maxOpenConns)
	db.SetConnMaxIdleTime(15 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = db.PingContext(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
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

// cmd/web/errors.go
// This file contains all error-response helpers for the application.
// Store failures are classified exactly once in internal/data; these helpers
// only translate the resulting kinds into statuses and rendered pages.
package main

import (
	"log/slog"
	"net/http"

	"bookinventory/internal/data"
)

// logError logs an error at ERROR level with the request method, URL, client
// address, and resolved status code for context.
func (app *applicationDependencies) logError(r *http.Request, status int, err error) {
	app.logger.Error(err.Error(),
		slog.String("request_method", r.Method),
		slog.String("request_url", r.URL.String()),
		slog.String("client_addr", r.RemoteAddr),
		slog.Int("status", status),
	)
}

// errorResponse renders the error page with the given status and user-facing
// message. In development the underlying error detail is included on the
// page; in production the user only sees the message.
func (app *applicationDependencies) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string, cause error) {
	td := templateData{
		Links:      app.navLinks,
		Title:      "Error",
		StatusCode: status,
		Message:    message,
	}
	if cause != nil && app.config.environment != "production" {
		td.Detail = cause.Error()
	}
	app.render(w, r, status, "error.tmpl", td)
}

// serverErrorResponse logs a 500-level error and renders a generic message.
// Internal error details never reach the client in production.
func (app *applicationDependencies) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, http.StatusInternalServerError, err)
	app.errorResponse(w, r, http.StatusInternalServerError, "Something went wrong. Please try again later.", err)
}

// notFoundResponse renders the 404 page. Unrouted paths land here too.
func (app *applicationDependencies) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusNotFound, "Page not found", nil)
}

// methodNotAllowedResponse renders a 405 error page.
func (app *applicationDependencies) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	message := "The " + r.Method + " method is not supported for this resource."
	app.errorResponse(w, r, http.StatusMethodNotAllowed, message, nil)
}

// badRequestResponse renders a 400 error page for malformed requests.
func (app *applicationDependencies) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusBadRequest, "The request could not be understood.", err)
}

// forbiddenResponse renders a 403 page when the admin password check fails.
func (app *applicationDependencies) forbiddenResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusForbidden, "Invalid admin password. Access denied.", nil)
}

// rateLimitExceededResponse renders a 429 error page.
func (app *applicationDependencies) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusTooManyRequests, "Too many requests. Slow down and try again.", nil)
}

// statusForStoreError resolves the HTTP status for a classified store error.
func statusForStoreError(err *data.StoreError) int {
	switch err.Kind {
	case data.NotFound:
		return http.StatusNotFound
	case data.DuplicateKey, data.ReferentialConstraint:
		return http.StatusConflict
	case data.InvalidInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

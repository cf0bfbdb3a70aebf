// cmd/web/routes.go
package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// routes registers all HTTP endpoints and returns the configured router
// wrapped in the middleware chain.
//
// Middleware chain (outermost → innermost):
//
//	recoverPanic → logRequest → rateLimit → router
//
// httprouter cannot register the static /book/new path alongside the /book/:id
// wildcard, so the form paths are dispatched inside the wildcard handlers:
// GET /book/:id treats id "new" as the blank form, and POST /book/:id accepts
// only id "new" (the create). The category routes mirror this.
func (app *applicationDependencies) routes() http.Handler {
	router := httprouter.New()

	// Unmatched paths and methods are classified as not found / not allowed
	// at this outermost layer.
	router.NotFound = http.HandlerFunc(app.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedResponse)

	router.HandlerFunc(http.MethodGet, "/", app.homeHandler)
	router.HandlerFunc(http.MethodGet, "/health", app.healthHandler)

	router.HandlerFunc(http.MethodGet, "/book", app.listBooksHandler)
	router.HandlerFunc(http.MethodGet, "/book/:id", app.showBookHandler)
	router.HandlerFunc(http.MethodPost, "/book/:id", app.createBookHandler)
	router.HandlerFunc(http.MethodGet, "/book/:id/update", app.editBookFormHandler)
	router.HandlerFunc(http.MethodPost, "/book/:id/update", app.updateBookHandler)
	router.HandlerFunc(http.MethodPost, "/book/:id/delete", app.requireAdmin(app.deleteBookHandler))

	router.HandlerFunc(http.MethodGet, "/category", app.listCategoriesHandler)
	router.HandlerFunc(http.MethodGet, "/category/:id", app.showCategoryHandler)
	router.HandlerFunc(http.MethodPost, "/category/:id", app.createCategoryHandler)
	router.HandlerFunc(http.MethodGet, "/category/:id/update", app.editCategoryFormHandler)
	router.HandlerFunc(http.MethodPost, "/category/:id/update", app.updateCategoryHandler)
	router.HandlerFunc(http.MethodPost, "/category/:id/delete", app.requireAdmin(app.deleteCategoryHandler))

	return app.recoverPanic(app.logRequest(app.rateLimit(router)))
}

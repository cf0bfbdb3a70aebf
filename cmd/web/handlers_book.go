// cmd/web/handlers_book.go
// This file contains the HTTP handlers for the book resource. Write handlers
// follow one flow: parse the form, validate, re-render with echoed input on
// field errors, persist, re-render with a classified top-level message on a
// store failure, redirect to the listing on success.
package main

import (
	"errors"
	"net/http"
	"strconv"

	"bookinventory/internal/data"
	"bookinventory/internal/validator"
)

// listBooksHandler handles GET /book.
func (app *applicationDependencies) listBooksHandler(w http.ResponseWriter, r *http.Request) {
	books, err := app.models.Books.GetAll()
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.render(w, r, http.StatusOK, "books.tmpl", templateData{
		Links: app.navLinks,
		Title: "Books",
		Books: books,
	})
}

// showBookHandler handles GET /book/:id. The static /book/new path arrives
// here too (see routes.go) and is dispatched to the blank form.
func (app *applicationDependencies) showBookHandler(w http.ResponseWriter, r *http.Request) {
	if app.idParam(r) == "new" {
		app.newBookFormHandler(w, r)
		return
	}

	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	book, err := app.models.Books.Get(id)
	if err != nil {
		if errors.Is(err, data.ErrRecordNotFound) {
			app.notFoundResponse(w, r)
		} else {
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.render(w, r, http.StatusOK, "book_detail.tmpl", templateData{
		Links: app.navLinks,
		Title: book.Title,
		Book:  book,
	})
}

// newBookFormHandler renders the blank create form for GET /book/new.
func (app *applicationDependencies) newBookFormHandler(w http.ResponseWriter, r *http.Request) {
	app.renderBookForm(w, r, http.StatusOK, "Add New Book", 0, data.BookForm{}, nil, "")
}

// renderBookForm renders the shared book form page. The category select needs
// the full category list, so every form render fetches it.
func (app *applicationDependencies) renderBookForm(w http.ResponseWriter, r *http.Request, status int, title string, id int64, form data.BookForm, fieldErrors []validator.FieldError, topError string) {
	categories, err := app.models.Categories.GetAll()
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.render(w, r, status, "book_form.tmpl", templateData{
		Links:       app.navLinks,
		Title:       title,
		ID:          id,
		Form:        form,
		Categories:  categories,
		FieldErrors: fieldErrors,
		TopError:    topError,
	})
}

// createBookHandler handles POST /book/new (routed through the /book/:id wildcard).
func (app *applicationDependencies) createBookHandler(w http.ResponseWriter, r *http.Request) {
	if app.idParam(r) != "new" {
		app.notFoundResponse(w, r)
		return
	}

	err := r.ParseForm()
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	form := data.BookFormFromValues(r.PostForm)

	v := validator.New()
	input := data.ValidateBookForm(v, form)
	if !v.Valid() {
		app.renderBookForm(w, r, http.StatusUnprocessableEntity, "Add New Book", 0, form, v.FieldErrors, "")
		return
	}

	_, err = app.models.Books.Insert(input)
	if err != nil {
		app.bookWriteFailed(w, r, "Add New Book", 0, form, err)
		return
	}

	app.redirect(w, r, "/book")
}

// bookWriteFailed finishes a failed create or update. Recoverable classified
// failures (duplicate key, dangling category) re-render the form with a
// top-level message and the submitted values echoed back; everything else is
// an internal error.
func (app *applicationDependencies) bookWriteFailed(w http.ResponseWriter, r *http.Request, title string, id int64, form data.BookForm, err error) {
	var storeErr *data.StoreError
	if errors.As(err, &storeErr) && storeErr.Kind != data.Internal {
		app.renderBookForm(w, r, statusForStoreError(storeErr), title, id, form, nil, storeErr.Message)
		return
	}
	app.serverErrorResponse(w, r, err)
}

// editBookFormHandler handles GET /book/:id/update. The stored row is loaded
// into the form so the user edits current values.
func (app *applicationDependencies) editBookFormHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	book, err := app.models.Books.Get(id)
	if err != nil {
		if errors.Is(err, data.ErrRecordNotFound) {
			app.notFoundResponse(w, r)
		} else {
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	form := data.BookForm{
		Title:       book.Title,
		Author:      book.Author,
		ISBN:        book.ISBN,
		Description: book.Description,
		Price:       strconv.FormatFloat(book.Price, 'f', 2, 64),
		Stock:       strconv.Itoa(book.Stock),
		CategoryID:  strconv.FormatInt(book.CategoryID, 10),
	}

	app.renderBookForm(w, r, http.StatusOK, "Update Book", id, form, nil, "")
}

// updateBookHandler handles POST /book/:id/update. All mutable fields are
// replaced in one statement; a failed submission echoes the submitted values,
// not the stored row.
func (app *applicationDependencies) updateBookHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	err = r.ParseForm()
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	form := data.BookFormFromValues(r.PostForm)

	v := validator.New()
	input := data.ValidateBookForm(v, form)
	if !v.Valid() {
		app.renderBookForm(w, r, http.StatusUnprocessableEntity, "Update Book", id, form, v.FieldErrors, "")
		return
	}

	_, err = app.models.Books.Update(id, input)
	if err != nil {
		if errors.Is(err, data.ErrRecordNotFound) {
			app.notFoundResponse(w, r)
			return
		}
		app.bookWriteFailed(w, r, "Update Book", id, form, err)
		return
	}

	app.redirect(w, r, "/book")
}

// deleteBookHandler handles POST /book/:id/delete.
func (app *applicationDependencies) deleteBookHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	_, err = app.models.Books.Delete(id)
	if err != nil {
		if errors.Is(err, data.ErrRecordNotFound) {
			app.notFoundResponse(w, r)
			return
		}
		var storeErr *data.StoreError
		if errors.As(err, &storeErr) && storeErr.Kind != data.Internal {
			app.errorResponse(w, r, statusForStoreError(storeErr), storeErr.Message, storeErr.Cause)
			return
		}
		app.serverErrorResponse(w, r, err)
		return
	}

	app.redirect(w, r, "/book")
}

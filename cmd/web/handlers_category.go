// cmd/web/handlers_category.go
// HTTP handlers for the category resource, mirroring the book workflow.
package main

import (
	"errors"
	"net/http"

	"bookinventory/internal/data"
	"bookinventory/internal/validator"
)

// listCategoriesHandler handles GET /category.
func (app *applicationDependencies) listCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := app.models.Categories.GetAll()
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.render(w, r, http.StatusOK, "categories.tmpl", templateData{
		Links:      app.navLinks,
		Title:      "Categories",
		Categories: categories,
	})
}

// showCategoryHandler handles GET /category/:id, with the static
// /category/new path dispatched to the blank form. The detail page also
// lists the books assigned to the category.
func (app *applicationDependencies) showCategoryHandler(w http.ResponseWriter, r *http.Request) {
	if app.idParam(r) == "new" {
		app.newCategoryFormHandler(w, r)
		return
	}

	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	category, err := app.models.Categories.Get(id)
	if err != nil {
		if errors.Is(err, data.ErrRecordNotFound) {
			app.notFoundResponse(w, r)
		} else {
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	books, err := app.models.Books.GetAllByCategory(id)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.render(w, r, http.StatusOK, "category_detail.tmpl", templateData{
		Links:    app.navLinks,
		Title:    category.Name,
		Category: category,
		Books:    books,
	})
}

// newCategoryFormHandler renders the blank create form for GET /category/new.
func (app *applicationDependencies) newCategoryFormHandler(w http.ResponseWriter, r *http.Request) {
	app.renderCategoryForm(w, r, http.StatusOK, "Add New Category", 0, data.CategoryForm{}, nil, "")
}

// renderCategoryForm renders the shared category form page.
func (app *applicationDependencies) renderCategoryForm(w http.ResponseWriter, r *http.Request, status int, title string, id int64, form data.CategoryForm, fieldErrors []validator.FieldError, topError string) {
	app.render(w, r, status, "category_form.tmpl", templateData{
		Links:       app.navLinks,
		Title:       title,
		ID:          id,
		Form:        form,
		FieldErrors: fieldErrors,
		TopError:    topError,
	})
}

// createCategoryHandler handles POST /category/new (routed through the
// /category/:id wildcard).
func (app *applicationDependencies) createCategoryHandler(w http.ResponseWriter, r *http.Request) {
	if app.idParam(r) != "new" {
		app.notFoundResponse(w, r)
		return
	}

	err := r.ParseForm()
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	form := data.CategoryFormFromValues(r.PostForm)

	v := validator.New()
	input := data.ValidateCategoryForm(v, form)
	if !v.Valid() {
		app.renderCategoryForm(w, r, http.StatusUnprocessableEntity, "Add New Category", 0, form, v.FieldErrors, "")
		return
	}

	_, err = app.models.Categories.Insert(input)
	if err != nil {
		app.categoryWriteFailed(w, r, "Add New Category", 0, form, err)
		return
	}

	app.redirect(w, r, "/category")
}

// categoryWriteFailed finishes a failed create or update, mirroring
// bookWriteFailed.
func (app *applicationDependencies) categoryWriteFailed(w http.ResponseWriter, r *http.Request, title string, id int64, form data.CategoryForm, err error) {
	var storeErr *data.StoreError
	if errors.As(err, &storeErr) && storeErr.Kind != data.Internal {
		app.renderCategoryForm(w, r, statusForStoreError(storeErr), title, id, form, nil, storeErr.Message)
		return
	}
	app.serverErrorResponse(w, r, err)
}

// editCategoryFormHandler handles GET /category/:id/update.
func (app *applicationDependencies) editCategoryFormHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	category, err := app.models.Categories.Get(id)
	if err != nil {
		if errors.Is(err, data.ErrRecordNotFound) {
			app.notFoundResponse(w, r)
		} else {
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	form := data.CategoryForm{
		Name:        category.Name,
		Description: category.Description,
	}

	app.renderCategoryForm(w, r, http.StatusOK, "Update Category", id, form, nil, "")
}

// updateCategoryHandler handles POST /category/:id/update.
func (app *applicationDependencies) updateCategoryHandler(w http.ResponseWriter, r *http.Request) {
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

	form := data.CategoryFormFromValues(r.PostForm)

	v := validator.New()
	input := data.ValidateCategoryForm(v, form)
	if !v.Valid() {
		app.renderCategoryForm(w, r, http.StatusUnprocessableEntity, "Update Category", id, form, v.FieldErrors, "")
		return
	}

	_, err = app.models.Categories.Update(id, input)
	if err != nil {
		if errors.Is(err, data.ErrRecordNotFound) {
			app.notFoundResponse(w, r)
			return
		}
		app.categoryWriteFailed(w, r, "Update Category", id, form, err)
		return
	}

	app.redirect(w, r, "/category")
}

// deleteCategoryHandler handles POST /category/:id/delete. A category with
// books still assigned cannot be deleted; the restrict violation surfaces as
// a conflict page telling the user to move or delete those books first.
func (app *applicationDependencies) deleteCategoryHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	_, err = app.models.Categories.Delete(id)
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

	app.redirect(w, r, "/category")
}

package main

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"bookinventory/internal/data"
)

// stubBookStore implements data.BookStore with canned results so the workflow
// can be tested without a database.
type stubBookStore struct {
	books     []*data.Book
	insertErr error
	updateErr error
	deleteErr error
	inserted  []data.BookInput
}

func (s *stubBookStore) GetAll() ([]*data.Book, error) {
	return s.books, nil
}

func (s *stubBookStore) GetAllByCategory(categoryID int64) ([]*data.Book, error) {
	out := []*data.Book{}
	for _, b := range s.books {
		if b.CategoryID == categoryID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *stubBookStore) Get(id int64) (*data.Book, error) {
	for _, b := range s.books {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, data.ErrRecordNotFound
}

func (s *stubBookStore) Insert(input data.BookInput) (*data.Book, error) {
	if s.insertErr != nil {
		return nil, s.insertErr
	}
	s.inserted = append(s.inserted, input)
	return &data.Book{ID: 101, Title: input.Title}, nil
}

func (s *stubBookStore) Update(id int64, input data.BookInput) (*data.Book, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	return &data.Book{ID: id, Title: input.Title}, nil
}

func (s *stubBookStore) Delete(id int64) (*data.Book, error) {
	if s.deleteErr != nil {
		return nil, s.deleteErr
	}
	for _, b := range s.books {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, data.ErrRecordNotFound
}

// stubCategoryStore implements data.CategoryStore.
type stubCategoryStore struct {
	categories []*data.Category
	insertErr  error
	updateErr  error
	deleteErr  error
}

func (s *stubCategoryStore) GetAll() ([]*data.Category, error) {
	return s.categories, nil
}

func (s *stubCategoryStore) Get(id int64) (*data.Category, error) {
	for _, c := range s.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, data.ErrRecordNotFound
}

func (s *stubCategoryStore) Insert(input data.CategoryInput) (*data.Category, error) {
	if s.insertErr != nil {
		return nil, s.insertErr
	}
	return &data.Category{ID: 11, Name: input.Name, Description: input.Description}, nil
}

func (s *stubCategoryStore) Update(id int64, input data.CategoryInput) (*data.Category, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	return &data.Category{ID: id, Name: input.Name, Description: input.Description}, nil
}

func (s *stubCategoryStore) Delete(id int64) (*data.Category, error) {
	if s.deleteErr != nil {
		return nil, s.deleteErr
	}
	for _, c := range s.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, data.ErrRecordNotFound
}

// newTestApplication builds an application wired to the given stubs, with a
// real template cache and a discarded log stream.
func newTestApplication(t *testing.T, books *stubBookStore, categories *stubCategoryStore) *applicationDependencies {
	t.Helper()

	templates, err := newTemplateCache()
	if err != nil {
		t.Fatal(err)
	}

	var settings serverConfig
	settings.environment = "production"

	return &applicationDependencies{
		config:    settings,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		models:    data.Models{Books: books, Categories: categories},
		templates: templates,
		navLinks: []navLink{
			{Href: "/", Text: "Home"},
			{Href: "/category", Text: "Categories"},
			{Href: "/book", Text: "Books"},
		},
	}
}

func testCategories() *stubCategoryStore {
	return &stubCategoryStore{categories: []*data.Category{
		{ID: 1, Name: "Fiction", Description: "Fictional stories and novels"},
		{ID: 2, Name: "Science", Description: "Science and technology books"},
	}}
}

func testBooks() *stubBookStore {
	return &stubBookStore{books: []*data.Book{
		{ID: 1, Title: "The Great Gatsby", Author: "F. Scott Fitzgerald", ISBN: "978-0743273565", Price: 12.99, Stock: 15, CategoryID: 1, CategoryName: "Fiction"},
		{ID: 2, Title: "Cosmos", Author: "Carl Sagan", ISBN: "978-0345331359", Price: 16.99, Stock: 12, CategoryID: 2, CategoryName: "Science"},
	}}
}

// get performs a GET against the full router and returns the response.
func get(t *testing.T, app *applicationDependencies, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, path, nil)
	app.routes().ServeHTTP(w, r)
	return w
}

// postForm performs a form-encoded POST against the full router.
func postForm(t *testing.T, app *applicationDependencies, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	app.routes().ServeHTTP(w, r)
	return w
}

func validBookValues() url.Values {
	form := url.Values{}
	form.Set("title", "Valid Title 1")
	form.Set("author", "Jane Doe")
	form.Set("isbn", "978-0743273565")
	form.Set("price", "12.99")
	form.Set("stock", "5")
	form.Set("category_id", "1")
	return form
}

func TestHealth(t *testing.T) {
	app := newTestApplication(t, testBooks(), testCategories())

	w := get(t, app, "/health")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), `"status":"OK"`) {
		t.Errorf("body = %q, want status OK", w.Body.String())
	}
}

func TestListBooks(t *testing.T) {
	app := newTestApplication(t, testBooks(), testCategories())

	w := get(t, app, "/book")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	body := w.Body.String()
	for _, want := range []string{"The Great Gatsby", "Cosmos", "Fiction", "Science"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestShowBook(t *testing.T) {
	app := newTestApplication(t, testBooks(), testCategories())

	w := get(t, app, "/book/1")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), "F. Scott Fitzgerald") {
		t.Error("body missing author")
	}
}

func TestShowBookNotFound(t *testing.T) {
	app := newTestApplication(t, testBooks(), testCategories())

	for _, path := range []string{"/book/99", "/book/abc"} {
		w := get(t, app, path)
		if w.Code != http.StatusNotFound {
			t.Errorf("GET %s status = %d, want %d", path, w.Code, http.StatusNotFound)
		}
	}
}

func TestCreateBookRedirects(t *testing.T) {
	books := testBooks()
	app := newTestApplication(t, books, testCategories())

	w := postForm(t, app, "/book/new", validBookValues())

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusSeeOther)
	}
	if got := w.Header().Get("Location"); got != "/book" {
		t.Errorf("Location = %q, want /book", got)
	}
	if len(books.inserted) != 1 {
		t.Fatalf("inserted %d books, want 1", len(books.inserted))
	}
	if books.inserted[0].Title != "Valid Title 1" {
		t.Errorf("inserted title = %q", books.inserted[0].Title)
	}
}

func TestCreateBookPersistsCleanedInput(t *testing.T) {
	books := testBooks()
	app := newTestApplication(t, books, testCategories())

	form := validBookValues()
	form.Set("title", "  Valid Title 1  ")

	w := postForm(t, app, "/book/new", form)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusSeeOther)
	}
	if books.inserted[0].Title != "Valid Title 1" {
		t.Errorf("inserted title = %q, want trimmed", books.inserted[0].Title)
	}
}

func TestCreateBookValidationFailureEchoesInput(t *testing.T) {
	books := testBooks()
	app := newTestApplication(t, books, testCategories())

	form := validBookValues()
	form.Set("title", "")

	w := postForm(t, app, "/book/new", form)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusUnprocessableEntity)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Title is required.") {
		t.Error("body missing field error")
	}
	// The valid fields the user already typed come back into the form.
	if !strings.Contains(body, "Jane Doe") {
		t.Error("body missing echoed author")
	}
	if len(books.inserted) != 0 {
		t.Error("invalid submission must not reach the store")
	}
}

func TestCreateBookDuplicateISBN(t *testing.T) {
	books := testBooks()
	books.insertErr = &data.StoreError{Kind: data.DuplicateKey, Message: "A book with this ISBN already exists."}
	app := newTestApplication(t, books, testCategories())

	w := postForm(t, app, "/book/new", validBookValues())

	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusConflict)
	}
	body := w.Body.String()
	if !strings.Contains(body, "A book with this ISBN already exists.") {
		t.Error("body missing top-level duplicate message")
	}
	if !strings.Contains(body, "Valid Title 1") {
		t.Error("body missing echoed title")
	}
}

func TestUpdateBookNotFound(t *testing.T) {
	books := testBooks()
	books.updateErr = data.ErrRecordNotFound
	app := newTestApplication(t, books, testCategories())

	w := postForm(t, app, "/book/5/update", validBookValues())

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestUpdateBookRedirects(t *testing.T) {
	app := newTestApplication(t, testBooks(), testCategories())

	w := postForm(t, app, "/book/1/update", validBookValues())

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusSeeOther)
	}
	if got := w.Header().Get("Location"); got != "/book" {
		t.Errorf("Location = %q, want /book", got)
	}
}

func TestDeleteBook(t *testing.T) {
	app := newTestApplication(t, testBooks(), testCategories())

	w := postForm(t, app, "/book/1/delete", url.Values{})
	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusSeeOther)
	}

	w = postForm(t, app, "/book/99/delete", url.Values{})
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing id status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestCreateCategoryRedirects(t *testing.T) {
	app := newTestApplication(t, testBooks(), testCategories())

	form := url.Values{}
	form.Set("name", "History")
	form.Set("description", "Historical books")

	w := postForm(t, app, "/category/new", form)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusSeeOther)
	}
	if got := w.Header().Get("Location"); got != "/category" {
		t.Errorf("Location = %q, want /category", got)
	}
}

func TestCreateCategoryDuplicateName(t *testing.T) {
	categories := testCategories()
	categories.insertErr = &data.StoreError{Kind: data.DuplicateKey, Message: "A category with this name already exists."}
	app := newTestApplication(t, testBooks(), categories)

	form := url.Values{}
	form.Set("name", "Fiction")

	w := postForm(t, app, "/category/new", form)

	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusConflict)
	}
	if !strings.Contains(w.Body.String(), "A category with this name already exists.") {
		t.Error("body missing duplicate message")
	}
}

func TestDeleteCategoryRestricted(t *testing.T) {
	categories := testCategories()
	categories.deleteErr = &data.StoreError{
		Kind:    data.ReferentialConstraint,
		Message: "This category still has books assigned to it. Reassign or delete those books first.",
	}
	app := newTestApplication(t, testBooks(), categories)

	w := postForm(t, app, "/category/1/delete", url.Values{})

	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusConflict)
	}
	if !strings.Contains(w.Body.String(), "Reassign or delete those books first.") {
		t.Error("body missing referential message")
	}
}

func TestShowCategoryListsItsBooks(t *testing.T) {
	app := newTestApplication(t, testBooks(), testCategories())

	w := get(t, app, "/category/1")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	body := w.Body.String()
	if !strings.Contains(body, "The Great Gatsby") {
		t.Error("body missing book in category")
	}
	if strings.Contains(body, "Cosmos") {
		t.Error("body lists a book from another category")
	}
}

func TestNewFormsRender(t *testing.T) {
	app := newTestApplication(t, testBooks(), testCategories())

	w := get(t, app, "/book/new")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /book/new status = %d, want %d", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), "Add New Book") {
		t.Error("body missing form title")
	}

	w = get(t, app, "/category/new")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /category/new status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestUnknownPathIsNotFound(t *testing.T) {
	app := newTestApplication(t, testBooks(), testCategories())

	w := get(t, app, "/nope")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestInternalErrorHidesDetailInProduction(t *testing.T) {
	books := testBooks()
	books.insertErr = &data.StoreError{Kind: data.Internal, Message: "boom", Cause: io.ErrUnexpectedEOF}
	app := newTestApplication(t, books, testCategories())

	w := postForm(t, app, "/book/new", validBookValues())

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Something went wrong.") {
		t.Error("body missing generic message")
	}
	if strings.Contains(body, "unexpected EOF") {
		t.Error("production response leaked error detail")
	}
}

func TestAdminGate(t *testing.T) {
	books := testBooks()
	app := newTestApplication(t, books, testCategories())
	app.config.adminPassword = "s3cret"

	form := url.Values{}
	w := postForm(t, app, "/book/1/delete", form)
	if w.Code != http.StatusForbidden {
		t.Fatalf("no password status = %d, want %d", w.Code, http.StatusForbidden)
	}

	form.Set("adminPassword", "wrong")
	w = postForm(t, app, "/book/1/delete", form)
	if w.Code != http.StatusForbidden {
		t.Fatalf("wrong password status = %d, want %d", w.Code, http.StatusForbidden)
	}

	form.Set("adminPassword", "s3cret")
	w = postForm(t, app, "/book/1/delete", form)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("correct password status = %d, want %d", w.Code, http.StatusSeeOther)
	}
}

// internal/data/validation.go
// This file turns raw form submissions into cleaned inputs. Each resource has
// a form struct holding the submitted strings (echoed back into the page on
// failure) and a validate function that checks every rule for every field,
// returning the trimmed, coerced input alongside the accumulated errors.
package data

import (
	"net/url"
	"strconv"
	"strings"

	"bookinventory/internal/validator"
)

// BookForm holds the raw string values submitted for a book, exactly as the
// user typed them.
type BookForm struct {
	Title       string
	Author      string
	ISBN        string
	Description string
	Price       string
	Stock       string
	CategoryID  string
}

// BookFormFromValues extracts the book fields from a parsed form body.
func BookFormFromValues(values url.Values) BookForm {
	return BookForm{
		Title:       values.Get("title"),
		Author:      values.Get("author"),
		ISBN:        values.Get("isbn"),
		Description: values.Get("description"),
		Price:       values.Get("price"),
		Stock:       values.Get("stock"),
		CategoryID:  values.Get("category_id"),
	}
}

// ValidateBookForm checks every field of the submitted form independently,
// recording all violations on v, and returns the cleaned input. The input is
// only meaningful when v.Valid() afterwards. Optional fields are skipped
// entirely when blank; a present but out-of-range value is still a violation.
func ValidateBookForm(v *validator.Validator, form BookForm) BookInput {
	var input BookInput

	input.Title = strings.TrimSpace(form.Title)
	v.Check(input.Title != "", "title", "Title is required.")
	v.Check(len(input.Title) <= 255, "title", "Title must be between 1 and 255 characters.")
	v.Check(validator.Matches(input.Title, validator.TitleRX), "title", "Title contains invalid characters.")

	input.Author = strings.TrimSpace(form.Author)
	v.Check(input.Author != "", "author", "Author is required.")
	v.Check(len(input.Author) <= 255, "author", "Author must be between 1 and 255 characters.")
	v.Check(validator.Matches(input.Author, validator.AuthorRX), "author", "Author must only contain letters.")

	input.ISBN = strings.TrimSpace(form.ISBN)
	v.Check(input.ISBN != "", "isbn", "ISBN is required.")
	v.Check(len(input.ISBN) >= 10 && len(input.ISBN) <= 20, "isbn", "ISBN must be between 10 and 20 characters.")
	v.Check(validator.Matches(input.ISBN, validator.ISBNRX), "isbn", "ISBN must only contain numbers, hyphens, and X.")

	input.Description = strings.TrimSpace(form.Description)
	if input.Description != "" {
		v.Check(len(input.Description) <= 1000, "description", "Description must not exceed 1000 characters.")
	}

	price := strings.TrimSpace(form.Price)
	if price == "" {
		v.AddError("price", "Price is required.")
	} else {
		parsed, err := strconv.ParseFloat(price, 64)
		v.Check(err == nil && parsed >= 0, "price", "Price must be a positive number.")
		if err == nil {
			input.Price = parsed
		}
	}

	if stock := strings.TrimSpace(form.Stock); stock != "" {
		parsed, err := strconv.Atoi(stock)
		v.Check(err == nil && parsed >= 0, "stock", "Stock must be a non-negative integer.")
		if err == nil && parsed >= 0 {
			input.Stock = parsed
		}
	}

	categoryID := strings.TrimSpace(form.CategoryID)
	if categoryID == "" {
		v.AddError("category_id", "Category is required.")
	} else {
		parsed, err := strconv.ParseInt(categoryID, 10, 64)
		v.Check(err == nil && parsed >= 1, "category_id", "Please select a valid category.")
		if err == nil && parsed >= 1 {
			input.CategoryID = parsed
		}
	}

	return input
}

// CategoryForm holds the raw string values submitted for a category.
type CategoryForm struct {
	Name        string
	Description string
}

// CategoryFormFromValues extracts the category fields from a parsed form body.
func CategoryFormFromValues(values url.Values) CategoryForm {
	return CategoryForm{
		Name:        values.Get("name"),
		Description: values.Get("description"),
	}
}

// ValidateCategoryForm checks the submitted category fields and returns the
// cleaned input, which is only meaningful when v.Valid() afterwards.
func ValidateCategoryForm(v *validator.Validator, form CategoryForm) CategoryInput {
	var input CategoryInput

	input.Name = strings.TrimSpace(form.Name)
	v.Check(input.Name != "", "name", "Name is required.")
	v.Check(len(input.Name) <= 255, "name", "Name must be between 1 and 255 characters.")
	v.Check(validator.Matches(input.Name, validator.NameRX), "name", "Name must only contain letters, spaces, and hyphens.")

	input.Description = strings.TrimSpace(form.Description)
	if input.Description != "" {
		v.Check(len(input.Description) <= 1000, "description", "Description must not exceed 1000 characters.")
	}

	return input
}

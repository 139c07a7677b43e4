// Package validation checks inbound request payloads before they touch the
// store. Failures collect per-field so a response can name every problem
// at once.
package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"survivalskills/internal/models"
)

// FieldError names one invalid field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors aggregates every invalid field in a request.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return strings.Join(parts, "; ")
}

func (e *FieldErrors) add(field, message string) {
	*e = append(*e, FieldError{Field: field, Message: message})
}

// validEmail applies the same permissive shape check the signup form uses:
// something before the @, and a dot somewhere after it.
func validEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && strings.Contains(email[at:], ".")
}

// SubscribeRequest is the payload for the newsletter/guide signup.
type SubscribeRequest struct {
	Email  string `json:"email"`
	Name   string `json:"name"`
	Region string `json:"region"`
}

// Validate checks the request. Email and name are required; region must be
// one of the four supported codes when present, and defaults to us when
// empty.
func (r *SubscribeRequest) Validate() error {
	var errs FieldErrors
	email := models.NormalizeEmail(r.Email)
	if email == "" {
		errs.add("email", "email is required")
	} else if !validEmail(email) {
		errs.add("email", "invalid email address")
	}
	if strings.TrimSpace(r.Name) == "" {
		errs.add("name", "name is required")
	}
	if strings.TrimSpace(r.Region) != "" {
		if _, ok := models.ParseRegion(r.Region); !ok {
			errs.add("region", "region must be one of us, uk, au, ca")
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Region returns the validated region, defaulting to us when absent.
func (r *SubscribeRequest) RegionOrDefault() models.Region {
	return models.NormalizeRegion(r.Region)
}

// ContactRequest is the payload for the contact form.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (r *ContactRequest) Validate() error {
	var errs FieldErrors
	if strings.TrimSpace(r.Name) == "" {
		errs.add("name", "name is required")
	}
	email := models.NormalizeEmail(r.Email)
	if email == "" {
		errs.add("email", "email is required")
	} else if !validEmail(email) {
		errs.add("email", "invalid email address")
	}
	if strings.TrimSpace(r.Subject) == "" {
		errs.add("subject", "subject is required")
	}
	if utf8.RuneCountInString(strings.TrimSpace(r.Message)) < 5 {
		errs.add("message", "message must be at least 5 characters")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CreateCategoryRequest is the admin payload for creating a category.
type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

func (r *CreateCategoryRequest) Validate() error {
	var errs FieldErrors
	if strings.TrimSpace(r.Name) == "" {
		errs.add("name", "name is required")
	}
	if strings.TrimSpace(r.Slug) == "" {
		errs.add("slug", "slug is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Model builds the Category to persist.
func (r *CreateCategoryRequest) Model() *models.Category {
	return &models.Category{
		Name:        strings.TrimSpace(r.Name),
		Slug:        strings.TrimSpace(r.Slug),
		Description: strings.TrimSpace(r.Description),
	}
}

// CreatePostRequest is the admin payload for creating a post. Published and
// Featured are pointers so an omitted field is distinguishable from an
// explicit false: omitted published defaults to true, omitted featured to
// false.
type CreatePostRequest struct {
	Title           string `json:"title"`
	Slug            string `json:"slug"`
	Excerpt         string `json:"excerpt"`
	Content         string `json:"content"`
	MetaDescription string `json:"metaDescription"`
	Keywords        string `json:"keywords"`
	CategoryID      *uint  `json:"categoryId"`
	ImageURL        string `json:"imageUrl"`
	ImageAlt        string `json:"imageAlt"`
	ReadTime        int    `json:"readTime"`
	Featured        *bool  `json:"featured"`
	Published       *bool  `json:"published"`
	Region          string `json:"region"`
}

func (r *CreatePostRequest) Validate() error {
	var errs FieldErrors
	if strings.TrimSpace(r.Title) == "" {
		errs.add("title", "title is required")
	}
	if strings.TrimSpace(r.Slug) == "" {
		errs.add("slug", "slug is required")
	}
	if strings.TrimSpace(r.Content) == "" {
		errs.add("content", "content is required")
	}
	if strings.TrimSpace(r.Region) != "" {
		if _, ok := models.ParseRegion(r.Region); !ok {
			errs.add("region", "region must be one of us, uk, au, ca")
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Model builds the Post to persist, applying the creation defaults.
func (r *CreatePostRequest) Model() *models.Post {
	published := true
	if r.Published != nil {
		published = *r.Published
	}
	featured := false
	if r.Featured != nil {
		featured = *r.Featured
	}
	return &models.Post{
		Title:           strings.TrimSpace(r.Title),
		Slug:            strings.TrimSpace(r.Slug),
		Excerpt:         r.Excerpt,
		Content:         r.Content,
		MetaDescription: r.MetaDescription,
		Keywords:        r.Keywords,
		CategoryID:      r.CategoryID,
		ImageURL:        r.ImageURL,
		ImageAlt:        r.ImageAlt,
		ReadTime:        r.ReadTime,
		Featured:        featured,
		Published:       published,
		Region:          models.NormalizeRegion(r.Region),
	}
}

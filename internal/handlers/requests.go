package handlers

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/shortlyhq/shortly-backend/pkg/urlcheck"
)

// FieldError is one field-level validation failure. Validation is explicit
// functions over the decoded input, not tag-driven reflection.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) String() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func joinFieldErrors(errs []FieldError) string {
	parts := make([]string, len(errs))
	for i, e := range errs {
		parts[i] = e.String()
	}
	return strings.Join(parts, "; ")
}

var (
	aliasPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// validateOriginalURL checks shape first (absolute http/https URL), then the
// public-host guard. urlcheck.IsPublic fails open on unparseable input; the
// shape check in front of it is what rejects garbage.
func validateOriginalURL(field, raw string) []FieldError {
	if raw == "" {
		return []FieldError{{Field: field, Message: "is required"}}
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return []FieldError{{Field: field, Message: "must be a valid http or https URL"}}
	}

	if !urlcheck.IsPublic(raw) {
		return []FieldError{{Field: field, Message: "must be a public URL (no localhost, private IPs or internal domains)"}}
	}

	return nil
}

type CreateURLRequest struct {
	OriginalURL string  `json:"originalUrl"`
	CustomAlias *string `json:"customAlias"`
}

func (r *CreateURLRequest) Validate() []FieldError {
	errs := validateOriginalURL("originalUrl", r.OriginalURL)

	if r.CustomAlias != nil {
		alias := *r.CustomAlias
		switch {
		case len(alias) < 3:
			errs = append(errs, FieldError{Field: "customAlias", Message: "must be at least 3 characters"})
		case len(alias) > 30:
			errs = append(errs, FieldError{Field: "customAlias", Message: "must be at most 30 characters"})
		case !aliasPattern.MatchString(alias):
			errs = append(errs, FieldError{Field: "customAlias", Message: "may only contain letters, numbers, hyphens and underscores"})
		}
	}

	return errs
}

type UpdateURLRequest struct {
	OriginalURL string `json:"originalUrl"`
}

func (r *UpdateURLRequest) Validate() []FieldError {
	return validateOriginalURL("originalUrl", r.OriginalURL)
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *RegisterRequest) Validate() []FieldError {
	var errs []FieldError
	if r.Email == "" {
		errs = append(errs, FieldError{Field: "email", Message: "is required"})
	} else if !emailPattern.MatchString(r.Email) {
		errs = append(errs, FieldError{Field: "email", Message: "must be a valid email address"})
	}
	if len(r.Password) < 6 {
		errs = append(errs, FieldError{Field: "password", Message: "must be at least 6 characters"})
	}
	return errs
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() []FieldError {
	var errs []FieldError
	if r.Email == "" {
		errs = append(errs, FieldError{Field: "email", Message: "is required"})
	}
	if r.Password == "" {
		errs = append(errs, FieldError{Field: "password", Message: "is required"})
	}
	return errs
}

package handlers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateURLRequestValidate(t *testing.T) {
	valid := CreateURLRequest{OriginalURL: "https://example.com"}
	assert.Empty(t, valid.Validate())

	alias := "my-link_1"
	withAlias := CreateURLRequest{OriginalURL: "https://example.com", CustomAlias: &alias}
	assert.Empty(t, withAlias.Validate())

	missing := CreateURLRequest{}
	errs := missing.Validate()
	assert.Len(t, errs, 1)
	assert.Equal(t, "originalUrl", errs[0].Field)

	garbage := CreateURLRequest{OriginalURL: "not a url"}
	assert.NotEmpty(t, garbage.Validate())

	ftp := CreateURLRequest{OriginalURL: "ftp://example.com/file"}
	assert.NotEmpty(t, ftp.Validate())

	private := CreateURLRequest{OriginalURL: "http://192.168.1.1"}
	assert.NotEmpty(t, private.Validate())
}

func TestCreateURLRequestAliasShape(t *testing.T) {
	cases := []struct {
		alias string
		ok    bool
	}{
		{"abc", true},
		{"my-link", true},
		{"My_Link99", true},
		{"ab", false},
		{strings.Repeat("a", 31), false},
		{"has space", false},
		{"bad!chars", false},
	}

	for _, tc := range cases {
		alias := tc.alias
		req := CreateURLRequest{OriginalURL: "https://example.com", CustomAlias: &alias}
		errs := req.Validate()
		if tc.ok {
			assert.Empty(t, errs, "alias %q should be accepted", tc.alias)
		} else {
			assert.NotEmpty(t, errs, "alias %q should be rejected", tc.alias)
		}
	}
}

func TestRegisterRequestValidate(t *testing.T) {
	ok := RegisterRequest{Email: "a@example.com", Password: "secret1"}
	assert.Empty(t, ok.Validate())

	badEmail := RegisterRequest{Email: "nope", Password: "secret1"}
	assert.NotEmpty(t, badEmail.Validate())

	shortPassword := RegisterRequest{Email: "a@example.com", Password: "123"}
	assert.NotEmpty(t, shortPassword.Validate())
}

func TestJoinFieldErrors(t *testing.T) {
	msg := joinFieldErrors([]FieldError{
		{Field: "email", Message: "is required"},
		{Field: "password", Message: "is required"},
	})
	assert.Equal(t, "email: is required; password: is required", msg)
}

package handler

import (
	"strings"
	"testing"

	"MockAuthPortal/internal/models"
	"MockAuthPortal/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, name string, data any) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, Templates().ExecuteTemplate(&sb, name, data))
	return sb.String()
}

func TestForm_SubmitLabels(t *testing.T) {
	html := render(t, "loginForm", LoginForm{})
	assert.Contains(t, html, `data-loading-label="Logging in..."`)
	assert.Contains(t, html, ">Log In</button>")
	assert.NotContains(t, html, `data-role="submit" disabled`)
	assert.Contains(t, html, "disabled:opacity-50")

	html = render(t, "signupForm", SignupForm{})
	assert.Contains(t, html, `data-loading-label="Signing up..."`)
	assert.Contains(t, html, ">Sign Up</button>")
}

func TestForm_ServerError(t *testing.T) {
	html := render(t, "signupForm", SignupForm{Error: "Registration failed"})
	assert.Contains(t, html, `<div class="text-red-500">Registration failed</div>`)

	html = render(t, "loginForm", LoginForm{})
	assert.NotContains(t, html, "text-red-500")
}

func TestForm_FieldErrorsAndEscaping(t *testing.T) {
	form := SignupForm{
		Values: models.SignupData{Name: `<script>alert(1)</script>`},
		Errors: validation.FieldErrors{{Field: "name", Message: "Name must not contain special characters"}},
	}
	html := render(t, "signupForm", form)
	assert.Contains(t, html, `<p class="mt-1 text-sm text-red-600">Name must not contain special characters</p>`)
	assert.NotContains(t, html, "<script>alert(1)</script>")
}

func TestForm_Labels(t *testing.T) {
	assert.Equal(t, "password", LoginForm{}.PasswordType())
	assert.Equal(t, "Show", LoginForm{}.ToggleLabel())
	assert.Equal(t, "text", SignupForm{ShowPassword: true}.PasswordType())
	assert.Equal(t, "Hide", SignupForm{ShowPassword: true}.ToggleLabel())
}

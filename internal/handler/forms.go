package handler

import (
	"embed"
	"html/template"

	"MockAuthPortal/internal/models"
	"MockAuthPortal/internal/validation"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// 페이지 템플릿 전체. gin의 SetHTMLTemplate에 넘긴다.
func Templates() *template.Template {
	return template.Must(template.New("").ParseFS(templateFS, "templates/*.tmpl"))
}

// 로그인 폼 화면 상태
type LoginForm struct {
	Values       models.LoginData
	Errors       validation.FieldErrors
	Error        string
	ShowPassword bool
}

func (f LoginForm) FieldError(field string) string { return f.Errors.Get(field) }
func (f LoginForm) PasswordType() string           { return passwordType(f.ShowPassword) }
func (f LoginForm) ToggleLabel() string            { return toggleLabel(f.ShowPassword) }

// 제출 중 표시는 layout의 스크립트가 data-loading-label로 바꾼다
func (f LoginForm) SubmitLabel() string  { return "Log In" }
func (f LoginForm) LoadingLabel() string { return "Logging in..." }

// 회원가입 폼 화면 상태
type SignupForm struct {
	Values       models.SignupData
	Errors       validation.FieldErrors
	Error        string
	ShowPassword bool
}

func (f SignupForm) FieldError(field string) string { return f.Errors.Get(field) }
func (f SignupForm) PasswordType() string           { return passwordType(f.ShowPassword) }
func (f SignupForm) ToggleLabel() string            { return toggleLabel(f.ShowPassword) }

func (f SignupForm) SubmitLabel() string  { return "Sign Up" }
func (f SignupForm) LoadingLabel() string { return "Signing up..." }

func passwordType(show bool) string {
	if show {
		return "text"
	}
	return "password"
}

func toggleLabel(show bool) string {
	if show {
		return "Hide"
	}
	return "Show"
}

/**
* Name: 			schemas.go
* Description: 		회원가입/로그인 폼 입력 검증
* Workflow: 		struct tag 규칙 검사 -> 필드별 첫 번째 실패 규칙을 사람이 읽을 메시지로 변환
 */
package validation

import (
	"errors"
	"log"
	"reflect"
	"regexp"
	"strings"

	"MockAuthPortal/internal/models"

	"github.com/go-playground/validator/v10"
)

// RE2의 \s는 ASCII 공백만 받는다 (유니코드 공백은 거부)
var nameRe = regexp.MustCompile(`^[a-zA-Z\s]+$`)

// 필드 -> 규칙(tag) -> 메시지
var messages = map[string]map[string]string{
	"name": {
		"required":   "Name is required",
		"min":        "Name must be at least 10 characters long",
		"max":        "Name must be less than 100 characters long",
		"personname": "Name must not contain special characters",
	},
	"email": {
		"required": "Email is required",
		"email":    "Please enter a valid email address",
	},
	"password": {
		"required": "Password is required",
		"min":      "Password must be at least 8 characters long",
	},
	"confirmPassword": {
		"required": "Please confirm your password",
		"eqfield":  "Passwords must match",
	},
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// 에러의 Field()가 json 이름(confirmPassword 등)을 돌려주도록 설정
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	if err := v.RegisterValidation("personname", func(fl validator.FieldLevel) bool {
		return nameRe.MatchString(fl.Field().String())
	}); err != nil {
		log.Fatalf("validation.newValidator(): failed to register personname: %v", err)
	}
	return v
}

// 필드 하나의 검증 실패
type FieldError struct {
	Field   string `json:"field" example:"email"`
	Message string `json:"message" example:"Please enter a valid email address"`
}

// 폼 전체의 검증 실패 목록. 구조체 필드 순서를 따른다.
type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	msgs := make([]string, 0, len(fe))
	for _, e := range fe {
		msgs = append(msgs, e.Message)
	}
	return strings.Join(msgs, "; ")
}

// 해당 필드의 메시지, 없으면 ""
func (fe FieldErrors) Get(field string) string {
	for _, e := range fe {
		if e.Field == field {
			return e.Message
		}
	}
	return ""
}

func (fe FieldErrors) Map() map[string]string {
	m := make(map[string]string, len(fe))
	for _, e := range fe {
		m[e.Field] = e.Message
	}
	return m
}

// 회원가입 입력 검증. 통과하면 nil
func ValidateSignup(data models.SignupData) FieldErrors {
	return check(data)
}

// 로그인 입력 검증. 통과하면 nil
func ValidateLogin(data models.LoginData) FieldErrors {
	return check(data)
}

func check(data any) FieldErrors {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// InvalidValidationError: 호출 측 버그
		log.Printf("[ERROR] validation.check(): %v", err)
		return FieldErrors{{Field: "", Message: "Invalid input"}}
	}

	out := make(FieldErrors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: messageFor(fe.Field(), fe.Tag())})
	}
	return out
}

func messageFor(field, tag string) string {
	if msg, ok := messages[field][tag]; ok {
		return msg
	}
	return field + " is invalid"
}

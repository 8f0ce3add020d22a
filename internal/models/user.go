package models

import "time"

// 가입된 사용자. 비밀번호는 보관하지 않는다.
type User struct {
	ID        string     `json:"id" example:"1"`
	Name      string     `json:"name" example:"Gildong Hong"`
	Email     string     `json:"email" example:"gildong@example.com"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// 회원가입 폼 입력
type SignupData struct {
	Name            string `json:"name" form:"name" validate:"required,min=10,max=100,personname" example:"Gildong Hong"`
	Email           string `json:"email" form:"email" validate:"required,email" example:"gildong@example.com"`
	Password        string `json:"password" form:"password" validate:"required,min=8" example:"password123"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword" validate:"required,eqfield=Password" example:"password123"`
}

// 로그인 폼 입력
type LoginData struct {
	Email    string `json:"email" form:"email" validate:"required,email" example:"gildong@example.com"`
	Password string `json:"password" form:"password" validate:"required" example:"password123"`
}

// 로그인 결과: 사용자와 새로 발급된 세션 토큰
type AuthResult struct {
	User  User   `json:"user"`
	Token string `json:"token" example:"mock-token-3f2a9c0d8e7b4a51"`
}

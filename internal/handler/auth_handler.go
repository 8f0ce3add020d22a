/**
* Name: 			auth_handler.go
* Description: 		Gin 프레임워크의 JSON API 핸들러
* Workflow: 		회원가입, 로그인, 현재 사용자 조회, 로그아웃
 */
package handler

import (
	"log"
	"net/http"

	"MockAuthPortal/internal/auth"
	"MockAuthPortal/internal/middleware"
	"MockAuthPortal/internal/models"
	"MockAuthPortal/internal/session"
	"MockAuthPortal/internal/validation"

	"github.com/gin-gonic/gin"
)

type SuccessResponse struct {
	Message string `json:"message" example:"Logged out"`
}
type ErrorResponse struct {
	Error string `json:"error" example:"User not found"`
}

// 검증 실패 응답
type ValidationErrorResponse struct {
	Error  string            `json:"error" example:"Please enter a valid email address"`
	Fields map[string]string `json:"fields"`
}

type APIHandler struct {
	svc *auth.Service
}

func NewAPIHandler(svc *auth.Service) *APIHandler {
	return &APIHandler{svc: svc}
}

// Signup godoc
// @Summary      회원가입 (Signup)
// @Description  새로운 사용자 계정을 만들고 세션 쿠키(token, user)를 설정합니다.
// @Tags         User
// @Accept       json
// @Produce      json
// @Param        request body models.SignupData true "회원가입 요청 정보"
// @Success      201 {object} models.AuthResult
// @Failure      400 {object} handler.ValidationErrorResponse
// @Failure      409 {object} handler.ErrorResponse "이미 가입된 이메일"
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/signup [post]
func (h *APIHandler) Signup(c *gin.Context) {
	var data models.SignupData
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if errs := validation.ValidateSignup(data); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{Error: errs.Error(), Fields: errs.Map()})
		return
	}

	store := middleware.Store(c)
	user, err := h.svc.Signup(c.Request.Context(), store, data)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": userMessage(err, "Signup failed")})
		return
	}
	token, _ := store.Get(session.TokenKey)
	c.JSON(http.StatusCreated, models.AuthResult{User: user, Token: token})
}

// Login godoc
// @Summary      로그인 (Login)
// @Description  이메일로 로그인하고 새 세션 토큰을 발급받습니다. 비밀번호는 비어 있지만 않으면 됩니다.
// @Tags         User
// @Accept       json
// @Produce      json
// @Param        request body models.LoginData true "로그인 요청 정보"
// @Success      200 {object} models.AuthResult
// @Failure      400 {object} handler.ValidationErrorResponse "잘못된 요청"
// @Failure      401 {object} handler.ErrorResponse "User not found / Invalid password"
// @Failure      500 {object} handler.ErrorResponse "서버 내부 오류"
// @Router       /api/login [post]
func (h *APIHandler) Login(c *gin.Context) {
	var data models.LoginData
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if errs := validation.ValidateLogin(data); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{Error: errs.Error(), Fields: errs.Map()})
		return
	}

	res, err := h.svc.Login(c.Request.Context(), middleware.Store(c), data)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": userMessage(err, "Login failed")})
		return
	}
	c.JSON(http.StatusOK, res)
}

// Me godoc
// @Summary      현재 사용자 조회 (Me)
// @Description  세션의 사용자 정보를 돌려줍니다. 토큰은 token 쿠키 또는 Authorization 헤더로 전달합니다.
// @Tags         API (Protected)
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} models.User
// @Failure      401 {object} handler.ErrorResponse "Invalid token / User not found"
// @Router       /api/me [get]
func (h *APIHandler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization required"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// Logout godoc
// @Summary      로그아웃 (Logout)
// @Description  세션 쿠키(token, user)를 지웁니다.
// @Tags         User
// @Produce      json
// @Success      200 {object} handler.SuccessResponse
// @Router       /api/logout [post]
func (h *APIHandler) Logout(c *gin.Context) {
	if err := h.svc.Logout(middleware.Store(c)); err != nil {
		log.Printf("[ERROR] APIHandler.Logout(): %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Logout failed"})
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Logged out"})
}

/**
* Name: 			page_handler.go
* Description: 		서버 렌더링 페이지 핸들러
* Workflow: 		로그인/회원가입 폼, 비밀번호 표시 토글, 대시보드, 로그아웃
 */
package handler

import (
	"log"
	"net/http"

	"MockAuthPortal/internal/auth"
	"MockAuthPortal/internal/middleware"
	"MockAuthPortal/internal/models"
	"MockAuthPortal/internal/validation"

	"github.com/gin-gonic/gin"
)

const actionToggle = "toggle"

type PageHandler struct {
	svc *auth.Service
}

func NewPageHandler(svc *auth.Service) *PageHandler {
	return &PageHandler{svc: svc}
}

func (h *PageHandler) Index(c *gin.Context) {
	c.Redirect(http.StatusFound, "/login")
}

func (h *PageHandler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.tmpl", LoginForm{})
}

func (h *PageHandler) Login(c *gin.Context) {
	var data models.LoginData
	if err := c.ShouldBind(&data); err != nil {
		c.HTML(http.StatusBadRequest, "login.tmpl", LoginForm{Error: "Invalid request"})
		return
	}
	form := LoginForm{Values: data, ShowPassword: c.PostForm("showPassword") == "true"}

	if c.PostForm("action") == actionToggle {
		form.ShowPassword = !form.ShowPassword
		c.HTML(http.StatusOK, "login.tmpl", form)
		return
	}

	if errs := validation.ValidateLogin(data); len(errs) > 0 {
		form.Errors = errs
		c.HTML(http.StatusUnprocessableEntity, "login.tmpl", form)
		return
	}

	if _, err := h.svc.Login(c.Request.Context(), middleware.Store(c), data); err != nil {
		form.Error = userMessage(err, "Login failed")
		c.HTML(statusFor(err), "login.tmpl", form)
		return
	}
	c.Redirect(http.StatusFound, "/dashboard")
}

func (h *PageHandler) SignupPage(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.tmpl", SignupForm{})
}

func (h *PageHandler) Signup(c *gin.Context) {
	var data models.SignupData
	if err := c.ShouldBind(&data); err != nil {
		c.HTML(http.StatusBadRequest, "signup.tmpl", SignupForm{Error: "Invalid request"})
		return
	}
	form := SignupForm{Values: data, ShowPassword: c.PostForm("showPassword") == "true"}

	if c.PostForm("action") == actionToggle {
		form.ShowPassword = !form.ShowPassword
		c.HTML(http.StatusOK, "signup.tmpl", form)
		return
	}

	if errs := validation.ValidateSignup(data); len(errs) > 0 {
		form.Errors = errs
		c.HTML(http.StatusUnprocessableEntity, "signup.tmpl", form)
		return
	}

	if _, err := h.svc.Signup(c.Request.Context(), middleware.Store(c), data); err != nil {
		form.Error = userMessage(err, "Signup failed")
		c.HTML(statusFor(err), "signup.tmpl", form)
		return
	}
	c.Redirect(http.StatusFound, "/login")
}

// RequireSession 뒤에서만 호출된다
func (h *PageHandler) Dashboard(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}
	c.HTML(http.StatusOK, "dashboard.tmpl", gin.H{"User": user})
}

func (h *PageHandler) Logout(c *gin.Context) {
	if err := h.svc.Logout(middleware.Store(c)); err != nil {
		log.Printf("[ERROR] PageHandler.Logout(): %v", err)
	}
	c.Redirect(http.StatusFound, "/login")
}

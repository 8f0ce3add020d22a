package middleware

import (
	"log"
	"net/http"
	"strings"

	"MockAuthPortal/internal/auth"
	"MockAuthPortal/internal/models"
	"MockAuthPortal/internal/session"

	"github.com/gin-gonic/gin"
)

const (
	sessionKey = "session"
	userKey    = "user"
)

type Mode int

const (
	// 페이지 요청은 /login으로 보낸다
	ModePage Mode = iota
	// API 요청은 401 JSON
	ModeAPI
)

// 요청마다 쿠키 기반 세션 저장소를 붙인다
func Sessions(opts session.CookieOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(sessionKey, session.NewCookieStore(c, opts))
		c.Next()
	}
}

// Sessions 미들웨어가 붙인 저장소. 없으면 기본 옵션으로 만든다.
func Store(c *gin.Context) session.Store {
	if v, ok := c.Get(sessionKey); ok {
		if s, ok := v.(session.Store); ok {
			return s
		}
	}
	s := session.NewCookieStore(c, session.CookieOptions{})
	c.Set(sessionKey, s)
	return s
}

// RequireSession이 통과시킨 사용자
func CurrentUser(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return models.User{}, false
	}
	u, ok := v.(models.User)
	return u, ok
}

// 두 모드 모두 한쪽 슬롯만 남은 세션은 지운다.
// API 모드에서는 Bearer 헤더가 token 슬롯을 대신한다.
func RequireSession(svc *auth.Service, mode Mode) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := Store(c)

		if mode == ModePage {
			user := svc.CurrentAuthUser(c.Request.Context(), store)
			if user == nil {
				reject(c, mode, "")
				return
			}
			c.Set(userKey, *user)
			c.Next()
			return
		}

		var token string
		if authHeader := c.GetHeader("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimPrefix(authHeader, "Bearer ")
		} else {
			token, _, _ = session.Load(store)
		}
		if token == "" {
			reject(c, mode, "Authorization required")
			return
		}

		user, err := svc.Authenticate(c.Request.Context(), store, token)
		if err != nil {
			msg, ok := auth.PublicMessage(err)
			if !ok {
				log.Printf("[ERROR] RequireSession(): %v", err)
				msg = "Unauthorized"
			}
			reject(c, mode, msg)
			return
		}
		c.Set(userKey, user)
		c.Next()
	}
}

func reject(c *gin.Context, mode Mode, msg string) {
	if mode == ModeAPI {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
		return
	}
	c.Redirect(http.StatusFound, "/login")
	c.Abort()
}

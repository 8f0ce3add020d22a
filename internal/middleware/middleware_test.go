package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"MockAuthPortal/internal/auth"
	"MockAuthPortal/internal/models"
	"MockAuthPortal/internal/session"
	"MockAuthPortal/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// 유효한 세션 쿠키 한 쌍을 만든다
func sessionCookies(t *testing.T, svc *auth.Service) (string, []*http.Cookie) {
	t.Helper()
	store := session.NewMemoryStore()
	_, err := svc.Signup(context.Background(), store, models.SignupData{Name: "Gildong Hong", Email: "gildong@example.com"})
	require.NoError(t, err)

	token, _ := store.Get(session.TokenKey)
	user, _ := store.Get(session.UserKey)
	return token, []*http.Cookie{
		{Name: session.TokenKey, Value: token},
		{Name: session.UserKey, Value: user},
	}
}

func newRouter(svc *auth.Service, mode Mode) *gin.Engine {
	r := gin.New()
	r.Use(Sessions(session.CookieOptions{}))
	r.GET("/protected", RequireSession(svc, mode), func(c *gin.Context) {
		u, ok := CurrentUser(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, u.Email)
	})
	return r
}

func TestRequireSession_Page(t *testing.T) {
	svc := auth.NewService(storage.NewMemoryUserStore(), auth.NewUserCodec("k"), 0)
	_, cookies := sessionCookies(t, svc)
	r := newRouter(svc, ModePage)

	t.Run("no session redirects", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
	})

	t.Run("valid session passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		for _, c := range cookies {
			req.AddCookie(c)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "gildong@example.com", w.Body.String())
	})

	t.Run("invalid token clears session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: session.TokenKey, Value: "forged"})
		req.AddCookie(cookies[1])
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Len(t, w.Result().Cookies(), 2)
	})
}

// 만료된(Max-Age<=0) Set-Cookie가 있는지
func expiredCookie(w *httptest.ResponseRecorder, name string) bool {
	for _, c := range w.Result().Cookies() {
		if c.Name == name && c.Value == "" && c.MaxAge < 0 {
			return true
		}
	}
	return false
}

func TestRequireSession_DropsLoneUserSlot(t *testing.T) {
	svc := auth.NewService(storage.NewMemoryUserStore(), auth.NewUserCodec("k"), 0)
	_, cookies := sessionCookies(t, svc)

	t.Run("page", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(cookies[1])
		w := httptest.NewRecorder()
		newRouter(svc, ModePage).ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
		assert.True(t, expiredCookie(w, session.UserKey), "lone user cookie must be expired")
	})

	t.Run("api", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(cookies[1])
		w := httptest.NewRecorder()
		newRouter(svc, ModeAPI).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"Authorization required"}`, w.Body.String())
		assert.True(t, expiredCookie(w, session.UserKey), "lone user cookie must be expired")
	})
}

func TestRequireSession_API(t *testing.T) {
	svc := auth.NewService(storage.NewMemoryUserStore(), auth.NewUserCodec("k"), 0)
	token, cookies := sessionCookies(t, svc)
	r := newRouter(svc, ModeAPI)

	t.Run("missing", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"Authorization required"}`, w.Body.String())
	})

	t.Run("bearer token with user cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		req.AddCookie(cookies[1])
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("cookie session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		for _, c := range cookies {
			req.AddCookie(c)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("forged token cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: session.TokenKey, Value: "forged"})
		req.AddCookie(cookies[1])
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"Invalid token"}`, w.Body.String())
	})

	t.Run("bad bearer token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer nope")
		req.AddCookie(cookies[1])
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"Invalid token"}`, w.Body.String())
	})

	t.Run("token without user slot", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"User not found"}`, w.Body.String())
	})
}

func TestRateLimit(t *testing.T) {
	r := gin.New()
	r.Use(RateLimit(1, 2))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)
}

func TestRateLimit_Disabled(t *testing.T) {
	r := gin.New()
	r.Use(RateLimit(0, 0))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for i := 0; i < 20; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusNoContent, w.Code)
	}
}

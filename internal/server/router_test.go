package server

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"MockAuthPortal/internal/auth"
	"MockAuthPortal/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T, mutate func(*config.Config)) *gin.Engine {
	t.Helper()
	cfg := config.Defaults()
	cfg.NetworkDelay = 0
	cfg.RateLimitRPS = 0
	if mutate != nil {
		mutate(cfg)
	}
	users, closeStore, err := NewUserStore(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { closeStore() })

	return NewRouter(cfg, auth.NewService(users, auth.NewUserCodec("test-secret"), cfg.NetworkDelay))
}

func serve(r *gin.Engine, req *http.Request, cookies []*http.Cookie) *httptest.ResponseRecorder {
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func formRequest(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// 회원가입 -> 로그인 -> 대시보드 -> 로그아웃 -> 대시보드 거부
func TestFullSessionFlow(t *testing.T) {
	for _, backend := range []string{config.BackendMemory, config.BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			r := newTestRouter(t, func(c *config.Config) {
				c.StorageBackend = backend
				c.DBPath = filepath.Join(t.TempDir(), "users.db")
			})

			w := serve(r, formRequest("/signup", url.Values{
				"name":            {"Gildong Hong"},
				"email":           {"gildong@example.com"},
				"password":        {"password123"},
				"confirmPassword": {"password123"},
			}), nil)
			require.Equal(t, http.StatusFound, w.Code)
			require.Equal(t, "/login", w.Header().Get("Location"))

			w = serve(r, formRequest("/login", url.Values{"email": {"gildong@example.com"}, "password": {"password123"}}), nil)
			require.Equal(t, http.StatusFound, w.Code)
			cookies := w.Result().Cookies()
			require.Len(t, cookies, 2)

			w = serve(r, httptest.NewRequest(http.MethodGet, "/dashboard", nil), cookies)
			require.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), "Welcome, Gildong Hong!")

			w = serve(r, httptest.NewRequest(http.MethodPost, "/logout", nil), cookies)
			require.Equal(t, http.StatusFound, w.Code)

			w = serve(r, httptest.NewRequest(http.MethodGet, "/dashboard", nil), nil)
			assert.Equal(t, http.StatusFound, w.Code)
			assert.Equal(t, "/login", w.Header().Get("Location"))
		})
	}
}

func TestSwaggerDocs(t *testing.T) {
	r := newTestRouter(t, nil)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"/api/login"`)
	assert.Contains(t, w.Body.String(), "Mock Auth Portal API")
}

func TestCORS(t *testing.T) {
	r := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/login", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Authorization")
	w := serve(r, req, nil)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}

func TestRateLimitOnSubmissions(t *testing.T) {
	r := newTestRouter(t, func(c *config.Config) {
		c.RateLimitRPS = 0.001
		c.RateLimitBurst = 1
	})

	first := serve(r, formRequest("/login", url.Values{}), nil)
	assert.Equal(t, http.StatusUnprocessableEntity, first.Code)

	second := serve(r, formRequest("/login", url.Values{}), nil)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)

	// 페이지 조회는 제한하지 않는다
	page := serve(r, httptest.NewRequest(http.MethodGet, "/login", nil), nil)
	assert.Equal(t, http.StatusOK, page.Code)
}

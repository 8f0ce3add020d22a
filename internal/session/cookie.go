/**
* Name: 			cookie.go
* Description: 		gin 쿠키 기반 세션 저장소
* Workflow: 		요청 쿠키 읽기, Set-Cookie 쓰기
 */
package session

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type CookieOptions struct {
	Path   string
	Domain string
	MaxAge time.Duration
	Secure bool
}

// 현재 요청의 브라우저 쿠키를 슬롯으로 쓴다.
// 같은 요청 안에서는 쓴 값을 바로 다시 읽을 수 있다.
type CookieStore struct {
	c       *gin.Context
	opts    CookieOptions
	pending map[string]*string
}

func NewCookieStore(c *gin.Context, opts CookieOptions) *CookieStore {
	if opts.Path == "" {
		opts.Path = "/"
	}
	return &CookieStore{c: c, opts: opts, pending: make(map[string]*string)}
}

func (s *CookieStore) Get(key string) (string, bool) {
	if v, ok := s.pending[key]; ok {
		if v == nil {
			return "", false
		}
		return *v, true
	}
	v, err := s.c.Cookie(key)
	if err != nil || v == "" {
		return "", false
	}
	return v, true
}

func (s *CookieStore) Set(key, value string) error {
	s.c.SetSameSite(http.SameSiteLaxMode)
	s.c.SetCookie(key, value, int(s.opts.MaxAge.Seconds()), s.opts.Path, s.opts.Domain, s.opts.Secure, true)
	s.pending[key] = &value
	return nil
}

func (s *CookieStore) Remove(key string) error {
	s.c.SetSameSite(http.SameSiteLaxMode)
	s.c.SetCookie(key, "", -1, s.opts.Path, s.opts.Domain, s.opts.Secure, true)
	s.pending[key] = nil
	return nil
}

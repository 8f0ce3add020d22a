/**
* Name: 			client.go
* Description: 		JSON API 클라이언트
* Workflow: 		회원가입, 로그인, 현재 사용자 조회, 로그아웃 + 세션 슬롯 보관
 */
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"MockAuthPortal/internal/logs"
	"MockAuthPortal/internal/models"
	"MockAuthPortal/internal/session"
)

// 서버의 2xx 이외 응답
type APIError struct {
	Status  int
	Message string
	Fields  map[string]string
}

func (e *APIError) Error() string {
	return e.Message
}

type Client struct {
	baseURL string
	http    *http.Client
	store   session.Store
}

func New(baseURL string, store session.Store) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
		store:   store,
	}
}

// 가입 후 서버가 준 세션 쿠키를 로컬 저장소에 보관한다
func (c *Client) Signup(ctx context.Context, data models.SignupData) (models.AuthResult, error) {
	var res models.AuthResult
	resp, err := c.do(ctx, http.MethodPost, "/api/signup", data, &res)
	if err != nil {
		return models.AuthResult{}, err
	}
	if err := c.keepSession(resp); err != nil {
		return models.AuthResult{}, err
	}
	return res, nil
}

func (c *Client) Login(ctx context.Context, data models.LoginData) (models.AuthResult, error) {
	var res models.AuthResult
	resp, err := c.do(ctx, http.MethodPost, "/api/login", data, &res)
	if err != nil {
		return models.AuthResult{}, err
	}
	if err := c.keepSession(resp); err != nil {
		return models.AuthResult{}, err
	}
	return res, nil
}

// 세션이 없으면 nil. 서버가 거부한 세션은 로컬에서도 지운다.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	if _, _, ok := session.Load(c.store); !ok {
		return nil, nil
	}
	var user models.User
	if _, err := c.do(ctx, http.MethodGet, "/api/me", nil, &user); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
			logs.Printv("server rejected session: %s", apiErr.Message)
			return nil, session.Clear(c.store)
		}
		return nil, err
	}
	return &user, nil
}

// 서버에 닿지 못해도 로컬 세션은 지운다
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "/api/logout", nil, nil)
	if cerr := session.Clear(c.store); cerr != nil {
		return cerr
	}
	if err != nil {
		logs.Printv("server logout failed: %v", err)
	}
	return nil
}

func (c *Client) keepSession(resp *http.Response) error {
	var token, user string
	for _, ck := range resp.Cookies() {
		switch ck.Name {
		case session.TokenKey:
			token = ck.Value
		case session.UserKey:
			user = ck.Value
		}
	}
	if token == "" || user == "" {
		return fmt.Errorf("server did not return a session")
	}
	return session.Save(c.store, token, user)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, user, ok := session.Load(c.store); ok {
		req.Header.Set("Authorization", "Bearer "+token)
		req.AddCookie(&http.Cookie{Name: session.TokenKey, Value: token})
		req.AddCookie(&http.Cookie{Name: session.UserKey, Value: user})
	}

	logs.Printv("%s %s", method, req.URL)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var payload struct {
			Error  string            `json:"error"`
			Fields map[string]string `json:"fields"`
		}
		if json.Unmarshal(raw, &payload) == nil && payload.Error != "" {
			apiErr.Message = payload.Error
			apiErr.Fields = payload.Fields
		}
		return nil, apiErr
	}
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return nil, fmt.Errorf("unexpected response from %s: %w", path, err)
		}
	}
	return resp, nil
}

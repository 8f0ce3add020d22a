/**
* Name: 			service.go
* Description: 		목(mock) 인증 백엔드
* Workflow: 		회원가입, 로그인, 현재 사용자 조회, 로그아웃
 */
package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"MockAuthPortal/internal/models"
	"MockAuthPortal/internal/session"
	"MockAuthPortal/internal/storage"
)

// 화면에 그대로 노출되는 에러 메시지
var (
	ErrUserExists      = errors.New("User already exists")
	ErrUserNotFound    = errors.New("User not found")
	ErrInvalidPassword = errors.New("Invalid password")
	ErrInvalidToken    = errors.New("Invalid token")
)

// 사용자에게 보여줄 메시지. 알려진 에러가 아니면 ok=false
func PublicMessage(err error) (msg string, ok bool) {
	for _, known := range []error{ErrUserExists, ErrUserNotFound, ErrInvalidPassword, ErrInvalidToken} {
		if errors.Is(err, known) {
			return known.Error(), true
		}
	}
	return "", false
}

type Service struct {
	users storage.UserStore
	codec *UserCodec
	delay time.Duration
}

// delay는 네트워크 지연을 흉내 내기 위해 모든 호출 앞에 들어간다
func NewService(users storage.UserStore, codec *UserCodec, delay time.Duration) *Service {
	return &Service{users: users, codec: codec, delay: delay}
}

func (s *Service) Signup(ctx context.Context, store session.Store, data models.SignupData) (models.User, error) {
	if err := s.wait(ctx); err != nil {
		return models.User{}, err
	}

	user, err := s.users.Create(ctx, data.Name, data.Email)
	if err != nil {
		if errors.Is(err, storage.ErrUserExists) {
			return models.User{}, ErrUserExists
		}
		return models.User{}, fmt.Errorf("Signup(): failed to create user: %w", err)
	}

	if err := s.saveSession(store, user, NewToken()); err != nil {
		return models.User{}, err
	}
	log.Printf("Signup(): created user %s (%s)", user.ID, user.Email)
	return user, nil
}

func (s *Service) Login(ctx context.Context, store session.Store, data models.LoginData) (models.AuthResult, error) {
	if err := s.wait(ctx); err != nil {
		return models.AuthResult{}, err
	}

	user, err := s.users.FindByEmail(ctx, data.Email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return models.AuthResult{}, ErrUserNotFound
		}
		return models.AuthResult{}, fmt.Errorf("Login(): failed to look up user: %w", err)
	}

	// 목 백엔드라 비밀번호 내용은 확인하지 않는다
	if data.Password == "" {
		return models.AuthResult{}, ErrInvalidPassword
	}

	token := NewToken()
	if err := s.saveSession(store, user, token); err != nil {
		return models.AuthResult{}, err
	}
	return models.AuthResult{User: user, Token: token}, nil
}

// 토큰 접두사만 확인하고 user 슬롯의 사용자를 돌려준다
func (s *Service) GetCurrentUser(ctx context.Context, store session.Store, token string) (models.User, error) {
	if err := s.wait(ctx); err != nil {
		return models.User{}, err
	}

	if !IsMockToken(token) {
		return models.User{}, ErrInvalidToken
	}

	encoded, ok := store.Get(session.UserKey)
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	user, err := s.codec.Decode(encoded)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrUserNotFound, err)
	}
	return user, nil
}

// GetCurrentUser와 같지만 실패하면 세션을 지운다
func (s *Service) Authenticate(ctx context.Context, store session.Store, token string) (models.User, error) {
	user, err := s.GetCurrentUser(ctx, store, token)
	if err != nil {
		if lerr := s.Logout(store); lerr != nil {
			log.Printf("[ERROR] Authenticate(): failed to clear session: %v", lerr)
		}
		return models.User{}, err
	}
	return user, nil
}

// 세션이 없거나 유효하지 않으면 nil. 한쪽 슬롯만 남은 세션도 지운다.
func (s *Service) CurrentAuthUser(ctx context.Context, store session.Store) *models.User {
	token, _, ok := session.Load(store)
	if !ok {
		return nil
	}
	user, err := s.Authenticate(ctx, store, token)
	if err != nil {
		if _, known := PublicMessage(err); !known {
			log.Printf("[ERROR] CurrentAuthUser(): %v", err)
		}
		return nil
	}
	return &user
}

func (s *Service) Logout(store session.Store) error {
	return session.Clear(store)
}

func (s *Service) saveSession(store session.Store, user models.User, token string) error {
	encoded, err := s.codec.Encode(user)
	if err != nil {
		return fmt.Errorf("failed to encode session user: %w", err)
	}
	if err := session.Save(store, token, encoded); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (s *Service) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

package storage

import (
	"context"
	"strconv"
	"sync"
	"time"

	"MockAuthPortal/internal/models"
)

// 프로세스 메모리에만 있는 사용자 목록. 재시작하면 사라진다.
type MemoryUserStore struct {
	mu    sync.RWMutex
	users []models.User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{}
}

func (s *MemoryUserStore) Create(_ context.Context, name, email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.find(email); ok {
		return models.User{}, ErrUserExists
	}
	user := models.User{
		ID:        strconv.Itoa(len(s.users) + 1),
		Name:      name,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
	s.users = append(s.users, user)
	return user, nil
}

func (s *MemoryUserStore) FindByEmail(_ context.Context, email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.find(email)
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

// 호출 측이 mu를 잡고 있어야 한다
func (s *MemoryUserStore) find(email string) (models.User, bool) {
	for _, u := range s.users {
		if u.Email == email {
			return u, true
		}
	}
	return models.User{}, false
}

package storage

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"MockAuthPortal/internal/models"

	"modernc.org/sqlite"
)

var (
	ErrUserExists   = errors.New("user already exists")
	ErrUserNotFound = errors.New("user not found")
)

// 사용자 저장소. 이메일은 유일하다.
type UserStore interface {
	Create(ctx context.Context, name, email string) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
}

// SQLite에 사용자를 영속화하는 저장소
type SQLiteUserStore struct {
	db *sql.DB
}

func NewSQLiteUserStore(db *sql.DB) *SQLiteUserStore {
	return &SQLiteUserStore{db: db}
}

func (s *SQLiteUserStore) Create(ctx context.Context, name, email string) (models.User, error) {
	stmt, err := s.db.PrepareContext(ctx, "INSERT INTO users(name, email, created_at) VALUES(?, ?, ?)")
	if err != nil {
		return models.User{}, err
	}
	defer stmt.Close()

	createdAt := time.Now().UTC()
	res, err := stmt.ExecContext(ctx, name, email, createdAt.Format(time.RFC3339Nano))
	if err != nil {
		var sqliteErr *sqlite.Error
		if errors.As(err, &sqliteErr) {
			// SQLITE_CONSTRAINT_UNIQUE
			if sqliteErr.Code() == 2067 {
				return models.User{}, ErrUserExists
			}
		}
		return models.User{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.User{}, err
	}
	return models.User{
		ID:        strconv.FormatInt(id, 10),
		Name:      name,
		Email:     email,
		CreatedAt: createdAt,
	}, nil
}

func (s *SQLiteUserStore) FindByEmail(ctx context.Context, email string) (models.User, error) {
	row := s.db.QueryRowContext(ctx, "SELECT id, name, email, created_at, updated_at FROM users WHERE email = ?", email)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(row scanner) (models.User, error) {
	var (
		user       models.User
		id         int64
		createdStr string
		updatedStr sql.NullString
	)
	if err := row.Scan(&id, &user.Name, &user.Email, &createdStr, &updatedStr); err != nil {
		return models.User{}, err
	}
	user.ID = strconv.FormatInt(id, 10)

	createdAt, err := time.Parse(time.RFC3339Nano, createdStr)
	if err != nil {
		return models.User{}, err
	}
	user.CreatedAt = createdAt

	if updatedStr.Valid {
		updatedAt, err := time.Parse(time.RFC3339Nano, updatedStr.String)
		if err != nil {
			return models.User{}, err
		}
		user.UpdatedAt = &updatedAt
	}
	return user, nil
}

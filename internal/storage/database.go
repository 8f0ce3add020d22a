package storage

import (
	"database/sql"
	"fmt"
	"log"

	_ "modernc.org/sqlite"
)

// SQLite 파일을 열고 테이블을 만든다
func InitDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("InitDB(): failed to open database: %w", err)
	}
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("InitDB(): failed to connect to database: %w", err)
	}
	// SQLite는 동시 쓰기를 지원하지 않으므로 커넥션 하나로 제한
	db.SetMaxOpenConns(1)

	createUsersTable := `
	CREATE TABLE IF NOT EXISTS users (
			"id" INTEGER PRIMARY KEY AUTOINCREMENT,
			"name" TEXT NOT NULL,
			"email" TEXT NOT NULL UNIQUE,
			"created_at" TEXT NOT NULL,
			"updated_at" TEXT
	);`

	if _, err := db.Exec(createUsersTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("InitDB(): failed to create users table: %w", err)
	}
	log.Printf("InitDB(): Init and create table successfully! (%s)", path)
	return db, nil
}

package handler

import (
	"context"
	"errors"
	"log"
	"net/http"

	"MockAuthPortal/internal/auth"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, auth.ErrUserExists):
		return http.StatusConflict
	case errors.Is(err, auth.ErrUserNotFound),
		errors.Is(err, auth.ErrInvalidPassword),
		errors.Is(err, auth.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusRequestTimeout
	default:
		return http.StatusInternalServerError
	}
}

// 알려진 에러는 메시지 그대로, 나머지는 로그만 남기고 fallback
func userMessage(err error, fallback string) string {
	if msg, ok := auth.PublicMessage(err); ok {
		return msg
	}
	log.Printf("[ERROR] %s: %v", fallback, err)
	return fallback
}

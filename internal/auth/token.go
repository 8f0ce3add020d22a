/* 세션 토큰 발급과 user 슬롯 직렬화를 위한 유틸리티 함수들 */

package auth

import (
	"errors"
	"log"
	"strings"
	"time"

	"MockAuthPortal/internal/models"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const TokenPrefix = "mock-token-"

const defaultUserKey = "default_secret_key"

var ErrMalformedUser = errors.New("malformed user slot")

// 새 세션 토큰. 존재 여부만 확인하며 검증하지 않는다.
func NewToken() string {
	return TokenPrefix + strings.ReplaceAll(uuid.NewString(), "-", "")
}

func IsMockToken(token string) bool {
	return strings.HasPrefix(token, TokenPrefix)
}

// Claims 구조체 정의, JWT 페이로드에 사용자 포함
type Claims struct {
	User models.User `json:"user"`
	jwt.RegisteredClaims
}

// user 슬롯에 들어갈 사용자 직렬화. 클라이언트가 값을 바꾸지 못하도록 서명한다.
type UserCodec struct {
	key []byte
}

func NewUserCodec(secret string) *UserCodec {
	if secret == "" {
		log.Println("Warning: JWT_SECRET_KEY is not set. Using default key.")
		secret = defaultUserKey
	}
	return &UserCodec{key: []byte(secret)}
}

// 만료 없음: 세션은 로그아웃할 때만 끝난다
func (uc *UserCodec) Encode(user models.User) (string, error) {
	claims := &Claims{
		User: user,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
			Issuer:   "MockAuthPortal",
			Subject:  user.ID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(uc.key)
	if err != nil {
		return "", err
	}
	return tokenString, nil
}

func (uc *UserCodec) Decode(encoded string) (models.User, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(encoded, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrMalformedUser
		}
		return uc.key, nil
	})
	if err != nil {
		return models.User{}, errors.Join(ErrMalformedUser, err)
	}
	if !token.Valid {
		return models.User{}, ErrMalformedUser
	}
	return claims.User, nil
}

/**
* Name: 			store.go
* Description: 		클라이언트 쪽 세션 (token 슬롯 + user 슬롯)
* Workflow: 		저장, 조회, 삭제
 */
package session

import "log"

const (
	TokenKey = "token"
	UserKey  = "user"
)

// 클라이언트가 보관하는 문자열 키-값 저장소
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Remove(key string) error
}

// 두 슬롯을 함께 쓴다
func Save(s Store, token, encodedUser string) error {
	if err := s.Set(UserKey, encodedUser); err != nil {
		return err
	}
	if err := s.Set(TokenKey, token); err != nil {
		// 반쪽 세션이 남지 않도록 되돌린다
		if rerr := s.Remove(UserKey); rerr != nil {
			log.Printf("[ERROR] session.Save(): failed to roll back user slot: %v", rerr)
		}
		return err
	}
	return nil
}

// 두 슬롯을 모두 지운다
func Clear(s Store) error {
	errUser := s.Remove(UserKey)
	errToken := s.Remove(TokenKey)
	if errUser != nil {
		return errUser
	}
	return errToken
}

// 두 슬롯이 다 있을 때만 ok. 한쪽만 남아 있으면 지운다.
func Load(s Store) (token, encodedUser string, ok bool) {
	token, hasToken := s.Get(TokenKey)
	encodedUser, hasUser := s.Get(UserKey)

	if hasToken && hasUser {
		return token, encodedUser, true
	}
	if hasToken || hasUser {
		log.Printf("session.Load(): dropping orphaned slot (token=%t, user=%t)", hasToken, hasUser)
		if err := Clear(s); err != nil {
			log.Printf("[ERROR] session.Load(): failed to clear orphaned slot: %v", err)
		}
	}
	return "", "", false
}

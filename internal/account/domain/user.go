package domain

import (
	"time"

	"course_content_service/pkg/encrypt"
	token "course_content_service/pkg/token"
)

// UserStatus account state
type UserStatus int

const (
	// UserStatusOffline user has no live session
	UserStatusOffline UserStatus = iota
	// UserStatusOnline user holds a live session
	UserStatusOnline
	// UserStatusBanned user cannot log in
	UserStatusBanned
)

// User an account that can own courses
type User struct {
	ID       int64
	UserID   string
	Email    string
	Password string
	Role     token.RoleType
	Status   UserStatus
}

// UserSession live login session cached in redis
type UserSession struct {
	Token        string    `json:"Token"`
	UserID       string    `json:"UserID"`
	CreatedAt    time.Time `json:"CreatedAt"`
	LastActivity time.Time `json:"LastActivity"`
	ExpiredAt    time.Time `json:"ExpiredAt"`
}

// IsPasswordMatch compare the stored hash with the input
func (u *User) IsPasswordMatch(inputPwd string) error {
	return encrypt.CheckPassword(u.Password, inputPwd)
}

// IsExpired report whether the session passed its deadline
func (s *UserSession) IsExpired() bool {
	return time.Now().After(s.ExpiredAt)
}

// UserQuery join conditions are used to query users
type UserQuery struct {
	ID     *int64  `db:"id"`
	UserID *string `db:"user_id"`
	Email  *string `db:"email"`
}

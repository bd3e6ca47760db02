package model

import (
	"time"

	"github.com/rs/xid"
)

type UserID string

func NewUserID() UserID {
	return UserID(xid.New().String())
}

type User interface {
	WithID[UserID]
	WithCreatedAt

	Username() string

	// PasswordHash returns the bcrypt hash of the user password
	PasswordHash() string
}

type BaseUser struct {
	id           UserID
	username     string
	passwordHash string
	createdAt    time.Time
}

// ID implements User.
func (u *BaseUser) ID() UserID {
	return u.id
}

// Username implements User.
func (u *BaseUser) Username() string {
	return u.username
}

// PasswordHash implements User.
func (u *BaseUser) PasswordHash() string {
	return u.passwordHash
}

// CreatedAt implements User.
func (u *BaseUser) CreatedAt() time.Time {
	return u.createdAt
}

var _ User = &BaseUser{}

func NewUser(username string, passwordHash string, createdAt time.Time) *BaseUser {
	return &BaseUser{
		id:           NewUserID(),
		username:     username,
		passwordHash: passwordHash,
		createdAt:    createdAt,
	}
}

func UserString(u User) string {
	if u == nil {
		return "<anonymous>"
	}

	return u.Username() + "#" + string(u.ID())
}

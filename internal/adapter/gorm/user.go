package gorm

import (
	"time"

	"github.com/bornholm/todo/internal/core/model"
)

type User struct {
	ID string `gorm:"primaryKey;autoIncrement:false"`

	CreatedAt time.Time

	Username     string `gorm:"unique;not null"`
	PasswordHash string `gorm:"not null"`

	Todos []*Todo `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE;"`
}

type wrappedUser struct {
	u *User
}

// ID implements model.User.
func (w *wrappedUser) ID() model.UserID {
	return model.UserID(w.u.ID)
}

// Username implements model.User.
func (w *wrappedUser) Username() string {
	return w.u.Username
}

// PasswordHash implements model.User.
func (w *wrappedUser) PasswordHash() string {
	return w.u.PasswordHash
}

// CreatedAt implements model.User.
func (w *wrappedUser) CreatedAt() time.Time {
	return w.u.CreatedAt
}

var _ model.User = &wrappedUser{}

func fromUser(u model.User) *User {
	return &User{
		ID:           string(u.ID()),
		CreatedAt:    u.CreatedAt(),
		Username:     u.Username(),
		PasswordHash: u.PasswordHash(),
	}
}

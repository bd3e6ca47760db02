package gorm

import (
	"context"

	"github.com/bornholm/todo/internal/core/model"
	"github.com/bornholm/todo/internal/core/port"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// CreateUser implements port.UserStore.
func (s *Store) CreateUser(ctx context.Context, user model.User) error {
	err := s.withDatabase(ctx, true, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Omit("Todos").Create(fromUser(user)).Error; err != nil {
			if isUniqueViolation(err) {
				return errors.WithStack(port.ErrAlreadyExists)
			}

			return errors.WithStack(err)
		}

		return nil
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// GetUserByID implements port.UserStore.
func (s *Store) GetUserByID(ctx context.Context, userID model.UserID) (model.User, error) {
	var user User

	err := s.withDatabase(ctx, false, func(ctx context.Context, db *gorm.DB) error {
		if err := db.First(&user, "id = ?", string(userID)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(port.ErrNotFound)
			}

			return errors.WithStack(err)
		}

		return nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedUser{&user}, nil
}

// GetUserByUsername implements port.UserStore.
func (s *Store) GetUserByUsername(ctx context.Context, username string) (model.User, error) {
	var user User

	err := s.withDatabase(ctx, false, func(ctx context.Context, db *gorm.DB) error {
		if err := db.First(&user, "username = ?", username).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(port.ErrNotFound)
			}

			return errors.WithStack(err)
		}

		return nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedUser{&user}, nil
}

// QueryUsers implements port.UserStore.
func (s *Store) QueryUsers(ctx context.Context, opts port.QueryUsersOptions) ([]model.User, error) {
	var users []*User

	err := s.withDatabase(ctx, false, func(ctx context.Context, db *gorm.DB) error {
		query := db.Model(&User{})

		if opts.Page != nil {
			limit := 10
			if opts.Limit != nil {
				limit = *opts.Limit
			}
			query = query.Offset(*opts.Page * limit)
		}

		if opts.Limit != nil {
			query = query.Limit(*opts.Limit)
		}

		if err := query.Order("username ASC").Find(&users).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	wrappedUsers := make([]model.User, 0, len(users))
	for _, u := range users {
		wrappedUsers = append(wrappedUsers, &wrappedUser{u})
	}

	return wrappedUsers, nil
}

package usecase

import (
	"context"
	"errors"
	"strings"

	"jobboard/internal/domain/user"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const usersPageSize = 10

// UpdateUserInput carries presence-based partial updates: a nil pointer
// means "leave the field alone", a non-nil one replaces the stored value
// even when it points at an empty value.
type UpdateUserInput struct {
	Name       *string
	Email      *string
	Password   *string
	Phone      *string
	Address    *string
	JobTitle   *string
	Experience *string

	Skills         *[]string
	Certifications *[]map[string]any
	Documents      *[]map[string]any
	Settings       *user.Settings
}

func (in UpdateUserInput) Empty() bool {
	return in.Name == nil && in.Email == nil && in.Password == nil &&
		in.Phone == nil && in.Address == nil && in.JobTitle == nil &&
		in.Experience == nil && in.Skills == nil && in.Certifications == nil &&
		in.Documents == nil && in.Settings == nil
}

type UserUsecase interface {
	ListUsers(ctx context.Context, page int) ([]user.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (user.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, in UpdateUserInput) (user.User, error)
}

type Users struct {
	users user.Repository
}

func NewUserUsecase(users user.Repository) *Users {
	return &Users{users: users}
}

func (u *Users) ListUsers(ctx context.Context, page int) ([]user.User, error) {
	if page < 1 {
		page = 1
	}

	list, err := u.users.List(ctx, usersPageSize, (page-1)*usersPageSize)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]user.User, 0, len(list))
	for _, usr := range list {
		out = append(out, sanitizeUser(usr))
	}
	return out, nil
}

func (u *Users) GetUser(ctx context.Context, id uuid.UUID) (user.User, error) {
	usr, err := u.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, ErrInternal
	}
	return sanitizeUser(usr), nil
}

func (u *Users) UpdateUser(ctx context.Context, id uuid.UUID, in UpdateUserInput) (user.User, error) {
	if in.Empty() {
		return user.User{}, ErrInvalidInput
	}

	usr, err := u.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, ErrInternal
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return user.User{}, ErrInvalidInput
		}
		usr.Name = name
	}
	if in.Email != nil {
		email := normalizeEmail(*in.Email)
		if email == "" {
			return user.User{}, ErrInvalidInput
		}
		usr.Email = email
	}
	if in.Password != nil {
		if !isValidPassword(*in.Password) {
			return user.User{}, ErrInvalidInput
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return user.User{}, ErrInternal
		}
		usr.PasswordHash = string(hash)
	}
	if in.Phone != nil {
		usr.Phone = *in.Phone
	}
	if in.Address != nil {
		usr.Address = *in.Address
	}
	if in.JobTitle != nil {
		usr.JobTitle = *in.JobTitle
	}
	if in.Experience != nil {
		usr.Experience = *in.Experience
	}
	if in.Skills != nil {
		usr.Skills = *in.Skills
	}
	if in.Certifications != nil {
		usr.Certifications = *in.Certifications
	}
	if in.Documents != nil {
		usr.Documents = *in.Documents
	}
	if in.Settings != nil {
		usr.Settings = *in.Settings
	}

	if err := u.users.Update(ctx, usr); err != nil {
		switch {
		case errors.Is(err, user.ErrNotFound):
			return user.User{}, user.ErrNotFound
		case errors.Is(err, user.ErrEmailTaken):
			return user.User{}, ErrEmailAlreadyRegistered
		}
		return user.User{}, ErrInternal
	}

	updated, err := u.users.GetByID(ctx, id)
	if err != nil {
		return user.User{}, ErrInternal
	}
	return sanitizeUser(updated), nil
}

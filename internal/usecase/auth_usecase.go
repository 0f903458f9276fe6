package usecase

import (
	"context"
	"errors"
	"strings"

	"jobboard/internal/domain/user"
	"jobboard/internal/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid email or password")
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string

	Phone      string
	Address    string
	JobTitle   string
	Experience string

	Skills         []string
	Certifications []map[string]any
	Documents      []map[string]any
	Settings       *user.Settings
}

type AuthUsecase interface {
	Register(ctx context.Context, in RegisterInput) (user.User, error)
	Login(ctx context.Context, email, password string) (user.User, string, error)
}

type Auth struct {
	users user.Repository
	jwt   jwt.Service
}

func NewAuthUsecase(users user.Repository, jwtSvc jwt.Service) *Auth {
	return &Auth{users: users, jwt: jwtSvc}
}

func (u *Auth) Register(ctx context.Context, in RegisterInput) (user.User, error) {
	email := normalizeEmail(in.Email)
	if strings.TrimSpace(in.Name) == "" || email == "" || !isValidPassword(in.Password) {
		return user.User{}, ErrInvalidInput
	}

	exists, err := u.users.ExistsByEmail(ctx, email)
	if err != nil {
		return user.User{}, ErrInternal
	}
	if exists {
		return user.User{}, ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, ErrInternal
	}

	usr := user.User{
		ID:             uuid.New(),
		Name:           strings.TrimSpace(in.Name),
		Email:          email,
		PasswordHash:   string(hash),
		Phone:          in.Phone,
		Address:        in.Address,
		JobTitle:       in.JobTitle,
		Experience:     in.Experience,
		Skills:         in.Skills,
		Certifications: in.Certifications,
		Documents:      in.Documents,
	}
	if in.Settings != nil {
		usr.Settings = *in.Settings
	}

	if err := u.users.Create(ctx, usr); err != nil {
		// the unique index may beat the ExistsByEmail check under
		// concurrent registrations
		if errors.Is(err, user.ErrEmailTaken) {
			return user.User{}, ErrEmailAlreadyRegistered
		}
		return user.User{}, ErrInternal
	}

	created, err := u.users.GetByID(ctx, usr.ID)
	if err != nil {
		return user.User{}, ErrInternal
	}
	return sanitizeUser(created), nil
}

// Login deliberately reports the same error for an unknown email and a
// wrong password.
func (u *Auth) Login(ctx context.Context, email, password string) (user.User, string, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return user.User{}, "", ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, "", ErrInvalidCredentials
		}
		return user.User{}, "", ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}

	token, err := u.jwt.GenerateToken(usr.ID, usr.Email)
	if err != nil {
		return user.User{}, "", ErrInternal
	}

	return sanitizeUser(usr), token, nil
}

func normalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return ""
	}
	return strings.ToLower(email)
}

func isValidPassword(pw string) bool {
	return len(strings.TrimSpace(pw)) >= 6
}

func sanitizeUser(u user.User) user.User {
	u.PasswordHash = ""
	u.ResetPasswordToken = ""
	u.ResetPasswordExpires = nil
	return u
}

package usecase

import (
	"context"
	"strings"
	"time"

	"clinic/internal/domain/entity"
)

// RegisterInput is the sign-up form.
type RegisterInput struct {
	Username  string `json:"username" form:"username" validate:"required,max=150,username"`
	Email     string `json:"email" form:"email" validate:"omitempty,email,max=254"`
	FirstName string `json:"first_name" form:"first_name" validate:"max=150"`
	LastName  string `json:"last_name" form:"last_name" validate:"max=150"`
	Password1 string `json:"password1" form:"password1" validate:"required"`
	Password2 string `json:"password2" form:"password2" validate:"required"`
	Role      string `json:"role" form:"role" validate:"required,oneof=manager doctor"`
	Phone     string `json:"phone" form:"phone" validate:"omitempty,max=32"`
}

func (in *RegisterInput) Normalize() {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Role = strings.ToLower(strings.TrimSpace(in.Role))
	in.Phone = strings.TrimSpace(in.Phone)
}

// LoginInput is the login form.
type LoginInput struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// LoginOutput carries the issued session token and who it belongs to.
type LoginOutput struct {
	Token     string
	ExpiresAt time.Time
	Principal *entity.Principal
}

// CompleteProfileInput attaches a role to an account that has none.
type CompleteProfileInput struct {
	Role  string `json:"role" form:"role" validate:"required,oneof=manager doctor"`
	Phone string `json:"phone" form:"phone" validate:"omitempty,max=32"`
}

func (in *CompleteProfileInput) Normalize() {
	in.Role = strings.ToLower(strings.TrimSpace(in.Role))
	in.Phone = strings.TrimSpace(in.Phone)
}

// AccountUsecase covers registration, sessions and account repair.
type AccountUsecase interface {
	// Register writes the user and its profile in one transaction.
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)

	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Authenticate turns a session token into a principal with its role resolved.
	Authenticate(ctx context.Context, token string) (*entity.Principal, error)

	Logout(ctx context.Context, principal *entity.Principal) error

	// CompleteProfile returns the principal with its new role.
	CompleteProfile(ctx context.Context, principal *entity.Principal, input *CompleteProfileInput) (*entity.Principal, error)
}

// Package auth implements the mock account flow behind the auth screen.
// Accounts live in memory for the life of the process; there is no real
// session model beyond the signed token.
package auth

import (
	"context"
	"strings"

	"github.com/sanari/health-api/internal/model"
	"github.com/sanari/health-api/internal/store"
	pkgauth "github.com/sanari/health-api/pkg/auth"
	apperrors "github.com/sanari/health-api/pkg/errors"
	"github.com/sanari/health-api/pkg/identity"
	"github.com/sanari/health-api/pkg/security"
	"github.com/sanari/health-api/pkg/validate"
)

type Service struct {
	users  *store.Store[*model.User]
	hasher security.PasswordHasher
	tokens *pkgauth.TokenManager
}

func NewService(users *store.Store[*model.User], hasher security.PasswordHasher, tokens *pkgauth.TokenManager) *Service {
	return &Service{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

// Signup registers an account and returns a session token.
func (s *Service) Signup(_ context.Context, req *model.SignupRequest) (*model.TokenResponse, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	phone := strings.TrimSpace(req.Phone)

	err := validate.Required(
		validate.Field{Name: "name", Value: name},
		validate.Field{Name: "email", Value: email},
		validate.Field{Name: "phone", Value: phone},
		validate.Field{Name: "password", Value: req.Password},
	)
	if err == nil {
		err = validate.Email("email", email)
	}
	if err == nil {
		err = validate.MinLen("password", req.Password, security.MinPasswordLen)
	}
	if err != nil {
		return nil, err
	}

	if _, ok := s.findByEmail(email); ok {
		return nil, apperrors.BadRequest("an account with this email already exists", nil)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	user := &model.User{
		Base: model.Base{
			ID:        identity.NewID(),
			CreatedAt: identity.NowISO(),
		},
		Name:         name,
		Email:        email,
		Phone:        phone,
		PasswordHash: hash,
	}
	s.users.Add(user)

	token, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	return &model.TokenResponse{Token: token, User: user}, nil
}

// Login verifies credentials and returns a session token.
func (s *Service) Login(_ context.Context, req *model.LoginRequest) (*model.TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	err := validate.Required(
		validate.Field{Name: "email", Value: email},
		validate.Field{Name: "password", Value: req.Password},
	)
	if err != nil {
		return nil, err
	}

	user, ok := s.findByEmail(email)
	if !ok {
		return nil, apperrors.Unauthorized("invalid email or password", nil)
	}
	if err := s.hasher.Compare(user.PasswordHash, req.Password); err != nil {
		return nil, apperrors.Unauthorized("invalid email or password", nil)
	}

	token, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	return &model.TokenResponse{Token: token, User: user}, nil
}

func (s *Service) findByEmail(email string) (*model.User, bool) {
	for _, u := range s.users.List() {
		if u.Email == email {
			return u, true
		}
	}
	return nil, false
}

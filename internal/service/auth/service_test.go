package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanari/health-api/internal/model"
	"github.com/sanari/health-api/internal/store"
	pkgauth "github.com/sanari/health-api/pkg/auth"
	apperrors "github.com/sanari/health-api/pkg/errors"
	"github.com/sanari/health-api/pkg/security"
	"github.com/sanari/health-api/pkg/validate"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	tokens := pkgauth.NewTokenManager("test-secret", time.Hour)
	return NewService(store.New[*model.User](), security.NewBcryptHasher(4), tokens)
}

func signupRequest() *model.SignupRequest {
	return &model.SignupRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Phone:    "+15550100",
		Password: "secret1",
	}
}

func TestSignup(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.Signup(context.Background(), signupRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	require.NotNil(t, resp.User)
	assert.NotEmpty(t, resp.User.ID)
	assert.Equal(t, "asha@example.com", resp.User.Email)
	assert.NotEqual(t, "secret1", resp.User.PasswordHash, "password is stored hashed")
}

func TestSignupNormalizesEmail(t *testing.T) {
	svc := newTestService(t)

	req := signupRequest()
	req.Email = "  Asha@Example.COM "

	resp, err := svc.Signup(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", resp.User.Email)
}

func TestSignupValidation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*model.SignupRequest)
		wantField string
	}{
		{"missing name", func(r *model.SignupRequest) { r.Name = "" }, "name"},
		{"missing email", func(r *model.SignupRequest) { r.Email = "" }, "email"},
		{"invalid email", func(r *model.SignupRequest) { r.Email = "nope" }, "email"},
		{"missing phone", func(r *model.SignupRequest) { r.Phone = " " }, "phone"},
		{"short password", func(r *model.SignupRequest) { r.Password = "12345" }, "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t)
			req := signupRequest()
			tt.mutate(req)

			_, err := svc.Signup(context.Background(), req)
			require.Error(t, err)

			field, ok := validate.IsFieldError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantField, field)
		})
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, signupRequest())
	require.NoError(t, err)

	req := signupRequest()
	req.Name = "Other"
	_, err = svc.Signup(ctx, req)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrBadRequest, appErr.Code)
}

func TestLogin(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, signupRequest())
	require.NoError(t, err)

	resp, err := svc.Login(ctx, &model.LoginRequest{Email: "asha@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "asha@example.com", resp.User.Email)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, signupRequest())
	require.NoError(t, err)

	_, err = svc.Login(ctx, &model.LoginRequest{Email: "asha@example.com", Password: "wrong-pass"})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrUnauthorized, appErr.Code)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Login(context.Background(), &model.LoginRequest{Email: "nobody@example.com", Password: "secret1"})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrUnauthorized, appErr.Code)
}

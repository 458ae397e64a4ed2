package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/fit-journal/internal/config"
	"github.com/MKhiriev/fit-journal/internal/logger"
	"github.com/MKhiriev/fit-journal/internal/mock"
	"github.com/MKhiriev/fit-journal/internal/store"
	"github.com/MKhiriev/fit-journal/models"
)

func newTestAuthSvc(t *testing.T) (AuthService, *mock.MockUserRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)

	svc := NewAuthService(repo, config.App{
		TokenSignKey:     "test-sign-key",
		TokenIssuer:      "fit-journal-test",
		TokenDuration:    time.Hour,
		PasswordHashCost: bcrypt.MinCost,
	}, logger.Nop())

	return svc, repo
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

// ── RegisterUser ─────────────────────────────────────────────────────────────

func TestAuthService_RegisterUser_Success(t *testing.T) {
	svc, repo := newTestAuthSvc(t)
	ctx := context.Background()

	repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "alice", u.Username)
			assert.NotEqual(t, "Secr3tPass", u.Password, "password must be hashed before storage")
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("Secr3tPass")))

			u.UserID = 1
			return u, nil
		},
	)

	user, err := svc.RegisterUser(ctx, models.User{Username: "alice", FullName: "Alice", Password: "Secr3tPass"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
	assert.Empty(t, user.Password)
}

func TestAuthService_RegisterUser_Invalid(t *testing.T) {
	svc, _ := newTestAuthSvc(t)

	_, err := svc.RegisterUser(context.Background(), models.User{Username: "al", Password: "weak"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAuthService_RegisterUser_UsernameTaken(t *testing.T) {
	svc, repo := newTestAuthSvc(t)

	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrLoginAlreadyExists)

	_, err := svc.RegisterUser(context.Background(), models.User{Username: "alice", Password: "Secr3tPass"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestAuthService_RegisterUser_StorageError(t *testing.T) {
	svc, repo := newTestAuthSvc(t)

	dbErr := errors.New("connection reset")
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, dbErr)

	_, err := svc.RegisterUser(context.Background(), models.User{Username: "alice", Password: "Secr3tPass"})
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrUsernameTaken)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login(t *testing.T) {
	stored := models.User{UserID: 5, Username: "alice", Password: ""}

	tests := []struct {
		name    string
		input   models.User
		setup   func(repo *mock.MockUserRepository, hash string)
		wantErr error
	}{
		{
			name:  "success",
			input: models.User{Username: "alice", Password: "Secr3tPass"},
			setup: func(repo *mock.MockUserRepository, hash string) {
				u := stored
				u.Password = hash
				repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(u, nil)
			},
		},
		{
			name:  "wrong password",
			input: models.User{Username: "alice", Password: "Wr0ngPass"},
			setup: func(repo *mock.MockUserRepository, hash string) {
				u := stored
				u.Password = hash
				repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(u, nil)
			},
			wantErr: ErrWrongCredentials,
		},
		{
			name:  "unknown user",
			input: models.User{Username: "bob", Password: "Secr3tPass"},
			setup: func(repo *mock.MockUserRepository, _ string) {
				repo.EXPECT().FindUserByUsername(gomock.Any(), "bob").Return(models.User{}, store.ErrNoUserWasFound)
			},
			wantErr: ErrWrongCredentials,
		},
		{
			name:    "missing password",
			input:   models.User{Username: "alice"},
			setup:   func(*mock.MockUserRepository, string) {},
			wantErr: ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestAuthSvc(t)
			tt.setup(repo, hashed(t, "Secr3tPass"))

			user, err := svc.Login(context.Background(), tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(5), user.UserID)
			assert.Empty(t, user.Password)
		})
	}
}

// ── Tokens ───────────────────────────────────────────────────────────────────

func TestAuthService_TokenRoundTrip(t *testing.T) {
	svc, _ := newTestAuthSvc(t)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 9})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(9), parsed.UserID)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	svc, _ := newTestAuthSvc(t)

	_, err := svc.ParseToken(context.Background(), "garbage")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)

	other := NewAuthService(nil, config.App{
		TokenSignKey:  "another-key",
		TokenIssuer:   "fit-journal-test",
		TokenDuration: time.Hour,
	}, logger.Nop())
	foreign, err := other.CreateToken(context.Background(), models.User{UserID: 1})
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), foreign.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_CreateToken_Misconfigured(t *testing.T) {
	svc := NewAuthService(nil, config.App{}, logger.Nop())

	_, err := svc.CreateToken(context.Background(), models.User{UserID: 1})
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

// ── CurrentUser ──────────────────────────────────────────────────────────────

func TestAuthService_CurrentUser(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc, repo := newTestAuthSvc(t)
		repo.EXPECT().FindUserByID(gomock.Any(), int64(3)).
			Return(models.User{UserID: 3, Username: "alice", Password: "hash"}, nil)

		user, err := svc.CurrentUser(context.Background(), 3)
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		assert.Empty(t, user.Password)
	})

	t.Run("deleted", func(t *testing.T) {
		svc, repo := newTestAuthSvc(t)
		repo.EXPECT().FindUserByID(gomock.Any(), int64(3)).Return(models.User{}, store.ErrNoUserWasFound)

		_, err := svc.CurrentUser(context.Background(), 3)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

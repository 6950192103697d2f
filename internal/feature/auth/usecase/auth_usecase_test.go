package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"cryptowatch_backend/internal/feature/auth/domain/entity"
)

// mockUserRepository はUserRepositoryインターフェースのモック実装です。
type mockUserRepository struct {
	createFn      func(ctx context.Context, user *entity.User) error
	findByEmailFn func(ctx context.Context, email string) (*entity.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return nil, ErrUserNotFound
}

// mockJWTGenerator is a JWTGenerator stub returning a fixed token.
type mockJWTGenerator struct {
	token string
	err   error
}

func (m *mockJWTGenerator) GenerateToken(userID uint, email string) (string, error) {
	return m.token, m.err
}

func TestAuthUsecase_Signup(t *testing.T) {
	t.Parallel()

	t.Run("hashes the password before storing", func(t *testing.T) {
		t.Parallel()

		var created *entity.User
		repo := &mockUserRepository{
			createFn: func(ctx context.Context, user *entity.User) error {
				created = user
				return nil
			},
		}
		uc := NewAuthUsecase(repo, &mockJWTGenerator{})

		err := uc.Signup(context.Background(), "user@example.com", "password123")

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, "user@example.com", created.Email)
		assert.NotEqual(t, "password123", created.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("password123")))
	})

	t.Run("rejects short passwords", func(t *testing.T) {
		t.Parallel()

		uc := NewAuthUsecase(&mockUserRepository{}, &mockJWTGenerator{})

		err := uc.Signup(context.Background(), "user@example.com", "short")

		assert.Error(t, err)
	})

	t.Run("propagates duplicate email", func(t *testing.T) {
		t.Parallel()

		repo := &mockUserRepository{
			createFn: func(ctx context.Context, user *entity.User) error {
				return ErrEmailAlreadyExists
			},
		}
		uc := NewAuthUsecase(repo, &mockJWTGenerator{})

		err := uc.Signup(context.Background(), "user@example.com", "password123")

		assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	})
}

func TestAuthUsecase_Login(t *testing.T) {
	t.Parallel()

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	existing := &entity.User{ID: 1, Email: "user@example.com", Password: string(hashed)}

	tests := []struct {
		name      string
		findFn    func(ctx context.Context, email string) (*entity.User, error)
		password  string
		generator *mockJWTGenerator
		wantToken string
		wantErr   bool
	}{
		{
			name: "success returns token",
			findFn: func(ctx context.Context, email string) (*entity.User, error) {
				return existing, nil
			},
			password:  "password123",
			generator: &mockJWTGenerator{token: "signed-token"},
			wantToken: "signed-token",
		},
		{
			name: "wrong password fails",
			findFn: func(ctx context.Context, email string) (*entity.User, error) {
				return existing, nil
			},
			password:  "wrong-password",
			generator: &mockJWTGenerator{token: "signed-token"},
			wantErr:   true,
		},
		{
			name: "unknown user fails with the same error",
			findFn: func(ctx context.Context, email string) (*entity.User, error) {
				return nil, ErrUserNotFound
			},
			password:  "password123",
			generator: &mockJWTGenerator{token: "signed-token"},
			wantErr:   true,
		},
		{
			name: "token generation failure propagates",
			findFn: func(ctx context.Context, email string) (*entity.User, error) {
				return existing, nil
			},
			password:  "password123",
			generator: &mockJWTGenerator{err: errors.New("signing failed")},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uc := NewAuthUsecase(&mockUserRepository{findByEmailFn: tt.findFn}, tt.generator)

			token, err := uc.Login(context.Background(), "user@example.com", tt.password)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}

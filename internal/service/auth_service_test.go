package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"tourism_backend/internal/domain"
	"tourism_backend/internal/repository"
	"tourism_backend/internal/session"
	"tourism_backend/internal/utils"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// --- Mock UserRepository ---

type mockUserRepo struct {
	createFn         func(ctx context.Context, user *domain.User) error
	findByUsernameFn func(ctx context.Context, username string) (*domain.User, error)
	updatePasswordFn func(ctx context.Context, username, passwordHash string) error
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.createFn(ctx, user)
}
func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return m.findByUsernameFn(ctx, username)
}
func (m *mockUserRepo) UpdatePassword(ctx context.Context, username, passwordHash string) error {
	return m.updatePasswordFn(ctx, username, passwordHash)
}

// --- In-memory session registry ---

type memoryRegistry struct {
	entries map[string]session.Session
}

func newMemoryRegistry() *memoryRegistry {
	return &memoryRegistry{entries: make(map[string]session.Session)}
}

func (m *memoryRegistry) Put(ctx context.Context, token string, sess session.Session, ttl time.Duration) error {
	m.entries[token] = sess
	return nil
}
func (m *memoryRegistry) Get(ctx context.Context, token string) (*session.Session, error) {
	sess, ok := m.entries[token]
	if !ok {
		return nil, nil
	}
	return &sess, nil
}
func (m *memoryRegistry) Delete(ctx context.Context, token string) error {
	delete(m.entries, token)
	return nil
}

// --- Tests ---

func storedUser(t *testing.T, password string) *domain.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	assert.NoError(t, err)
	return &domain.User{ID: 7, Username: "mukesh", Password: hash}
}

func TestSignup_Success(t *testing.T) {
	var created *domain.User
	repo := &mockUserRepo{
		createFn: func(ctx context.Context, user *domain.User) error {
			user.ID = 1
			created = user
			return nil
		},
	}

	svc := NewAuthService(repo, newMemoryRegistry(), "test-secret", time.Hour)
	err := svc.Signup(context.Background(), SignupInput{Username: "mukesh", Password: "secret123"})

	assert.NoError(t, err)
	assert.Equal(t, "mukesh", created.Username)
	// The stored value is a verifiable hash, never the plaintext
	assert.NotEqual(t, "secret123", created.Password)
	assert.True(t, utils.CheckPassword("secret123", created.Password))
}

func TestSignup_DuplicateUsername(t *testing.T) {
	repo := &mockUserRepo{
		createFn: func(ctx context.Context, user *domain.User) error {
			return repository.ErrDuplicateKey
		},
	}

	svc := NewAuthService(repo, newMemoryRegistry(), "test-secret", time.Hour)
	err := svc.Signup(context.Background(), SignupInput{Username: "mukesh", Password: "secret123"})

	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestLogin_Success(t *testing.T) {
	user := storedUser(t, "secret123")
	repo := &mockUserRepo{
		findByUsernameFn: func(ctx context.Context, username string) (*domain.User, error) {
			return user, nil
		},
	}
	reg := newMemoryRegistry()

	svc := NewAuthService(repo, reg, "test-secret", time.Hour)
	result, err := svc.Login(context.Background(), "mukesh", "secret123")

	assert.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, uint(7), result.UserID)
	assert.Equal(t, "mukesh", result.Username)

	// The minted token is registered and resolvable
	sess, err := reg.Get(context.Background(), result.Token)
	assert.NoError(t, err)
	assert.Equal(t, "mukesh", sess.Username)
}

func TestLogin_FailureIsUniform(t *testing.T) {
	user := storedUser(t, "secret123")
	repo := &mockUserRepo{
		findByUsernameFn: func(ctx context.Context, username string) (*domain.User, error) {
			if username == "mukesh" {
				return user, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewAuthService(repo, newMemoryRegistry(), "test-secret", time.Hour)

	_, wrongPassword := svc.Login(context.Background(), "mukesh", "wrong-password")
	_, unknownUser := svc.Login(context.Background(), "nobody", "secret123")

	// Neither path reveals whether the username exists
	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
}

func TestLogout_Idempotent(t *testing.T) {
	user := storedUser(t, "secret123")
	repo := &mockUserRepo{
		findByUsernameFn: func(ctx context.Context, username string) (*domain.User, error) {
			return user, nil
		},
	}
	reg := newMemoryRegistry()

	svc := NewAuthService(repo, reg, "test-secret", time.Hour)
	result, err := svc.Login(context.Background(), "mukesh", "secret123")
	assert.NoError(t, err)

	assert.NoError(t, svc.Logout(context.Background(), result.Token))
	assert.NoError(t, svc.Logout(context.Background(), result.Token)) // Second logout is the same success

	_, err = svc.Authorize(context.Background(), result.Token)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestResetPassword_SamePasswordRejected(t *testing.T) {
	user := storedUser(t, "secret123")
	updated := false
	repo := &mockUserRepo{
		findByUsernameFn: func(ctx context.Context, username string) (*domain.User, error) {
			return user, nil
		},
		updatePasswordFn: func(ctx context.Context, username, passwordHash string) error {
			updated = true
			return nil
		},
	}

	svc := NewAuthService(repo, newMemoryRegistry(), "test-secret", time.Hour)
	err := svc.ResetPassword(context.Background(), "mukesh", "secret123")

	assert.ErrorIs(t, err, ErrSamePassword)
	assert.False(t, updated) // No-op resets never touch the row
}

func TestResetPassword_NewPassword(t *testing.T) {
	user := storedUser(t, "secret123")
	var newHash string
	repo := &mockUserRepo{
		findByUsernameFn: func(ctx context.Context, username string) (*domain.User, error) {
			return user, nil
		},
		updatePasswordFn: func(ctx context.Context, username, passwordHash string) error {
			newHash = passwordHash
			return nil
		},
	}

	svc := NewAuthService(repo, newMemoryRegistry(), "test-secret", time.Hour)
	err := svc.ResetPassword(context.Background(), "mukesh", "different456")

	assert.NoError(t, err)
	assert.True(t, utils.CheckPassword("different456", newHash))
	assert.False(t, utils.CheckPassword("secret123", newHash))
}

func TestResetPassword_UnknownUser(t *testing.T) {
	repo := &mockUserRepo{
		findByUsernameFn: func(ctx context.Context, username string) (*domain.User, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewAuthService(repo, newMemoryRegistry(), "test-secret", time.Hour)
	err := svc.ResetPassword(context.Background(), "nobody", "whatever99")

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthorize_EmptyToken(t *testing.T) {
	svc := NewAuthService(&mockUserRepo{}, newMemoryRegistry(), "test-secret", time.Hour)

	_, err := svc.Authorize(context.Background(), "")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestAuthorize_MalformedTokenSkipsRegistry(t *testing.T) {
	// The failing registry would surface its own error, so getting
	// ErrUnauthenticated proves the garbage token never reached it
	reg := &failingRegistry{err: errors.New("redis down")}
	svc := NewAuthService(&mockUserRepo{}, reg, "test-secret", time.Hour)

	_, err := svc.Authorize(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestAuthorize_ForgedSignatureRejected(t *testing.T) {
	forged, err := utils.MintSessionToken(7, "mukesh", "other-secret", time.Hour)
	assert.NoError(t, err)

	svc := NewAuthService(&mockUserRepo{}, newMemoryRegistry(), "test-secret", time.Hour)
	_, err = svc.Authorize(context.Background(), forged)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestAuthorize_RegistryFailure(t *testing.T) {
	token, err := utils.MintSessionToken(7, "mukesh", "test-secret", time.Hour)
	assert.NoError(t, err)

	reg := &failingRegistry{err: errors.New("redis down")}
	svc := NewAuthService(&mockUserRepo{}, reg, "test-secret", time.Hour)

	_, err = svc.Authorize(context.Background(), token)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnauthenticated) // Store failure is not an auth decision
}

type failingRegistry struct {
	err error
}

func (f *failingRegistry) Put(ctx context.Context, token string, sess session.Session, ttl time.Duration) error {
	return f.err
}
func (f *failingRegistry) Get(ctx context.Context, token string) (*session.Session, error) {
	return nil, f.err
}
func (f *failingRegistry) Delete(ctx context.Context, token string) error {
	return f.err
}

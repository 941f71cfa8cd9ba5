package service

import (
	"context"
	"errors"
	"time"

	"tourism_backend/internal/domain"
	"tourism_backend/internal/repository"
	"tourism_backend/internal/session"
	"tourism_backend/internal/utils"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrSamePassword       = errors.New("new password must differ from the current password")
	ErrUnauthenticated    = errors.New("missing or invalid session")
)

// SignupInput carries the fields accepted at registration.
type SignupInput struct {
	Username string
	Password string
	Email    string
	FullName string
}

// LoginResult is returned on successful authentication.
type LoginResult struct {
	Token    string
	UserID   uint
	Username string
}

// AuthService implements signup, login, logout, password reset and
// session checks on top of the user store and the session registry.
type AuthService interface {
	Signup(ctx context.Context, input SignupInput) error
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Logout(ctx context.Context, token string) error
	ResetPassword(ctx context.Context, username, newPassword string) error
	Authorize(ctx context.Context, token string) (*session.Session, error)
}

type authService struct {
	users      repository.UserRepository
	sessions   session.Registry
	jwtSecret  string
	sessionTTL time.Duration
}

func NewAuthService(users repository.UserRepository, sessions session.Registry, jwtSecret string, sessionTTL time.Duration) AuthService {
	return &authService{
		users:      users,
		sessions:   sessions,
		jwtSecret:  jwtSecret,
		sessionTTL: sessionTTL,
	}
}

// Signup hashes the password and inserts the user. Username uniqueness is
// enforced by the database index; a duplicate insert maps to ErrUsernameTaken.
func (s *authService) Signup(ctx context.Context, input SignupInput) error {
	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return err
	}
	user := &domain.User{
		Username: input.Username,
		Password: hash,
		Email:    input.Email,
		FullName: input.FullName,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return ErrUsernameTaken
		}
		return err
	}
	return nil
}

// Login verifies the credentials, mints a session token and registers it.
// An unknown username and a wrong password both fail with the same error so
// the response does not reveal which accounts exist.
func (s *authService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !utils.CheckPassword(password, user.Password) {
		return nil, ErrInvalidCredentials
	}
	token, err := utils.MintSessionToken(user.ID, user.Username, s.jwtSecret, s.sessionTTL)
	if err != nil {
		return nil, err
	}
	sess := session.Session{UserID: user.ID, Username: user.Username}
	if err := s.sessions.Put(ctx, token, sess, s.sessionTTL); err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"user_id":  user.ID,
		"username": user.Username,
	}).Info("Session issued")
	return &LoginResult{Token: token, UserID: user.ID, Username: user.Username}, nil
}

// Logout revokes the token. Revoking an absent token succeeds, so repeated
// logouts are indistinguishable from the first.
func (s *authService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

// ResetPassword overwrites the stored hash with a hash of the new password.
// It refuses a no-op reset: a new password that verifies against the current
// hash leaves the row untouched.
func (s *authService) ResetPassword(ctx context.Context, username, newPassword string) error {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if utils.CheckPassword(newPassword, user.Password) {
		return ErrSamePassword
	}
	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(ctx, username, hash)
}

// Authorize resolves a token through the session registry. A malformed or
// forged token is rejected on its signature without a registry round-trip;
// a well-formed token still grants nothing by itself, the registry is the
// sole authority on validity.
func (s *authService) Authorize(ctx context.Context, token string) (*session.Session, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}
	if _, err := utils.ParseSessionToken(token, s.jwtSecret); err != nil {
		return nil, ErrUnauthenticated
	}
	sess, err := s.sessions.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrUnauthenticated
	}
	return sess, nil
}

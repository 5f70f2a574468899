// Package service implements the business rules of the catalog service:
// account lifecycle, session gating and item CRUD.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/kugicode/catalog-service/internal/models"
	"github.com/kugicode/catalog-service/internal/repository"
	"github.com/kugicode/catalog-service/internal/session"
)

// IdentityService handles registration, login and account lifecycle.
type IdentityService interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (*session.Session, error)
	Logout(ctx context.Context, sess *session.Session) error
	Profile(ctx context.Context, sess *session.Session) (*models.User, error)
	DeleteAccount(ctx context.Context, sess *session.Session) error
}

type identityService struct {
	users    repository.UserRepository
	sessions session.Store
}

// NewIdentityService creates an IdentityService instance. Both stores are
// explicit dependencies so tests can substitute fakes.
func NewIdentityService(users repository.UserRepository, sessions session.Store) IdentityService {
	return &identityService{users: users, sessions: sessions}
}

const minPasswordLength = 6

// Register creates a new account. Uniqueness of the username is guaranteed by
// the store's unique index; there is no lookup-then-insert window.
func (s *identityService) Register(ctx context.Context, username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}
	if len(password) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}

	user := &models.User{Username: username, Password: password}
	err := s.users.Create(ctx, user)
	if errors.Is(err, repository.ErrDuplicate) {
		return nil, ErrUsernameTaken
	}
	if err != nil {
		return nil, fmt.Errorf("register %q: %w", username, err)
	}
	return user, nil
}

// Login matches the stored credentials exactly and establishes a session.
// A credential mismatch is reported distinctly from a malformed request.
func (s *identityService) Login(ctx context.Context, username, password string) (*session.Session, error) {
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	_, err := s.users.FindByCredentials(ctx, username, password)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("login %q: %w", username, err)
	}

	sess, err := s.sessions.Create(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("login %q: %w", username, err)
	}
	return sess, nil
}

// Logout destroys the caller's session. Logging out without a session is a
// no-op and succeeds.
func (s *identityService) Logout(ctx context.Context, sess *session.Session) error {
	if sess == nil {
		return nil
	}
	if err := s.sessions.Delete(ctx, sess.Token); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// Profile returns the caller's user record. A session whose user has been
// deleted is treated as unauthenticated.
func (s *identityService) Profile(ctx context.Context, sess *session.Session) (*models.User, error) {
	if sess == nil {
		return nil, ErrAuthRequired
	}

	user, err := s.users.FindByUsername(ctx, sess.Username)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrSessionUserGone
	}
	if err != nil {
		return nil, fmt.Errorf("profile %q: %w", sess.Username, err)
	}
	return user, nil
}

// DeleteAccount removes the caller's user record and destroys the session.
func (s *identityService) DeleteAccount(ctx context.Context, sess *session.Session) error {
	if sess == nil {
		return ErrAuthRequired
	}

	err := s.users.DeleteByUsername(ctx, sess.Username)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("delete account %q: %w", sess.Username, err)
	}

	if err := s.sessions.Delete(ctx, sess.Token); err != nil {
		return fmt.Errorf("delete account %q: %w", sess.Username, err)
	}
	return nil
}

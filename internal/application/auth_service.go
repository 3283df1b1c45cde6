package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/brightroof/solar-leads/internal/domain/entity"
	repo "github.com/brightroof/solar-leads/internal/domain/repository"
	"github.com/brightroof/solar-leads/pkg/helpers"
)

// AuthService verifies credentials and registers users. Session issuance
// lives with the HTTP layer, which owns the cookie and the session store.
type AuthService struct {
	Repo   repo.UserRepository
	Logger *logrus.Logger
}

func NewAuthService(repo repo.UserRepository, logger *logrus.Logger) *AuthService {
	return &AuthService{Repo: repo, Logger: logger}
}

// Signup registers a new user with a bcrypt-hashed password.
// The unique indexes on username and email make the insert itself the
// conflict check.
func (s *AuthService) Signup(ctx context.Context, username, email, password string) (*entity.User, error) {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{Username: username, Email: email, Password: hash}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrUserExists
		}
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "username": u.Username}).Info("user registered")
	}
	return u, nil
}

// Login authenticates by exact username match. When the username is unknown
// a burn comparison runs anyway, so both failure paths take bcrypt time.
func (s *AuthService) Login(ctx context.Context, username, password string) (*entity.User, error) {
	u, err := s.Repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			helpers.BurnPasswordCompare(password)
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, ErrIncorrectPassword
	}
	return u, nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/rentalops/vehicle_rental/internal/events"
	"github.com/rentalops/vehicle_rental/internal/hash"
	"github.com/rentalops/vehicle_rental/internal/logging"
	"github.com/rentalops/vehicle_rental/internal/models"
	"github.com/rentalops/vehicle_rental/internal/repo"
	"github.com/rentalops/vehicle_rental/internal/tokens"
	"github.com/rentalops/vehicle_rental/internal/transport"
)

var (
	ErrEmailExists = errors.New("email already exists")
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// the two cases are indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type AuthService struct {
	Repo      *repo.GormRepo
	JWTSecret []byte
	Events    events.Publisher
}

// Register creates a new user account. The uniqueness check runs before the
// hash so a duplicate email never pays the bcrypt cost. Self-registration
// always produces a regular user account; promotion to admin goes through the
// users API.
func (s *AuthService) Register(ctx context.Context, req transport.RegisterRequest) error {
	l := logging.FromContext(ctx).With("svc", "auth.register")

	if _, err := s.Repo.FindByEmail(ctx, req.Email); err == nil {
		l.Warn("register_failed", "status", 409, "reason", "email_exists")
		return ErrEmailExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		l.Error("register_error", "status", 500, "reason", "db_error", "error", err)
		return err
	}

	pwHash, err := hash.HashPassword(req.Password)
	if err != nil {
		l.Error("register_error", "status", 500, "reason", "cannot hash the password", "error", err)
		return err
	}

	user := models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: pwHash,
		ContactPhone: req.ContactPhone,
		Address:      req.Address,
		Role:         models.RoleUser,
	}

	if err := s.Repo.CreateUser(ctx, &user); err != nil {
		if errors.Is(err, repo.ErrEmailExists) {
			l.Warn("register_failed", "status", 409, "reason", "email_exists")
			return ErrEmailExists
		}
		l.Error("register_error", "status", 500, "reason", "db_error", "error", err)
		return err
	}

	s.publish(ctx, events.TopicUserEvents, fmt.Sprint(user.ID), map[string]any{
		"type":    "user_registered",
		"user_id": user.ID,
		"email":   user.Email,
	})

	l.Info("register_success", "user_id", user.ID)
	return nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	user, err := s.Repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("login_failed", "status", 401, "reason", "invalid email or password")
			return "", nil, ErrInvalidCredentials
		}
		l.Error("login_error", "status", 500, "reason", "db_error", "error", err)
		return "", nil, err
	}

	if !hash.CheckPassword(user.PasswordHash, password) {
		l.Warn("login_failed", "status", 401, "reason", "invalid email or password")
		return "", nil, ErrInvalidCredentials
	}

	token, err := tokens.Issue(user.ID, user.Email, user.Role, s.JWTSecret)
	if err != nil {
		l.Error("login_error", "status", 500, "reason", "cannot create token", "error", err)
		return "", nil, err
	}

	l.Info("login_success", "user_id", user.ID)
	return token, user, nil
}

func (s *AuthService) publish(ctx context.Context, topic, key string, event map[string]any) {
	if s.Events == nil {
		return
	}
	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.Events.PublishEvent(pubCtx, topic, key, event); err != nil {
		logging.FromContext(ctx).Error("event_publish_error", "topic", topic, "error", err)
	}
}

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yurayurastudio/studio_backend/models"
	"golang.org/x/crypto/bcrypt"
)

// userService implements the UserService interface
type userService struct {
	users  UserRepository
	tokens TokenIssuer
	policy Policy
	log    logrus.FieldLogger
}

// NewUserService creates a user service
func NewUserService(users UserRepository, tokens TokenIssuer, policy Policy, log logrus.FieldLogger) UserService {
	return &userService{
		users:  users,
		tokens: tokens,
		policy: policy,
		log:    log,
	}
}

// Login checks the password and issues an access token
func (s *userService) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.log.WithField("userId", user.ID.Hex()).Info("User logged in")
	return &models.LoginResponse{Token: token, User: user}, nil
}

// Me returns the caller's own user record
func (s *userService) Me(ctx context.Context, actor Principal) (*models.User, error) {
	user, err := s.users.FindByID(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, actor.UserID.Hex())
	}
	return user, nil
}

// Create adds a studio member with a bcrypt hashed password
func (s *userService) Create(ctx context.Context, actor Principal, req *models.CreateUserRequest) (*models.User, error) {
	if err := s.policy.CanManageUsers(actor); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := &models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        normalizeEmail(req.Email),
		Role:         req.Role,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"userId": user.ID.Hex(),
		"role":   user.Role,
		"actor":  actor.UserID.Hex(),
	}).Info("User created")
	return user, nil
}

// List returns every member
func (s *userService) List(ctx context.Context, actor Principal) ([]*models.User, error) {
	if err := s.policy.CanManageUsers(actor); err != nil {
		return nil, err
	}
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// UpdateFCMToken registers the caller's device for push notifications
func (s *userService) UpdateFCMToken(ctx context.Context, actor Principal, token string) error {
	if err := s.users.UpdateFCMToken(ctx, actor.UserID, token); err != nil {
		return fmt.Errorf("failed to update FCM token: %w", err)
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

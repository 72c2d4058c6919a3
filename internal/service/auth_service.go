package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/kamarlaylatt/my-expense/internal/models"
	"github.com/kamarlaylatt/my-expense/internal/repository"
	"github.com/kamarlaylatt/my-expense/internal/token"
	"github.com/kamarlaylatt/my-expense/internal/utils"
)

// SignupInput carries validated signup fields.
type SignupInput struct {
	Email    string
	Password string
	Name     string
}

// GoogleAuthInput carries the fields of an external-identity callback.
type GoogleAuthInput struct {
	Email             string
	Name              string
	Provider          string
	ProviderAccountID string
	Image             *string
}

// AuthService handles signup, signin and external-identity resolution.
type AuthService struct {
	users  *repository.UserRepository
	tokens *token.Service
}

func NewAuthService(users *repository.UserRepository, tokens *token.Service) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Signup registers a local account. A taken email is a conflict; the unique
// index backs the pre-check under concurrent signups.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*models.UserView, string, error) {
	if _, err := s.users.GetByEmail(ctx, in.Email); err == nil {
		return nil, "", &ConflictError{Message: "User with this email already exists"}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", fmt.Errorf("lookup user: %w", err)
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Email:    in.Email,
		Password: &hash,
		Name:     in.Name,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", &ConflictError{Message: "User with this email already exists"}
		}
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	tok, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}
	return models.NewUserView(user), tok, nil
}

// Signin verifies credentials and issues a token. Unknown email and wrong
// password produce the identical error.
func (s *AuthService) Signin(ctx context.Context, email, password string) (*models.UserView, string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("lookup user: %w", err)
	}
	if user.Password == nil || !utils.CheckPassword(password, *user.Password) {
		return nil, "", ErrInvalidCredentials
	}

	tok, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}
	return models.NewUserView(user), tok, nil
}

// GoogleAuth resolves an external identity in strict order: the
// (provider, providerAccountId) pair first, then the email (linking the
// provider to the existing account), and only then a new user. The pair
// match short-circuits before any email lookup so a provider-side email
// change still resolves to the same account.
func (s *AuthService) GoogleAuth(ctx context.Context, in GoogleAuthInput) (*models.UserView, string, error) {
	user, err := s.users.GetByProviderAccount(ctx, in.Provider, in.ProviderAccountID)
	switch {
	case err == nil:
		// Returning external-identity user.
	case errors.Is(err, gorm.ErrRecordNotFound):
		user, err = s.resolveByEmail(ctx, in)
		if err != nil {
			return nil, "", err
		}
	default:
		return nil, "", fmt.Errorf("lookup provider account: %w", err)
	}

	tok, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}
	return models.NewUserView(user), tok, nil
}

func (s *AuthService) resolveByEmail(ctx context.Context, in GoogleAuthInput) (*models.User, error) {
	user, err := s.users.GetByEmail(ctx, in.Email)
	switch {
	case err == nil:
		// Link the provider to the existing local account.
		user.Provider = &in.Provider
		user.ProviderAccountID = &in.ProviderAccountID
		user.EmailVerified = true
		if in.Image != nil {
			user.Image = in.Image
		}
		if err := s.users.Update(ctx, user); err != nil {
			return nil, fmt.Errorf("link provider account: %w", err)
		}
		return user, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		name := in.Name
		if name == "" {
			name = strings.SplitN(in.Email, "@", 2)[0]
		}
		user = &models.User{
			Email:             in.Email,
			Name:              name,
			Provider:          &in.Provider,
			ProviderAccountID: &in.ProviderAccountID,
			EmailVerified:     true,
			Image:             in.Image,
		}
		if err := s.users.Create(ctx, user); err != nil {
			return nil, fmt.Errorf("create provider user: %w", err)
		}
		return user, nil
	default:
		return nil, fmt.Errorf("lookup user by email: %w", err)
	}
}

package services

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/shortlyhq/shortly-backend/internal/auth"
	"github.com/shortlyhq/shortly-backend/internal/models"
	"github.com/shortlyhq/shortly-backend/internal/repository"
	"github.com/shortlyhq/shortly-backend/pkg/apperrors"
)

// AuthService handles registration, login and credential checks.
type AuthService struct {
	users  *repository.UserRepository
	tokens *auth.TokenManager
	log    zerolog.Logger
}

func NewAuthService(users *repository.UserRepository, tokens *auth.TokenManager, log zerolog.Logger) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
		log:    log.With().Str("component", "auth_service").Logger(),
	}
}

// Register creates an account and signs a token for it. A duplicate email is
// a conflict whether caught by the pre-check or by the unique index.
func (s *AuthService) Register(ctx context.Context, email, password string) (string, *models.User, error) {
	exists, err := s.users.EmailExists(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if exists {
		return "", nil, apperrors.Conflict("An account with this email already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	user, err := s.users.Create(ctx, email, string(hashed))
	if err != nil {
		// The pre-check is advisory; the unique index is the real arbiter.
		if dup, checkErr := s.users.EmailExists(ctx, email); checkErr == nil && dup {
			return "", nil, apperrors.Conflict("An account with this email already exists")
		}
		return "", nil, err
	}

	token, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("user_id", user.ID).Msg("User registered")

	return token, user, nil
}

// Login checks credentials and signs a token. Soft-deleted accounts are
// invisible to the lookup, so they fail exactly like a wrong password.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		s.log.Warn().Str("email", email).Msg("Login failed: user not found or deactivated")
		return "", nil, apperrors.Unauthorized("Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		s.log.Warn().Str("email", email).Msg("Login failed: invalid password")
		return "", nil, apperrors.Unauthorized("Invalid credentials")
	}

	token, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("user_id", user.ID).Msg("User logged in")

	return token, user, nil
}

// Resolve maps validated token claims to an identity, rejecting tokens whose
// account has since been deactivated.
func (s *AuthService) Resolve(ctx context.Context, claims *auth.Claims) (auth.Identity, error) {
	user, err := s.users.FindByID(ctx, claims.Subject)
	if err != nil {
		return auth.Identity{}, err
	}
	if user == nil {
		return auth.Identity{}, apperrors.Unauthorized("User not found or inactive")
	}
	return auth.Identity{UserID: user.ID, Email: user.Email}, nil
}

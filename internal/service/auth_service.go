package service

import (
	"context"
	"errors"
	"strings"

	"trackfit/workout-api/internal/domain"
	"trackfit/workout-api/internal/repository"
	"trackfit/workout-api/internal/token"

	"golang.org/x/crypto/bcrypt"
)

// --- Error Definitions ---
var (
	ErrEmailInUse = errors.New("email already in use")
	// ErrAuthenticationFailed is returned for both unknown email and wrong
	// password; callers must not be able to tell the two apart.
	ErrAuthenticationFailed = errors.New("invalid email or password")
	ErrInvalidEmail         = errors.New("a valid email is required")
	ErrPasswordTooShort     = errors.New("password must be at least 6 characters")
	ErrHashingFailed        = errors.New("failed to hash password")
	ErrTokenGeneration      = errors.New("failed to generate authentication token")
)

const minPasswordLength = 6

// AuthService registers and authenticates users and issues their tokens.
type AuthService interface {
	Register(ctx context.Context, email, password, name string) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
}

// --- Service Implementation ---

// authService implements the AuthService interface.
type authService struct {
	userRepo   repository.UserRepository
	issuer     *token.Issuer
	bcryptCost int
}

// NewAuthService creates a new instance of authService. The bcrypt cost
// comes from configuration; values outside bcrypt's supported range fall
// back to the library default.
func NewAuthService(userRepo repository.UserRepository, issuer *token.Issuer, bcryptCost int) AuthService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &authService{
		userRepo:   userRepo,
		issuer:     issuer,
		bcryptCost: bcryptCost,
	}
}

// Register handles new user registration and returns the created user
// (without password hash) together with a token bound to the new user id.
func (s *authService) Register(ctx context.Context, email, password, name string) (*domain.User, string, error) {
	if !strings.Contains(email, "@") {
		return nil, "", ErrInvalidEmail
	}
	if len(password) < minPasswordLength {
		return nil, "", ErrPasswordTooShort
	}

	// Check if the email is already taken.
	_, err := s.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, "", ErrEmailInUse
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, "", err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, "", ErrHashingFailed
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: string(hashedPassword),
		Name:         name,
	}

	userID, err := s.userRepo.Create(ctx, user)
	if err != nil {
		// The unique index catches the race between the GetByEmail check
		// and the insert.
		if errors.Is(err, repository.ErrConflict) {
			return nil, "", ErrEmailInUse
		}
		return nil, "", err
	}
	user.ID = userID

	tokenString, err := s.issuer.Issue(userID.Hex())
	if err != nil {
		return nil, "", ErrTokenGeneration
	}

	user.PasswordHash = ""
	return user, tokenString, nil
}

// Login authenticates a user by email and password. Unknown email and
// password mismatch both map to ErrAuthenticationFailed.
func (s *authService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	if email == "" || password == "" {
		return nil, "", ErrAuthenticationFailed
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrAuthenticationFailed
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrAuthenticationFailed
	}

	tokenString, err := s.issuer.Issue(user.ID.Hex())
	if err != nil {
		return nil, "", ErrTokenGeneration
	}

	user.PasswordHash = ""
	return user, tokenString, nil
}

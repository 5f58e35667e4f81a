package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"hudspal/tracker/internal/domain"
	"hudspal/tracker/internal/repository"
)

// --- Error Definitions ---
var (
	ErrCredentialsRequired = errors.New("username and password cannot be empty")
	ErrUserNotFound        = errors.New("user not found")
	ErrHashingFailed       = errors.New("failed to hash password")
	ErrTokenGeneration     = errors.New("failed to generate authentication token")
)

// --- Service Interface ---

// AuthService manages the session user. There is no real authentication: any
// non-empty credentials are accepted and fabricate a local user record with
// default goals. The record lives only for the session.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (token string, user *domain.User, err error)
	Login(ctx context.Context, username, password string) (token string, user *domain.User, err error)
	GetUser(ctx context.Context, userID string) (*domain.User, error)
	UpdateGoals(ctx context.Context, userID string, goals domain.Goals) (*domain.User, error)
	GetJWTSecret() string
}

// --- Service Implementation ---

// authService implements the AuthService interface.
type authService struct {
	userRepo      repository.UserRepository
	defaultGoals  domain.Goals
	jwtSecret     string
	jwtExpiration time.Duration
}

// NewAuthService creates a new instance of authService.
func NewAuthService(userRepo repository.UserRepository, defaultGoals domain.Goals, jwtSecret string, jwtExpiration time.Duration) AuthService {
	if jwtSecret == "" {
		panic("JWT secret cannot be empty") // Critical configuration
	}
	if jwtExpiration <= 0 {
		jwtExpiration = time.Hour * 1
	}
	return &authService{
		userRepo:      userRepo,
		defaultGoals:  defaultGoals,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

// Register fabricates a user record with the given email and logs it in.
func (s *authService) Register(ctx context.Context, username, email, password string) (string, *domain.User, error) {
	if username == "" || email == "" || password == "" {
		return "", nil, ErrCredentialsRequired
	}
	return s.establishSession(ctx, username, email, password)
}

// Login accepts any non-empty credentials. A missing user record is
// fabricated on the spot with a derived email and default goals; an existing
// one is reused as-is.
func (s *authService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, ErrCredentialsRequired
	}
	return s.establishSession(ctx, username, fmt.Sprintf("%s@example.com", username), password)
}

func (s *authService) establishSession(ctx context.Context, username, email, password string) (string, *domain.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		user, err = s.fabricateUser(ctx, username, email, password)
	}
	if err != nil {
		return "", nil, err
	}

	token, err := s.generateJWT(user)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	user.PasswordHash = ""
	return token, user, nil
}

func (s *authService) fabricateUser(ctx context.Context, username, email, password string) (*domain.User, error) {
	// The hash is record keeping only; it is never compared on later logins.
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrHashingFailed
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashed),
		Goals:        s.defaultGoals,
	}
	if _, err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetUser returns the user record for the given identity.
func (s *authService) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

// UpdateGoals replaces the user's daily targets.
func (s *authService) UpdateGoals(ctx context.Context, userID string, goals domain.Goals) (*domain.User, error) {
	user, err := s.userRepo.UpdateGoals(ctx, userID, goals)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

// --- JWT Helper ---

// jwtClaims defines the structure of the JWT payload.
type jwtClaims struct {
	UserID   string `json:"uid"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// generateJWT creates a new JWT token for the given user.
func (s *authService) generateJWT(user *domain.User) (string, error) {
	expirationTime := time.Now().Add(s.jwtExpiration)
	claims := &jwtClaims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "hudspal-tracker",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", err
	}
	return signedToken, nil
}

// GetJWTSecret returns the JWT secret for middleware authentication
func (s *authService) GetJWTSecret() string {
	return s.jwtSecret
}

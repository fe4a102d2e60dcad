package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ChocoChu32/watchlist/internal/domain"
)

// sessionTTL is how long an issued session token stays valid.
const sessionTTL = 24 * time.Hour

// AuthService owns the credential store and the session artifact: it verifies
// passwords, issues and validates signed session tokens, and performs the
// owner-account mutations (rename, set password, re-provision).
type AuthService struct {
	users         domain.UserRepository
	sessionSecret []byte
	bcryptCost    int
}

// NewAuthService creates a new AuthService.
func NewAuthService(users domain.UserRepository, sessionSecret string, bcryptCost int) *AuthService {
	return &AuthService{
		users:         users,
		sessionSecret: []byte(sessionSecret),
		bcryptCost:    bcryptCost,
	}
}

// Login verifies credentials and returns a signed session token.
// Empty username or password is rejected as invalid input before the
// credential store is consulted; a well-formed but wrong pair yields
// ErrUnauthorized so callers can surface a distinct message.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", fmt.Errorf("%w: username and password are required", domain.ErrInvalidInput)
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrUnauthorized
		}
		return "", fmt.Errorf("get user: %w", err)
	}

	if !verifyPassword(user.PasswordHash, password) {
		return "", domain.ErrUnauthorized
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	return token, nil
}

// ValidateToken parses and validates a session token string.
// Returns the user ID from the sub claim.
func (s *AuthService) ValidateToken(tokenString string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.sessionSecret, nil
	})
	if err != nil {
		return 0, domain.ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, domain.ErrUnauthorized
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return 0, domain.ErrUnauthorized
	}

	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, domain.ErrUnauthorized
	}

	return userID, nil
}

// GetUserByID retrieves a user by their ID.
func (s *AuthService) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// GetOwner retrieves the owner account.
func (s *AuthService) GetOwner(ctx context.Context) (*domain.User, error) {
	return s.users.First(ctx)
}

// Rename changes the owner's display name after validation.
func (s *AuthService) Rename(ctx context.Context, userID int64, name string) error {
	name, err := domain.ValidateName(name)
	if err != nil {
		return err
	}
	if err := s.users.UpdateName(ctx, userID, name); err != nil {
		return fmt.Errorf("update name: %w", err)
	}
	return nil
}

// SetPassword hashes the plaintext and stores it, replacing any prior hash.
func (s *AuthService) SetPassword(ctx context.Context, userID int64, password string) error {
	if password == "" {
		return fmt.Errorf("%w: password is required", domain.ErrInvalidInput)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.users.UpdatePassword(ctx, userID, string(hash)); err != nil {
		return fmt.Errorf("store password hash: %w", err)
	}
	return nil
}

// Provision creates the owner account, or re-provisions the existing one with
// a new username and password. It reports whether a new account was created.
func (s *AuthService) Provision(ctx context.Context, username, password string) (bool, error) {
	if username == "" || password == "" {
		return false, fmt.Errorf("%w: username and password are required", domain.ErrInvalidInput)
	}
	if _, err := domain.ValidateName(username); err != nil {
		return false, fmt.Errorf("%w: username must be 1-%d characters", domain.ErrInvalidInput, domain.MaxNameLen)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.First(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return false, fmt.Errorf("get owner: %w", err)
		}
		user = &domain.User{Name: "Admin", Username: username, PasswordHash: string(hash)}
		if err := s.users.Create(ctx, user); err != nil {
			return false, fmt.Errorf("create owner: %w", err)
		}
		return true, nil
	}

	if err := s.users.UpdateCredentials(ctx, user.ID, username, string(hash)); err != nil {
		return false, fmt.Errorf("update credentials: %w", err)
	}
	return false, nil
}

// verifyPassword fails closed when no hash has been provisioned yet.
func verifyPassword(hash, password string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  strconv.FormatInt(user.ID, 10),
		"name": user.Name,
		"jti":  uuid.NewString(),
		"iat":  now.Unix(),
		"exp":  now.Add(sessionTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.sessionSecret)
}

// Package auth is the authentication collaborator: email/password accounts,
// bcrypt hashes and JWT access tokens. Auth failures carry human-readable
// causes; they are the only errors in the system surfaced to the player.
package auth

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/raindropoju/scripture-memory/internal/common/errors"
	"github.com/raindropoju/scripture-memory/internal/common/validation"
)

const minPasswordLength = 8

// User is an account record in the remote store.
type User struct {
	ID           string `gorm:"primaryKey" json:"id"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	DisplayName  string `json:"displayName"`
	PasswordHash string `gorm:"not null" json:"-"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Service handles signup, login and token issuance.
type Service struct {
	db        *gorm.DB
	jwtSecret []byte
	tokenTTL  time.Duration
}

// NewService creates the auth service.
func NewService(db *gorm.DB, jwtSecret string, tokenTTL time.Duration) *Service {
	return &Service{
		db:        db,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
	}
}

// Migrate creates the users table.
func (s *Service) Migrate() error {
	return s.db.AutoMigrate(&User{})
}

// Signup registers a new account and returns the user with a fresh token.
func (s *Service) Signup(email, password, displayName string) (*User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !validation.IsEmail(email) {
		return nil, "", errors.BadRequest("please enter a valid email address")
	}
	if len(password) < minPasswordLength {
		return nil, "", errors.BadRequest("password must be at least 8 characters")
	}

	var existing User
	if err := s.db.First(&existing, "email = ?", email).Error; err == nil {
		return nil, "", errors.Conflict("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", errors.Internal("failed to create account", err.Error())
	}

	user := &User{
		ID:           uuid.NewString(),
		Email:        email,
		DisplayName:  strings.TrimSpace(displayName),
		PasswordHash: string(hash),
	}
	if err := s.db.Create(user).Error; err != nil {
		return nil, "", errors.Internal("failed to create account", err.Error())
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, "", errors.Internal("failed to issue token", err.Error())
	}
	return user, token, nil
}

// Login verifies credentials and returns the user with a fresh token. A
// missing account and a wrong password produce the same message so logins
// cannot be used to probe for registered emails.
func (s *Service) Login(email, password string) (*User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user User
	if err := s.db.First(&user, "email = ?", email).Error; err != nil {
		return nil, "", errors.Unauthorized("incorrect email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", errors.Unauthorized("incorrect email or password")
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, "", errors.Internal("failed to issue token", err.Error())
	}
	return &user, token, nil
}

// GetUser fetches an account by id.
func (s *Service) GetUser(userID string) (*User, error) {
	var user User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, errors.NotFound("user")
	}
	return &user, nil
}

func (s *Service) issueToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": now.Unix(),
		"exp": now.Add(s.tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}

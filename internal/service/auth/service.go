package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/mindcare-app/backend/internal/config"
	usermodel "github.com/mindcare-app/backend/internal/model/user"
	"github.com/mindcare-app/backend/internal/storage/kv"
)

var (
	// ErrInvalidCredentials is deliberately generic: login never reveals
	// whether the email or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials, please check your email and password")
	ErrDuplicateEmail     = errors.New("an account with this email already exists")
	ErrEmailNotFound      = errors.New("no account found with this email address")
	ErrInvalidToken       = errors.New("invalid token")
)

// Service implements the mocked authentication contract: one hardcoded
// demo credential pair always works, registered pairs work on a matching
// password, everything else fails. The user directory lives in the
// key-value store; passwords are kept only as bcrypt hashes.
type Service struct {
	store  kv.Store
	cfg    config.AuthConfig
	logger *zap.Logger
}

// LoginResult carries the authenticated profile and its bearer token.
type LoginResult struct {
	User  usermodel.User `json:"user"`
	Token string         `json:"token"`
}

// RegisterData is the registration form payload.
type RegisterData struct {
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	University string `json:"university"`
	StudentID  string `json:"studentId,omitempty"`
}

// NewService wires the auth service to its directory store.
func NewService(store kv.Store, cfg config.AuthConfig, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, cfg: cfg, logger: logger}
}

// directory loads the stored user list, treating absent or unreadable
// data as an empty directory.
func (s *Service) directory() []usermodel.StoredUser {
	var users []usermodel.StoredUser
	if err := s.store.Get(usermodel.DirectoryKey, &users); err != nil && !errors.Is(err, kv.ErrNotFound) {
		s.logger.Warn("user directory unreadable, starting empty", zap.Error(err))
		return nil
	}
	return users
}

func (s *Service) saveDirectory(users []usermodel.StoredUser) error {
	if err := s.store.Put(usermodel.DirectoryKey, users); err != nil {
		return fmt.Errorf("save user directory: %w", err)
	}
	return nil
}

func findByEmail(users []usermodel.StoredUser, email string) (usermodel.StoredUser, bool) {
	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return usermodel.StoredUser{}, false
}

// Login checks the demo account first, then the local directory.
func (s *Service) Login(_ context.Context, email, password string) (LoginResult, error) {
	if strings.EqualFold(email, s.cfg.DemoEmail) && password == s.cfg.DemoPassword {
		profile := usermodel.User{
			ID:                "demo-1",
			Name:              "Student",
			Email:             s.cfg.DemoEmail,
			University:        "University of Mumbai",
			JoinDate:          time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
			StreakDays:        12,
			SessionsCompleted: 45,
			CurrentMood:       "good",
		}
		return s.finishLogin(profile)
	}

	stored, ok := findByEmail(s.directory(), email)
	if !ok {
		return LoginResult{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte(password)); err != nil {
		return LoginResult{}, ErrInvalidCredentials
	}
	return s.finishLogin(stored.Profile())
}

func (s *Service) finishLogin(profile usermodel.User) (LoginResult, error) {
	token, err := s.issueToken(profile.ID)
	if err != nil {
		return LoginResult{}, err
	}
	if err := s.store.Put(usermodel.ProfileKey, profile); err != nil {
		s.logger.Warn("cache profile", zap.Error(err))
	}
	s.logger.Info("login", zap.String("userId", profile.ID))
	return LoginResult{User: profile, Token: token}, nil
}

// Register adds a new directory entry, rejecting duplicate emails without
// touching the stored list.
func (s *Service) Register(_ context.Context, data RegisterData) (LoginResult, error) {
	users := s.directory()
	if _, exists := findByEmail(users, data.Email); exists {
		return LoginResult{}, ErrDuplicateEmail
	}
	if strings.EqualFold(data.Email, s.cfg.DemoEmail) {
		return LoginResult{}, ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return LoginResult{}, fmt.Errorf("hash password: %w", err)
	}

	stored := usermodel.StoredUser{
		ID:           "user-" + uuid.NewString(),
		FullName:     data.FullName,
		Email:        data.Email,
		PasswordHash: string(hash),
		University:   data.University,
		StudentID:    data.StudentID,
		JoinDate:     time.Now().UTC(),
	}
	if err := s.saveDirectory(append(users, stored)); err != nil {
		return LoginResult{}, err
	}

	s.logger.Info("registered", zap.String("userId", stored.ID))
	return s.finishLogin(stored.Profile())
}

// ForgotPassword succeeds only for known emails; the reset itself is
// mocked and sends nothing.
func (s *Service) ForgotPassword(_ context.Context, email string) error {
	if strings.EqualFold(email, s.cfg.DemoEmail) {
		return nil
	}
	if _, ok := findByEmail(s.directory(), email); !ok {
		return ErrEmailNotFound
	}
	s.logger.Info("password reset requested", zap.String("email", email))
	return nil
}

// CachedProfile returns the last logged-in profile, if any.
func (s *Service) CachedProfile(_ context.Context) (usermodel.User, error) {
	var profile usermodel.User
	if err := s.store.Get(usermodel.ProfileKey, &profile); err != nil {
		return usermodel.User{}, err
	}
	return profile, nil
}

// Logout drops the cached profile.
func (s *Service) Logout(_ context.Context) error {
	return s.store.Delete(usermodel.ProfileKey)
}

func (s *Service) issueToken(userID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(s.cfg.TokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ParseToken validates a bearer token and returns the user id claim.
func (s *Service) ParseToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", ErrInvalidToken
	}
	return userID, nil
}

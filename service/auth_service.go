package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"card-wallet-api/config"
	"card-wallet-api/logger"
	"card-wallet-api/model"
	"card-wallet-api/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

// tokenTTL is the lifetime of an issued bearer token.
const tokenTTL = 7 * 24 * time.Hour

// uniqueViolation is the Postgres error code for a unique constraint breach.
const uniqueViolation = "23505"

var (
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrUsernameTaken      = errors.New("user with this username already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

// AuthService handles registration, login and token issuance.
type AuthService struct {
	userRepo repository.IUserRepository
}

func NewAuthService(userRepo repository.IUserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

func getJwtKey() []byte {
	return []byte(config.AppConfig.JWT.SecretKey)
}

func (s *AuthService) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to hash password")
		return "", err
	}
	return string(bytes), nil
}

func (s *AuthService) CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// GenerateJWT signs a bearer token carrying the user's id and email.
func (s *AuthService) GenerateJWT(userID int, email string) (string, error) {
	claims := &model.AppClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(getJwtKey())
	if err != nil {
		logger.Log.WithError(err).WithField("email", email).Error("Failed to sign JWT")
		return "", fmt.Errorf("failed to sign token string: %w", err)
	}

	return tokenString, nil
}

// Register creates a new user with a hashed password and returns the user
// together with a freshly issued token.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, string, error) {
	if _, err := s.userRepo.GetUserByEmail(ctx, req.Email); err == nil {
		return nil, "", ErrEmailTaken
	} else if err != sql.ErrNoRows {
		return nil, "", err
	}

	hashedPassword, err := s.HashPassword(req.Password)
	if err != nil {
		return nil, "", err
	}

	user := &model.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashedPassword,
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, "", ErrUsernameTaken
		}
		return nil, "", err
	}

	token, err := s.GenerateJWT(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}

	logger.Log.WithField("user_id", user.ID).Info("User registered successfully")
	return user, token, nil
}

// Login verifies the credentials and returns the user with a new token.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !s.CheckPasswordHash(password, user.Password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.GenerateJWT(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// GetCurrentUser resolves the authenticated user's record.
func (s *AuthService) GetCurrentUser(ctx context.Context, userID int) (*model.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

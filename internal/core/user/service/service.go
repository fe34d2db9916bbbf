package userapp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"inkwell/internal/core/apperr"
	userEntity "inkwell/internal/core/user"
	userPort "inkwell/internal/ports/user"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
	"go.uber.org/zap"
)

const (
	tokenIssuer = "inkwell"
	tokenTTL    = 24 * time.Hour
)

// UserService registration, login and username lookup
type UserService struct {
	UserRepository userPort.UserRepository
	jwtKey         []byte
	logger         *zap.Logger
}

func NewUserService(repo userPort.UserRepository, jwtKey []byte, logger *zap.Logger) *UserService {
	return &UserService{
		UserRepository: repo,
		jwtKey:         jwtKey,
		logger:         logger,
	}
}

type registerInput struct {
	Name     string `json:"name" validate:"required,max=150"`
	Family   string `json:"family" validate:"required,max=150"`
	Username string `json:"username" validate:"required,max=150"`
	Email    string `json:"email" validate:"omitempty,email,max=254"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// RegisterUser creates an account; a taken username is a validation failure
func (s *UserService) RegisterUser(ctx context.Context, name, family, username, email, password string) (*userPort.UserDTO, error) {
	in := registerInput{
		Name:     strings.TrimSpace(name),
		Family:   strings.TrimSpace(family),
		Username: strings.TrimSpace(username),
		Email:    strings.TrimSpace(email),
		Password: password,
	}
	if err := apperr.Validate(in); err != nil {
		return nil, err
	}

	_, err := s.UserRepository.FindByUsername(ctx, in.Username)
	switch {
	case err == nil:
		return nil, apperr.NewValidationError("username", "a user with that username already exists")
	case !errors.Is(err, apperr.ErrNotFound):
		return nil, fmt.Errorf("lookup username: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &userEntity.User{
		Name:     in.Name,
		Family:   in.Family,
		Username: in.Username,
		Email:    in.Email,
		Password: string(hashedPassword),
	}
	u, err := s.UserRepository.Create(ctx, user)
	if errors.Is(err, apperr.ErrDuplicate) {
		return nil, apperr.NewValidationError("username", "a user with that username already exists")
	}
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("user registered", zap.String("userID", u.ID.String()), zap.String("username", u.Username))
	return userPort.NewUserDTO(u), nil
}

// LoginUser checks the password and issues a signed token
func (s *UserService) LoginUser(ctx context.Context, username string, password string) (*userPort.LoginResponse, error) {
	user, err := s.UserRepository.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if !errors.Is(err, apperr.ErrNotFound) {
			return nil, fmt.Errorf("lookup username: %w", err)
		}
		s.logger.Debug("login for unknown user", zap.String("username", username))
		return nil, fmt.Errorf("invalid credentials: %w", apperr.ErrAuthRequired)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		s.logger.Debug("invalid password", zap.String("username", username))
		return nil, fmt.Errorf("invalid credentials: %w", apperr.ErrAuthRequired)
	}

	expiresAt := time.Now().Add(tokenTTL)
	token, err := s.generateJWT(user, expiresAt)
	if err != nil {
		s.logger.Error("could not generate token", zap.Error(err))
		return nil, err
	}

	return &userPort.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
	}, nil
}

func (s *UserService) generateJWT(user *userEntity.User, expiresAt time.Time) (string, error) {
	claims := &jwt.StandardClaims{
		Subject:   user.ID.String(),
		Issuer:    tokenIssuer,
		IssuedAt:  time.Now().Unix(),
		ExpiresAt: expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtKey)
}

// ParseToken returns the user id a valid token was issued for
func (s *UserService) ParseToken(tokenString string) (string, error) {
	claims := &jwt.StandardClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.jwtKey, nil
	})
	if err != nil || !token.Valid {
		return "", fmt.Errorf("invalid token: %w", apperr.ErrAuthRequired)
	}
	if claims.Issuer != tokenIssuer || claims.Subject == "" {
		return "", fmt.Errorf("invalid token: %w", apperr.ErrAuthRequired)
	}
	return claims.Subject, nil
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*userPort.UserDTO, error) {
	u, err := s.UserRepository.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("user %q: %w", username, err)
	}
	return userPort.NewUserDTO(u), nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/ituna-edu/portal-api/internal/models"
	"github.com/ituna-edu/portal-api/internal/routes"
	"github.com/ituna-edu/portal-api/internal/store"
	appErrors "github.com/ituna-edu/portal-api/pkg/errors"
)

type authStore interface {
	StudentByID(ctx context.Context, id int) (*models.Student, error)
}

// AuthConfig defines configuration for the demo login flow.
type AuthConfig struct {
	TokenSecret  string
	TokenExpiry  time.Duration
	Issuer       string
	DemoPassword string
}

// AuthService implements the portal's demo student login. Every seeded
// student shares one demo password; this is session plumbing, not a real
// credential system.
type AuthService struct {
	store        authStore
	validator    *validator.Validate
	logger       *zap.Logger
	config       AuthConfig
	passwordHash []byte
}

// NewAuthService constructs an AuthService, hashing the demo password once.
func NewAuthService(st authStore, validate *validator.Validate, logger *zap.Logger, config AuthConfig) (*AuthService, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	if config.DemoPassword == "" {
		return nil, fmt.Errorf("demo password required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(config.DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash demo password: %w", err)
	}
	return &AuthService{store: st, validator: validate, logger: logger, config: config, passwordHash: hash}, nil
}

// Login authenticates a student and returns a session token plus the hash
// fragment the client should navigate to next.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid login payload")
	}

	id, err := strconv.Atoi(strings.TrimSpace(req.StudentID))
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "")
	}

	student, err := s.store.StudentByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch student")
	}

	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(req.Password)); err != nil {
		return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "")
	}

	user := models.CurrentUser{ID: student.ID, Name: student.Name, Role: models.RoleStudent}

	accessToken, issuedAt, err := s.generateAccessToken(user)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create access token")
	}

	s.logger.Info("portal login",
		zap.Int("student_id", student.ID),
		zap.String("ip", req.IP),
	)

	return &models.LoginResponse{
		AccessToken: accessToken,
		ExpiresIn:   int64(s.config.TokenExpiry.Seconds()),
		IssuedAt:    issuedAt,
		User:        user,
		Redirect:    routes.LoginRedirect(user),
	}, nil
}

// Logout returns the post-logout navigation target. Tokens are stateless, so
// nothing is revoked server-side; the client drops its copy.
func (s *AuthService) Logout() *models.LogoutResponse {
	return &models.LogoutResponse{Redirect: routes.LogoutRedirect()}
}

// ValidateToken parses and verifies a session token.
func (s *AuthService) ValidateToken(tokenString string) (*models.JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.TokenSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid or expired token")
	}
	claims, ok := token.Claims.(*models.JWTClaims)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid token claims")
	}
	return claims, nil
}

func (s *AuthService) generateAccessToken(user models.CurrentUser) (string, time.Time, error) {
	issuedAt := time.Now().UTC()
	expiresAt := issuedAt.Add(s.config.TokenExpiry)

	claims := models.JWTClaims{
		UserID: user.ID,
		Name:   user.Name,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(user.ID),
			Issuer:    s.config.Issuer,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.TokenSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, issuedAt, nil
}

package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/autovest/investment-system/internal/api/metrics"
	"github.com/autovest/investment-system/internal/core/domain"
	"github.com/autovest/investment-system/internal/core/ports"
)

// AuthService implements registration and login.
type AuthService struct {
	users           ports.UserRepository
	jwtSecret       string
	tokenTTL        time.Duration
	startingBalance decimal.Decimal
	log             zerolog.Logger
}

func NewAuthService(users ports.UserRepository, jwtSecret string, tokenTTL time.Duration, startingBalance decimal.Decimal, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		users:           users,
		jwtSecret:       jwtSecret,
		tokenTTL:        tokenTTL,
		startingBalance: startingBalance,
		log:             log,
	}
}

// Register creates a new account with role "user" and the configured
// starting balance. Username uniqueness is a case-sensitive exact match.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Username == "" || input.Password == "" || input.Email == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if _, exists := s.users.GetByUsername(input.Username); exists {
		return nil, domain.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	created := s.users.Create(&domain.User{
		Username:     input.Username,
		PasswordHash: string(hash),
		Email:        input.Email,
		FullName:     input.FullName,
		Role:         domain.RoleUser,
		Balance:      s.startingBalance,
	})

	metrics.UsersRegisteredTotal.Inc()
	s.log.Info().Int64("user_id", created.ID).Str("username", created.Username).Msg("user registered")

	return created, nil
}

// Login authenticates by username and password. A missing user and a wrong
// password both return ErrInvalidCredentials so callers cannot enumerate
// accounts; bcrypt's comparison is constant-time.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, ok := s.users.GetByUsername(username)
	if !ok {
		return "", nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     user.Role,
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

package service

import (
	"context"
	"errors"
	"time"

	"coachdesk/platform/internal/auth"
	"coachdesk/platform/internal/domain"
	"coachdesk/platform/internal/repository"
	"coachdesk/platform/internal/session"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

// --- Error Definitions ---
var (
	ErrAuthenticationFailed = errors.New("authentication failed: invalid email or password")
	ErrTokenGeneration      = errors.New("failed to generate authentication token")
	ErrHashingFailed        = errors.New("failed to hash password")
)

// AuthService owns login and logout for both credential schemes.
type AuthService interface {
	// CustomerLogin verifies credentials and returns the cookie token.
	CustomerLogin(ctx context.Context, email, password string) (token string, customer *domain.Customer, err error)
	// AdminLogin verifies trainer/admin credentials, creates a session
	// record, and returns the opaque handle plus a bearer JWT for
	// non-browser clients.
	AdminLogin(ctx context.Context, email, password string) (handle, bearer string, trainer *domain.Trainer, err error)
	// DeleteSession drops a server-side session record. Idempotent.
	DeleteSession(ctx context.Context, handle string) error
}

type authService struct {
	customerRepo  repository.CustomerRepository
	trainerRepo   repository.TrainerRepository
	codec         *auth.TokenCodec
	sessions      *session.Store
	jwtSecret     string
	jwtExpiration time.Duration
}

// NewAuthService creates a new instance of authService.
func NewAuthService(
	customerRepo repository.CustomerRepository,
	trainerRepo repository.TrainerRepository,
	codec *auth.TokenCodec,
	sessions *session.Store,
	jwtSecret string,
	jwtExpiration time.Duration,
) AuthService {
	if jwtSecret == "" {
		panic("JWT secret cannot be empty") // Critical configuration
	}
	if jwtExpiration <= 0 {
		jwtExpiration = time.Hour
	}
	return &authService{
		customerRepo:  customerRepo,
		trainerRepo:   trainerRepo,
		codec:         codec,
		sessions:      sessions,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

func (s *authService) CustomerLogin(ctx context.Context, email, password string) (string, *domain.Customer, error) {
	if email == "" || password == "" {
		return "", nil, ErrAuthenticationFailed
	}

	customer, err := s.customerRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrAuthenticationFailed
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrAuthenticationFailed
	}

	token, err := s.codec.Encode(customer.ID.Hex(), customer.Email, time.Now())
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	customer.PasswordHash = ""
	return token, customer, nil
}

func (s *authService) AdminLogin(ctx context.Context, email, password string) (string, string, *domain.Trainer, error) {
	if email == "" || password == "" {
		return "", "", nil, ErrAuthenticationFailed
	}

	trainer, err := s.trainerRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", "", nil, ErrAuthenticationFailed
		}
		return "", "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(trainer.PasswordHash), []byte(password)); err != nil {
		return "", "", nil, ErrAuthenticationFailed
	}

	rec := session.Record{
		UserID: trainer.ID.Hex(),
		Email:  trainer.Email,
		Role:   string(trainer.Role),
	}
	// Platform admins carry no trainer scope; everyone else is scoped to
	// their own trainer record.
	if !trainer.IsPlatformAdmin() {
		rec.TrainerID = trainer.ID.Hex()
	}

	handle, err := s.sessions.Create(ctx, rec)
	if err != nil {
		return "", "", nil, err
	}

	bearer, err := s.generateJWT(trainer, rec.TrainerID)
	if err != nil {
		return "", "", nil, ErrTokenGeneration
	}

	trainer.PasswordHash = ""
	return handle, bearer, trainer, nil
}

func (s *authService) DeleteSession(ctx context.Context, handle string) error {
	return s.sessions.Delete(ctx, handle)
}

// --- JWT Helper ---

type adminClaims struct {
	Email     string `json:"email"`
	Role      string `json:"role"`
	TrainerID string `json:"trainerId,omitempty"`
	jwt.RegisteredClaims
}

func (s *authService) generateJWT(trainer *domain.Trainer, trainerID string) (string, error) {
	expirationTime := time.Now().Add(s.jwtExpiration)
	claims := &adminClaims{
		Email:     trainer.Email,
		Role:      string(trainer.Role),
		TrainerID: trainerID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   trainer.ID.Hex(),
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "coachdesk",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

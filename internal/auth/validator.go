package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"coachdesk/platform/internal/domain"
	"coachdesk/platform/internal/logger"
	"coachdesk/platform/internal/session"

	"github.com/golang-jwt/jwt/v4"
)

// Cookie names for the three session schemes.
const (
	CookieCustomerToken   = "user_session"     // base64-JSON token, codec-decoded
	CookieCustomerSession = "customer_session" // opaque handle, session store
	CookieAdminSession    = "admin_session"    // opaque handle, session store
)

// Session store role values.
const (
	RoleAdmin   = "admin"
	RoleTrainer = "trainer"
)

// Authenticator resolves inbound request credentials to a typed Principal.
//
// Every failure mode (missing cookie, malformed token, expired session,
// unknown handle, store outage) yields nil, never an error: routes apply
// one uniform 401 short-circuit and authorization is checked separately.
type Authenticator struct {
	codec     *TokenCodec
	sessions  *session.Store
	jwtSecret string
	maxAge    time.Duration

	// now is swappable for boundary tests at the 24h threshold.
	now func() time.Time
}

// NewAuthenticator wires the codec, the session store, and the bearer-JWT
// secret. maxAge bounds the customer cookie token's validity window.
func NewAuthenticator(codec *TokenCodec, sessions *session.Store, jwtSecret string, maxAge time.Duration) *Authenticator {
	if maxAge <= 0 {
		maxAge = 24 * time.Hour
	}
	return &Authenticator{
		codec:     codec,
		sessions:  sessions,
		jwtSecret: jwtSecret,
		maxAge:    maxAge,
		now:       time.Now,
	}
}

// WithClock overrides the time source. Test hook.
func (a *Authenticator) WithClock(now func() time.Time) *Authenticator {
	a.now = now
	return a
}

// Customer authenticates the customer schemes: the self-contained
// user_session token first, then the customer_session store handle.
func (a *Authenticator) Customer(r *http.Request) *domain.Principal {
	if cookie, err := r.Cookie(CookieCustomerToken); err == nil && cookie.Value != "" {
		if p := a.customerFromToken(cookie.Value); p != nil {
			return p
		}
	}

	if cookie, err := r.Cookie(CookieCustomerSession); err == nil && cookie.Value != "" {
		return a.customerFromSession(r, cookie.Value)
	}

	return nil
}

func (a *Authenticator) customerFromToken(token string) *domain.Principal {
	claims, err := a.codec.Decode(token)
	if err != nil {
		return nil
	}

	// Age is measured from issue to now; there is no sliding renewal.
	age := a.now().UnixMilli() - claims.Timestamp
	if age > a.maxAge.Milliseconds() {
		return nil
	}

	return &domain.Principal{
		Kind:  domain.KindCustomer,
		ID:    claims.UserID,
		Email: claims.Email,
	}
}

func (a *Authenticator) customerFromSession(r *http.Request, handle string) *domain.Principal {
	rec, err := a.sessions.Get(r.Context(), handle)
	if err != nil {
		if !errors.Is(err, session.ErrNotFound) {
			logger.Get().Error().Err(err).Msg("customer session introspection failed")
		}
		return nil
	}
	if rec.UserID == "" {
		return nil
	}
	return &domain.Principal{
		Kind:  domain.KindCustomer,
		ID:    rec.UserID,
		Email: rec.Email,
	}
}

// Admin authenticates the trainer/platform-admin scheme: the admin_session
// store handle first, then a bearer JWT for non-browser API clients.
func (a *Authenticator) Admin(r *http.Request) *domain.Principal {
	if cookie, err := r.Cookie(CookieAdminSession); err == nil && cookie.Value != "" {
		rec, err := a.sessions.Get(r.Context(), cookie.Value)
		if err != nil {
			if !errors.Is(err, session.ErrNotFound) {
				logger.Get().Error().Err(err).Msg("admin session introspection failed")
			}
			return nil
		}
		return mapAdminPrincipal(rec.UserID, rec.Email, rec.Role, rec.TrainerID)
	}

	if header := r.Header.Get("Authorization"); header != "" {
		return a.adminFromBearer(header)
	}

	return nil
}

// adminClaims mirrors the payload issued at trainer/admin login.
type adminClaims struct {
	Email     string `json:"email"`
	Role      string `json:"role"`
	TrainerID string `json:"trainerId,omitempty"`
	jwt.RegisteredClaims
}

func (a *Authenticator) adminFromBearer(header string) *domain.Principal {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil
	}

	claims := &adminClaims{}
	token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(a.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil
	}

	return mapAdminPrincipal(claims.Subject, claims.Email, claims.Role, claims.TrainerID)
}

// mapAdminPrincipal applies the role mapping: admin without a trainer scope
// is a platform admin, admin or trainer with one is a trainer-scoped
// principal, anything else is unauthenticated.
func mapAdminPrincipal(id, email, role, trainerID string) *domain.Principal {
	switch {
	case role == RoleAdmin && trainerID == "":
		return &domain.Principal{
			Kind:  domain.KindPlatformAdmin,
			ID:    id,
			Email: email,
		}
	case (role == RoleAdmin || role == RoleTrainer) && trainerID != "":
		return &domain.Principal{
			Kind:      domain.KindTrainer,
			ID:        id,
			Email:     email,
			TrainerID: trainerID,
		}
	default:
		return nil
	}
}

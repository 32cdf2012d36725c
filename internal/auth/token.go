package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// ErrMalformedToken covers every decode failure: bad base64, bad JSON,
// missing fields, bad signature. Callers treat it as "unauthenticated",
// never as a server fault.
var ErrMalformedToken = errors.New("malformed session token")

// TokenClaims is the payload of a customer session token. Timestamp is
// Unix milliseconds at issue time; expiry is evaluated by the validator,
// not here.
type TokenClaims struct {
	UserID    string `json:"userId"`
	Email     string `json:"email"`
	Timestamp int64  `json:"timestamp"`
}

// TokenCodec encodes and decodes the customer session token carried in the
// user_session cookie.
//
// The wire format is base64(JSON {userId,email,timestamp}) and is shared
// with a companion decoder that has no key material, so an empty secret
// keeps tokens unsigned and byte-compatible. With a secret set, encode
// appends "." + base64url(HMAC-SHA256(payload)) and decode verifies it.
type TokenCodec struct {
	secret []byte
}

func NewTokenCodec(secret string) *TokenCodec {
	var key []byte
	if secret != "" {
		key = []byte(secret)
	}
	return &TokenCodec{secret: key}
}

// Encode produces a token for the given identity at the given time.
func (c *TokenCodec) Encode(userID, email string, now time.Time) (string, error) {
	claims := TokenClaims{
		UserID:    userID,
		Email:     email,
		Timestamp: now.UnixMilli(),
	}
	raw, err := json.Marshal(claims)
	if err != nil {
		return "", err
	}

	payload := base64.StdEncoding.EncodeToString(raw)
	if len(c.secret) == 0 {
		return payload, nil
	}
	return payload + "." + c.sign(payload), nil
}

// Decode parses a token back into its claims. Any failure, from any layer,
// is ErrMalformedToken.
func (c *TokenCodec) Decode(token string) (*TokenClaims, error) {
	payload := token
	if len(c.secret) > 0 {
		parts := strings.SplitN(token, ".", 2)
		if len(parts) != 2 {
			return nil, ErrMalformedToken
		}
		payload = parts[0]
		if !hmac.Equal([]byte(c.sign(payload)), []byte(parts[1])) {
			return nil, ErrMalformedToken
		}
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, ErrMalformedToken
	}

	var claims TokenClaims
	if err := json.Unmarshal(raw, &claims); err != nil {
		return nil, ErrMalformedToken
	}
	if claims.UserID == "" || claims.Timestamp == 0 {
		return nil, ErrMalformedToken
	}
	return &claims, nil
}

func (c *TokenCodec) sign(payload string) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

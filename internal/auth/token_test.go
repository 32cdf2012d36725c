package auth

import (
	"encoding/base64"
	"errors"
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	codec := NewTokenCodec("")
	issued := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	token, err := codec.Encode("64f1a2b3c4d5e6f7a8b9c0d1", "amy@example.com", issued)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	claims, err := codec.Decode(token)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if claims.UserID != "64f1a2b3c4d5e6f7a8b9c0d1" {
		t.Errorf("userId = %q", claims.UserID)
	}
	if claims.Email != "amy@example.com" {
		t.Errorf("email = %q", claims.Email)
	}
	if claims.Timestamp != issued.UnixMilli() {
		t.Errorf("timestamp = %d, want %d", claims.Timestamp, issued.UnixMilli())
	}
}

func TestTokenUnsignedWireFormat(t *testing.T) {
	// Without a secret the token must stay plain base64 so the companion
	// web decoder, which has no key material, can still read it.
	codec := NewTokenCodec("")
	token, err := codec.Encode("abc", "a@b.c", time.Now())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := base64.StdEncoding.DecodeString(token); err != nil {
		t.Fatalf("token is not plain base64: %v", err)
	}
}

func TestTokenDecodeMalformed(t *testing.T) {
	codec := NewTokenCodec("")
	cases := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"not base64", "!!not-base64!!"},
		{"base64 of garbage", base64.StdEncoding.EncodeToString([]byte("not json"))},
		{"missing userId", base64.StdEncoding.EncodeToString([]byte(`{"email":"a@b.c","timestamp":123}`))},
		{"zero timestamp", base64.StdEncoding.EncodeToString([]byte(`{"userId":"abc","email":"a@b.c"}`))},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := codec.Decode(tc.token); !errors.Is(err, ErrMalformedToken) {
				t.Errorf("err = %v, want ErrMalformedToken", err)
			}
		})
	}
}

func TestTokenSigned(t *testing.T) {
	codec := NewTokenCodec("topsecret")
	token, err := codec.Encode("abc", "a@b.c", time.Now())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	if _, err := codec.Decode(token); err != nil {
		t.Fatalf("decode signed: %v", err)
	}

	// Unsigned payload must be rejected once a secret is configured.
	unsigned := NewTokenCodec("")
	plain, _ := unsigned.Encode("abc", "a@b.c", time.Now())
	if _, err := codec.Decode(plain); !errors.Is(err, ErrMalformedToken) {
		t.Errorf("unsigned token accepted with secret set")
	}

	// A token signed with a different key must be rejected.
	other := NewTokenCodec("otherkey")
	forged, _ := other.Encode("abc", "a@b.c", time.Now())
	if _, err := codec.Decode(forged); !errors.Is(err, ErrMalformedToken) {
		t.Errorf("token with wrong signature accepted")
	}
}

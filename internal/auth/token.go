package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	// TokenPrefix identifies the admin session token version.
	TokenPrefix = "adm1"

	// TokenTTL bounds how long an issued admin session stays valid.
	TokenTTL = 12 * time.Hour
)

var (
	ErrInvalidTokenFormat    = errors.New("invalid token format")
	ErrInvalidTokenSignature = errors.New("invalid token signature")
	ErrTokenExpired          = errors.New("token expired")
)

// Claims is the admin session token payload.
type Claims struct {
	Sub string `json:"sub"` // identity the session belongs to
	Iat int64  `json:"iat"` // issued at (Unix)
	Exp int64  `json:"exp"` // expiration (Unix)
}

// IssueToken creates a signed admin session token for userID.
// Format: adm1.<payload_b64>.<sig_b64> with an HMAC-SHA256 signature over
// "adm1."+payload_b64.
func IssueToken(secret []byte, userID string, now time.Time) (string, error) {
	if len(secret) == 0 {
		return "", errors.New("secret cannot be empty")
	}
	if userID == "" {
		return "", errors.New("user id cannot be empty")
	}

	payloadJSON, err := json.Marshal(Claims{
		Sub: userID,
		Iat: now.Unix(),
		Exp: now.Add(TokenTTL).Unix(),
	})
	if err != nil {
		return "", fmt.Errorf("marshal claims: %w", err)
	}

	payloadB64 := base64.RawURLEncoding.EncodeToString(payloadJSON)
	sigInput := TokenPrefix + "." + payloadB64
	sigB64 := base64.RawURLEncoding.EncodeToString(sign(secret, sigInput))
	return sigInput + "." + sigB64, nil
}

// VerifyToken checks a token's signature and expiry and returns its claims.
// Signature comparison is constant time.
func VerifyToken(token string, secret []byte, now time.Time) (Claims, error) {
	if len(secret) == 0 {
		return Claims{}, errors.New("secret cannot be empty")
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 || parts[0] != TokenPrefix {
		return Claims{}, ErrInvalidTokenFormat
	}
	payloadB64, sigB64 := parts[1], parts[2]

	sig, err := base64.RawURLEncoding.DecodeString(sigB64)
	if err != nil {
		return Claims{}, ErrInvalidTokenFormat
	}
	if !hmac.Equal(sig, sign(secret, TokenPrefix+"."+payloadB64)) {
		return Claims{}, ErrInvalidTokenSignature
	}

	payloadJSON, err := base64.RawURLEncoding.DecodeString(payloadB64)
	if err != nil {
		return Claims{}, ErrInvalidTokenFormat
	}
	var claims Claims
	if err := json.Unmarshal(payloadJSON, &claims); err != nil {
		return Claims{}, ErrInvalidTokenFormat
	}
	if claims.Sub == "" {
		return Claims{}, ErrInvalidTokenFormat
	}
	if now.Unix() > claims.Exp {
		return Claims{}, ErrTokenExpired
	}
	return claims, nil
}

func sign(secret []byte, input string) []byte {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(input))
	return mac.Sum(nil)
}

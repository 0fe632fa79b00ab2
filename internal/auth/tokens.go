package auth

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"aidanwoods.dev/go-paseto"

	"github.com/daybook/daybook/internal/id"
)

const (
	tokenIssuer   = "daybook-api"
	tokenAudience = "daybook-client"

	// PASETO v4 symmetric key: 32 bytes, configured as 64 hex chars.
	keyBytesSize = 32
	keyHexSize   = 64
)

// ErrInvalidToken indicates a token that failed verification for any reason
// (bad signature, expired, wrong issuer/audience, malformed). Callers must
// treat all failures the same and reject the request.
var ErrInvalidToken = errors.New("invalid or expired token")

// AccessClaims are the claims carried inside an access token.
type AccessClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`

	Issuer     string    `json:"iss"`
	Subject    string    `json:"sub"`
	Audience   string    `json:"aud"`
	Expiration time.Time `json:"exp"`
	NotBefore  time.Time `json:"nbf"`
	IssuedAt   time.Time `json:"iat"`
	TokenID    string    `json:"jti"`
}

// TokenService issues and verifies PASETO v4.local access tokens.
type TokenService struct {
	symmetricKey paseto.V4SymmetricKey
	tokenTTL     time.Duration
}

// NewTokenService creates a token service from a hex-encoded 32-byte key.
func NewTokenService(keyHex string, tokenTTL time.Duration) (*TokenService, error) {
	if len(keyHex) != keyHexSize {
		return nil, fmt.Errorf("token key must be exactly %d hex characters (%d bytes), got %d", keyHexSize, keyBytesSize, len(keyHex))
	}

	keyBytes, err := hex.DecodeString(keyHex)
	if err != nil {
		return nil, fmt.Errorf("invalid hex token key: %w", err)
	}

	key, err := paseto.V4SymmetricKeyFromBytes(keyBytes)
	if err != nil {
		return nil, fmt.Errorf("create symmetric key: %w", err)
	}

	return &TokenService{
		symmetricKey: key,
		tokenTTL:     tokenTTL,
	}, nil
}

// Issue creates an encrypted access token whose subject is the user id.
func (s *TokenService) Issue(userID, email string) (string, error) {
	now := time.Now()

	token := paseto.NewToken()
	token.SetIssuer(tokenIssuer)
	token.SetSubject(userID)
	token.SetAudience(tokenAudience)
	token.SetIssuedAt(now)
	token.SetNotBefore(now)
	token.SetExpiration(now.Add(s.tokenTTL))
	token.SetJti(id.New("tok"))

	//nolint:errcheck // Token.Set only errors on unencodable types, which we control
	_ = token.Set("user_id", userID)
	//nolint:errcheck
	_ = token.Set("email", email)

	return token.V4Encrypt(s.symmetricKey, nil), nil
}

// Verify decrypts and validates an access token, returning its claims.
// Any failure (signature, expiry, issuer, audience) yields ErrInvalidToken;
// the detailed cause is wrapped for logging but must never reach clients.
func (s *TokenService) Verify(tokenString string) (*AccessClaims, error) {
	parser := paseto.NewParser()
	parser.AddRule(paseto.IssuedBy(tokenIssuer))
	parser.AddRule(paseto.ForAudience(tokenAudience))
	parser.AddRule(paseto.NotExpired())
	parser.AddRule(paseto.ValidAt(time.Now()))

	token, err := parser.ParseV4Local(s.symmetricKey, tokenString, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	var claims AccessClaims
	if err := json.Unmarshal(token.ClaimsJSON(), &claims); err != nil {
		return nil, fmt.Errorf("%w: parse claims: %w", ErrInvalidToken, err)
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	return &claims, nil
}

// TokenTTL returns the configured access token lifetime.
func (s *TokenService) TokenTTL() time.Duration {
	return s.tokenTTL
}

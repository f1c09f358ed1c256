package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"bloglist/internal/model"
)

// Claims is the identity embedded in an access token.
type Claims struct {
	Username string
	UserID   int64
}

// TokenService issues and verifies stateless HS256 access tokens. Tokens are
// never stored; validity is purely signature plus expiry at verification
// time. The signing secret is read-only for the process lifetime, so the
// service is safe for concurrent use.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue signs a token carrying the claims, expiring exactly ttl after now.
func (s *TokenService) Issue(claims Claims) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": claims.Username,
		"id":       claims.UserID,
		"iat":      now.Unix(),
		"exp":      now.Add(s.ttl).Unix(),
	})
	return token.SignedString(s.secret)
}

// Verify parses and validates a token, returning the embedded claims
// unchanged. Failures are tagged: ErrTokenExpired when the exp claim has
// passed, ErrTokenInvalid for everything else (bad signature, tampered or
// malformed payload, wrong algorithm).
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, model.ErrTokenExpired
		}
		return nil, model.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, model.ErrTokenInvalid
	}

	username, _ := claims["username"].(string)
	// JSON numbers decode as float64
	idFloat, ok := claims["id"].(float64)
	if !ok || username == "" {
		return nil, model.ErrTokenInvalid
	}

	return &Claims{Username: username, UserID: int64(idFloat)}, nil
}

package middleware

import (
	"context"
	"net/http"
	"strings"

	"bloglist/internal/httputil"
	"bloglist/internal/model"
	"bloglist/internal/repository"
	"bloglist/internal/service"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	tokenKey contextKey = "token"
	userKey  contextKey = "user"
)

// TokenExtractor is the first stage of the gate: it reads the Authorization
// header and, when the "Bearer " scheme is present, stores the candidate
// token in the request context. A missing or differently-schemed header is
// not a failure here; absence and invalidity stay distinct until a route
// that requires identity decides.
func TokenExtractor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if auth != "" {
			parts := strings.SplitN(auth, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				ctx := context.WithValue(r.Context(), tokenKey, parts[1])
				r = r.WithContext(ctx)
			}
		}
		next.ServeHTTP(w, r)
	})
}

// RequireUser is the second stage for protected routes: it verifies the
// candidate token and resolves it to a full user attached to the context.
// A missing token answers an explicit 401, so requests never reach a handler
// relying on a user that is not there. Verification failures keep their
// specific kind (invalid vs expired) through the domain error mapping.
func RequireUser(tokens *service.TokenService, users repository.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := TokenFromContext(r.Context())
			if !ok {
				httputil.WriteDomainError(w, model.ErrTokenMissing)
				return
			}

			claims, err := tokens.Verify(raw)
			if err != nil {
				httputil.WriteDomainError(w, err)
				return
			}

			user, err := users.GetByID(r.Context(), claims.UserID)
			if err != nil {
				// A well-signed token for a vanished user is still invalid.
				httputil.WriteDomainError(w, model.ErrTokenInvalid)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalUser resolves identity when a valid token is present and
// continues without one otherwise. For routes where the extraction step
// runs but identity is not required.
func OptionalUser(tokens *service.TokenService, users repository.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if raw, ok := TokenFromContext(r.Context()); ok {
				if claims, err := tokens.Verify(raw); err == nil {
					if user, err := users.GetByID(r.Context(), claims.UserID); err == nil {
						ctx := context.WithValue(r.Context(), userKey, user)
						r = r.WithContext(ctx)
					}
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// TokenFromContext returns the candidate bearer token, if one was extracted.
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey).(string)
	return token, ok
}

// GetUserFromContext returns the resolved user and true, or nil and false
// when the request carries no identity. Handlers that require identity must
// check the second value and fail with an authentication error on false.
func GetUserFromContext(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(userKey).(*model.User)
	return user, ok
}

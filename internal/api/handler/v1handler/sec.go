package v1handler

import (
	"context"
	"cordely/internal/config"
	"cordely/pkg/domain"
	"cordely/pkg/serrors"
	"crypto/rsa"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ctxKey is a private type for context keys defined in this package.
type ctxKey string

// UserIDKey is the context key the authenticated owner ID is stored under.
const UserIDKey ctxKey = "userID"

// GetUserIDFromContext returns the authenticated owner ID, or the zero value
// when the request was not authenticated.
func GetUserIDFromContext(ctx context.Context) domain.OwnerID {
	if v, ok := ctx.Value(UserIDKey).(domain.OwnerID); ok {
		return v
	}

	return domain.OwnerID{}
}

// SecHandlerOptions configure bearer token validation.
type SecHandlerOptions struct {
	// PublicKey is the PEM-encoded RSA public key tokens are verified against.
	PublicKey string
}

// NewSecHandlerOptions constructs SecHandlerOptions from the application config.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{
		PublicKey: cfg.JWT.PublicKey,
	}
}

// SecHandler validates RS256 bearer tokens on owner-console endpoints and
// stores the token subject in the request context.
type SecHandler struct {
	publicKey *rsa.PublicKey
}

// NewSecHandler parses the configured public key and returns a SecHandler.
func NewSecHandler(options *SecHandlerOptions) (*SecHandler, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(options.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse JWT public key: %w", err)
	}

	return &SecHandler{publicKey: key}, nil
}

// HandleBearerAuth validates the token and returns a context carrying the
// authenticated owner ID.
func (s SecHandler) HandleBearerAuth(ctx context.Context, token string) (context.Context, error) {
	parsed, err := jwt.ParseWithClaims(token,
		&jwt.RegisteredClaims{},
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}

			return s.publicKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}))
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return ctx, serrors.With(serrors.ErrUnauthorized, "token has no subject")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject")
	}

	return context.WithValue(ctx, UserIDKey, domain.OwnerID(userID)), nil
}

// Middleware guards an endpoint with bearer authentication.
func (s SecHandler) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			writeJSON(w, http.StatusUnauthorized, ErrorResponse{
				Code:    serrors.ErrUnauthorized.Error(),
				Message: "missing bearer token",
			})

			return
		}

		ctx, err := s.HandleBearerAuth(r.Context(), token)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, ErrorResponse{
				Code:    serrors.ErrUnauthorized.Error(),
				Message: "invalid token",
			})

			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

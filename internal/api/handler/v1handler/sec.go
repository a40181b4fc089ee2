package v1handler

import (
	"context"
	"crypto/rsa"
	"fmt"
	"mirrorbot/internal/config"
	"mirrorbot/pkg/controller"
	"mirrorbot/pkg/domain"
	"mirrorbot/pkg/serrors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// UserIDKey is the context key holding the authenticated operator ID.
const UserIDKey controller.CtxKey = "UserID"

// BearerAuth carries the raw token extracted from the Authorization header.
type BearerAuth struct {
	Token string
}

// SecHandlerOptions contains the configuration for SecHandler.
type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA public key used for verifying JWTs.
	PublicKey string
}

// NewSecHandlerOptions returns SecHandler options based on the given configuration.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{
		PublicKey: cfg.JWT.PublicKey,
	}
}

// SecHandler verifies bearer tokens on the v1 API. Tokens are RS256 signed
// JWTs whose subject is the operator's user ID.
type SecHandler struct {
	publicKey *rsa.PublicKey
}

// NewSecHandler creates a new SecHandler based on the given options.
func NewSecHandler(options *SecHandlerOptions) (*SecHandler, error) {
	publicKey, err := jwt.ParseRSAPublicKeyFromPEM([]byte(options.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse JWT public key: %w", err)
	}

	return &SecHandler{publicKey: publicKey}, nil
}

// HandleBearerAuth verifies the given token and returns a context carrying
// the operator ID from its subject. Expired, malformed, or wrongly signed
// tokens are rejected as unauthorized.
func (s SecHandler) HandleBearerAuth(ctx context.Context, _ string, t BearerAuth) (context.Context, error) {
	token, err := jwt.ParseWithClaims(t.Token, &jwt.RegisteredClaims{}, func(_ *jwt.Token) (any, error) {
		return s.publicKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}))
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnauthorized, err, "unauthorized")
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return nil, serrors.With(serrors.ErrUnauthorized, "unauthorized")
	}

	subject, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnauthorized, err, "unauthorized")
	}

	return context.WithValue(ctx, UserIDKey, domain.UserID(subject)), nil
}

// GetUserIDFromContext returns the authenticated operator ID stored in ctx,
// or the zero ID when the request was not authenticated.
func GetUserIDFromContext(ctx context.Context) domain.UserID {
	userID, ok := ctx.Value(UserIDKey).(domain.UserID)
	if !ok {
		return domain.UserID{}
	}

	return userID
}

// WithBearerAuth wraps next so every request must carry a valid bearer token.
func (s SecHandler) WithBearerAuth(h Handler, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !found || token == "" {
			h.writeError(r.Context(), w, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

			return
		}

		ctx, err := s.HandleBearerAuth(r.Context(), r.URL.Path, BearerAuth{Token: token})
		if err != nil {
			h.writeError(r.Context(), w, err)

			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

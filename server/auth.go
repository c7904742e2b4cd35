package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type userIDKey struct{}

// tokenLeeway allows for clock skew with the token issuer
const tokenLeeway = 30 * time.Second

// headerUserID is trusted only when no jwt secret is configured, e.g. behind an authenticating proxy
const headerUserID = "X-User-ID"

// authenticator resolves the calling user from a bearer token signed with HS256.
// Tokens are issued elsewhere, only the subject claim is used as user id.
type authenticator struct {
	secret []byte
	issuer string
}

func newAuthenticator(secret, issuer string) *authenticator {
	return &authenticator{secret: []byte(secret), issuer: issuer}
}

// middleware rejects unauthenticated requests and puts the user id into the request context
func (a *authenticator) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := a.userID(r)
		if err != nil {
			renderError(w, r, err, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey{}, userID)))
	})
}

func (a *authenticator) userID(r *http.Request) (string, error) {
	if len(a.secret) == 0 {
		userID := strings.TrimSpace(r.Header.Get(headerUserID))
		if userID == "" {
			return "", fmt.Errorf("missing %s header", headerUserID)
		}
		return userID, nil
	}

	authHeader := r.Header.Get("Authorization")
	tokenStr, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok || strings.TrimSpace(tokenStr) == "" {
		return "", errors.New("missing bearer token")
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(tokenLeeway),
	}
	if a.issuer != "" {
		opts = append(opts, jwt.WithIssuer(a.issuer))
	}
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(strings.TrimSpace(tokenStr), claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	}, opts...)
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return "", errors.New("invalid token: no subject")
	}
	return claims.Subject, nil
}

// userFromContext returns the user id set by the auth middleware
func userFromContext(ctx context.Context) string {
	userID, _ := ctx.Value(userIDKey{}).(string)
	return userID
}

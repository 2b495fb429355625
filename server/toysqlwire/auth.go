package toysqlwire

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrUnauthenticated = errors.New("toysqlwire: unauthenticated")

// AuthConfig configures token authentication. When Enabled, every
// connection must present a valid HS256 token before running SQL.
type AuthConfig struct {
	Enabled   bool
	JWTSecret string

	// Issuer and Audience are checked when non-empty.
	Issuer   string
	Audience string
}

// identity is what a validated token grants a connection.
type identity struct {
	Subject   string
	ExpiresAt time.Time
}

func (a *AuthConfig) validate(tokenString string) (identity, error) {
	if a == nil || a.JWTSecret == "" {
		return identity{}, errors.New("authentication not configured")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(a.JWTSecret), nil
	}, jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}))
	if err != nil {
		return identity{}, fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return identity{}, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return identity{}, errors.New("invalid token claims")
	}

	if a.Issuer != "" {
		issuer, _ := claims.GetIssuer()
		if issuer != a.Issuer {
			return identity{}, fmt.Errorf("invalid issuer: expected %s, got %s", a.Issuer, issuer)
		}
	}
	if a.Audience != "" {
		audiences, _ := claims.GetAudience()
		if !slices.Contains(audiences, a.Audience) {
			return identity{}, fmt.Errorf("invalid audience: expected %s", a.Audience)
		}
	}

	var id identity
	id.Subject, _ = claims.GetSubject()
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		id.ExpiresAt = exp.Time
	}
	return id, nil
}

// connState tracks per-connection authentication.
type connState struct {
	session       string
	authenticated bool
	identity      identity
}

// authorize applies a request's token (if any) to the connection and
// reports whether the request may proceed.
func (s *Server) authorize(st *connState, token string, now time.Time) error {
	if s.auth == nil || !s.auth.Enabled {
		return nil
	}
	if token != "" {
		id, err := s.auth.validate(token)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrUnauthenticated, err)
		}
		st.authenticated = true
		st.identity = id
		s.log.Info("connection authenticated", "session", st.session, "subject", id.Subject)
	}
	if !st.authenticated {
		return ErrUnauthenticated
	}
	if exp := st.identity.ExpiresAt; !exp.IsZero() && now.After(exp) {
		st.authenticated = false
		return fmt.Errorf("%w: token expired", ErrUnauthenticated)
	}
	return nil
}

// Package identity checks identity-provider tokens presented at sign-in.
package identity

import (
	"fmt"
	"strings"

	googleverifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/golang-jwt/jwt/v5"
	errorvalues "github.com/limbo/attendance/internal/error_values"
)

const (
	DefaultEmail = "test@example.com"
	DefaultName  = "Test User"
)

type Identity struct {
	Email   string
	Name    string
	Subject string
}

// GoogleVerifier checks signature, issuer, expiry and audience of a Google ID token.
type GoogleVerifier struct {
	ClientID string
}

func NewGoogleVerifier(clientID string) *GoogleVerifier {
	return &GoogleVerifier{ClientID: clientID}
}

func (g *GoogleVerifier) Verify(token string) (*Identity, error) {
	if strings.TrimSpace(token) == "" {
		return nil, errorvalues.ErrInvalidIdentity
	}
	v := googleverifier.Verifier{}
	if err := v.VerifyIDToken(token, []string{g.ClientID}); err != nil {
		return nil, fmt.Errorf("%w: %s", errorvalues.ErrInvalidIdentity, err.Error())
	}
	claimSet, err := googleverifier.Decode(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errorvalues.ErrInvalidIdentity, err.Error())
	}
	if claimSet.Email == "" {
		return nil, fmt.Errorf("%w: token carries no email", errorvalues.ErrInvalidIdentity)
	}
	return &Identity{
		Email:   strings.ToLower(claimSet.Email),
		Name:    claimSet.Name,
		Subject: claimSet.Sub,
	}, nil
}

// InsecureDecoder reads email and name from a JWT without checking its
// signature. Missing claims fall back to DefaultEmail and DefaultName.
// Only meant for local development.
type InsecureDecoder struct{}

func (InsecureDecoder) Verify(token string) (*Identity, error) {
	if strings.TrimSpace(token) == "" {
		return nil, errorvalues.ErrInvalidIdentity
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: %s", errorvalues.ErrInvalidIdentity, err.Error())
	}
	result := &Identity{Email: DefaultEmail, Name: DefaultName}
	if email, ok := claims["email"].(string); ok && email != "" {
		result.Email = strings.ToLower(email)
	}
	if name, ok := claims["name"].(string); ok && name != "" {
		result.Name = name
	}
	if sub, err := claims.GetSubject(); err == nil {
		result.Subject = sub
	}
	return result, nil
}

// Package auth verify identity provider tokens and revoke them on logout
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"jobboard-backend/internal/model"
)

// ErrMissingEmail is returned for a token without email claim
var ErrMissingEmail = errors.New("token has no email claim")

// UserMetadata is the custom claim set at sign up
type UserMetadata struct {
	Role        string `json:"role"`
	DisplayName string `json:"display_name"`
}

// IdentityClaims is the claim set of an identity provider access token
type IdentityClaims struct {
	Email        string       `json:"email"`
	UserMetadata UserMetadata `json:"user_metadata"`
	jwt.RegisteredClaims
}

// Identity return the user asserted by the claims
func (c *IdentityClaims) Identity() model.Identity {
	return model.Identity{
		ID:          c.Subject,
		Email:       c.Email,
		Role:        strings.ToLower(strings.TrimSpace(c.UserMetadata.Role)),
		DisplayName: c.UserMetadata.DisplayName,
	}
}

// Verifier validate HS256 access tokens signed with the identity provider secret
type Verifier struct {
	secret []byte
	issuer string
}

// NewVerifier creates Verifier. An empty issuer disables the issuer check.
func NewVerifier(secret, issuer string) *Verifier {
	return &Verifier{secret: []byte(secret), issuer: issuer}
}

// Verify parse and validate token
func (v *Verifier) Verify(encodedToken string) (*IdentityClaims, error) {
	claims := &IdentityClaims{}
	token, err := jwt.ParseWithClaims(encodedToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, isvalid := token.Method.(*jwt.SigningMethodHMAC); !isvalid {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if v.issuer != "" && !claims.VerifyIssuer(v.issuer, true) {
		return nil, jwt.ErrTokenInvalidIssuer
	}
	if claims.Email == "" {
		return nil, ErrMissingEmail
	}
	return claims, nil
}

// Issue sign a token for id, valid for ttl. It is used by local tooling and tests in
// place of the identity provider.
func (v *Verifier) Issue(id model.Identity, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := IdentityClaims{
		Email:        id.Email,
		UserMetadata: UserMetadata{Role: id.Role, DisplayName: id.DisplayName},
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    v.issuer,
			Subject:   id.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

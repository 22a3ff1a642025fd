// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	domainerrors "jobfinder/internal/domain/errors"
	"jobfinder/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
)

// claimsDecoder extracts identity claims from bearer tokens using the JWT
// standard. The client holds no signing key, so the token is parsed without
// signature verification; the server remains the authority on validity.
type claimsDecoder struct {
	parser *jwt.Parser
}

// NewClaimsDecoder is the constructor for claimsDecoder.
func NewClaimsDecoder() service.TokenDecoder {
	return &claimsDecoder{
		parser: jwt.NewParser(),
	}
}

// DecodeAccountID returns the "accountId" claim when present, falling back
// to the standard "sub" claim.
func (d *claimsDecoder) DecodeAccountID(tokenString string) (string, error) {
	claims := jwt.MapClaims{}
	if _, _, err := d.parser.ParseUnverified(tokenString, claims); err != nil {
		return "", domainerrors.ErrTokenDecodeFailed.WrapMessage(err.Error())
	}

	if id, ok := claims["accountId"].(string); ok && id != "" {
		return id, nil
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", domainerrors.ErrTokenDecodeFailed.WrapMessage("token carries no identity claim")
	}

	return sub, nil
}

package service

// TokenDecoder extracts the stable account identifier from a bearer token's
// claims without verifying the signature; the client has no signing key and
// the token is only trusted as far as the server that issued it.
type TokenDecoder interface {
	// DecodeAccountID returns the identity claim of the token, preferring
	// the "accountId" claim over the standard "sub" claim. It fails with a
	// domain TokenDecodeFailed error when the token cannot be parsed or
	// carries neither claim.
	DecodeAccountID(token string) (string, error)
}

package entity

// Session is the canonical record of the current signed-in principal.
// Token present means authenticated; AccountID and Account are best-effort
// enrichments and may legitimately be empty even while authenticated.
//
// Its JSON form is also the on-device persisted layout, so field tags must
// stay stable across releases.
type Session struct {
	Token     string   `json:"token"`
	AccountID string   `json:"accountId,omitempty"`
	Account   *Account `json:"account,omitempty"`
}

// Authenticated reports whether the session carries a bearer token.
func (s *Session) Authenticated() bool {
	return s != nil && s.Token != ""
}

package entity

// Account is the denormalized profile snapshot of the signed-in principal.
// It is kept so screens can render a name and email without a round trip;
// it may be stale relative to the server's current record.
type Account struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Role  Role   `json:"role,omitempty"`
}

// AccountFromPayload builds an Account from a loosely shaped server object.
// The backend is inconsistent about field names: the identifier arrives as
// "_id" or "id", the display name as "name" or "fullName". Unknown fields
// are ignored; a nil payload yields a nil Account.
func AccountFromPayload(payload map[string]any) *Account {
	if payload == nil {
		return nil
	}

	account := &Account{
		ID:    firstString(payload, "_id", "id"),
		Name:  firstString(payload, "name", "fullName"),
		Email: firstString(payload, "email"),
	}
	if role := firstString(payload, "role"); role != "" {
		account.Role = ParseRole(role)
	}

	return account
}

func firstString(payload map[string]any, keys ...string) string {
	for _, key := range keys {
		if value, ok := payload[key].(string); ok && value != "" {
			return value
		}
	}

	return ""
}

package entity

// TokenRecord is the OAuth token snapshot persisted per uid. A non-empty
// refresh token is the only signal of a connected calendar; every other
// field is advisory metadata from the provider.
type TokenRecord struct {
	RefreshToken string `json:"refresh_token,omitempty" db:"refresh_token"`
	AccessToken  string `json:"access_token,omitempty" db:"access_token"`
	Scope        string `json:"scope,omitempty" db:"scope"`
	TokenType    string `json:"token_type,omitempty" db:"token_type"`
	// Epoch millis hint for access-token expiry. Never trusted: the client
	// factory always forces a refresh.
	ExpiryDate int64 `json:"expiry_date,omitempty" db:"expiry_date"`
	// Epoch millis of the last write, stamped by the store on Save.
	CreatedAt int64 `json:"createdAt,omitempty" db:"created_at"`
}

// Connected reports whether this record represents a usable consent grant.
func (r *TokenRecord) Connected() bool {
	return r != nil && r.RefreshToken != ""
}

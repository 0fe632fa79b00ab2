package model

// AuthContext carries the authenticated caller's identity through a request.
// It is resolved by the auth middleware from a verified access token and is
// the only source of user scoping for record access.
type AuthContext struct {
	UserID  string
	Email   string
	TokenID string
}

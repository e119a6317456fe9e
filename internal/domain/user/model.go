package user

import "strings"

// Principal is the authenticated identity resolved from a bearer token.
type Principal struct {
	UserID string
	Email  string
}

func (p Principal) Valid() bool {
	return strings.TrimSpace(p.UserID) != ""
}

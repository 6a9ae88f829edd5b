package entities

import "strings"

// Session identifies the shop the caller acts for.
//
// The token is resolved once at the edge (query string, header or CLI flag) and
// passed down explicitly; nothing below the adapters reads it on its own.
type Session struct {
	Token string
}

func NewSession(token string) Session {
	return Session{Token: strings.TrimSpace(token)}
}

func (s Session) Valid() bool {
	return s.Token != ""
}

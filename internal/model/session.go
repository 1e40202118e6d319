package model

// Session holds the current authentication/guest identity. Identity fields
// are pointers so a logged-out or guest session serializes them as null.
type Session struct {
	UserID          *string `json:"userId"`
	Name            *string `json:"name"`
	Email           *string `json:"email"`
	IsAuthenticated bool    `json:"isAuthenticated"`
	IsGuest         bool    `json:"isGuest"`
}

// Session modes.
const (
	ModeUnauthenticated = "unauthenticated"
	ModeGuest           = "guest"
	ModeAuthenticated   = "authenticated"
)

// Mode returns the session's current mode. A session is never both
// authenticated and guest; authenticated wins if storage was tampered with.
func (s Session) Mode() string {
	switch {
	case s.IsAuthenticated:
		return ModeAuthenticated
	case s.IsGuest:
		return ModeGuest
	default:
		return ModeUnauthenticated
	}
}

// Active reports whether the session can use the app (guest or authenticated).
func (s Session) Active() bool {
	return s.IsAuthenticated || s.IsGuest
}

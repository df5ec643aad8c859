package client

// Session identifies the traveler driving a flow. It is created once at
// startup and passed to every state machine explicitly; nothing in this
// package reads ambient global state.
type Session struct {
	UserID string
}

// NewSession creates a session for a user.
func NewSession(userID string) Session {
	return Session{UserID: userID}
}

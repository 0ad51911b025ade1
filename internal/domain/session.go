package domain

// User is the authenticated account as reported by the backend.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Session is the cached authentication state. Its lifetime is governed by the
// session cache, not by any local expiry; it is invalidated explicitly after
// login, registration and logout.
type Session struct {
	IsLoggedIn bool  `json:"isLoggedIn"`
	User       *User `json:"user,omitempty"`
}

// Anonymous returns the logged-out session.
func Anonymous() Session {
	return Session{IsLoggedIn: false}
}

// Credentials is the login submission.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the account-creation submission.
type Registration struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

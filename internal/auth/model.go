package auth

// User is the account owning restaurants. The credential never leaves
// the server.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}

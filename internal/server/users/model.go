package users

// User is a persisted account record. Password holds the bcrypt hash, never
// the plaintext. Listing queries omit the hash entirely.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
}

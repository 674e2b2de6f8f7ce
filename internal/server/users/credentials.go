package users

// Credentials is the transient username/password pair submitted on register
// and login. It is never persisted.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// IsValid reports whether both fields are present and non-empty. No length or
// complexity policy is applied here.
func (c Credentials) IsValid() bool {
	return c.Username != "" && c.Password != ""
}

package models

// User represents a registered account. Users are provisioned
// out-of-band (migration seed); there is no signup flow.
type User struct {
	ID      int    `json:"id" db:"id"`
	Email   string `json:"username" db:"email"` // login username, email-shaped
	Name    string `json:"name" db:"name"`      // unique display name, recorded on pages as author
	IsAdmin bool   `json:"isAdmin" db:"is_admin"`

	// scrypt credentials, hex-encoded; never serialized
	Salt string `json:"-" db:"salt"`
	Hash string `json:"-" db:"hash"`
}

// Identity is a verified caller identity as stored in the session and
// returned by the login endpoint. A nil *Identity means anonymous.
type Identity struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	IsAdmin  bool   `json:"isAdmin"`
}

// Identity returns the session identity for the user.
func (u *User) Identity() *Identity {
	return &Identity{
		ID:       u.ID,
		Username: u.Email,
		Name:     u.Name,
		IsAdmin:  u.IsAdmin,
	}
}

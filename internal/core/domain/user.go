package domain

const (
	RoleAdmin  = "admin"
	RoleClient = "client"

	// AdminUsername is the single account treated as administrator.
	AdminUsername = "admin"
)

// User models an account as stored by the backend.
// Password is write-only: it is sent on create/update and never kept in a session.
type User struct {
	ID       ID     `json:"id,omitempty"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password,omitempty"`
}

// Identity is the authenticated user persisted by the session store.
type Identity struct {
	ID       ID     `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	IsAdmin  bool   `json:"isAdmin"`
}

// IdentityFromUser derives the session identity. IsAdmin is computed from the
// username only; any flag the backend may return is ignored.
func IdentityFromUser(u User) Identity {
	return Identity{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Phone:    u.Phone,
		IsAdmin:  u.Username == AdminUsername,
	}
}

// Role maps the admin flag onto the role names used by access control.
func (i Identity) Role() string {
	if i.IsAdmin {
		return RoleAdmin
	}
	return RoleClient
}

package identity

type Role string

const (
	RoleUser   Role = "user"
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleMember, RoleAdmin:
		return true
	}

	return false
}

// Session is the authenticated caller of a request. It is built once by the
// auth middleware and handed to services explicitly.
type Session struct {
	UserID      string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Role        Role   `json:"role"`
}

func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// Name is what we show to admins and put in emails.
func (s Session) Name() string {
	if len(s.DisplayName) != 0 {
		return s.DisplayName
	}

	return s.Email
}

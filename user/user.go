package user

import (
	"time"

	"github.com/hanksha/sports-club-backend/identity"
)

type User struct {
	ID          string        `json:"id"`
	Email       string        `json:"email"`
	DisplayName string        `json:"displayName"`
	PhotoURL    string        `json:"photoURL"`
	Role        identity.Role `json:"role"`
	MemberSince *time.Time    `json:"memberSince"`
	LastLogin   *time.Time    `json:"lastLogin"`
	CreatedAt   time.Time     `json:"createdAt"`
}

func (u User) Session() identity.Session {
	return identity.Session{
		UserID:      u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Role:        u.Role,
	}
}

type Counts struct {
	TotalUsers   int `json:"totalUsers"`
	TotalMembers int `json:"totalMembers"`
	TotalAdmins  int `json:"totalAdmins"`
}

package models

import "time"

// User roles. Authentication itself lives outside this service; the engine
// only needs identity and role for ownership checks and admin fan-out.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is the minimal account view the reservation engine reads.
type User struct {
	ID            string         `bson:"id" json:"id"`
	Name          string         `bson:"name" json:"name"`
	Email         string         `bson:"email" json:"email"`
	Role          string         `bson:"role" json:"role"`
	Notifications []Notification `bson:"notifications,omitempty" json:"notifications,omitempty"`
	CreatedAt     time.Time      `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time      `bson:"updated_at" json:"updatedAt"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

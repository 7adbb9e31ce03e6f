package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is the identity resolved from credentials or an access token.
type User struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Admin        bool      `json:"admin"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Role derives the access role from the administrator flag.
func (u *User) Role() string {
	if u.Admin {
		return RoleAdmin
	}
	return RoleUser
}

// UserUpdate carries a partial update. Nil fields are left untouched.
type UserUpdate struct {
	FirstName *string
	LastName  *string
	Email     *string
	Password  *string
	Admin     *bool
}

// Empty reports whether the update would change nothing.
func (u UserUpdate) Empty() bool {
	return u.FirstName == nil && u.LastName == nil && u.Email == nil && u.Password == nil && u.Admin == nil
}

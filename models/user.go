package models

// User mirrors a row of the app_user table. Password holds the bcrypt
// digest, never the plaintext.
type User struct {
	UserID             int64   `json:"user_id,omitempty"`
	FullName           string  `json:"full_name"`
	Email              string  `json:"email"`
	Phone              *string `json:"phone"`
	Password           string  `json:"password"`
	RoleID             int64   `json:"role_id"`
	IsAnonymousAllowed bool    `json:"is_anonymous_allowed"`
}

// Role is a named permission tier; this service only ever looks roles up.
type Role struct {
	RoleID   int64  `json:"role_id"`
	RoleName string `json:"role_name,omitempty"`
}

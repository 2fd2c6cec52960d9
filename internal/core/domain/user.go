package domain

// User represents an authenticated owner of an account.
type User struct {
	UserID       string `json:"userID"` // Primary Key (UUID)
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // bcrypt hash, never serialized
	AuditFields
}

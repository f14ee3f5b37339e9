package users

// ID tipe untuk User
type UserID string

// User is created via the signup path only; never mutated or deleted.
// Password holds a bcrypt hash and is never serialized.
type User struct {
	ID       UserID `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}

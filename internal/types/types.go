package types

const ContextUserKey = "user"

// UserResponse is the public view of a user. The password hash is never
// serialized.
type UserResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

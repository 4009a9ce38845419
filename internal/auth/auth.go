package auth

// Authenticator issues and verifies session tokens. The service layer never
// depends on a concrete token mechanism; handlers are wired with whichever
// implementation main constructs.
type Authenticator interface {
	IssueToken(userID uint, email string) (string, error)
	VerifyToken(token string) (uint, error)
}

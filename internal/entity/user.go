package entity

// UserLoginData is the identity extracted from a verified access token.
// Account management and token issuance live in the external auth service.
type UserLoginData struct {
	ID       string
	Username string
	Email    string
}

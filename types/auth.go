package types

type SignupRequest struct {
	Email     string  `json:"email" binding:"required,email"`
	Username  string  `json:"username" binding:"required,username"`
	FirstName *string `json:"firstName" binding:"omitempty,max=100"`
	LastName  *string `json:"lastName" binding:"omitempty,max=100"`
	Password  string  `json:"password" binding:"omitempty,min=8,max=72"`
}

// LoginRequest identifies the account by email or username.
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password"`
}

// SessionResponse is returned by signup and login. Token is also set as the
// session cookie; clients without cookies send it as a bearer token.
type SessionResponse struct {
	User  UserView `json:"user"`
	Token string   `json:"token"`
}

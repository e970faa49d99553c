package responses

type AuthResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type Auth struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

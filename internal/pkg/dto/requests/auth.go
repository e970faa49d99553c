package requests

type RegisterUser struct {
	Name           string `json:"name" validate:"required,min=2,max=100"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=6,max=72"`
	Role           string `json:"role" validate:"required,user_role"`
	Specialization string `json:"specialization" validate:"omitempty,max=100"`
}

type LoginUser struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

package dto

// LoginForm is the POST /login form body. Field names match the login
// template's input names.
type LoginForm struct {
	Email    string `form:"username"`
	Password string `form:"password"`
}

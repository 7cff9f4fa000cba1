// Package dto defines the form bindings for the auth feature's HTTP
// transport layer.
package dto

// RegisterForm is the POST /register form body. The email field is named
// "username" in the HTML form, a holdover the templates still depend on.
// Emptiness checks live in the usecase so the form re-renders with the
// site's own message instead of a binding error.
type RegisterForm struct {
	Email           string `form:"username"`
	Password        string `form:"password"`
	ConfirmPassword string `form:"confirmPassword"`
}

package models

// User is a demo-only account. Accounts live in memory for the lifetime of the
// process; credentials are never written to the persistent store.
type User struct {
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
	Password string `json:"-"`
	Role     string `json:"role"`
}

type SignupData struct {
	Fullname string `json:"fullname" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginData struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

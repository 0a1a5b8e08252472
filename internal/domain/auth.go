package domain

// Auth is a login-capable account. Only name is validated; passwords are
// stored as received and compared verbatim at login.
type Auth struct {
	ID        int32  `db:"id" json:"id"`
	Name      string `db:"name" json:"name" validate:"min=1"`
	Email     string `db:"email" json:"email"`
	Password1 string `db:"password1" json:"password1"`
	Password2 string `db:"password2" json:"password2"`
}

// AuthSummary is the subset of columns returned by account update and
// delete statements.
type AuthSummary struct {
	Name  string `db:"name" json:"name"`
	Email string `db:"email" json:"email"`
}

// Login is the request shape for POST /auth/login.
type Login struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

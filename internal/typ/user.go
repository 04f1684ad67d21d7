package typ

// User is a dashboard account. The password field holds the argon2id hash
// and never leaves the process.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}

// InsertUser is the input shape for signup. The password arrives in plain
// text and is hashed before it reaches the store.
type InsertUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

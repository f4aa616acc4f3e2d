package domain

type User struct {
	Username string `json:"username"`
}

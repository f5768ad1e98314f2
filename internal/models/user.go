package models

// User is the signed-in account shown across the dashboard
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

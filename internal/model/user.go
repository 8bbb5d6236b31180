package model

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// User is a registered customer. Password holds whatever the configured
// password verifier stores (plain text by default).
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserView is the public projection of a User, safe for API responses
type UserView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// View strips the stored password
func (u User) View() UserView {
	return UserView{ID: u.ID, Name: u.Name, Phone: u.Phone, Email: u.Email}
}

// RegisterRequest is the body of a customer registration
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest accepts either a phone number or an email as identifier
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

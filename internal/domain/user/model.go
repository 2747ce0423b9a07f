package user

import "time"

// Role is a user's marketplace role.
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
	RoleAgent  Role = "agent"
	RoleBoth   Role = "both" // buys and sells
)

// User represents a registered marketplace user.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// CanListProperty reports whether the user may create listings.
// Everyone except pure buyers can list.
func (u User) CanListProperty() bool {
	return u.Role != RoleBuyer
}

// CanViewInventory reports whether the user may open the agent inventory view.
func (u User) CanViewInventory() bool {
	return u.Role == RoleAgent
}

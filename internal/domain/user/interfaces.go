package user

import "context"

// Repository provides persistence operations for users.
type Repository interface {
	Create(ctx context.Context, u *User) error
	Get(ctx context.Context, id string) (*User, error)
	List(ctx context.Context) ([]User, error)
}

package models

import (
	"time"
)

// UserType is the role a profile registered with
type UserType string

const (
	UserTypeCustomer       UserType = "customer"
	UserTypeDriver         UserType = "driver"
	UserTypeDeliveryPerson UserType = "delivery_person"
)

// User is an authenticated account
type User struct {
	ID           string    `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Profile holds the public attributes of a user
type Profile struct {
	ID        string    `json:"id" db:"id"`
	FullName  *string   `json:"full_name,omitempty" db:"full_name"`
	AvatarURL *string   `json:"avatar_url,omitempty" db:"avatar_url"`
	Phone     *string   `json:"phone,omitempty" db:"phone"`
	City      *string   `json:"city,omitempty" db:"city"`
	Age       *int      `json:"age,omitempty" db:"age"`
	UserType  *UserType `json:"user_type,omitempty" db:"user_type"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// RegisterRequest is the HTTP body for account creation
type RegisterRequest struct {
	Email    string   `json:"email"`
	Password string   `json:"password"`
	FullName string   `json:"full_name"`
	UserType UserType `json:"user_type"`
}

// LoginRequest is the HTTP body for signing in
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the issued token
type LoginResponse struct {
	Token     string   `json:"token"`
	ExpiresAt int64    `json:"expires_at"`
	User      User     `json:"user"`
	Profile   *Profile `json:"profile,omitempty"`
}

// ProfileUpdate is the HTTP body for editing a profile. Nil fields are
// left unchanged.
type ProfileUpdate struct {
	FullName  *string `json:"full_name,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	City      *string `json:"city,omitempty"`
	Age       *int    `json:"age,omitempty"`
}

// IsEmpty reports whether the update changes nothing
func (u ProfileUpdate) IsEmpty() bool {
	return u.FullName == nil && u.AvatarURL == nil && u.Phone == nil && u.City == nil && u.Age == nil
}

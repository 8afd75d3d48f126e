package model

import (
	"time"

	"github.com/google/uuid"
)

// Role is the single source of truth for what an account may do. The
// practitioner approval flag is folded into it so the two can never drift.
type Role string

const (
	RolePatient       Role = "patient"
	RolePendingDoctor Role = "pending_doctor"
	RoleDoctor        Role = "doctor"
	RoleAdmin         Role = "admin"
)

// User represents a platform account
type User struct {
	Base
	Name         string `json:"name" db:"name"`
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"-" db:"password_hash"`
	Phone        string `json:"phone" db:"phone"`
	Role         Role   `json:"role" db:"role"`
}

// UserInfo is the wire representation of an account. Type and IsDoctor are
// derived from Role for compatibility with the client.
type UserInfo struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Type      string    `json:"type"`
	IsDoctor  bool      `json:"isdoctor"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) Info() *UserInfo {
	return &UserInfo{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Type:      u.WireType(),
		IsDoctor:  u.Role == RoleDoctor,
		CreatedAt: u.CreatedAt,
	}
}

// WireType maps the internal role onto the client-facing account type.
func (u *User) WireType() string {
	switch u.Role {
	case RoleAdmin:
		return "admin"
	case RoleDoctor:
		return "doctor"
	default:
		return "user"
	}
}

// RegisterRequest represents registration parameters
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone" binding:"required"`
	Type     string `json:"type"`
}

// LoginRequest represents login parameters
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is returned on successful login
type LoginResponse struct {
	Token string    `json:"token"`
	User  *UserInfo `json:"user"`
}

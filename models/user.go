// models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is a studio member's role
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleDirector Role = "DIRECTOR"
	RoleSales    Role = "SALES"
	RoleCreator  Role = "CREATOR"
)

// Valid reports whether r is a known role
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleDirector, RoleSales, RoleCreator:
		return true
	}
	return false
}

// User model
type User struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	Email        string             `json:"email" bson:"email"`
	Role         Role               `json:"role" bson:"role"`
	PasswordHash string             `json:"-" bson:"passwordHash"`
	FCMToken     string             `json:"-" bson:"fcmToken,omitempty"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// CreateUserRequest is the admin payload for adding a member
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     Role   `json:"role" validate:"required,oneof=ADMIN DIRECTOR SALES CREATOR"`
}

// LoginRequest model
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is returned on successful login
type LoginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// FCMTokenUpdateRequest registers a device for push notifications
type FCMTokenUpdateRequest struct {
	FCMToken string `json:"fcmToken" validate:"required"`
}

// Response model
type Response struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

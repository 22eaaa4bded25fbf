// models/user.go
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User model
type User struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserName    string             `json:"userName" bson:"userName"`
	UserEmail   string             `json:"userEmail" bson:"userEmail"`
	Password    string             `json:"password,omitempty" bson:"password"`
	PhoneNumber string             `json:"userPhonenumber" bson:"userPhonenumber"`
	IsAdmin     bool               `json:"isAdmin" bson:"isAdmin"`
}

// SignupRequest is the request body for user registration
type SignupRequest struct {
	UserName    string `json:"userName" validate:"required"`
	UserEmail   string `json:"userEmail" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	PhoneNumber string `json:"userPhonenumber" validate:"required"`
	IsAdmin     bool   `json:"isAdmin"`
}

// LoginRequest is the request body for login
type LoginRequest struct {
	UserEmail string `json:"userEmail"`
	Password  string `json:"password"`
}

// Response is the standard API response envelope
type Response struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

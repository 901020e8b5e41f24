package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Portal roles. Only students can log in; staff roles are reserved.
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// CurrentUser is the minimal identity attached to an authenticated session.
type CurrentUser struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// LoginRequest carries the portal login form.
type LoginRequest struct {
	StudentID string `json:"student_id" validate:"required"`
	Password  string `json:"password" validate:"required"`
	IP        string `json:"-"`
	UserAgent string `json:"-"`
}

// LoginResponse returns the issued session token, the signed-in identity and
// the hash fragment the client should navigate to.
type LoginResponse struct {
	AccessToken string      `json:"access_token"`
	ExpiresIn   int64       `json:"expires_in"`
	IssuedAt    time.Time   `json:"issued_at"`
	User        CurrentUser `json:"user"`
	Redirect    string      `json:"redirect"`
}

// LogoutResponse carries the post-logout navigation target.
type LogoutResponse struct {
	Redirect string `json:"redirect"`
}

// JWTClaims are the session token claims.
type JWTClaims struct {
	UserID int    `json:"uid"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

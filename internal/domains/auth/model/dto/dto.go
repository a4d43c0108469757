package dto

import (
	"staytrack/infras/credential"
	"staytrack/shared/constant"
	"staytrack/shared/timezone"
	"time"
)

const (
	RoleStaff = "staff"
	RoleAdmin = "admin"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required,notblank"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,notblank,max=50"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"     validate:"required,oneof=staff admin"`
}

// SessionResponse describes the bearer token the console was called with.
type SessionResponse struct {
	Subject   string `json:"subject,omitempty"`
	Username  string `json:"username,omitempty"`
	Role      string `json:"role,omitempty"`
	IssuedAt  string `json:"issued_at,omitempty"`
	ExpiresAt string `json:"expires_at,omitempty"`
	Expired   bool   `json:"expired"`
	Opaque    bool   `json:"opaque"`
}

func (s *SessionResponse) FromClaims(claims credential.Claims, now time.Time) {
	s.Subject = claims.Subject
	s.Username = claims.Username
	s.Role = claims.Role
	s.Expired = claims.Expired(now)

	if !claims.IssuedAt.IsZero() {
		s.IssuedAt = timezone.Format(claims.IssuedAt, constant.DateFormat)
	}

	if !claims.ExpiresAt.IsZero() {
		s.ExpiresAt = timezone.Format(claims.ExpiresAt, constant.DateFormat)
	}
}

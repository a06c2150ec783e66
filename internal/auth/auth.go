package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// Credentials is the slice of the employee row auth cares about.
type Credentials struct {
	EmployeeID          string
	Email               string
	PasswordHash        *string
	TempPasswordHash    *string
	ChangedTempPassword bool
}

// ActiveHash picks the hash a login attempt must match: the permanent hash
// once the employee has set one, otherwise the temp hash issued at creation.
func (c *Credentials) ActiveHash() (string, bool) {
	if c.ChangedTempPassword && c.PasswordHash != nil {
		return *c.PasswordHash, true
	}
	if c.TempPasswordHash != nil {
		return *c.TempPasswordHash, true
	}
	if c.PasswordHash != nil {
		return *c.PasswordHash, true
	}
	return "", false
}

type AuthTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	// MustChangePassword tells the UI to route to the change-password
	// screen before anything else.
	MustChangePassword bool `json:"must_change_password"`
}

type Claims struct {
	EmployeeID string `json:"employee_id"`
	Email      string `json:"email"`
	jwt.RegisteredClaims
}

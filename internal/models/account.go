// Package models defines the records xshare persists: accounts, interview
// experiences and the questions asked under them.
package models

import (
	"strings"

	"github.com/dmitrijs2005/xshare/internal/common"
)

// Role is the access level of an account.
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// ParseRole maps user input to a Role. An empty string means RoleStudent.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case "", RoleStudent:
		return RoleStudent, nil
	case RoleAdmin:
		return RoleAdmin, nil
	}
	return "", common.ErrInvalidRole
}

// Landing names the view a freshly logged-in account is sent to.
type Landing string

const (
	LandingDashboard Landing = "dashboard"
	LandingAdmin     Landing = "admin"
)

// Account is a registered user. Email is the unique key. The password is kept
// in plaintext; accounts are never modified after registration.
type Account struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// NewAccount validates the registration fields and builds an Account.
func NewAccount(username, email, password string, role Role) (*Account, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(email) == "" || password == "" {
		return nil, common.ErrInvalidAccount
	}
	if role == "" {
		role = RoleStudent
	}
	if role != RoleStudent && role != RoleAdmin {
		return nil, common.ErrInvalidRole
	}
	return &Account{Username: username, Email: email, Password: password, Role: role}, nil
}

// IsAdmin reports whether the account may moderate questions.
func (a *Account) IsAdmin() bool {
	return a != nil && a.Role == RoleAdmin
}

// Landing returns the view the account lands on after login.
func (a *Account) Landing() Landing {
	if a.IsAdmin() {
		return LandingAdmin
	}
	return LandingDashboard
}

package models

import (
	"github.com/google/uuid"
)

// Role tiers gate which mutations a session may perform
const (
	RoleTierUser   = 1
	RoleTierLeader = 2
	RoleTierAdmin  = 3
)

// User is an account of the tracker. Usernames are stored lower-cased.
type User struct {
	BaseModel
	Username         string `json:"username" gorm:"not null;size:100;uniqueIndex:uq_users_username"`
	RoleID           int    `json:"role_id" gorm:"not null;index"`
	PasswordHash     string `json:"-" gorm:"not null;size:255"`
	FirstName        string `json:"first_name" gorm:"not null;size:100"`
	LastName         string `json:"last_name" gorm:"not null;size:100"`
	Email            string `json:"email" gorm:"not null;size:100;check:chk_users_email,email LIKE '%_@_%'"`
	ProfileImageType string `json:"profile_image_type,omitempty" gorm:"size:20"`
	ProfileImageData []byte `json:"-" gorm:"type:bytea"`

	// TeamID is read through a join on team_memberships, see repository.withTeam
	TeamID *uuid.UUID `json:"team_id,omitempty" gorm:"->;-:migration"`

	// Relationships
	Role *Role `json:"role,omitempty" gorm:"foreignKey:RoleID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// FullName joins first and last name
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Role is a permission tier; its id is the tier number
type Role struct {
	LookupModel
}

// TableName returns the table name for Role
func (Role) TableName() string {
	return "roles"
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// Team groups users under a single leader
type Team struct {
	BaseModel
	Name        string    `json:"name" gorm:"not null;size:100"`
	Description string    `json:"description" gorm:"type:text;not null"`
	LeaderID    uuid.UUID `json:"leader_id" gorm:"type:uuid;not null;index"`

	// Relationships
	Leader *User `json:"leader,omitempty" gorm:"foreignKey:LeaderID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}

// TeamMembership joins users to teams. A user belongs to at most one team,
// which the unique index on user_id enforces.
type TeamMembership struct {
	TeamID    uuid.UUID `json:"team_id" gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;primaryKey;uniqueIndex:uq_team_memberships_user"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Team *Team `json:"-" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	User *User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TeamMembership
func (TeamMembership) TableName() string {
	return "team_memberships"
}

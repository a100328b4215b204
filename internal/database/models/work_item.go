package models

import (
	"github.com/google/uuid"
)

// Priority bounds shared by features and tasks (1 = low, 3 = high)
const (
	PriorityLow  = 1
	PriorityHigh = 3
)

// Status is a user defined workflow state, e.g. "in progress"
type Status struct {
	LookupModel
}

// TableName returns the table name for Status
func (Status) TableName() string {
	return "statuses"
}

// Type classifies features and tasks, e.g. "bug fix"
type Type struct {
	LookupModel
}

// TableName returns the table name for Type
func (Type) TableName() string {
	return "types"
}

// Feature belongs to a project and is broken down into tasks
type Feature struct {
	BaseModel
	ProjectID   uuid.UUID `json:"project_id" gorm:"type:uuid;not null;index"`
	OwnerID     uuid.UUID `json:"owner_id" gorm:"type:uuid;not null;index"`
	Name        string    `json:"name" gorm:"not null;size:100"`
	Description string    `json:"description" gorm:"type:text;not null"`
	StatusID    int       `json:"status_id" gorm:"not null;index"`
	TypeID      int       `json:"type_id" gorm:"not null;index"`
	Priority    int       `json:"priority" gorm:"not null;check:chk_features_priority,priority BETWEEN 1 AND 3"`
	Flags       Flags     `json:"flags"`

	// Relationships
	Project *Project `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Owner   *User    `json:"owner,omitempty" gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	Status  *Status  `json:"status,omitempty" gorm:"foreignKey:StatusID;constraint:OnDelete:RESTRICT"`
	Type    *Type    `json:"type,omitempty" gorm:"foreignKey:TypeID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for Feature
func (Feature) TableName() string {
	return "features"
}

// Task is a unit of work inside a feature, assigned to one user
type Task struct {
	BaseModel
	FeatureID   uuid.UUID `json:"feature_id" gorm:"type:uuid;not null;index"`
	AssigneeID  uuid.UUID `json:"assignee_id" gorm:"type:uuid;not null;index"`
	Name        string    `json:"name" gorm:"not null;size:100"`
	Description string    `json:"description" gorm:"type:text;not null"`
	StatusID    int       `json:"status_id" gorm:"not null;index"`
	TypeID      int       `json:"type_id" gorm:"not null;index"`
	Priority    int       `json:"priority" gorm:"not null;check:chk_tasks_priority,priority BETWEEN 1 AND 3"`
	Flags       Flags     `json:"flags"`

	// Relationships
	Feature  *Feature `json:"feature,omitempty" gorm:"foreignKey:FeatureID;constraint:OnDelete:CASCADE"`
	Assignee *User    `json:"assignee,omitempty" gorm:"foreignKey:AssigneeID;constraint:OnDelete:CASCADE"`
	Status   *Status  `json:"status,omitempty" gorm:"foreignKey:StatusID;constraint:OnDelete:RESTRICT"`
	Type     *Type    `json:"type,omitempty" gorm:"foreignKey:TypeID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for Task
func (Task) TableName() string {
	return "tasks"
}

// Comment records work on exactly one feature or task, with time spent in hours
type Comment struct {
	BaseModel
	AssigneeID uuid.UUID  `json:"assignee_id" gorm:"type:uuid;not null;index"`
	Text       string     `json:"text" gorm:"type:text;not null"`
	TimeSpent  float64    `json:"time_spent" gorm:"not null;default:0;check:chk_comments_time_spent,time_spent >= 0"`
	FeatureID  *uuid.UUID `json:"feature_id,omitempty" gorm:"type:uuid;index;check:chk_comments_parent,(feature_id IS NULL) <> (task_id IS NULL)"`
	TaskID     *uuid.UUID `json:"task_id,omitempty" gorm:"type:uuid;index"`

	// Relationships
	Assignee *User    `json:"assignee,omitempty" gorm:"foreignKey:AssigneeID;constraint:OnDelete:CASCADE"`
	Feature  *Feature `json:"feature,omitempty" gorm:"foreignKey:FeatureID;constraint:OnDelete:CASCADE"`
	Task     *Task    `json:"task,omitempty" gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Comment
func (Comment) TableName() string {
	return "comments"
}

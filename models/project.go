package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProjectStatus is the lifecycle state of a project
type ProjectStatus string

const (
	ProjectNotStarted ProjectStatus = "NOT_STARTED"
	ProjectInProgress ProjectStatus = "IN_PROGRESS"
	ProjectCompleted  ProjectStatus = "COMPLETED"
	ProjectOnHold     ProjectStatus = "ON_HOLD"
)

// Project model
type Project struct {
	ID                primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Name              string               `json:"name" bson:"name"`
	Status            ProjectStatus        `json:"status" bson:"status"`
	ClientName        string               `json:"clientName" bson:"clientName"`
	DueDate           *time.Time           `json:"dueDate,omitempty" bson:"dueDate,omitempty"`
	TotalReward       *int64               `json:"totalReward" bson:"totalReward"`
	RewardRules       string               `json:"rewardRules,omitempty" bson:"rewardRules,omitempty"`
	RewardDistributed bool                 `json:"rewardDistributed" bson:"rewardDistributed"`
	DirectorID        *primitive.ObjectID  `json:"directorId,omitempty" bson:"directorId,omitempty"`
	SalesID           *primitive.ObjectID  `json:"salesId,omitempty" bson:"salesId,omitempty"`
	AssignedUsers     []primitive.ObjectID `json:"assignedUsers" bson:"assignedUsers"`
	CreatedAt         time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt         time.Time            `json:"updatedAt" bson:"updatedAt"`
}

// IsDirector reports whether userID directs the project
func (p *Project) IsDirector(userID primitive.ObjectID) bool {
	return p.DirectorID != nil && *p.DirectorID == userID
}

// IsSales reports whether userID is the project's sales member
func (p *Project) IsSales(userID primitive.ObjectID) bool {
	return p.SalesID != nil && *p.SalesID == userID
}

// IsAssigned reports whether userID is one of the project's creators
func (p *Project) IsAssigned(userID primitive.ObjectID) bool {
	for _, id := range p.AssignedUsers {
		if id == userID {
			return true
		}
	}
	return false
}

// IsParticipant reports whether userID has any role on the project
func (p *Project) IsParticipant(userID primitive.ObjectID) bool {
	return p.IsDirector(userID) || p.IsSales(userID) || p.IsAssigned(userID)
}

// Participants returns the distinct director, sales and assigned user ids
func (p *Project) Participants() []primitive.ObjectID {
	seen := make(map[primitive.ObjectID]bool)
	var ids []primitive.ObjectID
	add := func(id primitive.ObjectID) {
		if id.IsZero() || seen[id] {
			return
		}
		seen[id] = true
		ids = append(ids, id)
	}
	if p.DirectorID != nil {
		add(*p.DirectorID)
	}
	if p.SalesID != nil {
		add(*p.SalesID)
	}
	for _, id := range p.AssignedUsers {
		add(id)
	}
	return ids
}

// Reward returns the total reward, treating an unset value as zero
func (p *Project) Reward() int64 {
	if p.TotalReward == nil {
		return 0
	}
	return *p.TotalReward
}

// Redacted returns a copy without the fields only admins may see
func (p *Project) Redacted() *Project {
	cp := *p
	cp.TotalReward = nil
	cp.RewardRules = ""
	return &cp
}

// CreateProjectRequest is the admin payload for a new project
type CreateProjectRequest struct {
	Name          string        `json:"name" validate:"required,max=200"`
	Status        ProjectStatus `json:"status" validate:"omitempty,oneof=NOT_STARTED IN_PROGRESS COMPLETED ON_HOLD"`
	ClientName    string        `json:"clientName" validate:"max=200"`
	DueDate       *time.Time    `json:"dueDate"`
	TotalReward   *int64        `json:"totalReward" validate:"omitempty,min=0,max=1000000000000000"`
	RewardRules   string        `json:"rewardRules"`
	DirectorID    string        `json:"directorId" validate:"omitempty,len=24,hexadecimal"`
	SalesID       string        `json:"salesId" validate:"omitempty,len=24,hexadecimal"`
	AssignedUsers []string      `json:"assignedUsers" validate:"dive,len=24,hexadecimal"`
}

// UpdateProjectRequest is a partial project update; nil fields are left untouched
type UpdateProjectRequest struct {
	Name          *string        `json:"name" validate:"omitempty,min=1,max=200"`
	Status        *ProjectStatus `json:"status" validate:"omitempty,oneof=NOT_STARTED IN_PROGRESS COMPLETED ON_HOLD"`
	ClientName    *string        `json:"clientName" validate:"omitempty,max=200"`
	DueDate       *time.Time     `json:"dueDate"`
	TotalReward   *int64         `json:"totalReward" validate:"omitempty,min=0,max=1000000000000000"`
	RewardRules   *string        `json:"rewardRules"`
	DirectorID    *string        `json:"directorId" validate:"omitempty,len=24,hexadecimal"`
	SalesID       *string        `json:"salesId" validate:"omitempty,len=24,hexadecimal"`
	AssignedUsers *[]string      `json:"assignedUsers" validate:"omitempty,dive,len=24,hexadecimal"`
}

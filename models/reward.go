package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Reward split constants. The operations cut is fixed and never user editable.
const (
	OperationPercentage       = 10
	DefaultSalesPercentage    = 15
	DefaultDirectorPercentage = 25
	DefaultCreatorPercentage  = 50
	MaxRolePercentage         = 90

	// MaxTotalReward bounds totalReward on project requests
	MaxTotalReward int64 = 1_000_000_000_000_000
)

// RewardDistribution is the per-project percentage split of the total reward
type RewardDistribution struct {
	ProjectID           primitive.ObjectID `json:"projectId" bson:"projectId"`
	OperationPercentage int                `json:"operationPercentage" bson:"operationPercentage"`
	SalesPercentage     int                `json:"salesPercentage" bson:"salesPercentage"`
	DirectorPercentage  int                `json:"directorPercentage" bson:"directorPercentage"`
	CreatorPercentage   int                `json:"creatorPercentage" bson:"creatorPercentage"`
	Finalized           bool               `json:"-" bson:"finalized"`
	UpdatedAt           time.Time          `json:"-" bson:"updatedAt"`
}

// DefaultRewardDistribution returns the split used when a project has none stored
func DefaultRewardDistribution(projectID primitive.ObjectID) *RewardDistribution {
	return &RewardDistribution{
		ProjectID:           projectID,
		OperationPercentage: OperationPercentage,
		SalesPercentage:     DefaultSalesPercentage,
		DirectorPercentage:  DefaultDirectorPercentage,
		CreatorPercentage:   DefaultCreatorPercentage,
	}
}

// RewardDistributionRequest is the admin payload for changing a split.
// Pointers distinguish a missing field from an explicit zero.
type RewardDistributionRequest struct {
	SalesPercentage    *int `json:"salesPercentage" validate:"required,min=0,max=90"`
	DirectorPercentage *int `json:"directorPercentage" validate:"required,min=0,max=90"`
	CreatorPercentage  *int `json:"creatorPercentage" validate:"required,min=0,max=90"`
}

// RewardRole is the relationship through which a user earns a share
type RewardRole string

const (
	RewardRoleDirector RewardRole = "DIRECTOR"
	RewardRoleSales    RewardRole = "SALES"
	RewardRoleCreator  RewardRole = "CREATOR"
)

// UserRewardShare is one computed share of a project's reward. It is derived
// on demand and never stored.
type UserRewardShare struct {
	ProjectID   primitive.ObjectID `json:"projectId"`
	ProjectName string             `json:"projectName"`
	Role        RewardRole         `json:"role"`
	TotalReward int64              `json:"totalReward"`
	Percentage  int                `json:"percentage"`
	Amount      int64              `json:"amount"`
}

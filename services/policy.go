package services

import (
	"fmt"

	"github.com/yurayurastudio/studio_backend/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Principal is the authenticated caller of one request. It is passed
// explicitly into every service call that needs to know who is acting.
type Principal struct {
	UserID primitive.ObjectID
	Email  string
	Role   models.Role
}

// IsAdmin reports whether the principal has the admin role
func (p Principal) IsAdmin() bool {
	return p.Role == models.RoleAdmin
}

// Policy decides what a principal may do. Every write path consults it.
type Policy interface {
	CanManageProjects(p Principal) error
	CanManageUsers(p Principal) error
	CanWriteDistribution(p Principal) error
	CanAccessProject(p Principal, project *models.Project) error
	CanViewUserRewards(p Principal, userID primitive.ObjectID) error
}

type rolePolicy struct{}

// NewRolePolicy returns the studio's role based policy: admins manage
// everything, members see the projects they take part in and their own rewards.
func NewRolePolicy() Policy {
	return rolePolicy{}
}

func (rolePolicy) CanManageProjects(p Principal) error {
	return requireAdmin(p, "manage projects")
}

func (rolePolicy) CanManageUsers(p Principal) error {
	return requireAdmin(p, "manage users")
}

func (rolePolicy) CanWriteDistribution(p Principal) error {
	return requireAdmin(p, "change reward distributions")
}

func (rolePolicy) CanAccessProject(p Principal, project *models.Project) error {
	if p.IsAdmin() || project.IsParticipant(p.UserID) {
		return nil
	}
	return fmt.Errorf("%w: no access to project %s", ErrForbidden, project.ID.Hex())
}

func (rolePolicy) CanViewUserRewards(p Principal, userID primitive.ObjectID) error {
	if p.IsAdmin() || p.UserID == userID {
		return nil
	}
	return fmt.Errorf("%w: cannot view rewards of another user", ErrForbidden)
}

func requireAdmin(p Principal, action string) error {
	if p.IsAdmin() {
		return nil
	}
	return fmt.Errorf("%w: admin role required to %s", ErrForbidden, action)
}

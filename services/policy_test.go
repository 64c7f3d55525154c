package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yurayurastudio/studio_backend/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestRolePolicy_AdminOnlyActions(t *testing.T) {
	policy := NewRolePolicy()
	admin := adminPrincipal()

	assert.NoError(t, policy.CanManageProjects(admin))
	assert.NoError(t, policy.CanManageUsers(admin))
	assert.NoError(t, policy.CanWriteDistribution(admin))

	for _, role := range []models.Role{models.RoleDirector, models.RoleSales, models.RoleCreator} {
		member := memberPrincipal(primitive.NewObjectID(), role)
		assert.ErrorIs(t, policy.CanManageProjects(member), ErrForbidden, role)
		assert.ErrorIs(t, policy.CanManageUsers(member), ErrForbidden, role)
		assert.ErrorIs(t, policy.CanWriteDistribution(member), ErrForbidden, role)
	}
}

func TestRolePolicy_CanAccessProject(t *testing.T) {
	policy := NewRolePolicy()
	director := primitive.NewObjectID()
	sales := primitive.NewObjectID()
	creator := primitive.NewObjectID()
	project := newTestProject("Access", nil, director, sales, creator)

	assert.NoError(t, policy.CanAccessProject(adminPrincipal(), project))
	assert.NoError(t, policy.CanAccessProject(memberPrincipal(director, models.RoleDirector), project))
	assert.NoError(t, policy.CanAccessProject(memberPrincipal(sales, models.RoleSales), project))
	assert.NoError(t, policy.CanAccessProject(memberPrincipal(creator, models.RoleCreator), project))
	assert.ErrorIs(t, policy.CanAccessProject(memberPrincipal(primitive.NewObjectID(), models.RoleCreator), project), ErrForbidden)
}

func TestRolePolicy_CanViewUserRewards(t *testing.T) {
	policy := NewRolePolicy()
	self := primitive.NewObjectID()

	assert.NoError(t, policy.CanViewUserRewards(adminPrincipal(), self))
	assert.NoError(t, policy.CanViewUserRewards(memberPrincipal(self, models.RoleCreator), self))
	assert.ErrorIs(t, policy.CanViewUserRewards(memberPrincipal(primitive.NewObjectID(), models.RoleDirector), self), ErrForbidden)
}

package services

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/yurayurastudio/studio_backend/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func adminPrincipal() Principal {
	return Principal{UserID: primitive.NewObjectID(), Email: "admin@example.com", Role: models.RoleAdmin}
}

func memberPrincipal(id primitive.ObjectID, role models.Role) Principal {
	return Principal{UserID: id, Email: "member@example.com", Role: role}
}

func reward(v int64) *int64 {
	return &v
}

func idPtr(id primitive.ObjectID) *primitive.ObjectID {
	return &id
}

// newTestProject builds a project with the given participants; zero ids are left unset
func newTestProject(name string, total *int64, director, sales primitive.ObjectID, assigned ...primitive.ObjectID) *models.Project {
	p := &models.Project{
		ID:            primitive.NewObjectID(),
		Name:          name,
		Status:        models.ProjectInProgress,
		TotalReward:   total,
		AssignedUsers: assigned,
	}
	if !director.IsZero() {
		p.DirectorID = idPtr(director)
	}
	if !sales.IsZero() {
		p.SalesID = idPtr(sales)
	}
	return p
}

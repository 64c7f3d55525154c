package controllers

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/yurayurastudio/studio_backend/models"
	"github.com/yurayurastudio/studio_backend/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockRewardService is a mock implementation of services.RewardService
type MockRewardService struct {
	mock.Mock
}

func (m *MockRewardService) GetDistribution(ctx context.Context, actor services.Principal, projectID primitive.ObjectID) (*models.RewardDistribution, error) {
	args := m.Called(ctx, actor, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RewardDistribution), args.Error(1)
}

func (m *MockRewardService) CheckDistributionWritable(ctx context.Context, actor services.Principal, projectID primitive.ObjectID) error {
	args := m.Called(ctx, actor, projectID)
	return args.Error(0)
}

func (m *MockRewardService) UpsertDistribution(ctx context.Context, actor services.Principal, projectID primitive.ObjectID, sales, director, creator int) (*models.RewardDistribution, error) {
	args := m.Called(ctx, actor, projectID, sales, director, creator)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RewardDistribution), args.Error(1)
}

func (m *MockRewardService) CalculateUserReward(ctx context.Context, projectID, userID primitive.ObjectID) ([]models.UserRewardShare, error) {
	args := m.Called(ctx, projectID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserRewardShare), args.Error(1)
}

func (m *MockRewardService) UserProjectReward(ctx context.Context, actor services.Principal, userID, projectID primitive.ObjectID) ([]models.UserRewardShare, error) {
	args := m.Called(ctx, actor, userID, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserRewardShare), args.Error(1)
}

func (m *MockRewardService) RewardsForUser(ctx context.Context, actor services.Principal, userID primitive.ObjectID) ([]models.UserRewardShare, error) {
	args := m.Called(ctx, actor, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserRewardShare), args.Error(1)
}

func (m *MockRewardService) InvalidateProject(ctx context.Context, project *models.Project) {
	m.Called(ctx, project)
}

// MockProjectService is a mock implementation of services.ProjectService
type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) List(ctx context.Context, actor services.Principal) ([]*models.Project, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Project), args.Error(1)
}

func (m *MockProjectService) Get(ctx context.Context, actor services.Principal, id primitive.ObjectID) (*models.Project, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}

func (m *MockProjectService) Create(ctx context.Context, actor services.Principal, req *models.CreateProjectRequest) (*models.Project, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}

func (m *MockProjectService) Update(ctx context.Context, actor services.Principal, id primitive.ObjectID, req *models.UpdateProjectRequest) (*models.Project, error) {
	args := m.Called(ctx, actor, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}

func (m *MockProjectService) Delete(ctx context.Context, actor services.Principal, id primitive.ObjectID) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}

func (m *MockProjectService) MarkRewardDistributed(ctx context.Context, actor services.Principal, id primitive.ObjectID) (*models.Project, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}

// MockUserService is a mock implementation of services.UserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LoginResponse), args.Error(1)
}

func (m *MockUserService) Me(ctx context.Context, actor services.Principal) (*models.User, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) Create(ctx context.Context, actor services.Principal, req *models.CreateUserRequest) (*models.User, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) List(ctx context.Context, actor services.Principal) ([]*models.User, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *MockUserService) UpdateFCMToken(ctx context.Context, actor services.Principal, token string) error {
	args := m.Called(ctx, actor, token)
	return args.Error(0)
}

// MockNotificationService is a mock implementation of services.NotificationService
type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) Notify(ctx context.Context, userID primitive.ObjectID, kind models.NotificationType, title, message string, data map[string]string) error {
	args := m.Called(ctx, userID, kind, title, message, data)
	return args.Error(0)
}

func (m *MockNotificationService) List(ctx context.Context, actor services.Principal) ([]*models.Notification, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Notification), args.Error(1)
}

func (m *MockNotificationService) MarkRead(ctx context.Context, actor services.Principal, id primitive.ObjectID) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}

func (m *MockNotificationService) UnreadCount(ctx context.Context, actor services.Principal) (int64, error) {
	args := m.Called(ctx, actor)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationService) MarkAllRead(ctx context.Context, actor services.Principal) (int64, error) {
	args := m.Called(ctx, actor)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationService) GetSettings(ctx context.Context, actor services.Principal) (*models.NotificationSettings, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.NotificationSettings), args.Error(1)
}

func (m *MockNotificationService) UpdateSettings(ctx context.Context, actor services.Principal, req *models.UpdateNotificationSettingsRequest) (*models.NotificationSettings, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.NotificationSettings), args.Error(1)
}

package services

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/yurayurastudio/studio_backend/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockProjectRepository is a mock implementation of ProjectRepository
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}

func (m *MockProjectRepository) FindByParticipant(ctx context.Context, userID primitive.ObjectID) ([]*models.Project, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Project), args.Error(1)
}

func (m *MockProjectRepository) List(ctx context.Context) ([]*models.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Project), args.Error(1)
}

func (m *MockProjectRepository) Create(ctx context.Context, project *models.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) Replace(ctx context.Context, project *models.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProjectRepository) MarkRewardDistributed(ctx context.Context, id primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockDistributionRepository is a mock implementation of DistributionRepository
type MockDistributionRepository struct {
	mock.Mock
}

func (m *MockDistributionRepository) Get(ctx context.Context, projectID primitive.ObjectID) (*models.RewardDistribution, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RewardDistribution), args.Error(1)
}

func (m *MockDistributionRepository) Upsert(ctx context.Context, dist *models.RewardDistribution) (*models.RewardDistribution, error) {
	args := m.Called(ctx, dist)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RewardDistribution), args.Error(1)
}

func (m *MockDistributionRepository) Finalize(ctx context.Context, projectID primitive.ObjectID) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

func (m *MockDistributionRepository) Delete(ctx context.Context, projectID primitive.ObjectID) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

// MockRewardCache is a mock implementation of RewardCache
type MockRewardCache struct {
	mock.Mock
}

func (m *MockRewardCache) Get(ctx context.Context, userID primitive.ObjectID) ([]models.UserRewardShare, int64, bool, error) {
	args := m.Called(ctx, userID)
	var shares []models.UserRewardShare
	if args.Get(0) != nil {
		shares = args.Get(0).([]models.UserRewardShare)
	}
	return shares, args.Get(1).(int64), args.Bool(2), args.Error(3)
}

func (m *MockRewardCache) Set(ctx context.Context, userID primitive.ObjectID, version int64, shares []models.UserRewardShare) error {
	args := m.Called(ctx, userID, version, shares)
	return args.Error(0)
}

func (m *MockRewardCache) Invalidate(ctx context.Context, userIDs ...primitive.ObjectID) error {
	args := m.Called(ctx, userIDs)
	return args.Error(0)
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*models.User, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]*models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateFCMToken(ctx context.Context, id primitive.ObjectID, token string) error {
	args := m.Called(ctx, id, token)
	return args.Error(0)
}

// MockNotificationRepository is a mock implementation of NotificationRepository
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(ctx context.Context, n *models.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) ListByUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]*models.Notification, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Notification), args.Error(1)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, userID, id primitive.ObjectID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockNotificationRepository) CountUnread(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) MarkAllRead(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

// MockNotificationSettingsRepository is a mock implementation of NotificationSettingsRepository
type MockNotificationSettingsRepository struct {
	mock.Mock
}

func (m *MockNotificationSettingsRepository) Get(ctx context.Context, userID primitive.ObjectID) (*models.NotificationSettings, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.NotificationSettings), args.Error(1)
}

func (m *MockNotificationSettingsRepository) Upsert(ctx context.Context, settings *models.NotificationSettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

// MockNotificationService is a mock implementation of NotificationService
type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) Notify(ctx context.Context, userID primitive.ObjectID, kind models.NotificationType, title, message string, data map[string]string) error {
	args := m.Called(ctx, userID, kind, title, message, data)
	return args.Error(0)
}

func (m *MockNotificationService) List(ctx context.Context, actor Principal) ([]*models.Notification, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Notification), args.Error(1)
}

func (m *MockNotificationService) MarkRead(ctx context.Context, actor Principal, id primitive.ObjectID) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}

func (m *MockNotificationService) UnreadCount(ctx context.Context, actor Principal) (int64, error) {
	args := m.Called(ctx, actor)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationService) MarkAllRead(ctx context.Context, actor Principal) (int64, error) {
	args := m.Called(ctx, actor)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationService) GetSettings(ctx context.Context, actor Principal) (*models.NotificationSettings, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.NotificationSettings), args.Error(1)
}

func (m *MockNotificationService) UpdateSettings(ctx context.Context, actor Principal, req *models.UpdateNotificationSettingsRequest) (*models.NotificationSettings, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.NotificationSettings), args.Error(1)
}

// MockMailer is a mock implementation of Mailer
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(to, subject, body string) error {
	args := m.Called(to, subject, body)
	return args.Error(0)
}

// MockPushSender is a mock implementation of PushSender
type MockPushSender struct {
	mock.Mock
}

func (m *MockPushSender) Send(ctx context.Context, token, title, body string, data map[string]string) error {
	args := m.Called(ctx, token, title, body, data)
	return args.Error(0)
}

// MockRealtimePublisher is a mock implementation of RealtimePublisher
type MockRealtimePublisher struct {
	mock.Mock
}

func (m *MockRealtimePublisher) Publish(userID primitive.ObjectID, n *models.Notification) error {
	args := m.Called(userID, n)
	return args.Error(0)
}

// MockTokenIssuer is a mock implementation of TokenIssuer
type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) Issue(user *models.User) (string, error) {
	args := m.Called(user)
	return args.String(0), args.Error(1)
}

package services

import (
	"context"

	"github.com/yurayurastudio/studio_backend/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// FindByID returns nil, nil when the user does not exist
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)

	// FindByEmail returns nil, nil when no user has the email
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// FindByIDs returns the users that exist among ids
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*models.User, error)

	// List returns every user ordered by name
	List(ctx context.Context) ([]*models.User, error)

	// Create inserts the user and sets its ID; ErrConflict on duplicate email
	Create(ctx context.Context, user *models.User) error

	// UpdateFCMToken stores the device token used for push notifications
	UpdateFCMToken(ctx context.Context, id primitive.ObjectID, token string) error
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// FindByID returns nil, nil when the project does not exist
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error)

	// FindByParticipant returns projects where the user is director, sales or
	// assignee, ordered by project id ascending
	FindByParticipant(ctx context.Context, userID primitive.ObjectID) ([]*models.Project, error)

	// List returns every project ordered by project id ascending
	List(ctx context.Context) ([]*models.Project, error)

	// Create inserts the project and sets its ID
	Create(ctx context.Context, project *models.Project) error

	// Replace overwrites the stored project; ErrNotFound if it is gone
	Replace(ctx context.Context, project *models.Project) error

	// Delete removes the project; ErrNotFound if it is gone
	Delete(ctx context.Context, id primitive.ObjectID) error

	// MarkRewardDistributed sets the flag if it is not set yet. It returns
	// false when the project was already finalized.
	MarkRewardDistributed(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// DistributionRepository stores one reward distribution per project
type DistributionRepository interface {
	// Get returns nil, nil when the project has no stored distribution
	Get(ctx context.Context, projectID primitive.ObjectID) (*models.RewardDistribution, error)

	// Upsert creates or fully replaces the project's distribution in one
	// atomic operation. It fails with ErrDistributionFinalized when the stored
	// record is finalized.
	Upsert(ctx context.Context, dist *models.RewardDistribution) (*models.RewardDistribution, error)

	// Finalize freezes the project's distribution, storing the defaults first
	// when none exists
	Finalize(ctx context.Context, projectID primitive.ObjectID) error

	// Delete removes the project's distribution, if any
	Delete(ctx context.Context, projectID primitive.ObjectID) error
}

// NotificationRepository defines the interface for in-app notifications
type NotificationRepository interface {
	Create(ctx context.Context, n *models.Notification) error
	ListByUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]*models.Notification, error)

	// MarkRead returns ErrNotFound unless the notification belongs to userID
	MarkRead(ctx context.Context, userID, id primitive.ObjectID) error
	CountUnread(ctx context.Context, userID primitive.ObjectID) (int64, error)
	// MarkAllRead returns the number of notifications it flipped
	MarkAllRead(ctx context.Context, userID primitive.ObjectID) (int64, error)
}

// NotificationSettingsRepository stores per-user opt-ins
type NotificationSettingsRepository interface {
	// Get returns nil, nil when the user never saved settings
	Get(ctx context.Context, userID primitive.ObjectID) (*models.NotificationSettings, error)
	Upsert(ctx context.Context, settings *models.NotificationSettings) error
}

// RewardCache caches a user's aggregated reward list
type RewardCache interface {
	// Get reports a miss with ok == false. version identifies the cache
	// generation the caller read and must be passed to Set, so a list computed
	// across an Invalidate is never served.
	Get(ctx context.Context, userID primitive.ObjectID) (shares []models.UserRewardShare, version int64, ok bool, err error)
	Set(ctx context.Context, userID primitive.ObjectID, version int64, shares []models.UserRewardShare) error
	Invalidate(ctx context.Context, userIDs ...primitive.ObjectID) error
}

// RealtimePublisher pushes a notification to a connected client
type RealtimePublisher interface {
	// Publish returns an error when the user is not connected
	Publish(userID primitive.ObjectID, n *models.Notification) error
}

// Mailer delivers plain text e-mail
type Mailer interface {
	Send(to, subject, body string) error
}

// PushSender delivers mobile push notifications
type PushSender interface {
	Send(ctx context.Context, token, title, body string, data map[string]string) error
}

// RewardService defines reward distribution and calculation operations
type RewardService interface {
	// GetDistribution returns the project's split or the default one
	GetDistribution(ctx context.Context, actor Principal, projectID primitive.ObjectID) (*models.RewardDistribution, error)

	// CheckDistributionWritable runs the admin, project existence and
	// finalized checks that gate every distribution write, before any
	// payload is looked at
	CheckDistributionWritable(ctx context.Context, actor Principal, projectID primitive.ObjectID) error

	// UpsertDistribution validates and saves a split for a project that is
	// not finalized yet
	UpsertDistribution(ctx context.Context, actor Principal, projectID primitive.ObjectID, sales, director, creator int) (*models.RewardDistribution, error)

	// CalculateUserReward returns one share per role the user has on the project
	CalculateUserReward(ctx context.Context, projectID, userID primitive.ObjectID) ([]models.UserRewardShare, error)

	// UserProjectReward is CalculateUserReward behind the rewards view policy
	UserProjectReward(ctx context.Context, actor Principal, userID, projectID primitive.ObjectID) ([]models.UserRewardShare, error)

	// RewardsForUser concatenates the user's shares across all their projects
	RewardsForUser(ctx context.Context, actor Principal, userID primitive.ObjectID) ([]models.UserRewardShare, error)

	// InvalidateProject drops cached reward lists of the project's participants
	InvalidateProject(ctx context.Context, project *models.Project)
}

// ProjectService defines project operations
type ProjectService interface {
	List(ctx context.Context, actor Principal) ([]*models.Project, error)
	Get(ctx context.Context, actor Principal, id primitive.ObjectID) (*models.Project, error)
	Create(ctx context.Context, actor Principal, req *models.CreateProjectRequest) (*models.Project, error)
	Update(ctx context.Context, actor Principal, id primitive.ObjectID, req *models.UpdateProjectRequest) (*models.Project, error)
	Delete(ctx context.Context, actor Principal, id primitive.ObjectID) error
	MarkRewardDistributed(ctx context.Context, actor Principal, id primitive.ObjectID) (*models.Project, error)
}

// NotificationService defines notification delivery and management
type NotificationService interface {
	// Notify records and delivers a notification if the user's settings allow it
	Notify(ctx context.Context, userID primitive.ObjectID, kind models.NotificationType, title, message string, data map[string]string) error
	List(ctx context.Context, actor Principal) ([]*models.Notification, error)
	MarkRead(ctx context.Context, actor Principal, id primitive.ObjectID) error
	UnreadCount(ctx context.Context, actor Principal) (int64, error)
	MarkAllRead(ctx context.Context, actor Principal) (int64, error)
	GetSettings(ctx context.Context, actor Principal) (*models.NotificationSettings, error)
	UpdateSettings(ctx context.Context, actor Principal, req *models.UpdateNotificationSettingsRequest) (*models.NotificationSettings, error)
}

// UserService defines authentication and member management
type UserService interface {
	Login(ctx context.Context, email, password string) (*models.LoginResponse, error)
	Me(ctx context.Context, actor Principal) (*models.User, error)
	Create(ctx context.Context, actor Principal, req *models.CreateUserRequest) (*models.User, error)
	List(ctx context.Context, actor Principal) ([]*models.User, error)
	UpdateFCMToken(ctx context.Context, actor Principal, token string) error
}

// TokenIssuer signs access tokens for authenticated users
type TokenIssuer interface {
	Issue(user *models.User) (string, error)
}

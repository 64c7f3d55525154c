package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yurayurastudio/studio_backend/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// rewardService implements the RewardService interface
type rewardService struct {
	projects      ProjectRepository
	distributions DistributionRepository
	cache         RewardCache
	policy        Policy
	log           logrus.FieldLogger
}

// NewRewardService creates a reward service. cache may be nil.
func NewRewardService(projects ProjectRepository, distributions DistributionRepository, cache RewardCache, policy Policy, log logrus.FieldLogger) RewardService {
	return &rewardService{
		projects:      projects,
		distributions: distributions,
		cache:         cache,
		policy:        policy,
		log:           log,
	}
}

// GetDistribution returns the stored split, or the default one which is not persisted
func (s *rewardService) GetDistribution(ctx context.Context, actor Principal, projectID primitive.ObjectID) (*models.RewardDistribution, error) {
	project, err := s.loadProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if err := s.policy.CanAccessProject(actor, project); err != nil {
		return nil, err
	}
	return s.distributionFor(ctx, projectID)
}

// CheckDistributionWritable reports why the actor may not write the project's
// split: forbidden, missing project, or finalized, in that order
func (s *rewardService) CheckDistributionWritable(ctx context.Context, actor Principal, projectID primitive.ObjectID) error {
	_, err := s.writableProject(ctx, actor, projectID)
	return err
}

func (s *rewardService) writableProject(ctx context.Context, actor Principal, projectID primitive.ObjectID) (*models.Project, error) {
	if err := s.policy.CanWriteDistribution(actor); err != nil {
		return nil, err
	}
	project, err := s.loadProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	// Finalized projects reject every write, valid or not
	if project.RewardDistributed {
		return nil, ErrDistributionFinalized
	}
	return project, nil
}

// UpsertDistribution validates and saves a full replacement split
func (s *rewardService) UpsertDistribution(ctx context.Context, actor Principal, projectID primitive.ObjectID, sales, director, creator int) (*models.RewardDistribution, error) {
	project, err := s.writableProject(ctx, actor, projectID)
	if err != nil {
		return nil, err
	}

	if err := ValidateDistribution(sales, director, creator); err != nil {
		return nil, err
	}

	saved, err := s.distributions.Upsert(ctx, &models.RewardDistribution{
		ProjectID:           projectID,
		OperationPercentage: models.OperationPercentage,
		SalesPercentage:     sales,
		DirectorPercentage:  director,
		CreatorPercentage:   creator,
		UpdatedAt:           time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save reward distribution for project %s: %w", projectID.Hex(), err)
	}

	s.log.WithFields(logrus.Fields{
		"projectId": projectID.Hex(),
		"actor":     actor.UserID.Hex(),
		"sales":     sales,
		"director":  director,
		"creator":   creator,
	}).Info("Reward distribution saved")

	s.InvalidateProject(ctx, project)
	return saved, nil
}

// CalculateUserReward returns one share per role the user holds on the
// project, in director, sales, creator order. Amounts are truncated to whole
// currency units.
func (s *rewardService) CalculateUserReward(ctx context.Context, projectID, userID primitive.ObjectID) ([]models.UserRewardShare, error) {
	project, err := s.loadProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	dist, err := s.distributionFor(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return SharesFor(project, dist, userID), nil
}

// UserProjectReward returns the user's shares on one project, ErrNotFound if none
func (s *rewardService) UserProjectReward(ctx context.Context, actor Principal, userID, projectID primitive.ObjectID) ([]models.UserRewardShare, error) {
	if err := s.policy.CanViewUserRewards(actor, userID); err != nil {
		return nil, err
	}
	shares, err := s.CalculateUserReward(ctx, projectID, userID)
	if err != nil {
		return nil, err
	}
	if len(shares) == 0 {
		return nil, fmt.Errorf("%w: user has no reward in project %s", ErrNotFound, projectID.Hex())
	}
	return shares, nil
}

// RewardsForUser concatenates the user's shares across every project they
// take part in, ordered by project id. The list is never summed.
func (s *rewardService) RewardsForUser(ctx context.Context, actor Principal, userID primitive.ObjectID) ([]models.UserRewardShare, error) {
	if err := s.policy.CanViewUserRewards(actor, userID); err != nil {
		return nil, err
	}

	cacheable := false
	var version int64
	if s.cache != nil {
		shares, v, ok, err := s.cache.Get(ctx, userID)
		switch {
		case err != nil:
			s.log.WithError(err).WithField("userId", userID.Hex()).Warn("Reward cache read failed")
		case ok:
			return shares, nil
		default:
			cacheable, version = true, v
		}
	}

	projects, err := s.projects.FindByParticipant(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects for user %s: %w", userID.Hex(), err)
	}

	shares := make([]models.UserRewardShare, 0, len(projects))
	for _, project := range projects {
		dist, err := s.distributionFor(ctx, project.ID)
		if err != nil {
			return nil, err
		}
		shares = append(shares, SharesFor(project, dist, userID)...)
	}

	if cacheable {
		if err := s.cache.Set(ctx, userID, version, shares); err != nil {
			s.log.WithError(err).WithField("userId", userID.Hex()).Warn("Reward cache write failed")
		}
	}
	return shares, nil
}

// InvalidateProject drops cached reward lists for the project's participants
func (s *rewardService) InvalidateProject(ctx context.Context, project *models.Project) {
	if s.cache == nil || project == nil {
		return
	}
	ids := project.Participants()
	if len(ids) == 0 {
		return
	}
	if err := s.cache.Invalidate(ctx, ids...); err != nil {
		s.log.WithError(err).WithField("projectId", project.ID.Hex()).Warn("Reward cache invalidation failed")
	}
}

func (s *rewardService) loadProject(ctx context.Context, id primitive.ObjectID) (*models.Project, error) {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load project %s: %w", id.Hex(), err)
	}
	if project == nil {
		return nil, fmt.Errorf("%w: project %s", ErrNotFound, id.Hex())
	}
	return project, nil
}

func (s *rewardService) distributionFor(ctx context.Context, projectID primitive.ObjectID) (*models.RewardDistribution, error) {
	dist, err := s.distributions.Get(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load reward distribution for project %s: %w", projectID.Hex(), err)
	}
	if dist == nil {
		return models.DefaultRewardDistribution(projectID), nil
	}
	return dist, nil
}

// SharesFor applies each role rule independently: a user who is both director
// and creator gets two entries.
func SharesFor(project *models.Project, dist *models.RewardDistribution, userID primitive.ObjectID) []models.UserRewardShare {
	var shares []models.UserRewardShare
	add := func(role models.RewardRole, pct int) {
		shares = append(shares, models.UserRewardShare{
			ProjectID:   project.ID,
			ProjectName: project.Name,
			Role:        role,
			TotalReward: project.Reward(),
			Percentage:  pct,
			Amount:      ShareAmount(project.Reward(), pct),
		})
	}

	if project.IsDirector(userID) {
		add(models.RewardRoleDirector, dist.DirectorPercentage)
	}
	if project.IsSales(userID) {
		add(models.RewardRoleSales, dist.SalesPercentage)
	}
	if project.IsAssigned(userID) {
		add(models.RewardRoleCreator, dist.CreatorPercentage)
	}
	return shares
}

// ShareAmount is floor(total * pct / 100) for non-negative inputs. The
// hundreds and the remainder are scaled separately so no intermediate product
// exceeds the result.
func ShareAmount(total int64, pct int) int64 {
	p := int64(pct)
	return (total/100)*p + (total%100)*p/100
}

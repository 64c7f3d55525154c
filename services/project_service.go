package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yurayurastudio/studio_backend/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// projectService implements the ProjectService interface
type projectService struct {
	projects      ProjectRepository
	distributions DistributionRepository
	rewards       RewardService
	notifier      NotificationService
	policy        Policy
	appURL        string
	log           logrus.FieldLogger
}

// NewProjectService creates a project service
func NewProjectService(projects ProjectRepository, distributions DistributionRepository, rewards RewardService, notifier NotificationService, policy Policy, appURL string, log logrus.FieldLogger) ProjectService {
	return &projectService{
		projects:      projects,
		distributions: distributions,
		rewards:       rewards,
		notifier:      notifier,
		policy:        policy,
		appURL:        appURL,
		log:           log,
	}
}

// List returns all projects for admins and the caller's own projects otherwise
func (s *projectService) List(ctx context.Context, actor Principal) ([]*models.Project, error) {
	if actor.IsAdmin() {
		projects, err := s.projects.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list projects: %w", err)
		}
		return projects, nil
	}

	projects, err := s.projects.FindByParticipant(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects for user %s: %w", actor.UserID.Hex(), err)
	}
	redacted := make([]*models.Project, len(projects))
	for i, p := range projects {
		redacted[i] = p.Redacted()
	}
	return redacted, nil
}

// Get returns one project; reward fields are hidden from non-admins
func (s *projectService) Get(ctx context.Context, actor Principal, id primitive.ObjectID) (*models.Project, error) {
	project, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.policy.CanAccessProject(actor, project); err != nil {
		return nil, err
	}
	if !actor.IsAdmin() {
		return project.Redacted(), nil
	}
	return project, nil
}

// Create stores a new project and notifies its participants
func (s *projectService) Create(ctx context.Context, actor Principal, req *models.CreateProjectRequest) (*models.Project, error) {
	if err := s.policy.CanManageProjects(actor); err != nil {
		return nil, err
	}

	director, err := optionalID(req.DirectorID)
	if err != nil {
		return nil, err
	}
	sales, err := optionalID(req.SalesID)
	if err != nil {
		return nil, err
	}
	assigned, err := parseIDs(req.AssignedUsers)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.ProjectNotStarted
	}

	now := time.Now()
	project := &models.Project{
		Name:          req.Name,
		Status:        status,
		ClientName:    req.ClientName,
		DueDate:       req.DueDate,
		TotalReward:   req.TotalReward,
		RewardRules:   req.RewardRules,
		DirectorID:    director,
		SalesID:       sales,
		AssignedUsers: assigned,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.projects.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"projectId": project.ID.Hex(),
		"actor":     actor.UserID.Hex(),
	}).Info("Project created")

	s.notifyAll(ctx, project.Participants(), project, models.NotificationProjectCreated,
		"New project",
		fmt.Sprintf("You have been added to the new project \"%s\".", project.Name), nil)
	return project, nil
}

// Update applies a partial update. Newly assigned creators are notified.
func (s *projectService) Update(ctx context.Context, actor Principal, id primitive.ObjectID, req *models.UpdateProjectRequest) (*models.Project, error) {
	if err := s.policy.CanManageProjects(actor); err != nil {
		return nil, err
	}

	project, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	before := *project
	beforeParticipants := project.Participants()

	if err := applyProjectUpdate(project, req); err != nil {
		return nil, err
	}
	if project.RewardDistributed && rewardChanged(&before, project) {
		return nil, fmt.Errorf("%w: reward already distributed, reward fields are frozen", ErrConflict)
	}
	project.UpdatedAt = time.Now()

	if err := s.projects.Replace(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to update project %s: %w", id.Hex(), err)
	}

	s.rewards.InvalidateProject(ctx, &before)
	s.rewards.InvalidateProject(ctx, project)

	newlyAssigned := diffIDs(project.AssignedUsers, before.AssignedUsers)
	s.notifyAll(ctx, newlyAssigned, project, models.NotificationProjectAssigned,
		"Assigned to a project",
		fmt.Sprintf("You have been assigned to the project \"%s\". Please check the details.", project.Name), nil)

	if before.Status != models.ProjectCompleted && project.Status == models.ProjectCompleted {
		s.notifyAll(ctx, project.Participants(), project, models.NotificationProjectCompleted,
			"Project completed",
			fmt.Sprintf("The project \"%s\" has been completed.", project.Name), nil)
	} else {
		s.notifyAll(ctx, diffIDs(project.Participants(), newlyAssigned), project, models.NotificationProjectUpdated,
			"Project updated",
			fmt.Sprintf("The project \"%s\" has been updated.", project.Name), nil)
	}

	s.log.WithFields(logrus.Fields{
		"projectId":          id.Hex(),
		"actor":              actor.UserID.Hex(),
		"participantsBefore": len(beforeParticipants),
		"participantsAfter":  len(project.Participants()),
	}).Info("Project updated")
	return project, nil
}

// Delete removes a project together with its reward distribution
func (s *projectService) Delete(ctx context.Context, actor Principal, id primitive.ObjectID) error {
	if err := s.policy.CanManageProjects(actor); err != nil {
		return err
	}

	project, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if err := s.projects.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete project %s: %w", id.Hex(), err)
	}
	if err := s.distributions.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete reward distribution for project %s: %w", id.Hex(), err)
	}
	s.rewards.InvalidateProject(ctx, project)

	s.log.WithFields(logrus.Fields{"projectId": id.Hex(), "actor": actor.UserID.Hex()}).Info("Project deleted")
	return nil
}

// MarkRewardDistributed finalizes the project's reward. The distribution in
// force is frozen and every participant is told their amount.
func (s *projectService) MarkRewardDistributed(ctx context.Context, actor Principal, id primitive.ObjectID) (*models.Project, error) {
	if err := s.policy.CanManageProjects(actor); err != nil {
		return nil, err
	}

	project, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if project.RewardDistributed {
		return nil, fmt.Errorf("%w: reward for project %s already distributed", ErrConflict, id.Hex())
	}

	// Freeze the split first so a concurrent distribution write cannot land
	// after the flag is set
	if err := s.distributions.Finalize(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to finalize reward distribution for project %s: %w", id.Hex(), err)
	}
	updated, err := s.projects.MarkRewardDistributed(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to mark project %s distributed: %w", id.Hex(), err)
	}
	if !updated {
		return nil, fmt.Errorf("%w: reward for project %s already distributed", ErrConflict, id.Hex())
	}
	project.RewardDistributed = true
	s.rewards.InvalidateProject(ctx, project)

	s.log.WithFields(logrus.Fields{"projectId": id.Hex(), "actor": actor.UserID.Hex()}).Info("Project reward marked distributed")

	for _, userID := range project.Participants() {
		shares, err := s.rewards.CalculateUserReward(ctx, id, userID)
		if err != nil {
			s.log.WithError(err).WithField("userId", userID.Hex()).Warn("Could not compute reward for notification")
			continue
		}
		var amount int64
		for _, share := range shares {
			amount += share.Amount
		}
		s.notifyAll(ctx, []primitive.ObjectID{userID}, project, models.NotificationRewardDistributed,
			"Reward distributed",
			fmt.Sprintf("The reward for \"%s\" has been distributed. Your share: ¥%d.", project.Name, amount),
			map[string]string{"amount": fmt.Sprintf("%d", amount)})
	}
	return project, nil
}

func (s *projectService) notifyAll(ctx context.Context, userIDs []primitive.ObjectID, project *models.Project, kind models.NotificationType, title, message string, extra map[string]string) {
	if s.notifier == nil {
		return
	}
	for _, userID := range userIDs {
		data := map[string]string{
			"projectId": project.ID.Hex(),
			"link":      fmt.Sprintf("%s/projects/%s", s.appURL, project.ID.Hex()),
		}
		for k, v := range extra {
			data[k] = v
		}
		if err := s.notifier.Notify(ctx, userID, kind, title, message, data); err != nil {
			s.log.WithError(err).WithFields(logrus.Fields{
				"userId":    userID.Hex(),
				"projectId": project.ID.Hex(),
				"type":      kind,
			}).Error("Failed to notify user")
		}
	}
}

func (s *projectService) load(ctx context.Context, id primitive.ObjectID) (*models.Project, error) {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load project %s: %w", id.Hex(), err)
	}
	if project == nil {
		return nil, fmt.Errorf("%w: project %s", ErrNotFound, id.Hex())
	}
	return project, nil
}

func applyProjectUpdate(p *models.Project, req *models.UpdateProjectRequest) error {
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Status != nil {
		p.Status = *req.Status
	}
	if req.ClientName != nil {
		p.ClientName = *req.ClientName
	}
	if req.DueDate != nil {
		p.DueDate = req.DueDate
	}
	if req.TotalReward != nil {
		p.TotalReward = req.TotalReward
	}
	if req.RewardRules != nil {
		p.RewardRules = *req.RewardRules
	}
	if req.DirectorID != nil {
		id, err := optionalID(*req.DirectorID)
		if err != nil {
			return err
		}
		p.DirectorID = id
	}
	if req.SalesID != nil {
		id, err := optionalID(*req.SalesID)
		if err != nil {
			return err
		}
		p.SalesID = id
	}
	if req.AssignedUsers != nil {
		ids, err := parseIDs(*req.AssignedUsers)
		if err != nil {
			return err
		}
		p.AssignedUsers = ids
	}
	return nil
}

// rewardChanged reports whether any field feeding the reward calculation differs
func rewardChanged(a, b *models.Project) bool {
	if a.Reward() != b.Reward() || (a.TotalReward == nil) != (b.TotalReward == nil) {
		return true
	}
	if !sameID(a.DirectorID, b.DirectorID) || !sameID(a.SalesID, b.SalesID) {
		return true
	}
	return len(diffIDs(a.AssignedUsers, b.AssignedUsers)) > 0 || len(diffIDs(b.AssignedUsers, a.AssignedUsers)) > 0
}

func sameID(a, b *primitive.ObjectID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// diffIDs returns the ids in a that are not in b
func diffIDs(a, b []primitive.ObjectID) []primitive.ObjectID {
	in := make(map[primitive.ObjectID]bool, len(b))
	for _, id := range b {
		in[id] = true
	}
	var out []primitive.ObjectID
	for _, id := range a {
		if !in[id] {
			out = append(out, id)
		}
	}
	return out
}

func optionalID(hex string) (*primitive.ObjectID, error) {
	if hex == "" {
		return nil, nil
	}
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user id %q", ErrInvalidInput, hex)
	}
	return &id, nil
}

// parseIDs parses and de-duplicates hex ids, keeping their order
func parseIDs(hexes []string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(hexes))
	seen := make(map[primitive.ObjectID]bool, len(hexes))
	for _, hex := range hexes {
		id, err := primitive.ObjectIDFromHex(hex)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid user id %q", ErrInvalidInput, hex)
		}
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids, nil
}

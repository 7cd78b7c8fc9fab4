package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"time-tracker/backend/logging"
	"time-tracker/backend/models"
)

type TeamService struct {
	TeamCollection    *mongo.Collection
	ProjectCollection *mongo.Collection
	UserCollection    *mongo.Collection
}

func NewTeamService(db *mongo.Database) *TeamService {
	return &TeamService{
		TeamCollection:    db.Collection("project_teams"),
		ProjectCollection: db.Collection("projects"),
		UserCollection:    db.Collection("users"),
	}
}

func (s *TeamService) AddTeamMember(ctx context.Context, member models.ProjectTeam) (*models.ProjectTeam, error) {
	if member.ProjectID.IsZero() || member.UserID.IsZero() || member.Role == "" {
		return nil, Invalid("projectId, userId and role are required")
	}

	if _, err := oneByID[models.Project](ctx, s.ProjectCollection, member.ProjectID, "project"); err != nil {
		return nil, err
	}
	if _, err := oneByID[models.User](ctx, s.UserCollection, member.UserID, "user"); err != nil {
		return nil, err
	}

	now := time.Now()
	member.ID = primitive.NewObjectID()
	member.CreatedAt = now
	member.UpdatedAt = now

	if _, err := s.TeamCollection.InsertOne(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to add team member: %v", err)
	}

	logging.Logger.Infof("Event ID: TEAM_MEMBER_ADDED, Description: User %s added to project %s team", member.UserID.Hex(), member.ProjectID.Hex())
	return &member, nil
}

func (s *TeamService) GetAllTeamMembers(ctx context.Context) ([]models.ProjectTeamDetails, error) {
	members, err := allDocs[models.ProjectTeam](ctx, s.TeamCollection, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch project teams: %v", err)
	}
	return s.expand(ctx, members)
}

func (s *TeamService) GetTeamMemberByID(ctx context.Context, id primitive.ObjectID) (*models.ProjectTeamDetails, error) {
	member, err := oneByID[models.ProjectTeam](ctx, s.TeamCollection, id, "project team member")
	if err != nil {
		return nil, err
	}
	details, err := s.expand(ctx, []models.ProjectTeam{*member})
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

func (s *TeamService) DeleteTeamMember(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.TeamCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete team member: %v", err)
	}
	if result.DeletedCount == 0 {
		return NotFound("project team member not found")
	}
	return nil
}

func (s *TeamService) expand(ctx context.Context, members []models.ProjectTeam) ([]models.ProjectTeamDetails, error) {
	projects, err := allDocs[models.Project](ctx, s.ProjectCollection, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch projects: %v", err)
	}
	users, err := allDocs[models.User](ctx, s.UserCollection, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %v", err)
	}

	projectByID := byID(projects, func(p models.Project) primitive.ObjectID { return p.ID })
	userByID := byID(users, func(u models.User) primitive.ObjectID { return u.ID })

	details := make([]models.ProjectTeamDetails, 0, len(members))
	for _, member := range members {
		d := models.ProjectTeamDetails{ProjectTeam: member}
		if project, ok := projectByID[member.ProjectID]; ok {
			d.Project = &project
		}
		if user, ok := userByID[member.UserID]; ok {
			user.Password = ""
			d.User = &user
		}
		details = append(details, d)
	}
	return details, nil
}

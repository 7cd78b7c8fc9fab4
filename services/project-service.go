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

type ProjectService struct {
	ProjectCollection *mongo.Collection
	StatusCollection  *mongo.Collection
}

func NewProjectService(db *mongo.Database) *ProjectService {
	return &ProjectService{
		ProjectCollection: db.Collection("projects"),
		StatusCollection:  db.Collection("statuses"),
	}
}

func (s *ProjectService) CreateProject(ctx context.Context, project models.Project) (*models.Project, error) {
	if project.Title == "" {
		return nil, Invalid("title is required")
	}
	if project.StatusID.IsZero() {
		return nil, Invalid("statusId is required")
	}
	if project.EstimatedHours < 0 {
		return nil, Invalid("estimatedHours cannot be negative")
	}

	if _, err := oneByID[models.Status](ctx, s.StatusCollection, project.StatusID, "status"); err != nil {
		return nil, err
	}

	now := time.Now()
	project.ID = primitive.NewObjectID()
	if project.StartDate.IsZero() {
		project.StartDate = now
	}
	project.CreatedAt = now
	project.UpdatedAt = now

	if _, err := s.ProjectCollection.InsertOne(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %v", err)
	}

	logging.Logger.Infof("Event ID: PROJECT_CREATED, Description: Project %s (%s) created", project.ID.Hex(), project.Title)
	return &project, nil
}

func (s *ProjectService) GetProjects(ctx context.Context) ([]models.ProjectDetails, error) {
	projects, err := allDocs[models.Project](ctx, s.ProjectCollection, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch projects: %v", err)
	}
	return s.expand(ctx, projects)
}

func (s *ProjectService) GetProjectByID(ctx context.Context, id primitive.ObjectID) (*models.ProjectDetails, error) {
	project, err := oneByID[models.Project](ctx, s.ProjectCollection, id, "project")
	if err != nil {
		return nil, err
	}
	details, err := s.expand(ctx, []models.Project{*project})
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

func (s *ProjectService) UpdateProject(ctx context.Context, id primitive.ObjectID, project models.Project) (*models.ProjectDetails, error) {
	fields := bson.M{"updatedAt": time.Now()}
	if project.Title != "" {
		fields["title"] = project.Title
	}
	if project.Description != "" {
		fields["description"] = project.Description
	}
	if project.Technology != "" {
		fields["technology"] = project.Technology
	}
	if project.EstimatedHours > 0 {
		fields["estimatedHours"] = project.EstimatedHours
	}
	if !project.StartDate.IsZero() {
		fields["startDate"] = project.StartDate
	}
	if project.CompletionDate != nil {
		fields["completionDate"] = project.CompletionDate
	}
	if !project.StatusID.IsZero() {
		fields["statusId"] = project.StatusID
	}

	result, err := s.ProjectCollection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return nil, fmt.Errorf("failed to update project: %v", err)
	}
	if result.MatchedCount == 0 {
		return nil, NotFound("project not found")
	}

	return s.GetProjectByID(ctx, id)
}

// DeleteProject removes the project only. Children (modules, tasks, billings)
// keep their references; reads tolerate the resulting orphans.
func (s *ProjectService) DeleteProject(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.ProjectCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete project: %v", err)
	}
	if result.DeletedCount == 0 {
		return NotFound("project not found")
	}
	logging.Logger.Infof("Event ID: PROJECT_DELETED, Description: Project %s deleted", id.Hex())
	return nil
}

func (s *ProjectService) expand(ctx context.Context, projects []models.Project) ([]models.ProjectDetails, error) {
	statuses, err := allDocs[models.Status](ctx, s.StatusCollection, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch statuses: %v", err)
	}
	statusByID := byID(statuses, func(st models.Status) primitive.ObjectID { return st.ID })

	details := make([]models.ProjectDetails, 0, len(projects))
	for _, project := range projects {
		d := models.ProjectDetails{Project: project}
		if status, ok := statusByID[project.StatusID]; ok {
			d.Status = &status
		}
		details = append(details, d)
	}
	return details, nil
}

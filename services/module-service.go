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

type ModuleService struct {
	ModuleCollection  *mongo.Collection
	ProjectCollection *mongo.Collection
	StatusCollection  *mongo.Collection
}

func NewModuleService(db *mongo.Database) *ModuleService {
	return &ModuleService{
		ModuleCollection:  db.Collection("project_modules"),
		ProjectCollection: db.Collection("projects"),
		StatusCollection:  db.Collection("statuses"),
	}
}

func (s *ModuleService) CreateModule(ctx context.Context, module models.ProjectModule) (*models.ProjectModule, error) {
	if module.ProjectID.IsZero() || module.ModuleName == "" || module.EstimatedHours <= 0 || module.StatusID.IsZero() || module.StartDate.IsZero() {
		return nil, Invalid("projectId, moduleName, estimatedHours, statusId and startDate are required")
	}

	if _, err := oneByID[models.Project](ctx, s.ProjectCollection, module.ProjectID, "project"); err != nil {
		return nil, err
	}

	now := time.Now()
	module.ID = primitive.NewObjectID()
	module.CreatedAt = now
	module.UpdatedAt = now

	if _, err := s.ModuleCollection.InsertOne(ctx, module); err != nil {
		return nil, fmt.Errorf("failed to create module: %v", err)
	}

	logging.Logger.Infof("Event ID: MODULE_CREATED, Description: Module %s created for project %s", module.ID.Hex(), module.ProjectID.Hex())
	return &module, nil
}

func (s *ModuleService) GetAllModules(ctx context.Context) ([]models.ProjectModuleDetails, error) {
	modules, err := allDocs[models.ProjectModule](ctx, s.ModuleCollection, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch modules: %v", err)
	}
	return s.expand(ctx, modules)
}

func (s *ModuleService) GetModuleByID(ctx context.Context, id primitive.ObjectID) (*models.ProjectModuleDetails, error) {
	module, err := oneByID[models.ProjectModule](ctx, s.ModuleCollection, id, "module")
	if err != nil {
		return nil, err
	}
	details, err := s.expand(ctx, []models.ProjectModule{*module})
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

// GetModulesByProject lists the modules of one project; an empty result is a
// NotFound to match how the project detail views consume it.
func (s *ModuleService) GetModulesByProject(ctx context.Context, projectID primitive.ObjectID) ([]models.ProjectModuleDetails, error) {
	modules, err := allDocs[models.ProjectModule](ctx, s.ModuleCollection, bson.M{"projectId": projectID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch modules: %v", err)
	}
	if len(modules) == 0 {
		return nil, NotFound("no modules found for this project")
	}
	return s.expand(ctx, modules)
}

func (s *ModuleService) UpdateModule(ctx context.Context, id primitive.ObjectID, module models.ProjectModule) (*models.ProjectModuleDetails, error) {
	fields := bson.M{"updatedAt": time.Now()}
	if module.ModuleName != "" {
		fields["moduleName"] = module.ModuleName
	}
	if module.Description != "" {
		fields["description"] = module.Description
	}
	if module.EstimatedHours > 0 {
		fields["estimatedHours"] = module.EstimatedHours
	}
	if !module.StatusID.IsZero() {
		fields["statusId"] = module.StatusID
	}
	if !module.StartDate.IsZero() {
		fields["startDate"] = module.StartDate
	}

	result, err := s.ModuleCollection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return nil, fmt.Errorf("failed to update module: %v", err)
	}
	if result.MatchedCount == 0 {
		return nil, NotFound("module not found")
	}

	return s.GetModuleByID(ctx, id)
}

func (s *ModuleService) DeleteModule(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.ModuleCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete module: %v", err)
	}
	if result.DeletedCount == 0 {
		return NotFound("module not found")
	}
	logging.Logger.Infof("Event ID: MODULE_DELETED, Description: Module %s deleted", id.Hex())
	return nil
}

func (s *ModuleService) expand(ctx context.Context, modules []models.ProjectModule) ([]models.ProjectModuleDetails, error) {
	projects, err := allDocs[models.Project](ctx, s.ProjectCollection, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch projects: %v", err)
	}
	statuses, err := allDocs[models.Status](ctx, s.StatusCollection, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch statuses: %v", err)
	}

	projectByID := byID(projects, func(p models.Project) primitive.ObjectID { return p.ID })
	statusByID := byID(statuses, func(st models.Status) primitive.ObjectID { return st.ID })

	details := make([]models.ProjectModuleDetails, 0, len(modules))
	for _, module := range modules {
		d := models.ProjectModuleDetails{ProjectModule: module}
		if project, ok := projectByID[module.ProjectID]; ok {
			d.Project = &project
		}
		if status, ok := statusByID[module.StatusID]; ok {
			d.Status = &status
		}
		details = append(details, d)
	}
	return details, nil
}

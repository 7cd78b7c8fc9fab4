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

type TaskService struct {
	TaskCollection    *mongo.Collection
	ModuleCollection  *mongo.Collection
	ProjectCollection *mongo.Collection
	StatusCollection  *mongo.Collection
}

func NewTaskService(db *mongo.Database) *TaskService {
	return &TaskService{
		TaskCollection:    db.Collection("tasks"),
		ModuleCollection:  db.Collection("project_modules"),
		ProjectCollection: db.Collection("projects"),
		StatusCollection:  db.Collection("statuses"),
	}
}

func (s *TaskService) CreateTask(ctx context.Context, task models.Task) (*models.Task, error) {
	if task.ModuleID.IsZero() || task.ProjectID.IsZero() {
		return nil, Invalid("moduleId and projectId are required")
	}
	if task.Title == "" || task.Description == "" {
		return nil, Invalid("title and description are required")
	}
	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}
	if task.Priority != models.PriorityLow && task.Priority != models.PriorityMedium && task.Priority != models.PriorityHigh {
		return nil, Invalid("priority must be Low, Medium or High")
	}
	if task.TotalMinute < 0 {
		return nil, Invalid("totalMinute cannot be negative")
	}

	if _, err := oneByID[models.ProjectModule](ctx, s.ModuleCollection, task.ModuleID, "module"); err != nil {
		return nil, err
	}
	if _, err := oneByID[models.Project](ctx, s.ProjectCollection, task.ProjectID, "project"); err != nil {
		return nil, err
	}

	now := time.Now()
	task.ID = primitive.NewObjectID()
	task.CreatedAt = now
	task.UpdatedAt = now

	if _, err := s.TaskCollection.InsertOne(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %v", err)
	}

	logging.Logger.Infof("Event ID: TASK_CREATED, Description: Task %s created in module %s", task.ID.Hex(), task.ModuleID.Hex())
	return &task, nil
}

func (s *TaskService) GetAllTasks(ctx context.Context) ([]models.TaskDetails, error) {
	tasks, err := allDocs[models.Task](ctx, s.TaskCollection, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tasks: %v", err)
	}
	return s.expand(ctx, tasks)
}

func (s *TaskService) GetTaskByID(ctx context.Context, id primitive.ObjectID) (*models.TaskDetails, error) {
	task, err := oneByID[models.Task](ctx, s.TaskCollection, id, "task")
	if err != nil {
		return nil, err
	}
	details, err := s.expand(ctx, []models.Task{*task})
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

func (s *TaskService) GetTasksByModule(ctx context.Context, moduleID primitive.ObjectID) ([]models.TaskDetails, error) {
	if _, err := oneByID[models.ProjectModule](ctx, s.ModuleCollection, moduleID, "module"); err != nil {
		return nil, err
	}
	tasks, err := allDocs[models.Task](ctx, s.TaskCollection, bson.M{"moduleId": moduleID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tasks: %v", err)
	}
	return s.expand(ctx, tasks)
}

func (s *TaskService) UpdateTask(ctx context.Context, id primitive.ObjectID, task models.Task) (*models.TaskDetails, error) {
	if task.Priority != "" && task.Priority != models.PriorityLow && task.Priority != models.PriorityMedium && task.Priority != models.PriorityHigh {
		return nil, Invalid("priority must be Low, Medium or High")
	}
	if task.TotalMinute < 0 {
		return nil, Invalid("totalMinute cannot be negative")
	}

	fields := bson.M{"updatedAt": time.Now()}
	if !task.ModuleID.IsZero() {
		fields["moduleId"] = task.ModuleID
	}
	if !task.ProjectID.IsZero() {
		fields["projectId"] = task.ProjectID
	}
	if task.Title != "" {
		fields["title"] = task.Title
	}
	if task.Priority != "" {
		fields["priority"] = task.Priority
	}
	if task.Description != "" {
		fields["description"] = task.Description
	}
	if !task.StatusID.IsZero() {
		fields["statusId"] = task.StatusID
	}
	if task.TotalMinute > 0 {
		fields["totalMinute"] = task.TotalMinute
	}

	result, err := s.TaskCollection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return nil, fmt.Errorf("failed to update task: %v", err)
	}
	if result.MatchedCount == 0 {
		return nil, NotFound("task not found")
	}

	return s.GetTaskByID(ctx, id)
}

func (s *TaskService) DeleteTask(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.TaskCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete task: %v", err)
	}
	if result.DeletedCount == 0 {
		return NotFound("task not found")
	}
	logging.Logger.Infof("Event ID: TASK_DELETED, Description: Task %s deleted", id.Hex())
	return nil
}

func (s *TaskService) expand(ctx context.Context, tasks []models.Task) ([]models.TaskDetails, error) {
	modules, err := allDocs[models.ProjectModule](ctx, s.ModuleCollection, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch modules: %v", err)
	}
	projects, err := allDocs[models.Project](ctx, s.ProjectCollection, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch projects: %v", err)
	}
	statuses, err := allDocs[models.Status](ctx, s.StatusCollection, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch statuses: %v", err)
	}

	moduleByID := byID(modules, func(m models.ProjectModule) primitive.ObjectID { return m.ID })
	projectByID := byID(projects, func(p models.Project) primitive.ObjectID { return p.ID })
	statusByID := byID(statuses, func(st models.Status) primitive.ObjectID { return st.ID })

	details := make([]models.TaskDetails, 0, len(tasks))
	for _, task := range tasks {
		d := models.TaskDetails{Task: task}
		if module, ok := moduleByID[task.ModuleID]; ok {
			md := models.ProjectModuleDetails{ProjectModule: module}
			if project, ok := projectByID[module.ProjectID]; ok {
				md.Project = &project
			}
			d.Module = &md
		}
		if status, ok := statusByID[task.StatusID]; ok {
			d.Status = &status
		}
		details = append(details, d)
	}
	return details, nil
}

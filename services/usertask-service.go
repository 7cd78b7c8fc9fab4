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

type UserTaskService struct {
	UserTaskCollection *mongo.Collection
	TaskCollection     *mongo.Collection
	ModuleCollection   *mongo.Collection
	ProjectCollection  *mongo.Collection
	UserCollection     *mongo.Collection
}

func NewUserTaskService(db *mongo.Database) *UserTaskService {
	return &UserTaskService{
		UserTaskCollection: db.Collection("user_tasks"),
		TaskCollection:     db.Collection("tasks"),
		ModuleCollection:   db.Collection("project_modules"),
		ProjectCollection:  db.Collection("projects"),
		UserCollection:     db.Collection("users"),
	}
}

// AssignTask creates an assignment after checking the task exists and the
// (user, task) pair is not already assigned. The pre-check gives a friendly
// error; the unique index on the collection is what actually holds the
// invariant under concurrent requests, surfacing as a duplicate-key conflict.
func (s *UserTaskService) AssignTask(ctx context.Context, assignment models.UserTask) (*models.UserTask, error) {
	if assignment.UserID.IsZero() || assignment.TaskID.IsZero() || assignment.LogDate.IsZero() {
		return nil, Invalid("userId, taskId and logDate are required")
	}
	if assignment.WorkedHr < 0 {
		return nil, Invalid("workedHr cannot be negative")
	}

	if _, err := oneByID[models.Task](ctx, s.TaskCollection, assignment.TaskID, "task"); err != nil {
		return nil, err
	}

	filter := bson.M{"userId": assignment.UserID, "taskId": assignment.TaskID}
	var existing models.UserTask
	if err := s.UserTaskCollection.FindOne(ctx, filter).Decode(&existing); err == nil {
		return nil, Conflict("task is already assigned to this user")
	}

	now := time.Now()
	assignment.ID = primitive.NewObjectID()
	assignment.CreatedAt = now
	assignment.UpdatedAt = now

	if _, err := s.UserTaskCollection.InsertOne(ctx, assignment); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, Conflict("task is already assigned to this user")
		}
		return nil, fmt.Errorf("failed to assign task: %v", err)
	}

	logging.Logger.Infof("Event ID: TASK_ASSIGNED, Description: Task %s assigned to user %s", assignment.TaskID.Hex(), assignment.UserID.Hex())
	return &assignment, nil
}

func (s *UserTaskService) GetUserTasks(ctx context.Context) ([]models.UserTaskDetails, error) {
	assignments, err := allDocs[models.UserTask](ctx, s.UserTaskCollection, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user tasks: %v", err)
	}
	return s.expand(ctx, assignments)
}

// GetUserTasksByUser lists a single user's assignments. An empty result is a
// NotFound, matching the read model the task list views expect.
func (s *UserTaskService) GetUserTasksByUser(ctx context.Context, userID primitive.ObjectID) ([]models.UserTaskDetails, error) {
	assignments, err := allDocs[models.UserTask](ctx, s.UserTaskCollection, bson.M{"userId": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user tasks: %v", err)
	}
	if len(assignments) == 0 {
		return nil, NotFound("no tasks found for this user")
	}
	return s.expand(ctx, assignments)
}

func (s *UserTaskService) GetUserTaskByID(ctx context.Context, id primitive.ObjectID) (*models.UserTaskDetails, error) {
	assignment, err := oneByID[models.UserTask](ctx, s.UserTaskCollection, id, "user task")
	if err != nil {
		return nil, err
	}
	details, err := s.expand(ctx, []models.UserTask{*assignment})
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

func (s *UserTaskService) UpdateUserTask(ctx context.Context, id primitive.ObjectID, workedHr *float64, logDate *time.Time) (*models.UserTask, error) {
	if workedHr == nil && logDate == nil {
		return nil, Invalid("nothing to update")
	}

	fields := bson.M{"updatedAt": time.Now()}
	if workedHr != nil {
		if *workedHr < 0 {
			return nil, Invalid("workedHr cannot be negative")
		}
		fields["workedHr"] = *workedHr
	}
	if logDate != nil {
		fields["logDate"] = *logDate
	}

	result, err := s.UserTaskCollection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return nil, fmt.Errorf("failed to update user task: %v", err)
	}
	if result.MatchedCount == 0 {
		return nil, NotFound("user task not found")
	}

	return oneByID[models.UserTask](ctx, s.UserTaskCollection, id, "user task")
}

func (s *UserTaskService) DeleteUserTask(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.UserTaskCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete user task: %v", err)
	}
	if result.DeletedCount == 0 {
		return NotFound("user task not found")
	}
	logging.Logger.Infof("Event ID: TASK_UNASSIGNED, Description: User task %s deleted", id.Hex())
	return nil
}

func (s *UserTaskService) expand(ctx context.Context, assignments []models.UserTask) ([]models.UserTaskDetails, error) {
	tasks, err := allDocs[models.Task](ctx, s.TaskCollection, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tasks: %v", err)
	}
	modules, err := allDocs[models.ProjectModule](ctx, s.ModuleCollection, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch modules: %v", err)
	}
	projects, err := allDocs[models.Project](ctx, s.ProjectCollection, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch projects: %v", err)
	}
	users, err := allDocs[models.User](ctx, s.UserCollection, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %v", err)
	}

	taskByID := byID(tasks, func(t models.Task) primitive.ObjectID { return t.ID })
	moduleByID := byID(modules, func(m models.ProjectModule) primitive.ObjectID { return m.ID })
	projectByID := byID(projects, func(p models.Project) primitive.ObjectID { return p.ID })
	userByID := byID(users, func(u models.User) primitive.ObjectID { return u.ID })

	details := make([]models.UserTaskDetails, 0, len(assignments))
	for _, assignment := range assignments {
		d := models.UserTaskDetails{UserTask: assignment}
		if user, ok := userByID[assignment.UserID]; ok {
			user.Password = ""
			d.User = &user
		}
		if task, ok := taskByID[assignment.TaskID]; ok {
			td := models.TaskDetails{Task: task}
			if module, ok := moduleByID[task.ModuleID]; ok {
				md := models.ProjectModuleDetails{ProjectModule: module}
				if project, ok := projectByID[module.ProjectID]; ok {
					md.Project = &project
				}
				td.Module = &md
			}
			d.Task = &td
		}
		details = append(details, d)
	}
	return details, nil
}

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

type TimeLogService struct {
	TimeLogCollection *mongo.Collection
	TaskCollection    *mongo.Collection
	ModuleCollection  *mongo.Collection
	ProjectCollection *mongo.Collection
	StatusCollection  *mongo.Collection
	UserCollection    *mongo.Collection
}

func NewTimeLogService(db *mongo.Database) *TimeLogService {
	return &TimeLogService{
		TimeLogCollection: db.Collection("time_logs"),
		TaskCollection:    db.Collection("tasks"),
		ModuleCollection:  db.Collection("project_modules"),
		ProjectCollection: db.Collection("projects"),
		StatusCollection:  db.Collection("statuses"),
		UserCollection:    db.Collection("users"),
	}
}

func (s *TimeLogService) CreateTimeLog(ctx context.Context, log models.TimeLog) (*models.TimeLog, error) {
	if log.UserID.IsZero() || log.TaskID.IsZero() || log.StartDate.IsZero() {
		return nil, Invalid("userId, taskId and startDate are required")
	}
	if log.TotalMin < 0 {
		return nil, Invalid("totalMin cannot be negative")
	}

	if _, err := oneByID[models.User](ctx, s.UserCollection, log.UserID, "user"); err != nil {
		return nil, err
	}
	if _, err := oneByID[models.Task](ctx, s.TaskCollection, log.TaskID, "task"); err != nil {
		return nil, err
	}

	// Derive the minute count from the timestamps when the caller did not
	// supply one. An end before start clamps to zero.
	if log.TotalMin == 0 && log.EndDate != nil {
		log.TotalMin = DerivedMinutes(log.StartDate, *log.EndDate)
	}

	now := time.Now()
	log.ID = primitive.NewObjectID()
	log.CreatedAt = now
	log.UpdatedAt = now

	if _, err := s.TimeLogCollection.InsertOne(ctx, log); err != nil {
		return nil, fmt.Errorf("failed to create time log: %v", err)
	}

	logging.Logger.Infof("Event ID: TIMELOG_CREATED, Description: Time log %s created for user %s on task %s (%d min)", log.ID.Hex(), log.UserID.Hex(), log.TaskID.Hex(), log.TotalMin)
	return &log, nil
}

// GetTimeLogs resolves each log's user plus the full task -> module -> project
// chain and the task's status name.
func (s *TimeLogService) GetTimeLogs(ctx context.Context) ([]models.TimeLogDetails, error) {
	timeLogs, err := allDocs[models.TimeLog](ctx, s.TimeLogCollection, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch time logs: %v", err)
	}

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
	statuses, err := allDocs[models.Status](ctx, s.StatusCollection, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch statuses: %v", err)
	}
	users, err := allDocs[models.User](ctx, s.UserCollection, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %v", err)
	}

	taskByID := byID(tasks, func(t models.Task) primitive.ObjectID { return t.ID })
	moduleByID := byID(modules, func(m models.ProjectModule) primitive.ObjectID { return m.ID })
	projectByID := byID(projects, func(p models.Project) primitive.ObjectID { return p.ID })
	statusByID := byID(statuses, func(st models.Status) primitive.ObjectID { return st.ID })
	userByID := byID(users, func(u models.User) primitive.ObjectID { return u.ID })

	details := make([]models.TimeLogDetails, 0, len(timeLogs))
	for _, log := range timeLogs {
		d := models.TimeLogDetails{TimeLog: log}
		if user, ok := userByID[log.UserID]; ok {
			user.Password = ""
			d.User = &user
		}
		if task, ok := taskByID[log.TaskID]; ok {
			td := models.TaskDetails{Task: task}
			if module, ok := moduleByID[task.ModuleID]; ok {
				md := models.ProjectModuleDetails{ProjectModule: module}
				if project, ok := projectByID[module.ProjectID]; ok {
					md.Project = &project
				}
				td.Module = &md
			}
			if status, ok := statusByID[task.StatusID]; ok {
				td.Status = &status
			}
			d.Task = &td
		}
		details = append(details, d)
	}

	return details, nil
}

func (s *TimeLogService) DeleteTimeLog(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.TimeLogCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete time log: %v", err)
	}
	if result.DeletedCount == 0 {
		return NotFound("time log not found")
	}
	logging.Logger.Infof("Event ID: TIMELOG_DELETED, Description: Time log %s deleted", id.Hex())
	return nil
}

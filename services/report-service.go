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

type ReportService struct {
	ReportCollection  *mongo.Collection
	TimeLogCollection *mongo.Collection
	TaskCollection    *mongo.Collection
	ProjectCollection *mongo.Collection
	UserCollection    *mongo.Collection
}

func NewReportService(db *mongo.Database) *ReportService {
	return &ReportService{
		ReportCollection:  db.Collection("reports"),
		TimeLogCollection: db.Collection("time_logs"),
		TaskCollection:    db.Collection("tasks"),
		ProjectCollection: db.Collection("projects"),
		UserCollection:    db.Collection("users"),
	}
}

// GenerateReport computes hours worked and productivity for one (user, task)
// pair and freezes the values into a new report record. Later time logs do not
// change an existing report; the snapshot answers "what happened as of
// generation time", in contrast to billing's live totals.
func (s *ReportService) GenerateReport(ctx context.Context, projectID, userID, taskID primitive.ObjectID) (*models.Report, error) {
	if projectID.IsZero() || userID.IsZero() || taskID.IsZero() {
		return nil, Invalid("projectId, userId and taskId are required")
	}

	logs, err := allDocs[models.TimeLog](ctx, s.TimeLogCollection, bson.M{"userId": userID, "taskId": taskID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch time logs: %v", err)
	}
	if len(logs) == 0 {
		return nil, NotFound("no time logs found for this user and task")
	}

	totalMinutes := SumMinutes(logs)
	totalHour := MinutesToHours(totalMinutes)

	task, err := oneByID[models.Task](ctx, s.TaskCollection, taskID, "task")
	if err != nil {
		return nil, err
	}

	productivity := Productivity(task.TotalMinute, totalMinutes)

	now := time.Now()
	report := models.Report{
		ID:            primitive.NewObjectID(),
		ProjectID:     projectID,
		UserID:        userID,
		TaskID:        taskID,
		TotalHour:     totalHour,
		Productivity:  productivity,
		GeneratedDate: now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if _, err := s.ReportCollection.InsertOne(ctx, report); err != nil {
		return nil, fmt.Errorf("failed to save report: %v", err)
	}

	logging.Logger.Infof("Event ID: REPORT_GENERATED, Description: Report %s generated for user %s on task %s (totalHour=%.2f, productivity=%.2f)",
		report.ID.Hex(), userID.Hex(), taskID.Hex(), totalHour, productivity)
	return &report, nil
}

func (s *ReportService) GetReports(ctx context.Context) ([]models.ReportDetails, error) {
	reports, err := allDocs[models.Report](ctx, s.ReportCollection, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reports: %v", err)
	}

	projects, err := allDocs[models.Project](ctx, s.ProjectCollection, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch projects: %v", err)
	}
	users, err := allDocs[models.User](ctx, s.UserCollection, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %v", err)
	}
	tasks, err := allDocs[models.Task](ctx, s.TaskCollection, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tasks: %v", err)
	}

	projectByID := byID(projects, func(p models.Project) primitive.ObjectID { return p.ID })
	userByID := byID(users, func(u models.User) primitive.ObjectID { return u.ID })
	taskByID := byID(tasks, func(t models.Task) primitive.ObjectID { return t.ID })

	details := make([]models.ReportDetails, 0, len(reports))
	for _, report := range reports {
		d := models.ReportDetails{Report: report}
		if project, ok := projectByID[report.ProjectID]; ok {
			d.Project = &project
		}
		if user, ok := userByID[report.UserID]; ok {
			user.Password = ""
			d.User = &user
		}
		if task, ok := taskByID[report.TaskID]; ok {
			d.Task = &task
		}
		details = append(details, d)
	}

	return details, nil
}

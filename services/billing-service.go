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

type BillingService struct {
	BillingCollection *mongo.Collection
	TimeLogCollection *mongo.Collection
	TaskCollection    *mongo.Collection
	ModuleCollection  *mongo.Collection
	ProjectCollection *mongo.Collection
	UserCollection    *mongo.Collection
}

func NewBillingService(db *mongo.Database) *BillingService {
	return &BillingService{
		BillingCollection: db.Collection("billings"),
		TimeLogCollection: db.Collection("time_logs"),
		TaskCollection:    db.Collection("tasks"),
		ModuleCollection:  db.Collection("project_modules"),
		ProjectCollection: db.Collection("projects"),
		UserCollection:    db.Collection("users"),
	}
}

func (s *BillingService) CreateBilling(ctx context.Context, billing models.Billing) (*models.Billing, error) {
	if billing.UserID.IsZero() || billing.ProjectID.IsZero() {
		return nil, Invalid("userId and projectId are required")
	}
	if billing.HourlyPrice <= 0 {
		return nil, Invalid("hourlyPrice must be greater than zero")
	}
	if billing.Payment == "" {
		billing.Payment = models.PaymentPending
	}
	if billing.Payment != models.PaymentPending && billing.Payment != models.PaymentPaid {
		return nil, Invalid("payment must be either Pending or Paid")
	}

	if _, err := oneByID[models.User](ctx, s.UserCollection, billing.UserID, "user"); err != nil {
		return nil, err
	}
	if _, err := oneByID[models.Project](ctx, s.ProjectCollection, billing.ProjectID, "project"); err != nil {
		return nil, err
	}

	now := time.Now()
	billing.ID = primitive.NewObjectID()
	billing.CreatedAt = now
	billing.UpdatedAt = now

	if _, err := s.BillingCollection.InsertOne(ctx, billing); err != nil {
		return nil, fmt.Errorf("failed to create billing record: %v", err)
	}

	logging.Logger.Infof("Event ID: BILLING_CREATED, Description: Billing record created for user %s on project %s", billing.UserID.Hex(), billing.ProjectID.Hex())
	return &billing, nil
}

// GetBillings returns every billing record with its user and project resolved
// and totalHour/totalAmount recomputed from current time-log data. The totals
// are live on purpose: a billing row always answers "what is owed right now".
func (s *BillingService) GetBillings(ctx context.Context) ([]models.BillingView, error) {
	billings, err := allDocs[models.Billing](ctx, s.BillingCollection, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch billing records: %v", err)
	}

	logs, err := s.projectLogs(ctx)
	if err != nil {
		return nil, err
	}

	users, err := allDocs[models.User](ctx, s.UserCollection, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %v", err)
	}
	projects, err := allDocs[models.Project](ctx, s.ProjectCollection, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch projects: %v", err)
	}

	userByID := byID(users, func(u models.User) primitive.ObjectID { return u.ID })
	projectByID := byID(projects, func(p models.Project) primitive.ObjectID { return p.ID })

	views := make([]models.BillingView, 0, len(billings))
	for _, billing := range billings {
		view := models.BillingView{Billing: billing}

		if user, ok := userByID[billing.UserID]; ok {
			user.Password = ""
			view.User = &user
		}
		if project, ok := projectByID[billing.ProjectID]; ok {
			view.Project = &project
		}

		// A deleted user or project leaves the reference unresolved; the
		// record still renders, and with a dangling reference no log can
		// match, so the totals stay zero.
		if view.User != nil && view.Project != nil {
			view.TotalHour, view.TotalAmount = billingTotals(billing, logs)
		}
		views = append(views, view)
	}

	return views, nil
}

// projectLogs loads all time logs and resolves each one through its
// task -> module -> project chain. Logs whose chain breaks keep a zero
// ProjectID and are skipped by the aggregation.
func (s *BillingService) projectLogs(ctx context.Context) ([]projectLog, error) {
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

	taskByID := byID(tasks, func(t models.Task) primitive.ObjectID { return t.ID })
	moduleByID := byID(modules, func(m models.ProjectModule) primitive.ObjectID { return m.ID })

	logs := make([]projectLog, 0, len(timeLogs))
	for _, l := range timeLogs {
		entry := projectLog{UserID: l.UserID, TotalMin: l.TotalMin}
		if task, ok := taskByID[l.TaskID]; ok {
			if module, ok := moduleByID[task.ModuleID]; ok {
				entry.ProjectID = module.ProjectID
			}
		}
		logs = append(logs, entry)
	}
	return logs, nil
}

package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

// queueBillingReads primes the mock with the six reads GetBillings issues, in
// order: billings, time_logs, tasks, modules, users, projects.
func queueBillingReads(mt *mtest.T, billings, timeLogs, tasks, modules, users, projects []bson.D) {
	mt.AddMockResponses(
		mtest.CreateCursorResponse(0, "timetracker.billings", mtest.FirstBatch, billings...),
		mtest.CreateCursorResponse(0, "timetracker.time_logs", mtest.FirstBatch, timeLogs...),
		mtest.CreateCursorResponse(0, "timetracker.tasks", mtest.FirstBatch, tasks...),
		mtest.CreateCursorResponse(0, "timetracker.project_modules", mtest.FirstBatch, modules...),
		mtest.CreateCursorResponse(0, "timetracker.users", mtest.FirstBatch, users...),
		mtest.CreateCursorResponse(0, "timetracker.projects", mtest.FirstBatch, projects...),
	)
}

func TestGetBillingsLiveTotals(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	userID := primitive.NewObjectID()
	projectID := primitive.NewObjectID()
	taskID := primitive.NewObjectID()
	moduleID := primitive.NewObjectID()

	billingDoc := bson.D{
		{Key: "_id", Value: primitive.NewObjectID()},
		{Key: "userId", Value: userID},
		{Key: "projectId", Value: projectID},
		{Key: "hourlyPrice", Value: 100.0},
		{Key: "payment", Value: "Pending"},
	}
	logDoc := bson.D{
		{Key: "_id", Value: primitive.NewObjectID()},
		{Key: "userId", Value: userID},
		{Key: "taskId", Value: taskID},
		{Key: "totalMin", Value: int64(60)},
	}
	taskDoc := bson.D{
		{Key: "_id", Value: taskID},
		{Key: "moduleId", Value: moduleID},
	}
	moduleDoc := bson.D{
		{Key: "_id", Value: moduleID},
		{Key: "projectId", Value: projectID},
	}
	userDoc := bson.D{
		{Key: "_id", Value: userID},
		{Key: "email", Value: "mika@example.com"},
	}
	projectDoc := bson.D{
		{Key: "_id", Value: projectID},
		{Key: "title", Value: "CRM"},
	}

	mt.Run("totals accrue while both references resolve", func(mt *mtest.T) {
		queueBillingReads(mt,
			[]bson.D{billingDoc},
			[]bson.D{logDoc},
			[]bson.D{taskDoc},
			[]bson.D{moduleDoc},
			[]bson.D{userDoc},
			[]bson.D{projectDoc},
		)

		svc := NewBillingService(mt.DB)
		views, err := svc.GetBillings(context.Background())
		require.NoError(mt.T, err)
		require.Len(mt.T, views, 1)

		assert.NotNil(mt.T, views[0].User)
		assert.NotNil(mt.T, views[0].Project)
		assert.Equal(mt.T, 1.0, views[0].TotalHour)
		assert.Equal(mt.T, 100.0, views[0].TotalAmount)
	})

	mt.Run("deleted project zeroes the totals", func(mt *mtest.T) {
		queueBillingReads(mt,
			[]bson.D{billingDoc},
			[]bson.D{logDoc},
			[]bson.D{taskDoc},
			[]bson.D{moduleDoc},
			[]bson.D{userDoc},
			nil,
		)

		svc := NewBillingService(mt.DB)
		views, err := svc.GetBillings(context.Background())
		require.NoError(mt.T, err)
		require.Len(mt.T, views, 1)

		assert.NotNil(mt.T, views[0].User)
		assert.Nil(mt.T, views[0].Project)
		assert.Equal(mt.T, 0.0, views[0].TotalHour)
		assert.Equal(mt.T, 0.0, views[0].TotalAmount)
	})

	mt.Run("deleted user zeroes the totals", func(mt *mtest.T) {
		queueBillingReads(mt,
			[]bson.D{billingDoc},
			[]bson.D{logDoc},
			[]bson.D{taskDoc},
			[]bson.D{moduleDoc},
			nil,
			[]bson.D{projectDoc},
		)

		svc := NewBillingService(mt.DB)
		views, err := svc.GetBillings(context.Background())
		require.NoError(mt.T, err)
		require.Len(mt.T, views, 1)

		assert.Nil(mt.T, views[0].User)
		assert.NotNil(mt.T, views[0].Project)
		assert.Equal(mt.T, 0.0, views[0].TotalHour)
		assert.Equal(mt.T, 0.0, views[0].TotalAmount)
	})
}

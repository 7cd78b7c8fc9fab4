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

func TestGenerateReport(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	projectID := primitive.NewObjectID()
	userID := primitive.NewObjectID()
	taskID := primitive.NewObjectID()

	mt.Run("no time logs is a not found, nothing persisted", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "timetracker.time_logs", mtest.FirstBatch),
		)

		svc := NewReportService(mt.DB)
		report, err := svc.GenerateReport(context.Background(), projectID, userID, taskID)
		require.Error(mt.T, err)
		assert.True(mt.T, IsNotFound(err))
		assert.Equal(mt.T, "no time logs found for this user and task", err.Error())
		assert.Nil(mt.T, report)
	})

	mt.Run("metrics are computed and frozen into the record", func(mt *mtest.T) {
		logDoc := bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "userId", Value: userID},
			{Key: "taskId", Value: taskID},
			{Key: "totalMin", Value: int64(90)},
		}
		taskDoc := bson.D{
			{Key: "_id", Value: taskID},
			{Key: "totalMinute", Value: int64(45)},
		}
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "timetracker.time_logs", mtest.FirstBatch, logDoc),
			mtest.CreateCursorResponse(0, "timetracker.tasks", mtest.FirstBatch, taskDoc),
			mtest.CreateSuccessResponse(),
		)

		svc := NewReportService(mt.DB)
		report, err := svc.GenerateReport(context.Background(), projectID, userID, taskID)
		require.NoError(mt.T, err)

		// 90 minutes worked against a 45-minute estimate
		assert.Equal(mt.T, 1.5, report.TotalHour)
		assert.Equal(mt.T, 50.0, report.Productivity)
		assert.False(mt.T, report.GeneratedDate.IsZero())
	})

	mt.Run("missing task is a not found", func(mt *mtest.T) {
		logDoc := bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "userId", Value: userID},
			{Key: "taskId", Value: taskID},
			{Key: "totalMin", Value: int64(30)},
		}
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "timetracker.time_logs", mtest.FirstBatch, logDoc),
			mtest.CreateCursorResponse(0, "timetracker.tasks", mtest.FirstBatch),
		)

		svc := NewReportService(mt.DB)
		_, err := svc.GenerateReport(context.Background(), projectID, userID, taskID)
		require.Error(mt.T, err)
		assert.True(mt.T, IsNotFound(err))
	})
}

func TestGetReportsReturnsStoredMetricsUnchanged(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("stored snapshot values pass through as saved", func(mt *mtest.T) {
		reportDoc := bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "projectId", Value: primitive.NewObjectID()},
			{Key: "userId", Value: primitive.NewObjectID()},
			{Key: "taskId", Value: primitive.NewObjectID()},
			{Key: "totalHour", Value: 2.5},
			{Key: "productivity", Value: 80.5},
		}
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "timetracker.reports", mtest.FirstBatch, reportDoc),
			mtest.CreateCursorResponse(0, "timetracker.projects", mtest.FirstBatch),
			mtest.CreateCursorResponse(0, "timetracker.users", mtest.FirstBatch),
			mtest.CreateCursorResponse(0, "timetracker.tasks", mtest.FirstBatch),
		)

		svc := NewReportService(mt.DB)
		details, err := svc.GetReports(context.Background())
		require.NoError(mt.T, err)
		require.Len(mt.T, details, 1)

		// frozen values come back exactly as stored, never recomputed
		assert.Equal(mt.T, 2.5, details[0].TotalHour)
		assert.Equal(mt.T, 80.5, details[0].Productivity)
		assert.Nil(mt.T, details[0].Project)
		assert.Nil(mt.T, details[0].User)
		assert.Nil(mt.T, details[0].Task)
	})
}

package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"time-tracker/backend/models"
)

func TestAssignTask(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	userID := primitive.NewObjectID()
	taskID := primitive.NewObjectID()

	assignment := models.UserTask{
		UserID:  userID,
		TaskID:  taskID,
		LogDate: time.Now(),
	}
	taskDoc := bson.D{
		{Key: "_id", Value: taskID},
		{Key: "title", Value: "Implement login"},
	}

	mt.Run("assigns when the pair is free", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "timetracker.tasks", mtest.FirstBatch, taskDoc),
			mtest.CreateCursorResponse(0, "timetracker.user_tasks", mtest.FirstBatch),
			mtest.CreateSuccessResponse(),
		)

		svc := NewUserTaskService(mt.DB)
		created, err := svc.AssignTask(context.Background(), assignment)
		require.NoError(mt.T, err)
		assert.Equal(mt.T, userID, created.UserID)
		assert.Equal(mt.T, taskID, created.TaskID)
		assert.False(mt.T, created.ID.IsZero())
	})

	mt.Run("existing assignment is a conflict", func(mt *mtest.T) {
		existingDoc := bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "userId", Value: userID},
			{Key: "taskId", Value: taskID},
		}
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "timetracker.tasks", mtest.FirstBatch, taskDoc),
			mtest.CreateCursorResponse(0, "timetracker.user_tasks", mtest.FirstBatch, existingDoc),
		)

		svc := NewUserTaskService(mt.DB)
		_, err := svc.AssignTask(context.Background(), assignment)
		require.Error(mt.T, err)
		assert.True(mt.T, IsConflict(err))
		assert.Equal(mt.T, "task is already assigned to this user", err.Error())
	})

	mt.Run("duplicate key from the unique index is a conflict", func(mt *mtest.T) {
		// a concurrent insert slips past the pre-check; the index answers
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "timetracker.tasks", mtest.FirstBatch, taskDoc),
			mtest.CreateCursorResponse(0, "timetracker.user_tasks", mtest.FirstBatch),
			mtest.CreateWriteErrorsResponse(mtest.WriteError{
				Index:   0,
				Code:    11000,
				Message: "E11000 duplicate key error collection: timetracker.user_tasks",
			}),
		)

		svc := NewUserTaskService(mt.DB)
		_, err := svc.AssignTask(context.Background(), assignment)
		require.Error(mt.T, err)
		assert.True(mt.T, IsConflict(err))
	})

	mt.Run("missing task is a not found", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "timetracker.tasks", mtest.FirstBatch),
		)

		svc := NewUserTaskService(mt.DB)
		_, err := svc.AssignTask(context.Background(), assignment)
		require.Error(mt.T, err)
		assert.True(mt.T, IsNotFound(err))
	})
}

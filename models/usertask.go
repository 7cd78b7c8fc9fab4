package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserTask links a user to a task. At most one assignment may exist per
// (userId, taskId) pair; the collection carries a unique compound index on it.
type UserTask struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID    primitive.ObjectID `json:"userId" bson:"userId"`
	TaskID    primitive.ObjectID `json:"taskId" bson:"taskId"`
	WorkedHr  float64            `json:"workedHr" bson:"workedHr"`
	LogDate   time.Time          `json:"logDate" bson:"logDate"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type UserTaskDetails struct {
	UserTask `bson:",inline"`
	User     *User        `json:"user,omitempty" bson:"user,omitempty"`
	Task     *TaskDetails `json:"task,omitempty" bson:"task,omitempty"`
}

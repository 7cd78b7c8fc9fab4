package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TimeLog struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID    primitive.ObjectID `json:"userId" bson:"userId"`
	TaskID    primitive.ObjectID `json:"taskId" bson:"taskId"`
	StartDate time.Time          `json:"startDate" bson:"startDate"`
	EndDate   *time.Time         `json:"endDate,omitempty" bson:"endDate,omitempty"`
	TotalMin  int64              `json:"totalMin" bson:"totalMin"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type TimeLogDetails struct {
	TimeLog `bson:",inline"`
	User    *User        `json:"user,omitempty" bson:"user,omitempty"`
	Task    *TaskDetails `json:"task,omitempty" bson:"task,omitempty"`
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TaskPriority string

const (
	PriorityLow    TaskPriority = "Low"
	PriorityMedium TaskPriority = "Medium"
	PriorityHigh   TaskPriority = "High"
)

// Task belongs to one module and, redundantly, one project. TotalMinute is
// the estimated effort in minutes, used by report productivity.
type Task struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ModuleID    primitive.ObjectID `json:"moduleId" bson:"moduleId"`
	ProjectID   primitive.ObjectID `json:"projectId" bson:"projectId"`
	Title       string             `json:"title" bson:"title"`
	Priority    TaskPriority       `json:"priority" bson:"priority"`
	Description string             `json:"description" bson:"description"`
	StatusID    primitive.ObjectID `json:"statusId" bson:"statusId"`
	TotalMinute int64              `json:"totalMinute" bson:"totalMinute"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type TaskDetails struct {
	Task   `bson:",inline"`
	Module *ProjectModuleDetails `json:"module,omitempty" bson:"module,omitempty"`
	Status *Status               `json:"status,omitempty" bson:"status,omitempty"`
}

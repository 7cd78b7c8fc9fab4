package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Report is a snapshot record: TotalHour and Productivity are frozen at
// generation time and never recomputed, unlike Billing's live totals.
type Report struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ProjectID     primitive.ObjectID `json:"projectId" bson:"projectId"`
	UserID        primitive.ObjectID `json:"userId" bson:"userId"`
	TaskID        primitive.ObjectID `json:"taskId" bson:"taskId"`
	TotalHour     float64            `json:"totalHour" bson:"totalHour"`
	Productivity  float64            `json:"productivity" bson:"productivity"`
	GeneratedDate time.Time          `json:"generatedDate" bson:"generatedDate"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type ReportDetails struct {
	Report  `bson:",inline"`
	Project *Project `json:"project,omitempty" bson:"project,omitempty"`
	User    *User    `json:"user,omitempty" bson:"user,omitempty"`
	Task    *Task    `json:"task,omitempty" bson:"task,omitempty"`
}

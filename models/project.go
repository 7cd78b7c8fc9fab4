package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Project struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title          string             `json:"title" bson:"title"`
	Description    string             `json:"description,omitempty" bson:"description,omitempty"`
	Technology     string             `json:"technology,omitempty" bson:"technology,omitempty"`
	EstimatedHours float64            `json:"estimatedHours,omitempty" bson:"estimatedHours,omitempty"`
	StartDate      time.Time          `json:"startDate" bson:"startDate"`
	CompletionDate *time.Time         `json:"completionDate,omitempty" bson:"completionDate,omitempty"`
	StatusID       primitive.ObjectID `json:"statusId" bson:"statusId"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type ProjectDetails struct {
	Project `bson:",inline"`
	Status  *Status `json:"status,omitempty" bson:"status,omitempty"`
}

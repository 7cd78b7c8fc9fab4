package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProjectModule belongs to exactly one project.
type ProjectModule struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ProjectID      primitive.ObjectID `json:"projectId" bson:"projectId"`
	ModuleName     string             `json:"moduleName" bson:"moduleName"`
	Description    string             `json:"description,omitempty" bson:"description,omitempty"`
	EstimatedHours float64            `json:"estimatedHours" bson:"estimatedHours"`
	StatusID       primitive.ObjectID `json:"statusId" bson:"statusId"`
	StartDate      time.Time          `json:"startDate" bson:"startDate"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type ProjectModuleDetails struct {
	ProjectModule `bson:",inline"`
	Project       *Project `json:"project,omitempty" bson:"project,omitempty"`
	Status        *Status  `json:"status,omitempty" bson:"status,omitempty"`
}

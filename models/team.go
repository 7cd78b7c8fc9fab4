package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProjectTeam struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ProjectID primitive.ObjectID `json:"projectId" bson:"projectId"`
	UserID    primitive.ObjectID `json:"userId" bson:"userId"`
	Role      string             `json:"role" bson:"role"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type ProjectTeamDetails struct {
	ProjectTeam `bson:",inline"`
	Project     *Project `json:"project,omitempty" bson:"project,omitempty"`
	User        *User    `json:"user,omitempty" bson:"user,omitempty"`
}

package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	RoleAdmin     = "Admin"
	RoleManager   = "Project Manager"
	RoleDeveloper = "Developer"
)

type Role struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
}

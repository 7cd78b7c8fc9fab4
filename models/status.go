package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Status is static reference data shared by projects, modules and tasks.
type Status struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
}

package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"time-tracker/backend/models"
)

type StatusService struct {
	StatusCollection *mongo.Collection
}

func NewStatusService(db *mongo.Database) *StatusService {
	return &StatusService{StatusCollection: db.Collection("statuses")}
}

func (s *StatusService) GetAllStatuses(ctx context.Context) ([]models.Status, error) {
	statuses, err := allDocs[models.Status](ctx, s.StatusCollection, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch statuses: %v", err)
	}
	return statuses, nil
}

func (s *StatusService) GetStatusByID(ctx context.Context, id primitive.ObjectID) (*models.Status, error) {
	return oneByID[models.Status](ctx, s.StatusCollection, id, "status")
}

func (s *StatusService) CreateStatus(ctx context.Context, status models.Status) (*models.Status, error) {
	if status.Name == "" {
		return nil, Invalid("name is required")
	}

	var existing models.Status
	if err := s.StatusCollection.FindOne(ctx, bson.M{"name": status.Name}).Decode(&existing); err == nil {
		return nil, Conflict("status '%s' already exists", status.Name)
	}

	status.ID = primitive.NewObjectID()
	if _, err := s.StatusCollection.InsertOne(ctx, status); err != nil {
		return nil, fmt.Errorf("failed to create status: %v", err)
	}
	return &status, nil
}

func (s *StatusService) DeleteStatus(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.StatusCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete status: %v", err)
	}
	if result.DeletedCount == 0 {
		return NotFound("status not found")
	}
	return nil
}

package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"time-tracker/backend/models"
)

type RoleService struct {
	RoleCollection *mongo.Collection
}

func NewRoleService(db *mongo.Database) *RoleService {
	return &RoleService{RoleCollection: db.Collection("roles")}
}

func (s *RoleService) GetAllRoles(ctx context.Context) ([]models.Role, error) {
	roles, err := allDocs[models.Role](ctx, s.RoleCollection, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch roles: %v", err)
	}
	return roles, nil
}

func (s *RoleService) GetRoleByID(ctx context.Context, id primitive.ObjectID) (*models.Role, error) {
	return oneByID[models.Role](ctx, s.RoleCollection, id, "role")
}

func (s *RoleService) CreateRole(ctx context.Context, role models.Role) (*models.Role, error) {
	if role.Name == "" {
		return nil, Invalid("name is required")
	}

	var existing models.Role
	if err := s.RoleCollection.FindOne(ctx, bson.M{"name": role.Name}).Decode(&existing); err == nil {
		return nil, Conflict("role '%s' already exists", role.Name)
	}

	role.ID = primitive.NewObjectID()
	if _, err := s.RoleCollection.InsertOne(ctx, role); err != nil {
		return nil, fmt.Errorf("failed to create role: %v", err)
	}
	return &role, nil
}

func (s *RoleService) DeleteRole(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.RoleCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete role: %v", err)
	}
	if result.DeletedCount == 0 {
		return NotFound("role not found")
	}
	return nil
}

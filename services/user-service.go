package services

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"time-tracker/backend/logging"
	"time-tracker/backend/models"
	"time-tracker/backend/utils"
)

type UserService struct {
	UserCollection *mongo.Collection
	RoleCollection *mongo.Collection
	Mailer         *utils.Mailer
}

func NewUserService(db *mongo.Database, mailer *utils.Mailer) *UserService {
	return &UserService{
		UserCollection: db.Collection("users"),
		RoleCollection: db.Collection("roles"),
		Mailer:         mailer,
	}
}

// Signup registers a new user with a bcrypt-hashed password and sends the
// welcome mail. A mail delivery failure is logged but does not undo the
// signup.
func (s *UserService) Signup(ctx context.Context, user models.User) (*models.User, error) {
	if user.FirstName == "" || user.LastName == "" || user.Email == "" || user.Password == "" {
		return nil, Invalid("firstName, lastName, email and password are required")
	}
	if user.RoleID.IsZero() {
		return nil, Invalid("roleId is required")
	}

	if _, err := oneByID[models.Role](ctx, s.RoleCollection, user.RoleID, "role"); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %v", err)
	}
	user.Password = string(hashedPassword)

	now := time.Now()
	user.ID = primitive.NewObjectID()
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := s.UserCollection.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, Conflict("a user with this email already exists")
		}
		return nil, fmt.Errorf("failed to save user: %v", err)
	}

	logging.Logger.Infof("Event ID: USER_REGISTERED, Description: User %s registered with email %s", user.ID.Hex(), user.Email)

	if err := s.Mailer.SendWelcomeEmail(user.Email, user.FirstName, user.LastName); err != nil {
		logging.Logger.Warnf("Event ID: WELCOME_EMAIL_FAILED, Description: Welcome email to %s not delivered: %v", user.Email, err)
	}

	user.Password = ""
	return &user, nil
}

// Login verifies the credentials and issues a signed token carrying the
// resolved role name.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.UserDetails, string, error) {
	var user models.User
	err := s.UserCollection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, "", NotFound("email not found")
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch user: %v", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", Unauthorized("invalid credentials")
	}

	details := models.UserDetails{User: user}
	roleName := ""
	if role, err := oneByID[models.Role](ctx, s.RoleCollection, user.RoleID, "role"); err == nil {
		details.Role = role
		roleName = role.Name
	}

	token, err := utils.GenerateAuthToken(user.ID.Hex(), user.Email, roleName)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %v", err)
	}

	details.Password = ""
	logging.Logger.Infof("Event ID: USER_LOGIN, Description: User %s logged in", user.Email)
	return &details, token, nil
}

// GetAllUsers resolves each user's role; roleFilter, when set, matches the
// expanded role name.
func (s *UserService) GetAllUsers(ctx context.Context, roleFilter string) ([]models.UserDetails, error) {
	users, err := allDocs[models.User](ctx, s.UserCollection, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %v", err)
	}
	roles, err := allDocs[models.Role](ctx, s.RoleCollection, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch roles: %v", err)
	}
	roleByID := byID(roles, func(r models.Role) primitive.ObjectID { return r.ID })

	details := make([]models.UserDetails, 0, len(users))
	for _, user := range users {
		user.Password = ""
		d := models.UserDetails{User: user}
		if role, ok := roleByID[user.RoleID]; ok {
			d.Role = &role
		}
		if roleFilter != "" && (d.Role == nil || d.Role.Name != roleFilter) {
			continue
		}
		details = append(details, d)
	}
	return details, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.UserDetails, error) {
	user, err := oneByID[models.User](ctx, s.UserCollection, id, "user")
	if err != nil {
		return nil, err
	}
	user.Password = ""
	details := models.UserDetails{User: *user}
	if role, err := oneByID[models.Role](ctx, s.RoleCollection, user.RoleID, "role"); err == nil {
		details.Role = role
	}
	return &details, nil
}

// AddUser is the admin-side create; same rules as signup, no welcome mail.
func (s *UserService) AddUser(ctx context.Context, user models.User) (*models.User, error) {
	if user.FirstName == "" || user.LastName == "" || user.Email == "" || user.Password == "" {
		return nil, Invalid("firstName, lastName, email and password are required")
	}
	if user.RoleID.IsZero() {
		return nil, Invalid("roleId is required")
	}

	if _, err := oneByID[models.Role](ctx, s.RoleCollection, user.RoleID, "role"); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %v", err)
	}
	user.Password = string(hashedPassword)

	now := time.Now()
	user.ID = primitive.NewObjectID()
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := s.UserCollection.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, Conflict("a user with this email already exists")
		}
		return nil, fmt.Errorf("failed to save user: %v", err)
	}

	user.Password = ""
	return &user, nil
}

func (s *UserService) UpdateUserRole(ctx context.Context, id, roleID primitive.ObjectID) (*models.UserDetails, error) {
	if roleID.IsZero() {
		return nil, Invalid("roleId is required")
	}
	if _, err := oneByID[models.Role](ctx, s.RoleCollection, roleID, "role"); err != nil {
		return nil, err
	}

	result, err := s.UserCollection.UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"roleId": roleID, "updatedAt": time.Now()}})
	if err != nil {
		return nil, fmt.Errorf("failed to update user role: %v", err)
	}
	if result.MatchedCount == 0 {
		return nil, NotFound("user not found")
	}

	logging.Logger.Infof("Event ID: USER_ROLE_UPDATED, Description: User %s role changed to %s", id.Hex(), roleID.Hex())
	return s.GetUserByID(ctx, id)
}

func (s *UserService) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.UserCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete user: %v", err)
	}
	if result.DeletedCount == 0 {
		return NotFound("user not found")
	}
	logging.Logger.Infof("Event ID: USER_DELETED, Description: User %s deleted", id.Hex())
	return nil
}

// ForgotPassword mails a reset link carrying a short-lived signed token.
func (s *UserService) ForgotPassword(ctx context.Context, email string) error {
	var user models.User
	err := s.UserCollection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return NotFound("user not found, please register first")
	}
	if err != nil {
		return fmt.Errorf("failed to fetch user: %v", err)
	}

	token, err := utils.GenerateResetToken(user.ID.Hex())
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %v", err)
	}

	baseURL := os.Getenv("APP_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:5173"
	}
	resetURL := fmt.Sprintf("%s/resetpassword/%s", baseURL, token)

	if err := s.Mailer.SendPasswordResetEmail(user.Email, resetURL); err != nil {
		return fmt.Errorf("failed to send password reset email: %v", err)
	}
	return nil
}

func (s *UserService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if newPassword == "" {
		return Invalid("password is required")
	}

	userIDHex, err := utils.ValidateResetToken(token)
	if err != nil {
		return Invalid("invalid or expired token")
	}
	userID, err := primitive.ObjectIDFromHex(userIDHex)
	if err != nil {
		return Invalid("invalid or expired token")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %v", err)
	}

	result, err := s.UserCollection.UpdateOne(ctx, bson.M{"_id": userID},
		bson.M{"$set": bson.M{"password": string(hashedPassword), "updatedAt": time.Now()}})
	if err != nil {
		return fmt.Errorf("failed to update password: %v", err)
	}
	if result.MatchedCount == 0 {
		return NotFound("user not found")
	}

	logging.Logger.Infof("Event ID: PASSWORD_RESET, Description: Password reset for user %s", userID.Hex())
	return nil
}

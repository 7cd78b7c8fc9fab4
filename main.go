package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/sony/gobreaker"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"time-tracker/backend/handlers"
	"time-tracker/backend/logging"
	"time-tracker/backend/middleware"
	"time-tracker/backend/services"
	"time-tracker/backend/utils"
)

func main() {
	logging.InitLogger()
	logging.Logger.Info("Event ID: SERVICE_START, Description: Starting Time Tracker backend...")

	if err := godotenv.Load(".env"); err != nil {
		logging.Logger.Warnf("Event ID: ENV_LOAD_WARNING, Description: No .env file loaded: %v", err)
	}

	mongoURI := os.Getenv("MONGO_URI")
	mongoDBName := os.Getenv("MONGO_DB_NAME")
	if mongoURI == "" || mongoDBName == "" {
		logging.Logger.Fatalf("Event ID: CONFIG_ERROR, Description: MONGO_URI and MONGO_DB_NAME must be set in the environment.")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		logging.Logger.Fatalf("Event ID: DB_CONNECTION_FAILED, Description: Database connection for MongoDB failed: %v", err)
	}
	defer client.Disconnect(ctx)

	if err := client.Ping(ctx, nil); err != nil {
		logging.Logger.Fatalf("Event ID: DB_PING_FAILED, Description: MongoDB connection ping error: %v", err)
	}
	logging.Logger.Infof("Event ID: DB_CONNECTED, Description: Successfully connected to MongoDB at %s.", mongoURI)

	db := client.Database(mongoDBName)
	if err := services.EnsureIndexes(ctx, db); err != nil {
		logging.Logger.Fatalf("Event ID: DB_INDEX_FAILED, Description: Failed to ensure indexes: %v", err)
	}

	mailBreaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "smtp-cb",
		MaxRequests: 1,
		Timeout:     5 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Logger.Infof("Event ID: CIRCUIT_BREAKER_STATE_CHANGE, Description: Circuit Breaker '%s' changed from '%s' to '%s'", name, from.String(), to.String())
		},
	})
	mailer := utils.NewMailer(mailBreaker)

	userHandler := handlers.NewUserHandler(services.NewUserService(db, mailer))
	roleHandler := handlers.NewRoleHandler(services.NewRoleService(db))
	statusHandler := handlers.NewStatusHandler(services.NewStatusService(db))
	projectHandler := handlers.NewProjectHandler(services.NewProjectService(db))
	moduleHandler := handlers.NewModuleHandler(services.NewModuleService(db))
	taskHandler := handlers.NewTaskHandler(services.NewTaskService(db))
	timeLogHandler := handlers.NewTimeLogHandler(services.NewTimeLogService(db))
	userTaskHandler := handlers.NewUserTaskHandler(services.NewUserTaskService(db))
	teamHandler := handlers.NewTeamHandler(services.NewTeamService(db))
	billingHandler := handlers.NewBillingHandler(services.NewBillingService(db))
	reportHandler := handlers.NewReportHandler(services.NewReportService(db))

	r := mux.NewRouter()

	// Public auth endpoints
	r.HandleFunc("/users/signup", userHandler.Signup).Methods(http.MethodPost)
	r.HandleFunc("/users/login", userHandler.Login).Methods(http.MethodPost)
	r.HandleFunc("/users/forgotpassword", userHandler.ForgotPassword).Methods(http.MethodPost)
	r.HandleFunc("/users/resetpassword", userHandler.ResetPassword).Methods(http.MethodPost)

	// Everything below requires a valid token
	api := r.NewRoute().Subrouter()
	api.Use(middleware.JWTAuthMiddleware)

	api.HandleFunc("/users", userHandler.GetAllUsers).Methods(http.MethodGet)
	api.HandleFunc("/users", userHandler.AddUser).Methods(http.MethodPost)
	api.HandleFunc("/users/{id}", userHandler.GetUserByID).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}", userHandler.UpdateUserRole).Methods(http.MethodPut)
	api.HandleFunc("/users/{id}", userHandler.DeleteUser).Methods(http.MethodDelete)

	api.HandleFunc("/roles", roleHandler.GetAllRoles).Methods(http.MethodGet)
	api.HandleFunc("/roles", roleHandler.CreateRole).Methods(http.MethodPost)
	api.HandleFunc("/roles/{id}", roleHandler.GetRoleByID).Methods(http.MethodGet)
	api.HandleFunc("/roles/{id}", roleHandler.DeleteRole).Methods(http.MethodDelete)

	api.HandleFunc("/statuses", statusHandler.GetAllStatuses).Methods(http.MethodGet)
	api.HandleFunc("/statuses", statusHandler.CreateStatus).Methods(http.MethodPost)
	api.HandleFunc("/statuses/{id}", statusHandler.GetStatusByID).Methods(http.MethodGet)
	api.HandleFunc("/statuses/{id}", statusHandler.DeleteStatus).Methods(http.MethodDelete)

	api.HandleFunc("/projects/add", projectHandler.CreateProject).Methods(http.MethodPost)
	api.HandleFunc("/projects", projectHandler.GetProjects).Methods(http.MethodGet)
	api.HandleFunc("/projects/{id}", projectHandler.GetProjectByID).Methods(http.MethodGet)
	api.HandleFunc("/projects/{id}", projectHandler.UpdateProject).Methods(http.MethodPut)
	api.HandleFunc("/projects/{id}", projectHandler.DeleteProject).Methods(http.MethodDelete)

	api.HandleFunc("/project-modules", moduleHandler.GetAllModules).Methods(http.MethodGet)
	api.HandleFunc("/project-modules", moduleHandler.CreateModule).Methods(http.MethodPost)
	api.HandleFunc("/project-modules/by-project/{projectId}", moduleHandler.GetModulesByProject).Methods(http.MethodGet)
	api.HandleFunc("/project-modules/{id}", moduleHandler.GetModuleByID).Methods(http.MethodGet)
	api.HandleFunc("/project-modules/{moduleId}", moduleHandler.UpdateModule).Methods(http.MethodPut)
	api.HandleFunc("/project-modules/{id}", moduleHandler.DeleteModule).Methods(http.MethodDelete)

	api.HandleFunc("/tasks", taskHandler.GetAllTasks).Methods(http.MethodGet)
	api.HandleFunc("/tasks", taskHandler.CreateTask).Methods(http.MethodPost)
	api.HandleFunc("/tasks/module/{moduleId}", taskHandler.GetTasksByModule).Methods(http.MethodGet)
	api.HandleFunc("/tasks/{id}", taskHandler.GetTaskByID).Methods(http.MethodGet)
	api.HandleFunc("/tasks/{id}", taskHandler.UpdateTask).Methods(http.MethodPut)
	api.HandleFunc("/tasks/{id}", taskHandler.DeleteTask).Methods(http.MethodDelete)

	api.HandleFunc("/time-logs/add", timeLogHandler.AddTimeLog).Methods(http.MethodPost)
	api.HandleFunc("/time-logs", timeLogHandler.GetTimeLogs).Methods(http.MethodGet)
	api.HandleFunc("/time-logs/{id}", timeLogHandler.DeleteTimeLog).Methods(http.MethodDelete)

	api.HandleFunc("/user-tasks", userTaskHandler.AssignTask).Methods(http.MethodPost)
	api.HandleFunc("/user-tasks", userTaskHandler.GetUserTasks).Methods(http.MethodGet)
	api.HandleFunc("/user-tasks/single/{id}", userTaskHandler.GetUserTaskByID).Methods(http.MethodGet)
	api.HandleFunc("/user-tasks/{userId}", userTaskHandler.GetUserTasksByUser).Methods(http.MethodGet)
	api.HandleFunc("/user-tasks/{id}", userTaskHandler.UpdateUserTask).Methods(http.MethodPut)
	api.HandleFunc("/user-tasks/{id}", userTaskHandler.DeleteUserTask).Methods(http.MethodDelete)

	api.HandleFunc("/project-teams", teamHandler.GetAllTeamMembers).Methods(http.MethodGet)
	api.HandleFunc("/project-teams", teamHandler.AddTeamMember).Methods(http.MethodPost)
	api.HandleFunc("/project-teams/{id}", teamHandler.GetTeamMemberByID).Methods(http.MethodGet)
	api.HandleFunc("/project-teams/{id}", teamHandler.DeleteTeamMember).Methods(http.MethodDelete)

	api.HandleFunc("/billings/add", billingHandler.AddBilling).Methods(http.MethodPost)
	api.HandleFunc("/billings", billingHandler.GetBillings).Methods(http.MethodGet)

	api.HandleFunc("/reports/generate", reportHandler.GenerateReport).Methods(http.MethodPost)
	api.HandleFunc("/reports", reportHandler.GetReports).Methods(http.MethodGet)

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "3000"
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", serverPort),
		Handler:      middleware.EnableCORS(r),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	logging.Logger.Infof("Event ID: SERVER_START_INFO, Description: Server running on http://localhost:%s", serverPort)
	if err := srv.ListenAndServe(); err != nil {
		logging.Logger.Fatalf("Event ID: SERVER_FATAL_ERROR, Description: Server failed to start: %v", err)
	}
}

package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/gesteasy/GestEasy/internal/auth"
	database "github.com/gesteasy/GestEasy/internal/db"
	"github.com/gesteasy/GestEasy/internal/finance/application"
	"github.com/gesteasy/GestEasy/internal/finance/infrastructure"
	"github.com/gesteasy/GestEasy/internal/finance/interfaces"
	"github.com/gesteasy/GestEasy/internal/user"
)

type Response struct {
	Message string `json:"message"`
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("Started %s %s", r.Method, r.URL.Path)

		next.ServeHTTP(w, r)

		log.Printf("Completed %s in %v", r.URL.Path, time.Since(start))
	})
}

// HealthChecker reports the database state behind the readiness probe.
type HealthChecker interface {
	Health() map[string]string
}

type Server struct {
	router             *http.ServeMux
	userHandler        *user.Handler
	categoryHandler    *interfaces.CategoryHandler
	transactionHandler *interfaces.TransactionHandler
	budgetHandler      *interfaces.BudgetHandler
	dashboardHandler   *interfaces.DashboardHandler
	jwtManager         auth.JWTManagerInterface
	health             HealthChecker
}

func NewServer(
	userHandler *user.Handler,
	categoryHandler *interfaces.CategoryHandler,
	transactionHandler *interfaces.TransactionHandler,
	budgetHandler *interfaces.BudgetHandler,
	dashboardHandler *interfaces.DashboardHandler,
	jwtManager auth.JWTManagerInterface,
	health HealthChecker,
) *Server {
	return &Server{
		router:             http.NewServeMux(),
		userHandler:        userHandler,
		categoryHandler:    categoryHandler,
		transactionHandler: transactionHandler,
		budgetHandler:      budgetHandler,
		dashboardHandler:   dashboardHandler,
		jwtManager:         jwtManager,
		health:             health,
	}
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(Response{Message: "Path not found"})
}

func checkConfiguration() error {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, continuing with system environment variables")
	}

	if os.Getenv("JWT_SECRET") == "" {
		return errors.New("no JWT_SECRET Provided")
	}
	if os.Getenv("DB_CONNECTION_STRING") == "" {
		return errors.New("no DB_CONNECTION_STRING Provided")
	}
	return nil
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	health := s.health.Health()
	status := http.StatusOK
	if health["status"] != "up" {
		status = http.StatusServiceUnavailable
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(health)
}

func (s *Server) RegisterRoutes() {
	protect := auth.JWTAccessTokenMiddleware(s.jwtManager)

	// Public routes
	publicRoutes := http.NewServeMux()
	publicRoutes.Handle("POST /api/auth/register", http.HandlerFunc(s.userHandler.HandleRegister))
	publicRoutes.Handle("POST /api/auth/login", http.HandlerFunc(s.userHandler.HandleLogin))
	publicRoutes.Handle("GET /api/ready", http.HandlerFunc(s.handleReady))

	// Protected routes (using JWT Access Token Middleware)
	protectedRoutes := http.NewServeMux()

	// CATEGORIES API
	protectedRoutes.Handle("GET /api/protected/categories", protect(http.HandlerFunc(s.categoryHandler.ListCategories)))
	protectedRoutes.Handle("POST /api/protected/categories", protect(http.HandlerFunc(s.categoryHandler.CreateCategory)))
	protectedRoutes.Handle("GET /api/protected/categories/{id}", protect(http.HandlerFunc(s.categoryHandler.GetCategory)))
	protectedRoutes.Handle("PUT /api/protected/categories/{id}", protect(http.HandlerFunc(s.categoryHandler.UpdateCategory)))
	protectedRoutes.Handle("DELETE /api/protected/categories/{id}", protect(http.HandlerFunc(s.categoryHandler.DeleteCategory)))

	// TRANSACTIONS API
	protectedRoutes.Handle("GET /api/protected/transactions", protect(http.HandlerFunc(s.transactionHandler.ListTransactions)))
	protectedRoutes.Handle("POST /api/protected/transactions", protect(http.HandlerFunc(s.transactionHandler.CreateTransaction)))
	protectedRoutes.Handle("GET /api/protected/transactions/export", protect(http.HandlerFunc(s.transactionHandler.ExportTransactions)))
	protectedRoutes.Handle("GET /api/protected/transactions/{id}", protect(http.HandlerFunc(s.transactionHandler.GetTransaction)))
	protectedRoutes.Handle("PUT /api/protected/transactions/{id}", protect(http.HandlerFunc(s.transactionHandler.UpdateTransaction)))
	protectedRoutes.Handle("DELETE /api/protected/transactions/{id}", protect(http.HandlerFunc(s.transactionHandler.DeleteTransaction)))

	// BUDGETS API
	protectedRoutes.Handle("GET /api/protected/budgets", protect(http.HandlerFunc(s.budgetHandler.ListBudgets)))
	protectedRoutes.Handle("POST /api/protected/budgets", protect(http.HandlerFunc(s.budgetHandler.CreateBudget)))
	protectedRoutes.Handle("GET /api/protected/budgets/{id}", protect(http.HandlerFunc(s.budgetHandler.GetBudget)))
	protectedRoutes.Handle("PUT /api/protected/budgets/{id}", protect(http.HandlerFunc(s.budgetHandler.UpdateBudget)))
	protectedRoutes.Handle("DELETE /api/protected/budgets/{id}", protect(http.HandlerFunc(s.budgetHandler.DeleteBudget)))

	// DASHBOARD API
	protectedRoutes.Handle("GET /api/protected/dashboard/summary", protect(http.HandlerFunc(s.dashboardHandler.GetSummary)))
	protectedRoutes.Handle("GET /api/protected/dashboard/expenses-by-category", protect(http.HandlerFunc(s.dashboardHandler.GetExpensesByCategory)))
	protectedRoutes.Handle("GET /api/protected/dashboard/monthly-series", protect(http.HandlerFunc(s.dashboardHandler.GetMonthlySeries)))
	protectedRoutes.Handle("GET /api/protected/dashboard/balance-evolution", protect(http.HandlerFunc(s.dashboardHandler.GetBalanceEvolution)))
	protectedRoutes.Handle("GET /api/protected/dashboard/recent-transactions", protect(http.HandlerFunc(s.dashboardHandler.GetRecentTransactions)))

	// Main router
	mainRouter := http.NewServeMux()
	mainRouter.Handle("/api/", publicRoutes)
	mainRouter.Handle("/api/protected/", protectedRoutes)
	mainRouter.Handle("/", http.HandlerFunc(notFoundHandler))

	s.router = mainRouter
}

func main() {
	if err := checkConfiguration(); err != nil {
		log.Fatalf("Missing configuration, update to start server: %v", err)
	}

	dbService, err := database.NewDBService()
	if err != nil {
		log.Fatalf("Could not initialize database: %v", err)
	}
	defer dbService.Close()

	if err := dbService.RunMigrations(); err != nil {
		log.Fatalf("Could not run database migrations: %v", err)
	}

	jwtManager := auth.NewJWTManager()

	categoryRepo := infrastructure.NewCategoryRepository(dbService.DB)
	categoryService := application.NewCategoryService(categoryRepo)
	categoryHandler := interfaces.NewCategoryHandler(categoryService)

	transactionRepo := infrastructure.NewTransactionRepository(dbService.DB)
	transactionService := application.NewTransactionService(transactionRepo, categoryService)
	transactionHandler := interfaces.NewTransactionHandler(transactionService)

	clock := application.NewSystemClock()

	budgetRepo := infrastructure.NewBudgetRepository(dbService.DB)
	budgetService := application.NewBudgetService(budgetRepo, categoryService, clock)
	budgetHandler := interfaces.NewBudgetHandler(budgetService)

	dashboardRepo := infrastructure.NewDashboardRepository(dbService.DB)
	dashboardService := application.NewDashboardService(dashboardRepo, clock)
	dashboardHandler := interfaces.NewDashboardHandler(dashboardService)

	userRepo := user.NewUserRepository(dbService.DB)
	userService := user.NewUserService(userRepo, categoryService)
	userHandler := user.NewHandler(userService, jwtManager)

	server := NewServer(userHandler, categoryHandler, transactionHandler, budgetHandler, dashboardHandler, jwtManager, dbService)
	server.RegisterRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting server on :%s", port)
	if err := http.ListenAndServe(":"+port, loggingMiddleware(server.router)); err != nil {
		log.Fatalf("Could not start server: %v", err)
	}
}

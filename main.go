package main

import (
	"log"

	api "expense-tracker-backend/cmd/api"
	authdomain "expense-tracker-backend/internal/auth/domain"
	authRepo "expense-tracker-backend/internal/auth/repository"
	"expense-tracker-backend/internal/auth/token"
	authUsecase "expense-tracker-backend/internal/auth/usecase"
	dashboardUsecase "expense-tracker-backend/internal/dashboard/usecase"
	expensedomain "expense-tracker-backend/internal/expense/domain"
	expenseRepo "expense-tracker-backend/internal/expense/repository"
	expenseUsecase "expense-tracker-backend/internal/expense/usecase"
	incomedomain "expense-tracker-backend/internal/income/domain"
	incomeRepo "expense-tracker-backend/internal/income/repository"
	incomeUsecase "expense-tracker-backend/internal/income/usecase"
	"expense-tracker-backend/pkg/config"
	"expense-tracker-backend/pkg/database"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &incomedomain.Income{}, &expensedomain.Expense{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	incomeRepository := incomeRepo.NewGormIncomeRepository(db)
	expenseRepository := expenseRepo.NewGormExpenseRepository(db)

	// Initialize token service with the process-wide signing secret
	tokenService := token.NewService(cfg.JWTSecret, cfg.JWTExpiry)

	// Initialize use cases
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, tokenService)
	incomeUsecaseInstance := incomeUsecase.NewIncomeUsecase(incomeRepository)
	expenseUsecaseInstance := expenseUsecase.NewExpenseUsecase(expenseRepository)
	dashboardUsecaseInstance := dashboardUsecase.NewDashboardUsecase(incomeRepository, expenseRepository)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, incomeUsecaseInstance, expenseUsecaseInstance, dashboardUsecaseInstance)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

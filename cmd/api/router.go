package api

import (
	"net/http"

	authDelivery "expense-tracker-backend/internal/auth/delivery"
	authUsecase "expense-tracker-backend/internal/auth/usecase"
	dashboardDelivery "expense-tracker-backend/internal/dashboard/delivery"
	dashboardUsecase "expense-tracker-backend/internal/dashboard/usecase"
	expenseDelivery "expense-tracker-backend/internal/expense/delivery"
	expenseUsecase "expense-tracker-backend/internal/expense/usecase"
	incomeDelivery "expense-tracker-backend/internal/income/delivery"
	incomeUsecase "expense-tracker-backend/internal/income/usecase"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, incomeUc incomeUsecase.IncomeUsecase, expenseUc expenseUsecase.ExpenseUsecase, dashboardUc dashboardUsecase.DashboardUsecase) {
	authHandler := authDelivery.NewAuthHandler(authUc)
	incomeHandler := incomeDelivery.NewIncomeHandler(incomeUc)
	expenseHandler := expenseDelivery.NewExpenseHandler(expenseUc)
	dashboardHandler := dashboardDelivery.NewDashboardHandler(dashboardUc)

	protect := authDelivery.AuthMiddleware(authUc)

	api := r.Group("/api/v1")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/getUser", protect, authHandler.GetUserInfo)
		}

		// Income routes (protected)
		income := api.Group("/income")
		income.Use(protect)
		{
			income.POST("/add", incomeHandler.AddIncome)
			income.GET("/get", incomeHandler.GetAllIncome)
			income.GET("/downloadexcel", incomeHandler.DownloadIncome)
			income.DELETE("/:id", incomeHandler.DeleteIncome)
		}

		// Expense routes (protected)
		expense := api.Group("/expense")
		expense.Use(protect)
		{
			expense.POST("/add", expenseHandler.AddExpense)
			expense.GET("/get", expenseHandler.GetAllExpenses)
			expense.GET("/downloadexcel", expenseHandler.DownloadExpenses)
			expense.DELETE("/:id", expenseHandler.DeleteExpense)
		}

		// Dashboard route (protected)
		api.GET("/dashboard", protect, dashboardHandler.GetDashboardData)
	}
}

package api

import (
	"net/http"

	authUsecase "expense-tracker-backend/internal/auth/usecase"
	dashboardUsecase "expense-tracker-backend/internal/dashboard/usecase"
	expenseUsecase "expense-tracker-backend/internal/expense/usecase"
	incomeUsecase "expense-tracker-backend/internal/income/usecase"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase      authUsecase.AuthUsecase
	incomeUsecase    incomeUsecase.IncomeUsecase
	expenseUsecase   expenseUsecase.ExpenseUsecase
	dashboardUsecase dashboardUsecase.DashboardUsecase
}

func NewHandler(authUc authUsecase.AuthUsecase, incomeUc incomeUsecase.IncomeUsecase, expenseUc expenseUsecase.ExpenseUsecase, dashboardUc dashboardUsecase.DashboardUsecase) *Handler {
	return &Handler{
		authUsecase:      authUc,
		incomeUsecase:    incomeUc,
		expenseUsecase:   expenseUc,
		dashboardUsecase: dashboardUc,
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	SetupRoutes(r, h.authUsecase, h.incomeUsecase, h.expenseUsecase, h.dashboardUsecase)

	return r.Run(addr)
}

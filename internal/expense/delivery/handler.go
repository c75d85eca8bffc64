package delivery

import (
	"encoding/csv"
	"errors"
	"fmt"
	"log"
	"net/http"

	"expense-tracker-backend/internal/expense/usecase"

	"github.com/gin-gonic/gin"
)

// ExpenseHandler handles expense-related HTTP requests
type ExpenseHandler struct {
	expenseUsecase usecase.ExpenseUsecase
}

// NewExpenseHandler creates a new ExpenseHandler
func NewExpenseHandler(expenseUsecase usecase.ExpenseUsecase) *ExpenseHandler {
	return &ExpenseHandler{
		expenseUsecase: expenseUsecase,
	}
}

// AddExpenseRequest represents the request body for adding an expense entry
type AddExpenseRequest struct {
	Icon     string  `json:"icon"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"`
}

// AddExpense handles POST /expense/add
func (h *ExpenseHandler) AddExpense(c *gin.Context) {
	userID := c.GetString("userID")

	var req AddExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
		return
	}

	expense, err := h.expenseUsecase.AddExpense(userID, req.Icon, req.Category, req.Amount, req.Date)
	if err != nil {
		if errors.Is(err, usecase.ErrMissingFields) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
			return
		}
		log.Printf("add expense failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error adding expense"})
		return
	}

	c.JSON(http.StatusCreated, expense)
}

// GetAllExpenses handles GET /expense/get
func (h *ExpenseHandler) GetAllExpenses(c *gin.Context) {
	userID := c.GetString("userID")

	expenses, err := h.expenseUsecase.GetUserExpenses(userID)
	if err != nil {
		log.Printf("list expenses failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching expenses"})
		return
	}

	c.JSON(http.StatusOK, expenses)
}

// DeleteExpense handles DELETE /expense/:id
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	userID := c.GetString("userID")
	expenseID := c.Param("id")

	if err := h.expenseUsecase.DeleteExpense(userID, expenseID); err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Expense not found"})
		case errors.Is(err, usecase.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"message": "Not authorized to delete this expense"})
		default:
			log.Printf("delete expense failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting expense"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully"})
}

// DownloadExpenses handles GET /expense/downloadexcel and streams the
// user's expense entries as a CSV attachment.
func (h *ExpenseHandler) DownloadExpenses(c *gin.Context) {
	userID := c.GetString("userID")

	expenses, err := h.expenseUsecase.GetUserExpenses(userID)
	if err != nil {
		log.Printf("download expenses failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error downloading expense data"})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="expense_details.csv"`)

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"Category", "Amount", "Date"})
	for _, expense := range expenses {
		_ = w.Write([]string{
			expense.Category,
			fmt.Sprintf("%.2f", expense.Amount),
			expense.Date.Format("2006-01-02"),
		})
	}
	w.Flush()
}

package delivery

import (
	"encoding/csv"
	"errors"
	"fmt"
	"log"
	"net/http"

	"expense-tracker-backend/internal/income/usecase"

	"github.com/gin-gonic/gin"
)

// IncomeHandler handles income-related HTTP requests
type IncomeHandler struct {
	incomeUsecase usecase.IncomeUsecase
}

// NewIncomeHandler creates a new IncomeHandler
func NewIncomeHandler(incomeUsecase usecase.IncomeUsecase) *IncomeHandler {
	return &IncomeHandler{
		incomeUsecase: incomeUsecase,
	}
}

// AddIncomeRequest represents the request body for adding an income entry
type AddIncomeRequest struct {
	Icon   string  `json:"icon"`
	Source string  `json:"source"`
	Amount float64 `json:"amount"`
	Date   string  `json:"date"`
}

// AddIncome handles POST /income/add
func (h *IncomeHandler) AddIncome(c *gin.Context) {
	userID := c.GetString("userID")

	var req AddIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
		return
	}

	income, err := h.incomeUsecase.AddIncome(userID, req.Icon, req.Source, req.Amount, req.Date)
	if err != nil {
		if errors.Is(err, usecase.ErrMissingFields) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
			return
		}
		log.Printf("add income failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error adding income"})
		return
	}

	c.JSON(http.StatusCreated, income)
}

// GetAllIncome handles GET /income/get
func (h *IncomeHandler) GetAllIncome(c *gin.Context) {
	userID := c.GetString("userID")

	incomes, err := h.incomeUsecase.GetUserIncomes(userID)
	if err != nil {
		log.Printf("list income failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching income"})
		return
	}

	c.JSON(http.StatusOK, incomes)
}

// DeleteIncome handles DELETE /income/:id
func (h *IncomeHandler) DeleteIncome(c *gin.Context) {
	userID := c.GetString("userID")
	incomeID := c.Param("id")

	if err := h.incomeUsecase.DeleteIncome(userID, incomeID); err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Income not found"})
		case errors.Is(err, usecase.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"message": "Not authorized to delete this income"})
		default:
			log.Printf("delete income failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting income"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Income deleted successfully"})
}

// DownloadIncome handles GET /income/downloadexcel and streams the user's
// income entries as a CSV attachment.
func (h *IncomeHandler) DownloadIncome(c *gin.Context) {
	userID := c.GetString("userID")

	incomes, err := h.incomeUsecase.GetUserIncomes(userID)
	if err != nil {
		log.Printf("download income failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error downloading income data"})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="income_details.csv"`)

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"Source", "Amount", "Date"})
	for _, income := range incomes {
		_ = w.Write([]string{
			income.Source,
			fmt.Sprintf("%.2f", income.Amount),
			income.Date.Format("2006-01-02"),
		})
	}
	w.Flush()
}

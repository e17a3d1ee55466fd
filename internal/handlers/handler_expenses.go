package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/mero_khata/internal/core/ports/services"
	"github.com/SscSPs/mero_khata/internal/dto"
	"github.com/SscSPs/mero_khata/internal/middleware"
	"github.com/gin-gonic/gin"
)

type expenseHandler struct {
	khataService     portssvc.ExpenseWriterSvc
	reportingService portssvc.ReportingService
}

// registerExpenseRoutes registers routes related to shop expenses.
func registerExpenseRoutes(rg *gin.RouterGroup, ks portssvc.ExpenseWriterSvc, rs portssvc.ReportingService) {
	h := &expenseHandler{khataService: ks, reportingService: rs}

	expenses := rg.Group("/expenses")
	{
		expenses.GET("", h.listExpenses)
		expenses.POST("", h.addExpense)
		expenses.DELETE("/:expenseID", h.deleteExpense)
	}
}

// listExpenses godoc
// @Summary List expenses
// @Description Lists all expenses newest first with their total
// @Tags expenses
// @Produce json
// @Success 200 {object} dto.ListExpensesResponse
// @Router /expenses [get]
func (h *expenseHandler) listExpenses(c *gin.Context) {
	c.JSON(http.StatusOK, h.reportingService.ListExpenses(c.Request.Context()))
}

// addExpense godoc
// @Summary Add an expense
// @Tags expenses
// @Accept json
// @Produce json
// @Param expense body dto.AddExpenseRequest true "Expense details"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /expenses [post]
func (h *expenseHandler) addExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AddExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	expense, _, err := h.khataService.AddExpense(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "add expense")
		return
	}
	c.JSON(http.StatusCreated, dto.ToExpenseResponse(expense))
}

// deleteExpense godoc
// @Summary Delete an expense
// @Tags expenses
// @Param expenseID path string true "Expense ID"
// @Param confirm query bool true "Must be true"
// @Success 204 "No Content"
// @Failure 409 {object} map[string]string "Not confirmed"
// @Router /expenses/{expenseID} [delete]
func (h *expenseHandler) deleteExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if _, err := h.khataService.DeleteExpense(c.Request.Context(), c.Param("expenseID"), confirmerFromQuery(c)); err != nil {
		respondError(c, logger, err, "delete expense")
		return
	}
	c.Status(http.StatusNoContent)
}

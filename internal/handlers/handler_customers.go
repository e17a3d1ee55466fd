package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/mero_khata/internal/core/ports/services"
	"github.com/SscSPs/mero_khata/internal/dto"
	"github.com/SscSPs/mero_khata/internal/middleware"
	"github.com/gin-gonic/gin"
)

// customerHandler handles HTTP requests for customers and their entries.
type customerHandler struct {
	khataService     portssvc.KhataSvcFacade
	reportingService portssvc.ReportingService
	exportService    portssvc.ExportService
}

func newCustomerHandler(ks portssvc.KhataSvcFacade, rs portssvc.ReportingService, es portssvc.ExportService) *customerHandler {
	return &customerHandler{
		khataService:     ks,
		reportingService: rs,
		exportService:    es,
	}
}

// registerCustomerRoutes registers routes related to customers.
func registerCustomerRoutes(rg *gin.RouterGroup, ks portssvc.KhataSvcFacade, rs portssvc.ReportingService, es portssvc.ExportService) {
	h := newCustomerHandler(ks, rs, es)

	customers := rg.Group("/customers")
	{
		customers.GET("", h.listCustomers)
		customers.POST("", h.createCustomer)
		customers.GET("/:customerID", h.getCustomer)
		customers.DELETE("/:customerID", h.deleteCustomer)
		customers.GET("/:customerID/reminder", h.getReminder)
		customers.GET("/:customerID/statement.xlsx", h.getStatement)

		txns := customers.Group("/:customerID/transactions")
		txns.POST("", h.addTransaction)
		txns.PUT("/:transactionID", h.editTransaction)
		txns.DELETE("/:transactionID", h.deleteTransaction)
	}
}

// listCustomers godoc
// @Summary List customers
// @Description Lists customers with their balances in insertion order, optionally filtered by name or phone
// @Tags customers
// @Produce json
// @Param q query string false "Search by name (any case) or phone"
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListCustomersResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Router /customers [get]
func (h *customerHandler) listCustomers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListCustomersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListCustomers", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.reportingService.ListCustomers(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "list customers")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// createCustomer godoc
// @Summary Create a customer
// @Description Opens a khata for a new customer
// @Tags customers
// @Accept json
// @Produce json
// @Param customer body dto.CreateCustomerRequest true "Customer details"
// @Success 201 {object} dto.CustomerResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /customers [post]
func (h *customerHandler) createCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCustomer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	customer, _, err := h.khataService.CreateCustomer(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "create customer")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCustomerResponse(customer))
}

// getCustomer godoc
// @Summary Get a customer
// @Description Returns a customer with balance and transactions, newest first
// @Tags customers
// @Produce json
// @Param customerID path string true "Customer ID"
// @Success 200 {object} dto.CustomerDetailResponse
// @Failure 404 {object} map[string]string "Customer not found"
// @Router /customers/{customerID} [get]
func (h *customerHandler) getCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	customerID := c.Param("customerID")

	detail, err := h.reportingService.GetCustomer(c.Request.Context(), customerID)
	if err != nil {
		respondError(c, logger, err, "get customer")
		return
	}
	c.JSON(http.StatusOK, detail)
}

// deleteCustomer godoc
// @Summary Delete a customer
// @Description Permanently deletes a customer and all history
// @Tags customers
// @Param customerID path string true "Customer ID"
// @Param confirm query bool true "Must be true"
// @Success 204 "No Content"
// @Failure 409 {object} map[string]string "Not confirmed"
// @Router /customers/{customerID} [delete]
func (h *customerHandler) deleteCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	customerID := c.Param("customerID")

	if _, err := h.khataService.DeleteCustomer(c.Request.Context(), customerID, confirmerFromQuery(c)); err != nil {
		respondError(c, logger, err, "delete customer")
		return
	}
	c.Status(http.StatusNoContent)
}

// getReminder godoc
// @Summary Build a balance reminder
// @Description Returns the reminder text and a WhatsApp link for the customer's phone
// @Tags customers
// @Produce json
// @Param customerID path string true "Customer ID"
// @Success 200 {object} dto.ReminderResponse
// @Failure 400 {object} map[string]string "Invalid phone number"
// @Failure 404 {object} map[string]string "Customer not found"
// @Router /customers/{customerID}/reminder [get]
func (h *customerHandler) getReminder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	reminder, err := h.reportingService.Reminder(c.Request.Context(), c.Param("customerID"))
	if err != nil {
		respondError(c, logger, err, "build reminder")
		return
	}
	c.JSON(http.StatusOK, reminder)
}

// getStatement godoc
// @Summary Download a customer statement
// @Description Renders the customer's history and net balance as a spreadsheet
// @Tags customers
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param customerID path string true "Customer ID"
// @Success 200 {file} file
// @Failure 404 {object} map[string]string "Customer not found"
// @Router /customers/{customerID}/statement.xlsx [get]
func (h *customerHandler) getStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	name, data, err := h.exportService.Statement(c.Request.Context(), c.Param("customerID"))
	if err != nil {
		respondError(c, logger, err, "export statement")
		return
	}
	attach(c, name, xlsxContentType, data)
}

// addTransaction godoc
// @Summary Add a give/take entry
// @Description Appends an entry stamped with the current time
// @Tags transactions
// @Accept json
// @Produce json
// @Param customerID path string true "Customer ID"
// @Param transaction body dto.AddTransactionRequest true "Entry details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Customer not found"
// @Router /customers/{customerID}/transactions [post]
func (h *customerHandler) addTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AddTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, _, err := h.khataService.AddTransaction(c.Request.Context(), c.Param("customerID"), req)
	if err != nil {
		respondError(c, logger, err, "add transaction")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// editTransaction godoc
// @Summary Edit an entry
// @Description Overwrites amount and description and moves the entry to another day, keeping its time
// @Tags transactions
// @Accept json
// @Produce json
// @Param customerID path string true "Customer ID"
// @Param transactionID path string true "Transaction ID"
// @Param transaction body dto.EditTransactionRequest true "New values"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Entry not found"
// @Router /customers/{customerID}/transactions/{transactionID} [put]
func (h *customerHandler) editTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.EditTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for EditTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, _, err := h.khataService.EditTransaction(c.Request.Context(), c.Param("customerID"), c.Param("transactionID"), req)
	if err != nil {
		respondError(c, logger, err, "edit transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// deleteTransaction godoc
// @Summary Delete an entry
// @Tags transactions
// @Param customerID path string true "Customer ID"
// @Param transactionID path string true "Transaction ID"
// @Param confirm query bool true "Must be true"
// @Success 204 "No Content"
// @Failure 409 {object} map[string]string "Not confirmed"
// @Router /customers/{customerID}/transactions/{transactionID} [delete]
func (h *customerHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	_, err := h.khataService.DeleteTransaction(c.Request.Context(), c.Param("customerID"), c.Param("transactionID"), confirmerFromQuery(c))
	if err != nil {
		respondError(c, logger, err, "delete transaction")
		return
	}
	c.Status(http.StatusNoContent)
}

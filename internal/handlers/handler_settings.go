package handlers

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/SscSPs/mero_khata/internal/core/ports/services"
	"github.com/SscSPs/mero_khata/internal/dto"
	"github.com/SscSPs/mero_khata/internal/middleware"
	"github.com/gin-gonic/gin"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	jsonContentType = "application/json"

	maxBackupSize     = 32 << 20
	defaultNoticePage = 10
)

// settingsHandler serves shop settings, backups, notices, the dashboard and named commands.
type settingsHandler struct {
	khataService     portssvc.KhataSvcFacade
	reportingService portssvc.ReportingService
	exportService    portssvc.ExportService
	notices          portssvc.NoticeReader
}

// registerSettingsRoutes registers shop level routes.
func registerSettingsRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := &settingsHandler{
		khataService:     services.Khata,
		reportingService: services.Reporting,
		exportService:    services.Export,
		notices:          services.Notices,
	}

	rg.GET("/dashboard", h.getDashboard)
	rg.PUT("/settings/shop-name", h.updateShopName)
	rg.GET("/backup", h.getBackup)
	rg.POST("/restore", h.restoreBackup)
	rg.GET("/notices", h.listNotices)
	rg.POST("/commands", h.dispatchCommand)
}

// getDashboard godoc
// @Summary Dashboard summary
// @Description Totals to receive and to pay, expenses, recent customers and chart data
// @Tags reports
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Router /dashboard [get]
func (h *settingsHandler) getDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.reportingService.Dashboard(c.Request.Context()))
}

// updateShopName godoc
// @Summary Rename the shop
// @Tags settings
// @Accept json
// @Param settings body dto.UpdateShopNameRequest true "New shop name"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /settings/shop-name [put]
func (h *settingsHandler) updateShopName(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateShopNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateShopName", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if _, err := h.khataService.UpdateShopName(c.Request.Context(), req); err != nil {
		respondError(c, logger, err, "update shop name")
		return
	}
	c.Status(http.StatusNoContent)
}

// getBackup godoc
// @Summary Download a backup
// @Description Downloads the whole document as pretty-printed JSON
// @Tags backup
// @Produce json
// @Success 200 {file} file
// @Router /backup [get]
func (h *settingsHandler) getBackup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	name, data, err := h.exportService.Backup(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "export backup")
		return
	}
	attach(c, name, jsonContentType, data)
}

// restoreBackup godoc
// @Summary Restore a backup
// @Description Replaces all data with the uploaded backup (JSON or JSON5)
// @Tags backup
// @Accept json
// @Param confirm query bool true "Must be true"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid backup file"
// @Failure 409 {object} map[string]string "Not confirmed"
// @Router /restore [post]
func (h *settingsHandler) restoreBackup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBackupSize))
	if err != nil {
		logger.Warn("Failed to read backup upload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return
	}

	if _, err := h.khataService.RestoreBackup(c.Request.Context(), raw, confirmerFromQuery(c)); err != nil {
		respondError(c, logger, err, "restore backup")
		return
	}
	c.Status(http.StatusNoContent)
}

// listNotices godoc
// @Summary Recent notices
// @Description Short user-facing messages, newest first
// @Tags notices
// @Produce json
// @Param limit query int false "Number of notices" default(10)
// @Success 200 {array} dto.NoticeResponse
// @Router /notices [get]
func (h *settingsHandler) listNotices(c *gin.Context) {
	limit := defaultNoticePage
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 {
		limit = v
	}

	recent := h.notices.Recent(limit)
	resp := make([]dto.NoticeResponse, 0, len(recent))
	for _, n := range recent {
		resp = append(resp, dto.NoticeResponse{Level: string(n.Level), Message: n.Message, At: n.At})
	}
	c.JSON(http.StatusOK, resp)
}

// dispatchCommand godoc
// @Summary Run a named command
// @Description Runs one of customer.create, customer.delete, transaction.add, transaction.edit, transaction.delete, expense.add, expense.delete, settings.shop_name
// @Tags commands
// @Accept json
// @Produce json
// @Param command body dto.CommandRequest true "Command"
// @Success 200 {object} dto.CommandResponse
// @Failure 400 {object} map[string]string "Invalid command"
// @Failure 404 {object} map[string]string "Target not found"
// @Failure 409 {object} map[string]string "Not confirmed"
// @Router /commands [post]
func (h *settingsHandler) dispatchCommand(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CommandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Dispatch", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	resp, _, err := h.khataService.Dispatch(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "run "+req.Name)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// attach sends data as a file download.
func attach(c *gin.Context, filename, contentType string, data []byte) {
	c.Header("Content-Disposition", "attachment; filename=\""+filename+"\"")
	c.Data(http.StatusOK, contentType, data)
}

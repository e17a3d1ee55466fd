package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/mero_khata/internal/core/ports/services"
	"github.com/SscSPs/mero_khata/internal/dto"
	"github.com/SscSPs/mero_khata/internal/middleware"
	"github.com/gin-gonic/gin"
)

type documentHandler struct {
	gateway portssvc.PersistenceGatewaySvc
}

func newDocumentHandler(gateway portssvc.PersistenceGatewaySvc) *documentHandler {
	return &documentHandler{gateway: gateway}
}

// registerDocumentRoutes registers whole-document routes.
func registerDocumentRoutes(rg *gin.RouterGroup, gateway portssvc.PersistenceGatewaySvc) {
	h := newDocumentHandler(gateway)

	rg.GET("/document", h.getDocument)
	rg.POST("/sync", h.sync)
}

// getDocument godoc
// @Summary Get the working document
// @Description Returns the whole ledger document as currently held by the backend
// @Tags document
// @Produce json
// @Success 200 {object} domain.Document
// @Router /document [get]
func (h *documentHandler) getDocument(c *gin.Context) {
	c.JSON(http.StatusOK, h.gateway.Document())
}

// sync godoc
// @Summary Reload and save the document
// @Description Loads the document from the remote store (or local cache) and saves it back to both
// @Tags document
// @Produce json
// @Success 200 {object} dto.SyncResponse
// @Router /sync [post]
func (h *documentHandler) sync(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	source, saved := h.gateway.Sync(c.Request.Context())
	err := saved.Wait(c.Request.Context())
	if err != nil {
		logger.Warn("Sync finished without reaching the remote store", slog.String("error", err.Error()))
	}
	logger.Info("Document synced", slog.String("source", string(source)))

	c.JSON(http.StatusOK, dto.SyncResponse{Source: string(source), RemoteSynced: err == nil})
}

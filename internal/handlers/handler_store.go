package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/SscSPs/mero_khata/internal/apperrors"
	portssvc "github.com/SscSPs/mero_khata/internal/core/ports/services"
	"github.com/SscSPs/mero_khata/internal/dto"
	"github.com/SscSPs/mero_khata/internal/middleware"
	"github.com/gin-gonic/gin"
)

const maxDocumentBody = 32 << 20

// storeHandler serves the shared document to backend instances.
type storeHandler struct {
	store portssvc.DocumentStoreSvc
}

func registerStoreDocumentRoutes(rg *gin.RouterGroup, store portssvc.DocumentStoreSvc) {
	h := &storeHandler{store: store}

	rg.GET("/document", h.getDocument)
	rg.POST("/document", h.postDocument)
}

// getDocument godoc
// @Summary Get the stored document
// @Description Returns the stored document, creating the default one on first use
// @Tags store
// @Produce json
// @Success 200 {object} domain.Document
// @Router /api/document [get]
func (h *storeHandler) getDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	raw, err := h.store.Get(c.Request.Context())
	if err != nil {
		logger.Error("Failed to read stored document", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.StoreStatusResponse{Status: "error", Message: "Failed to read data"})
		return
	}
	c.Data(http.StatusOK, jsonContentType, raw)
}

// postDocument godoc
// @Summary Overwrite the stored document
// @Tags store
// @Accept json
// @Produce json
// @Success 200 {object} dto.StoreStatusResponse
// @Failure 400 {object} dto.StoreStatusResponse "Invalid Data"
// @Router /api/document [post]
func (h *storeHandler) postDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxDocumentBody))
	if err != nil {
		logger.Warn("Failed to read document upload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.StoreStatusResponse{Status: "error", Message: "Invalid Data"})
		return
	}

	if err := h.store.Overwrite(c.Request.Context(), raw); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, dto.StoreStatusResponse{Status: "error", Message: "Invalid Data"})
			return
		}
		logger.Error("Failed to store document", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.StoreStatusResponse{Status: "error", Message: "Failed to save data"})
		return
	}
	c.JSON(http.StatusOK, dto.StoreStatusResponse{Status: "success"})
}

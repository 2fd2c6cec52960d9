package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/walletapp/wallet_ledger_app/internal/core/ports/services"
	"github.com/walletapp/wallet_ledger_app/internal/dto"
	"github.com/walletapp/wallet_ledger_app/internal/middleware"
)

// transactionHandler serves the ledger mutation and history endpoints.
type transactionHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func registerTransactionRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := &transactionHandler{ledgerService: ledgerService}

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listTransactions)
		transactions.GET("/:id", h.getTransaction)
		transactions.POST("/:id/reverse", h.reverseTransaction)
		transactions.POST("/archive", h.archiveTransactions)
	}
}

func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind transaction request", slog.String("error", err.Error()))
		respondBindingError(c, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: ErrorBody{Code: "UNAUTHORIZED", Message: "missing user identity"}})
		return
	}

	txn, err := h.ledgerService.ApplyTransaction(c.Request.Context(), portssvc.ApplyTransactionParams{
		UserID:      userID,
		Amount:      req.Amount,
		Type:        req.Type,
		Description: req.Description,
		Reference:   req.Reference,
		Metadata: map[string]string{
			"ip":        c.ClientIP(),
			"userAgent": c.Request.UserAgent(),
		},
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(*txn))
}

func (h *transactionHandler) getTransaction(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: ErrorBody{Code: "UNAUTHORIZED", Message: "missing user identity"}})
		return
	}

	txn, err := h.ledgerService.GetTransaction(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(*txn))
}

func (h *transactionHandler) listTransactions(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: ErrorBody{Code: "UNAUTHORIZED", Message: "missing user identity"}})
		return
	}

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, err)
		return
	}

	page, err := h.ledgerService.ListTransactions(c.Request.Context(), userID, params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *transactionHandler) reverseTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: ErrorBody{Code: "UNAUTHORIZED", Message: "missing user identity"}})
		return
	}

	transactionID := c.Param("id")
	reversal, err := h.ledgerService.ReverseTransaction(c.Request.Context(), transactionID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Transaction reversed via API",
		slog.String("original_id", transactionID),
		slog.String("reversal_id", reversal.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(*reversal))
}

// archiveRequest carries the archive cutoff; defaults to 90 days back.
type archiveRequest struct {
	OlderThan *time.Time `json:"olderThan" time_format:"2006-01-02T15:04:05Z07:00"`
}

func (h *transactionHandler) archiveTransactions(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: ErrorBody{Code: "UNAUTHORIZED", Message: "missing user identity"}})
		return
	}

	var req archiveRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		respondBindingError(c, err)
		return
	}

	olderThan := time.Now().UTC().Add(-90 * 24 * time.Hour)
	if req.OlderThan != nil {
		olderThan = *req.OlderThan
	}

	count, err := h.ledgerService.ArchiveTransactions(c.Request.Context(), userID, olderThan)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"archived": count})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/walletapp/wallet_ledger_app/internal/core/ports/services"
	"github.com/walletapp/wallet_ledger_app/internal/middleware"
)

// balanceHandler serves the cached balance read path.
type balanceHandler struct {
	balanceService portssvc.BalanceSvcFacade
}

func registerBalanceRoutes(rg *gin.RouterGroup, balanceService portssvc.BalanceSvcFacade) {
	h := &balanceHandler{balanceService: balanceService}

	balance := rg.Group("/balance")
	{
		balance.GET("", h.getBalance)
		balance.GET("/details", h.getBalanceDetails)
	}
}

func (h *balanceHandler) getBalance(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: ErrorBody{Code: "UNAUTHORIZED", Message: "missing user identity"}})
		return
	}

	resp, err := h.balanceService.GetCurrentBalance(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *balanceHandler) getBalanceDetails(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: ErrorBody{Code: "UNAUTHORIZED", Message: "missing user identity"}})
		return
	}

	details, err := h.balanceService.GetBalanceDetails(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, details)
}

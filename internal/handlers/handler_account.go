package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/walletapp/wallet_ledger_app/internal/core/domain"
	portssvc "github.com/walletapp/wallet_ledger_app/internal/core/ports/services"
	"github.com/walletapp/wallet_ledger_app/internal/dto"
	"github.com/walletapp/wallet_ledger_app/internal/middleware"
)

// accountHandler serves account lookup, summary and explicit creation.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
}

func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade) {
	h := &accountHandler{accountService: accountService}

	account := rg.Group("/account")
	{
		account.POST("", h.createAccount)
		account.GET("", h.getAccount)
		account.GET("/summary", h.getAccountSummary)
		account.PATCH("/status", h.updateAccountStatus)
	}
}

// createAccount opens the caller's account. Normally registration does this;
// the endpoint exists so a user whose account creation failed can retry.
func (h *accountHandler) createAccount(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: ErrorBody{Code: "UNAUTHORIZED", Message: "missing user identity"}})
		return
	}

	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		respondBindingError(c, err)
		return
	}

	account, err := h.accountService.CreateAccountForUser(c.Request.Context(), userID, req.CurrencyCode)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAccountResponse(*account))
}

func (h *accountHandler) getAccount(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: ErrorBody{Code: "UNAUTHORIZED", Message: "missing user identity"}})
		return
	}

	account, err := h.accountService.GetAccountByUserID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(*account))
}

// updateAccountStatus freezes or reactivates the caller's account. The
// ledger rejects transactions on anything but ACTIVE.
func (h *accountHandler) updateAccountStatus(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: ErrorBody{Code: "UNAUTHORIZED", Message: "missing user identity"}})
		return
	}

	var req dto.UpdateAccountStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	account, err := h.accountService.UpdateAccountStatus(c.Request.Context(), userID, domain.AccountStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(*account))
}

func (h *accountHandler) getAccountSummary(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: ErrorBody{Code: "UNAUTHORIZED", Message: "missing user identity"}})
		return
	}

	summary, err := h.accountService.GetAccountSummary(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

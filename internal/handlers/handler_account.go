package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/customer_ledger_api/internal/core/ports/services"
	"github.com/SscSPs/customer_ledger_api/internal/dto"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(as portssvc.AccountSvcFacade) *accountHandler {
	return &accountHandler{
		accountService: as,
	}
}

// registerAccountRoutes registers routes related to accounts under a customer group.
func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade) {
	h := newAccountHandler(accountService)

	accounts := rg.Group("/accounts")
	{
		accounts.GET("", h.listAccounts)
		accounts.POST("", h.createAccount)
		accounts.GET("/:"+accountIDParam, h.getAccount)
		accounts.PUT("/:"+accountIDParam, h.updateAccount)
	}
}

// listAccounts godoc
// @Summary List accounts
// @Description Lists every account owned by the customer
// @Tags accounts
// @Produce json
// @Param customerID path int true "Customer ID"
// @Success 200 {array} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid customer ID"
// @Failure 404 {object} map[string]string "Customer not found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Security BearerAuth
// @Router /customers/{customerID}/accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	customerID, logger, ok := customerScope(c)
	if !ok {
		return
	}

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), customerID)
	if err != nil {
		respondError(c, logger, err, "Failed to list accounts")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAccountResponse(accounts))
}

// createAccount godoc
// @Summary Create a new account
// @Description Opens a new account for the customer
// @Tags accounts
// @Accept x-www-form-urlencoded,json
// @Produce json
// @Param customerID path int true "Customer ID"
// @Param account_type formData string true "checking, savings, mortgage, retirement or investing"
// @Param balance formData string true "Opening balance"
// @Param account_number formData string true "Account number"
// @Param routing_number formData string true "Routing number"
// @Param status formData string true "opened, closed, locked or abandoned"
// @Param active formData boolean true "Whether the account is active"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Customer not found"
// @Failure 409 {object} map[string]string "Account number already in use"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Security BearerAuth
// @Router /customers/{customerID}/accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	customerID, logger, ok := customerScope(c)
	if !ok {
		return
	}

	var form dto.CreateAccountForm
	if err := c.ShouldBind(&form); err != nil {
		respondBindError(c, logger, err)
		return
	}
	req, err := form.Parse()
	if err != nil {
		respondError(c, logger, err, "Invalid account request")
		return
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), customerID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create account")
		return
	}
	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// getAccount godoc
// @Summary Get an account
// @Tags accounts
// @Produce json
// @Param customerID path int true "Customer ID"
// @Param accountID path int true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Customer or account not found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Security BearerAuth
// @Router /customers/{customerID}/accounts/{accountID} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	customerID, accountID, logger, ok := accountScope(c)
	if !ok {
		return
	}

	account, err := h.accountService.GetAccount(c.Request.Context(), customerID, accountID)
	if err != nil {
		respondError(c, logger, err, "Failed to get account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// updateAccount godoc
// @Summary Update an account
// @Description Updates non-balance account fields. Sending balance is rejected.
// @Tags accounts
// @Accept x-www-form-urlencoded,json
// @Produce json
// @Param customerID path int true "Customer ID"
// @Param accountID path int true "Account ID"
// @Param account_type formData string false "checking, savings, mortgage, retirement or investing"
// @Param account_number formData string false "Account number"
// @Param routing_number formData string false "Routing number"
// @Param status formData string false "opened, closed, locked or abandoned"
// @Param active formData boolean false "Whether the account is active"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input or balance present"
// @Failure 404 {object} map[string]string "Customer or account not found"
// @Failure 409 {object} map[string]string "Account number already in use"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Security BearerAuth
// @Router /customers/{customerID}/accounts/{accountID} [put]
func (h *accountHandler) updateAccount(c *gin.Context) {
	customerID, accountID, logger, ok := accountScope(c)
	if !ok {
		return
	}

	var form dto.UpdateAccountForm
	if err := c.ShouldBind(&form); err != nil {
		respondBindError(c, logger, err)
		return
	}
	req, err := form.Parse()
	if err != nil {
		respondError(c, logger, err, "Invalid account update")
		return
	}

	account, err := h.accountService.UpdateAccount(c.Request.Context(), customerID, accountID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to update account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

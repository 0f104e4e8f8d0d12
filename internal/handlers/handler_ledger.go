package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/customer_ledger_api/internal/core/ports/services"
	"github.com/SscSPs/customer_ledger_api/internal/dto"
	"github.com/gin-gonic/gin"
)

// NextTokenHeader carries the token for the following ledger page.
const NextTokenHeader = "X-Next-Token"

type ledgerHandler struct {
	ledgerService portssvc.LedgerReaderSvc
}

func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerReaderSvc) {
	h := &ledgerHandler{ledgerService: ledgerService}

	account := rg.Group("/accounts/:" + accountIDParam)
	{
		account.GET("/ledger", h.getLedger)
		account.GET("/reconciliation", h.getReconciliation)
	}
}

// getLedger godoc
// @Summary List ledger entries
// @Description Lists the account's ledger entries in creation order. When more entries remain the token for the next page is returned in the X-Next-Token header.
// @Tags ledger
// @Produce json
// @Param customerID path int true "Customer ID"
// @Param accountID path int true "Account ID"
// @Param limit query int false "Page size, 0 for the whole ledger" minimum(0) maximum(1000)
// @Param next_token query string false "Token from a previous page"
// @Success 200 {array} dto.LedgerEntryResponse
// @Header 200 {string} X-Next-Token "Token for the next page"
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 404 {object} map[string]string "Customer or account not found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Security BearerAuth
// @Router /customers/{customerID}/accounts/{accountID}/ledger [get]
func (h *ledgerHandler) getLedger(c *gin.Context) {
	customerID, accountID, logger, ok := accountScope(c)
	if !ok {
		return
	}

	var params dto.ListLedgerParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}

	page, err := h.ledgerService.GetLedger(c.Request.Context(), customerID, accountID, params)
	if err != nil {
		respondError(c, logger, err, "Failed to list ledger entries")
		return
	}
	if page.NextToken != nil {
		c.Header(NextTokenHeader, *page.NextToken)
	}
	c.JSON(http.StatusOK, page.Entries)
}

// getReconciliation godoc
// @Summary Reconcile an account
// @Description Compares the account balance with its opening balance plus the sum of its ledger entries
// @Tags ledger
// @Produce json
// @Param customerID path int true "Customer ID"
// @Param accountID path int true "Account ID"
// @Success 200 {object} domain.Reconciliation
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Customer or account not found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Security BearerAuth
// @Router /customers/{customerID}/accounts/{accountID}/reconciliation [get]
func (h *ledgerHandler) getReconciliation(c *gin.Context) {
	customerID, accountID, logger, ok := accountScope(c)
	if !ok {
		return
	}

	rec, err := h.ledgerService.Reconcile(c.Request.Context(), customerID, accountID)
	if err != nil {
		respondError(c, logger, err, "Failed to reconcile account")
		return
	}
	c.JSON(http.StatusOK, rec)
}

package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/customer_ledger_api/internal/core/ports/services"
	"github.com/SscSPs/customer_ledger_api/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type transferHandler struct {
	transferService portssvc.TransferSvc
}

func registerTransferRoutes(rg *gin.RouterGroup, transferService portssvc.TransferSvc) {
	h := &transferHandler{transferService: transferService}
	rg.POST("/transfer", h.transfer)
}

// transfer godoc
// @Summary Transfer funds
// @Description Moves an amount between two accounts of the customer as one atomic unit. Parameters may be sent as form values, query parameters or a JSON body.
// @Tags transfers
// @Accept x-www-form-urlencoded,json
// @Produce json
// @Param customerID path int true "Customer ID"
// @Param from_account_id formData int true "Account to debit"
// @Param to_account_id formData int true "Account to credit"
// @Param amount formData string true "Positive amount with at most two fractional digits"
// @Success 200 {object} dto.TransferResponse
// @Failure 400 {object} map[string]string "Missing or invalid parameter, insufficient funds or account not transferable"
// @Failure 404 {object} map[string]string "Customer or account not found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Security BearerAuth
// @Router /customers/{customerID}/transfer [post]
func (h *transferHandler) transfer(c *gin.Context) {
	customerID, logger, ok := customerScope(c)
	if !ok {
		return
	}

	form, err := bindTransferForm(c)
	if err != nil {
		respondBindError(c, logger, err)
		return
	}
	req, err := form.Parse()
	if err != nil {
		respondError(c, logger, err, "Invalid transfer request")
		return
	}

	logger = logger.With(
		slog.Int64("from_account_id", req.FromAccountID),
		slog.Int64("to_account_id", req.ToAccountID),
		slog.String("amount", req.Amount.String()),
	)
	receipt, err := h.transferService.Transfer(c.Request.Context(), customerID, req.FromAccountID, req.ToAccountID, req.Amount)
	if err != nil {
		respondError(c, logger, err, "Transfer rejected")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransferResponse(receipt))
}

// bindTransferForm reads the transfer parameters from the body and query string.
// Form binding already merges the query; a JSON body falls back to the query
// for any field it leaves out.
func bindTransferForm(c *gin.Context) (dto.TransferForm, error) {
	var form dto.TransferForm
	if c.ContentType() != binding.MIMEJSON {
		return form, c.ShouldBind(&form)
	}
	if err := c.ShouldBindJSON(&form); err != nil && !errors.Is(err, io.EOF) {
		return form, err
	}
	var query dto.TransferForm
	if err := c.ShouldBindQuery(&query); err != nil {
		return form, err
	}
	return form.Merge(query), nil
}

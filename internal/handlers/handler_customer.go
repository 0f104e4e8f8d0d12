package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/customer_ledger_api/internal/core/ports/services"
	"github.com/SscSPs/customer_ledger_api/internal/dto"
	"github.com/SscSPs/customer_ledger_api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// customerHandler handles HTTP requests related to customers.
type customerHandler struct {
	customerService portssvc.CustomerSvcFacade
}

func newCustomerHandler(cs portssvc.CustomerSvcFacade) *customerHandler {
	return &customerHandler{customerService: cs}
}

// registerCustomerRoutes registers routes related to customers.
func registerCustomerRoutes(rg *gin.RouterGroup, customerService portssvc.CustomerSvcFacade) {
	h := newCustomerHandler(customerService)

	customers := rg.Group("/customers")
	{
		customers.GET("", h.listCustomers)
		customers.POST("", h.createCustomer)
		customers.GET("/:"+middleware.CustomerIDParam, h.getCustomer)
		customers.PUT("/:"+middleware.CustomerIDParam, h.updateCustomer)
	}
}

// listCustomers godoc
// @Summary List customers
// @Description Lists every customer
// @Tags customers
// @Produce json
// @Success 200 {array} dto.CustomerResponse
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Security BearerAuth
// @Router /customers [get]
func (h *customerHandler) listCustomers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	customers, err := h.customerService.ListCustomers(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list customers")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCustomerResponse(customers))
}

// createCustomer godoc
// @Summary Create a customer
// @Description Registers a new customer
// @Tags customers
// @Accept x-www-form-urlencoded,json
// @Produce json
// @Param first_name formData string true "First name"
// @Param last_name formData string true "Last name"
// @Param phone_number formData string true "Phone number"
// @Param email formData string true "Email address"
// @Param ssn formData string true "Social security number (123-45-6789)"
// @Param active formData boolean true "Whether the customer is active"
// @Success 201 {object} dto.CustomerResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Security BearerAuth
// @Router /customers [post]
func (h *customerHandler) createCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var form dto.CreateCustomerForm
	if err := c.ShouldBind(&form); err != nil {
		respondBindError(c, logger, err)
		return
	}
	req, err := form.Parse()
	if err != nil {
		respondError(c, logger, err, "Invalid customer request")
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create customer")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCustomerResponse(customer))
}

// getCustomer godoc
// @Summary Get a customer
// @Tags customers
// @Produce json
// @Param customerID path int true "Customer ID"
// @Success 200 {object} dto.CustomerResponse
// @Failure 400 {object} map[string]string "Invalid customer ID"
// @Failure 404 {object} map[string]string "Customer not found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Security BearerAuth
// @Router /customers/{customerID} [get]
func (h *customerHandler) getCustomer(c *gin.Context) {
	customerID, logger, ok := customerScope(c)
	if !ok {
		return
	}

	customer, err := h.customerService.GetCustomer(c.Request.Context(), customerID)
	if err != nil {
		respondError(c, logger, err, "Failed to get customer")
		return
	}
	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

// updateCustomer godoc
// @Summary Update a customer
// @Description Updates the provided customer fields
// @Tags customers
// @Accept x-www-form-urlencoded,json
// @Produce json
// @Param customerID path int true "Customer ID"
// @Param first_name formData string false "First name"
// @Param last_name formData string false "Last name"
// @Param phone_number formData string false "Phone number"
// @Param email formData string false "Email address"
// @Param ssn formData string false "Social security number"
// @Param active formData boolean false "Whether the customer is active"
// @Success 200 {object} dto.CustomerResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Customer not found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Security BearerAuth
// @Router /customers/{customerID} [put]
func (h *customerHandler) updateCustomer(c *gin.Context) {
	customerID, logger, ok := customerScope(c)
	if !ok {
		return
	}

	var form dto.UpdateCustomerForm
	if err := c.ShouldBind(&form); err != nil {
		respondBindError(c, logger, err)
		return
	}
	req, err := form.Parse()
	if err != nil {
		respondError(c, logger, err, "Invalid customer update")
		return
	}

	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), customerID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to update customer")
		return
	}
	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

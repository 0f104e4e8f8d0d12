package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/SscSPs/customer_ledger_api/internal/apperrors"
	"github.com/SscSPs/customer_ledger_api/internal/dto"
	"github.com/SscSPs/customer_ledger_api/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const internalServerError = "Internal Server Error"

const accountIDParam = "accountID"

// statusFor maps an application error to its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrMissingParameter),
		errors.Is(err, apperrors.ErrInvalidAmount),
		errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrInsufficientFunds),
		errors.Is(err, apperrors.ErrAccountNotTransferable):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the error body for err. Client errors carry the error text;
// anything else is logged and answered with an opaque message.
func respondError(c *gin.Context, logger *slog.Logger, err error, msg string) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error(msg, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": internalServerError})
		return
	}
	logger.Warn(msg, slog.String("error", err.Error()), slog.Int("status", status))
	c.JSON(status, gin.H{"error": err.Error()})
}

// respondBindError reports a request that could not be bound or validated.
func respondBindError(c *gin.Context, logger *slog.Logger, err error) {
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, gin.H{"error": describeValidation(verrs)})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
}

// describeValidation turns validator failures into one message naming the
// request fields, e.g. "email must be a valid email; ssn must be a valid ssn".
func describeValidation(verrs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fe.Field()+" is required")
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param()))
		case "min", "max":
			msgs = append(msgs, fmt.Sprintf("%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s must be a valid %s", fe.Field(), fe.Tag()))
		}
	}
	return apperrors.ErrValidation.Error() + ": " + strings.Join(msgs, "; ")
}

// useFormFieldNames makes validation errors report the request field name
// (first_name) instead of the Go field name (FirstName).
func useFormFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
}

// pathID parses a positive id route parameter, writing a 400 when it is malformed.
func pathID(c *gin.Context, logger *slog.Logger, name string) (int64, bool) {
	id, err := dto.ParseID(name, c.Param(name))
	if err != nil {
		respondError(c, logger, err, "Invalid path parameter")
		return 0, false
	}
	return id, true
}

// customerScope parses the customer id and returns a logger carrying it.
func customerScope(c *gin.Context) (int64, *slog.Logger, bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	customerID, ok := pathID(c, logger, middleware.CustomerIDParam)
	if !ok {
		return 0, logger, false
	}
	return customerID, logger.With(slog.Int64("customer_id", customerID)), true
}

// accountScope parses both the customer and account ids.
func accountScope(c *gin.Context) (int64, int64, *slog.Logger, bool) {
	customerID, logger, ok := customerScope(c)
	if !ok {
		return 0, 0, logger, false
	}
	accountID, ok := pathID(c, logger, accountIDParam)
	if !ok {
		return 0, 0, logger, false
	}
	return customerID, accountID, logger.With(slog.Int64("account_id", accountID)), true
}

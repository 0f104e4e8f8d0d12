package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// subjectKey stores the authenticated token subject (a customer id) in the request context.
const subjectKey = contextKey("subject")

// GetSubjectFromContext retrieves the authenticated subject from the Gin context.
// It returns the subject and a boolean indicating if it was found.
func GetSubjectFromContext(c *gin.Context) (string, bool) {
	return SubjectFromCtx(c.Request.Context())
}

// SubjectFromCtx retrieves the authenticated subject from a standard context.
func SubjectFromCtx(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(subjectKey).(string)
	return subject, ok && subject != ""
}

package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/book-pricing-service/internal/domain/model"
)

// AuditLog records a business action such as a priced cart.
func AuditLog(al *AsyncLogger, c *gin.Context, actionType, message string, fields map[string]interface{}) {
	if al == nil {
		return
	}
	entry := newAuditEntry(c, "info", actionType, message)
	entry.WithFields(fields)
	al.Log(entry)
}

// AuditLogError records a rejected or failed business action.
func AuditLogError(al *AsyncLogger, c *gin.Context, actionType, message string, err error, fields map[string]interface{}) {
	if al == nil {
		return
	}
	entry := newAuditEntry(c, "error", actionType, message)
	if err != nil {
		entry.Error = err.Error()
	}
	entry.WithFields(fields)
	al.Log(entry)
}

func newAuditEntry(c *gin.Context, level, actionType, message string) *model.LogEntry {
	return &model.LogEntry{
		Timestamp:  time.Now().UTC(),
		Level:      level,
		Message:    message,
		RequestID:  GetRequestID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		Subject:    GetSubject(c),
		ActionType: actionType,
	}
}

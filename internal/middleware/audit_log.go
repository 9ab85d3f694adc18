package middleware

import "github.com/gin-gonic/gin"

const auditFieldsKey = "audit_fields"

// AddAuditField attaches a key/value to the request log entry written by
// RequestLogger, e.g. the quantity a handler calculated.
func AddAuditField(c *gin.Context, key string, value interface{}) {
	fields := AuditFields(c)
	if fields == nil {
		fields = make(map[string]interface{})
		c.Set(auditFieldsKey, fields)
	}
	fields[key] = value
}

// AuditFields returns the fields added so far, or nil.
func AuditFields(c *gin.Context) map[string]interface{} {
	v, ok := c.Get(auditFieldsKey)
	if !ok {
		return nil
	}
	fields, _ := v.(map[string]interface{})
	return fields
}

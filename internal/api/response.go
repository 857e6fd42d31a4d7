package api

import (
	"github.com/blog-backend-api/internal/locale"
	"github.com/gin-gonic/gin"
)

// SuccessEnvelope is the uniform success response body
type SuccessEnvelope struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorEnvelope is the uniform error response body
type ErrorEnvelope struct {
	Status  int    `json:"status"`
	Level   string `json:"level"`
	Message string `json:"message"`
	Extra   string `json:"extra"`
}

const (
	missingSuccessMessage = "Translate message not found"
	missingErrorMessage   = "Error code not found"
)

// respondSuccess resolves a message code such as "articleApi-1000"
// through the locale table and writes the success envelope. A nil data
// value is omitted from the body.
func respondSuccess(c *gin.Context, status int, code string, data interface{}) {
	message, ok := locale.Message(requestLang(c), "success-"+code)
	if !ok {
		message = missingSuccessMessage
	}
	c.JSON(status, SuccessEnvelope{Status: status, Message: message, Data: data})
}

// respondError resolves an error code and the optional underlying cause
// into the error envelope. A cause whose message is a domain,layer,code
// triple is re-resolved through the locale table; any other cause is
// carried verbatim in extra, except in release mode where raw internals
// are suppressed.
func respondError(c *gin.Context, status int, code string, cause error) {
	lang := requestLang(c)
	message, ok := locale.Message(lang, "error-"+code)
	if !ok {
		message = missingErrorMessage
	}

	extra := ""
	if cause != nil {
		if domain, layer, codePart, ok := locale.ParseCoded(cause); ok {
			extra, ok = locale.Message(lang, locale.CodedKey(domain, layer, codePart))
			if !ok {
				extra = missingErrorMessage
			}
		} else if gin.Mode() != gin.ReleaseMode {
			extra = cause.Error()
		}
		// Register with the framework's error hook so the request
		// logger picks it up.
		_ = c.Error(cause)
	}

	c.Abort()
	c.JSON(status, ErrorEnvelope{
		Status:  status,
		Level:   locale.Level(code),
		Message: message,
		Extra:   extra,
	})
}

func requestLang(c *gin.Context) string {
	return c.GetHeader("Accept-Language")
}

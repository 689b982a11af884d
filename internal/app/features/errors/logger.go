// internal/app/features/errors/logger.go
package errors

import (
	"net/http"

	"github.com/dalemusser/userdirectory/internal/app/system/viewsession"
	"go.uber.org/zap"
)

// ErrorLogger logs handler failures with request context and answers the
// client with a short plain-text message.
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger wraps logger for use by feature handlers.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: logger}
}

func (e *ErrorLogger) fields(r *http.Request, err error) []zap.Field {
	fields := []zap.Field{
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	}
	if id, ok := viewsession.CurrentViewID(r); ok {
		fields = append(fields, zap.String("view_id", id))
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	return fields
}

// LogServerError logs at error level and writes a 500 with userMsg.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg string) {
	e.log.Error(msg, e.fields(r, err)...)
	if userMsg == "" {
		userMsg = "Something went wrong."
	}
	http.Error(w, userMsg, http.StatusInternalServerError)
}

// LogBadRequest logs at warn level and writes a 400 with userMsg.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg string) {
	e.log.Warn(msg, e.fields(r, err)...)
	if userMsg == "" {
		userMsg = "Bad request."
	}
	http.Error(w, userMsg, http.StatusBadRequest)
}

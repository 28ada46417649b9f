package http

import (
	"surf-api/pkg/log"
	"surf-api/pkg/msg"

	"go.uber.org/zap"
)

// HTTPLogger interface defines methods for logging HTTP requests and responses
type HTTPLogger interface {
	// LogRequest is called before the request is sent with all request data formed
	LogRequest(method, url string, body string)

	// LogResponseSuccess is called immediately after receiving a successful response (non-error HTTP status)
	LogResponseSuccess(method, url string, httpStatus int, latency int64)

	// LogResponseError is called after a transport failure (httpStatus 0) or an error HTTP status
	LogResponseError(method, url string, httpStatus int, responseBody string, latency int64, err error)

	// LogRequestRetry is called when backoff exists and a retry attempt is about to be made
	LogRequestRetry(method, url string, httpStatus int, err error, retryCount, maxRetries int)
}

// ZapLogger writes HTTP client events through the application logger.
type ZapLogger struct {
	client string
}

// NewZapLogger creates an HTTPLogger tagging every entry with the client name.
func NewZapLogger(client string) *ZapLogger {
	return &ZapLogger{client: client}
}

func (l *ZapLogger) LogRequest(method, url string, body string) {
	log.Debug(msg.GetMessage("http.request", method, url),
		zap.String("client", l.client),
		zap.String("body", body))
}

func (l *ZapLogger) LogResponseSuccess(method, url string, httpStatus int, latency int64) {
	log.Debug(msg.GetMessage("http.response", method, url, httpStatus, latency),
		zap.String("client", l.client),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency))
}

func (l *ZapLogger) LogResponseError(method, url string, httpStatus int, responseBody string, latency int64, err error) {
	log.Warn(msg.GetMessage("http.response-error", method, url, httpStatus, latency, err.Error()),
		zap.String("client", l.client),
		zap.Int("status", httpStatus),
		zap.String("response", responseBody),
		zap.Int64("latency_ms", latency),
		zap.Error(err))
}

func (l *ZapLogger) LogRequestRetry(method, url string, httpStatus int, err error, retryCount, maxRetries int) {
	log.Warn(msg.GetMessage("http.retry", method, url, retryCount, maxRetries, httpStatus, err.Error()),
		zap.String("client", l.client),
		zap.Int("retry", retryCount))
}

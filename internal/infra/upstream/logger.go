package upstream

import (
	"strconv"

	"go.uber.org/zap"

	"weather-api/internal/infra/metrics"
	"weather-api/pkg/http"
	"weather-api/pkg/log"
	"weather-api/pkg/msg"
)

// Logger writes outbound calls to the application log and records their metrics.
type Logger struct{}

var _ http.HTTPLogger = Logger{}

func NewLogger() Logger {
	return Logger{}
}

func (Logger) LogRequest(method, url string, headers map[string]string, body string) {
	log.Debug(msg.GetMessage("upstream.request", method, url),
		zap.String("method", method),
		zap.String("url", url),
		zap.Any("headers", headers),
	)
}

func (Logger) LogResponseSuccess(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64) {
	observe(method, httpStatus, latency)
	log.Info(msg.GetMessage("upstream.success", method, url, httpStatus, latency),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
		zap.Int("response_size", len(responseBody)),
	)
}

func (Logger) LogResponseError(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error) {
	observe(method, httpStatus, latency)
	log.Error(msg.GetMessage("upstream.error", method, url, httpStatus, latency, err),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
		zap.String("response", responseBody),
		zap.Error(err),
	)
}

func observe(method string, httpStatus int, latency int64) {
	metrics.UpstreamRequests.WithLabelValues(method, strconv.Itoa(httpStatus)).Inc()
	metrics.UpstreamLatency.WithLabelValues(method).Observe(float64(latency) / 1000)
}

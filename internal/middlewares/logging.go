package middlewares

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDHeader carries the per-request ID to the chat backend.
const RequestIDHeader = "X-Request-ID"

// RoundTripperFunc adapts a function to http.RoundTripper.
type RoundTripperFunc func(*http.Request) (*http.Response, error)

func (f RoundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

// LoggingMiddleware returns a client middleware that tags each outgoing
// request with a fresh X-Request-ID and logs the request and its outcome.
// A request that already carries an ID keeps it.
func LoggingMiddleware(log *zap.SugaredLogger) func(http.RoundTripper) http.RoundTripper {
	return func(next http.RoundTripper) http.RoundTripper {
		if next == nil {
			next = http.DefaultTransport
		}
		return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			reqID := r.Header.Get(RequestIDHeader)
			if reqID == "" {
				reqID = uuid.New().String()
				// RoundTrippers must not modify the caller's request
				r = r.Clone(r.Context())
				r.Header.Set(RequestIDHeader, reqID)
			}

			start := time.Now()
			log.Infow("request",
				"request_id", reqID,
				"method", r.Method,
				"uri", r.URL.String(),
			)

			resp, err := next.RoundTrip(r)
			duration := time.Since(start)
			if err != nil {
				log.Errorw("request failed",
					"request_id", reqID,
					"duration", duration,
					"error", err,
				)
				return nil, err
			}

			log.Infow("response",
				"request_id", reqID,
				"status", resp.StatusCode,
				"content_length", resp.ContentLength,
				"duration", duration,
			)
			return resp, nil
		})
	}
}

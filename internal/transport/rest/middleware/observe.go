package middleware

import (
	"bufio"
	"errors"
	"net"
	"net/http"
	"pathfinder/internal/logger"
	"pathfinder/internal/metrics"
	"time"

	"github.com/gorilla/mux"
)

// statusRecorder captures the status code written by a handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Hijack lets WebSocket upgrades pass through the recorder.
func (r *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := r.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	r.status = http.StatusSwitchingProtocols
	return h.Hijack()
}

// Observe records request metrics and logs each request. Routes are labelled
// by their template so session ids do not explode label cardinality.
func Observe(log *logger.Logger) mux.MiddlewareFunc {
	log = log.With("component", "http")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			route := "unmatched"
			if current := mux.CurrentRoute(r); current != nil {
				if tpl, err := current.GetPathTemplate(); err == nil {
					route = tpl
				}
			}
			duration := time.Since(start)
			metrics.RecordAPIRequest(r.Method, route, rec.status, duration)

			if rec.status >= http.StatusInternalServerError {
				log.Warn("request failed", "method", r.Method, "route", route, "status", rec.status, "duration", duration)
				return
			}
			log.Debug("request", "method", r.Method, "route", route, "status", rec.status, "duration", duration)
		})
	}
}

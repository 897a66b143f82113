package main

import (
	"net/http"
	"time"

	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

type middleware func(http.Handler) http.Handler

func useMiddleware(h http.Handler, ms ...middleware) http.Handler {
	for i := len(ms) - 1; i >= 0; i-- {
		h = ms[i](h)
	}
	return h
}

func corsMiddleware(next http.Handler) http.Handler {
	return cors.Default().Handler(next)
}

type loggingWriter struct {
	http.ResponseWriter
	statusCode int
}

func (w *loggingWriter) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &loggingWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		log.WithFields(logrus.Fields{
			"status":      wrapped.statusCode,
			"remote_addr": r.RemoteAddr,
			"method":      r.Method,
			"uri":         r.URL.RequestURI(),
			"duration_ms": int64(time.Since(start) / time.Millisecond),
		}).Info("handled request")
	})
}

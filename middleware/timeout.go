package middleware

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"go-salesforce-cart/logger"
)

// Timeout returns a middleware that answers 408 once the budget elapses.
// The handler keeps running in its goroutine; the timeout does not cancel
// whatever I/O it is waiting on, its response is simply discarded. A budget
// of zero disables the middleware.
func Timeout(budget time.Duration, log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if budget <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := newBufferedWriter()
			done := make(chan struct{})
			go func() {
				defer close(done)
				next.ServeHTTP(rec, r)
			}()

			timer := time.NewTimer(budget)
			defer timer.Stop()

			select {
			case <-done:
				rec.flush(w)
			case <-timer.C:
				log.Warn("request timed out", "method", r.Method, "path", r.URL.Path, "budget", budget)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusRequestTimeout)
				_ = json.NewEncoder(w).Encode(map[string]string{
					"error":   "Request timeout",
					"message": "The request took too long to process",
				})
			}
		})
	}
}

// bufferedWriter captures the handler's response so a timed-out handler's
// late write never races the 408 already sent to the client.
type bufferedWriter struct {
	mu     sync.Mutex
	header http.Header
	status int
	body   []byte
}

func newBufferedWriter() *bufferedWriter {
	return &bufferedWriter{header: make(http.Header), status: http.StatusOK}
}

func (b *bufferedWriter) Header() http.Header {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.header
}

func (b *bufferedWriter) WriteHeader(status int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.status = status
}

func (b *bufferedWriter) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.body = append(b.body, p...)
	return len(p), nil
}

func (b *bufferedWriter) flush(w http.ResponseWriter) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for k, vs := range b.header {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}
	w.WriteHeader(b.status)
	_, _ = w.Write(b.body)
}

package controllers

import (
	"net/http"
	"strconv"
	"time"

	"go-salesforce-cart/cache"
	"go-salesforce-cart/logger"
	"go-salesforce-cart/storage"
)

// HealthController reports backend connectivity.
type HealthController struct {
	store  storage.Store
	cache  *cache.Cache
	memory bool
	env    string
	log    *logger.Logger
}

// NewHealthController creates a new HealthController. cache may be nil when
// the memory backend is selected.
func NewHealthController(store storage.Store, c *cache.Cache, memoryBackend bool, env string, log *logger.Logger) *HealthController {
	return &HealthController{store: store, cache: c, memory: memoryBackend, env: env, log: log}
}

// Check handles GET /health.
func (hc *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	services := map[string]string{}

	if hc.memory {
		services["storage"] = "memory"
	} else {
		if err := hc.store.Ping(r.Context()); err != nil {
			hc.unhealthy(w, err)
			return
		}
		services["database"] = "connected"

		if err := hc.cache.Ping(r.Context()); err != nil {
			hc.unhealthy(w, err)
			return
		}
		services["redis"] = "connected"
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"services":  services,
	})
}

func (hc *HealthController) unhealthy(w http.ResponseWriter, err error) {
	hc.log.Error("health check failed", "error", err)
	respondJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
		"status":    "unhealthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"error":     err.Error(),
	})
}

// TestDelay handles GET /test-delay. It deliberately sleeps and only exists
// in the test environment, where it exercises the timeout middleware.
func (hc *HealthController) TestDelay(w http.ResponseWriter, r *http.Request) {
	if hc.env != "test" {
		respondError(w, http.StatusNotFound, "Not found")
		return
	}

	delayMs := 1000
	if v := r.URL.Query().Get("ms"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			delayMs = n
		}
	}
	time.Sleep(time.Duration(delayMs) * time.Millisecond)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message":   "Delayed response",
		"delayMs":   delayMs,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

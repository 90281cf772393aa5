package health

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"gorm.io/gorm"
)

// Status is the overall health of the application.
type Status struct {
	Status    string                 `json:"status"` // "healthy" or "degraded"
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Checks    map[string]interface{} `json:"checks"`
	Duration  int64                  `json:"duration_ms"`
}

// ComponentHealth is the health of a single component.
type ComponentHealth struct {
	Healthy bool   `json:"healthy"`
	Error   string `json:"error,omitempty"`
}

// SystemMetrics captures current process metrics.
type SystemMetrics struct {
	MemoryUsageMB  uint64 `json:"memory_usage_mb"`
	GoroutineCount int    `json:"goroutine_count"`
	CPUNumCores    int    `json:"cpu_num_cores"`
	Uptime         int64  `json:"uptime_seconds"`
}

// Checker probes the two persistence backends plus process vitals. The
// local cache being down degrades the service; the remote store being down
// does not make it unhealthy on its own, since gameplay continues locally.
type Checker struct {
	cacheDB   *gorm.DB
	remoteDB  *gorm.DB
	version   string
	startTime time.Time

	mu              sync.RWMutex
	lastCheckStatus string
}

// NewChecker creates a health checker over both database handles.
func NewChecker(cacheDB, remoteDB *gorm.DB, version string) *Checker {
	return &Checker{
		cacheDB:   cacheDB,
		remoteDB:  remoteDB,
		version:   version,
		startTime: time.Now(),
	}
}

// Check performs a complete health check.
func (hc *Checker) Check() Status {
	start := time.Now()
	status := Status{
		Timestamp: start,
		Version:   hc.version,
		Checks:    make(map[string]interface{}),
	}

	cacheCheck := checkDB(hc.cacheDB)
	remoteCheck := checkDB(hc.remoteDB)
	status.Checks["local_cache"] = cacheCheck
	status.Checks["remote_store"] = remoteCheck

	goroutines := runtime.NumGoroutine()
	status.Checks["goroutines"] = map[string]interface{}{
		"count":   goroutines,
		"healthy": goroutines < 10000,
	}
	status.Checks["uptime_seconds"] = int64(time.Since(hc.startTime).Seconds())

	if cacheCheck.Healthy && goroutines < 10000 {
		status.Status = "healthy"
	} else {
		status.Status = "degraded"
	}
	if !remoteCheck.Healthy && status.Status == "healthy" {
		status.Status = "degraded"
	}

	status.Duration = time.Since(start).Milliseconds()

	hc.mu.Lock()
	hc.lastCheckStatus = status.Status
	hc.mu.Unlock()

	return status
}

// IsReady reports whether the service can serve traffic: the local cache
// must answer a ping.
func (hc *Checker) IsReady() bool {
	return checkDB(hc.cacheDB).Healthy
}

// IsAlive reports whether the process is running.
func (hc *Checker) IsAlive() bool {
	return true
}

// Metrics returns current process metrics.
func (hc *Checker) Metrics() SystemMetrics {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return SystemMetrics{
		MemoryUsageMB:  m.Alloc / 1024 / 1024,
		GoroutineCount: runtime.NumGoroutine(),
		CPUNumCores:    runtime.NumCPU(),
		Uptime:         int64(time.Since(hc.startTime).Seconds()),
	}
}

func checkDB(db *gorm.DB) ComponentHealth {
	if db == nil {
		return ComponentHealth{Healthy: false, Error: "database not initialized"}
	}
	sqlDB, err := db.DB()
	if err != nil {
		return ComponentHealth{Healthy: false, Error: fmt.Sprintf("failed to get connection: %v", err)}
	}
	if err := sqlDB.Ping(); err != nil {
		return ComponentHealth{Healthy: false, Error: fmt.Sprintf("ping failed: %v", err)}
	}
	return ComponentHealth{Healthy: true}
}

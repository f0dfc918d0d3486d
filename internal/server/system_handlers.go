package server

import (
	"encoding/json"
	"net/http"
	"runtime"
	"sort"
	"time"

	"github.com/aristath/hunter/internal/database"
	"github.com/aristath/hunter/internal/scheduler"
	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// StatsProvider is satisfied by *database.DB
type StatsProvider interface {
	Name() string
	GetStats() (*database.Stats, error)
}

// JobLookup finds registered jobs by name
type JobLookup interface {
	Job(name string) (scheduler.Job, bool)
	JobNames() []string
	RunNow(job scheduler.Job) error
}

// SystemHandlers serves runtime status and manual job triggers
type SystemHandlers struct {
	log       zerolog.Logger
	archiveDB StatsProvider
	jobs      JobLookup
	version   string
	startedAt time.Time
}

// NewSystemHandlers creates system handlers. archiveDB and jobs may be nil.
func NewSystemHandlers(log zerolog.Logger, archiveDB StatsProvider, jobs JobLookup, version string) *SystemHandlers {
	if version == "" {
		version = "dev"
	}
	return &SystemHandlers{
		log:       log.With().Str("handler", "system").Logger(),
		archiveDB: archiveDB,
		jobs:      jobs,
		version:   version,
		startedAt: time.Now(),
	}
}

// SystemStatusResponse represents the system status response
type SystemStatusResponse struct {
	Archive       *database.Stats `json:"archive,omitempty"`
	Status        string          `json:"status"` // "healthy" or "degraded"
	Version       string          `json:"version"`
	GoVersion     string          `json:"go_version"`
	StartedAt     string          `json:"started_at"`
	UptimeSeconds float64         `json:"uptime_seconds"`
	CPUPercent    float64         `json:"cpu_percent"`
	MemoryPercent float64         `json:"memory_percent"`
	Goroutines    int             `json:"goroutines"`
}

// JobsStatusResponse lists the jobs that can be triggered
type JobsStatusResponse struct {
	Jobs      []string `json:"jobs"`
	TotalJobs int      `json:"total_jobs"`
}

// HandleSystemStatus handles GET /api/system/status
func (h *SystemHandlers) HandleSystemStatus(w http.ResponseWriter, r *http.Request) {
	cpuPercent, memPercent := h.getSystemStats()

	response := SystemStatusResponse{
		Status:        "healthy",
		Version:       h.version,
		GoVersion:     runtime.Version(),
		StartedAt:     h.startedAt.UTC().Format(time.RFC3339),
		UptimeSeconds: time.Since(h.startedAt).Seconds(),
		CPUPercent:    cpuPercent,
		MemoryPercent: memPercent,
		Goroutines:    runtime.NumGoroutine(),
	}

	if h.archiveDB != nil {
		stats, err := h.archiveDB.GetStats()
		if err != nil {
			h.log.Warn().Err(err).Str("database", h.archiveDB.Name()).Msg("Failed to get database stats")
			response.Status = "degraded"
		} else {
			response.Archive = stats
		}
	}

	writeJSON(h.log, w, http.StatusOK, response)
}

// HandleJobsStatus handles GET /api/system/jobs
func (h *SystemHandlers) HandleJobsStatus(w http.ResponseWriter, r *http.Request) {
	names := []string{}
	if h.jobs != nil {
		names = append(names, h.jobs.JobNames()...)
		sort.Strings(names)
	}

	writeJSON(h.log, w, http.StatusOK, JobsStatusResponse{Jobs: names, TotalJobs: len(names)})
}

// HandleTriggerJob handles POST /api/jobs/{name}. The job runs synchronously.
func (h *SystemHandlers) HandleTriggerJob(w http.ResponseWriter, r *http.Request, name string) {
	if h.jobs == nil {
		writeJSON(h.log, w, http.StatusServiceUnavailable, map[string]string{"error": "Scheduler not available"})
		return
	}

	job, ok := h.jobs.Job(name)
	if !ok {
		writeJSON(h.log, w, http.StatusNotFound, map[string]string{"error": "Unknown job: " + name})
		return
	}

	start := time.Now()
	if err := h.jobs.RunNow(job); err != nil {
		h.log.Error().Err(err).Str("job", name).Msg("Manual job run failed")
		writeJSON(h.log, w, http.StatusInternalServerError, map[string]string{
			"status":  "error",
			"job":     name,
			"message": err.Error(),
		})
		return
	}

	writeJSON(h.log, w, http.StatusOK, map[string]interface{}{
		"status":      "success",
		"job":         name,
		"duration_ms": time.Since(start).Milliseconds(),
	})
}

// getSystemStats returns CPU and RAM usage percentages. CPU is sampled over
// 100ms so the request stays fast.
func (h *SystemHandlers) getSystemStats() (float64, float64) {
	cpuPercent, err := cpu.Percent(100*time.Millisecond, false)
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to get CPU percentage")
		cpuPercent = []float64{0}
	}

	memStat, err := mem.VirtualMemory()
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to get memory statistics")
		return 0, 0
	}

	cpuAvg := 0.0
	if len(cpuPercent) > 0 {
		cpuAvg = cpuPercent[0]
	}

	return cpuAvg, memStat.UsedPercent
}

// writeJSON writes a JSON response
func writeJSON(log zerolog.Logger, w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

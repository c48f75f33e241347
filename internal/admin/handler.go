// AngelaMos | 2026
// handler.go

package admin

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	"github.com/carterperez-dev/meucorpo/internal/core"
)

type Handler struct {
	sessionCount func() int
	sessionPing  func(ctx context.Context) error
	redisStats   func() *redis.PoolStats
	redisPing    func(ctx context.Context) error
	startedAt    time.Time
}

// HandlerConfig wires the stats sources. Redis fields stay nil when the
// deployment runs without Redis.
type HandlerConfig struct {
	SessionCount func() int
	SessionPing  func(ctx context.Context) error
	RedisStats   func() *redis.PoolStats
	RedisPing    func(ctx context.Context) error
	StartedAt    time.Time
}

func NewHandler(cfg HandlerConfig) *Handler {
	if cfg.StartedAt.IsZero() {
		cfg.StartedAt = time.Now()
	}

	return &Handler{
		sessionCount: cfg.SessionCount,
		sessionPing:  cfg.SessionPing,
		redisStats:   cfg.RedisStats,
		redisPing:    cfg.RedisPing,
		startedAt:    cfg.StartedAt,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Get("/stats", h.GetSystemStats)
		r.Get("/stats/sessions", h.GetSessionStats)
		r.Get("/stats/redis", h.GetRedisStats)
		r.Get("/stats/runtime", h.GetRuntimeStats)
	})
}

func (h *Handler) GetSystemStats(w http.ResponseWriter, r *http.Request) {
	core.OK(w, SystemStatsResponse{
		Sessions: h.getSessionStats(r.Context()),
		Redis:    h.getRedisStatus(r.Context()),
		Runtime:  h.getRuntimeStats(),
	})
}

func (h *Handler) GetSessionStats(w http.ResponseWriter, r *http.Request) {
	core.OK(w, h.getSessionStats(r.Context()))
}

func (h *Handler) GetRedisStats(w http.ResponseWriter, r *http.Request) {
	core.OK(w, h.getRedisStatus(r.Context()))
}

func (h *Handler) GetRuntimeStats(w http.ResponseWriter, r *http.Request) {
	core.OK(w, h.getRuntimeStats())
}

func (h *Handler) getSessionStats(ctx context.Context) SessionStats {
	stats := SessionStats{Healthy: true}

	if h.sessionPing != nil {
		if err := h.sessionPing(ctx); err != nil {
			stats.Healthy = false
		}
	}
	if h.sessionCount != nil {
		stats.Active = h.sessionCount()
	}

	return stats
}

func (h *Handler) getRedisStatus(ctx context.Context) RedisStatus {
	if h.redisPing == nil {
		return RedisStatus{Configured: false}
	}

	status := RedisStatus{Configured: true, Healthy: true}
	if err := h.redisPing(ctx); err != nil {
		status.Healthy = false
	}

	if h.redisStats != nil {
		if stats := h.redisStats(); stats != nil {
			status.Stats = &RedisPoolStats{
				Hits:       stats.Hits,
				Misses:     stats.Misses,
				Timeouts:   stats.Timeouts,
				TotalConns: stats.TotalConns,
				IdleConns:  stats.IdleConns,
				StaleConns: stats.StaleConns,
			}
		}
	}

	return status
}

func (h *Handler) getRuntimeStats() RuntimeStats {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	return RuntimeStats{
		GoVersion:    runtime.Version(),
		NumGoroutine: runtime.NumGoroutine(),
		NumCPU:       runtime.NumCPU(),
		MemAlloc:     memStats.Alloc,
		MemSys:       memStats.Sys,
		NumGC:        memStats.NumGC,
		Uptime:       time.Since(h.startedAt).Round(time.Second).String(),
	}
}

type SystemStatsResponse struct {
	Sessions SessionStats `json:"sessions"`
	Redis    RedisStatus  `json:"redis"`
	Runtime  RuntimeStats `json:"runtime"`
}

type SessionStats struct {
	Healthy bool `json:"healthy"`
	Active  int  `json:"active"`
}

type RedisStatus struct {
	Configured bool            `json:"configured"`
	Healthy    bool            `json:"healthy"`
	Stats      *RedisPoolStats `json:"stats,omitempty"`
}

type RedisPoolStats struct {
	Hits       uint32 `json:"hits"`
	Misses     uint32 `json:"misses"`
	Timeouts   uint32 `json:"timeouts"`
	TotalConns uint32 `json:"total_conns"`
	IdleConns  uint32 `json:"idle_conns"`
	StaleConns uint32 `json:"stale_conns"`
}

type RuntimeStats struct {
	GoVersion    string `json:"go_version"`
	NumGoroutine int    `json:"num_goroutine"`
	NumCPU       int    `json:"num_cpu"`
	MemAlloc     uint64 `json:"mem_alloc_bytes"`
	MemSys       uint64 `json:"mem_sys_bytes"`
	NumGC        uint32 `json:"num_gc"`
	Uptime       string `json:"uptime"`
}

package analytics

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

// Handler handles analytics HTTP requests.
type Handler struct {
	store          *Store
	collectLimiter *rateLimiter
}

// NewHandler creates a new analytics handler.
// The collect endpoint is rate-limited to 60 requests per IP per minute.
func NewHandler(store *Store) *Handler {
	return &Handler{
		store:          store,
		collectLimiter: newRateLimiter(60, time.Minute),
	}
}

// RegisterRoutes mounts the collect endpoint publicly and the stats endpoint
// behind the given admin middleware.
func (h *Handler) RegisterRoutes(e *echo.Echo, adminOnly echo.MiddlewareFunc) {
	e.POST("/api/analytics/collect", h.Collect)
	e.GET("/api/analytics/stats", h.GetStats, adminOnly)
}

// CollectRequest is the expected request body for the collect endpoint.
type CollectRequest struct {
	Path        string `json:"path"`
	Referrer    string `json:"referrer"`
	ScreenSize  string `json:"screen_size"`
	UserAgent   string `json:"user_agent"`
	DurationSec int    `json:"duration_sec"`
}

// Input validation limits for the collect endpoint.
const (
	maxPathLen       = 2048
	maxReferrerLen   = 2048
	maxScreenSizeLen = 32
	maxUserAgentLen  = 512
	maxDurationSec   = 86400 // 24 hours
)

// validateCollectRequest checks field lengths and value ranges.
func validateCollectRequest(req *CollectRequest) error {
	if len(req.Path) > maxPathLen {
		return fmt.Errorf("path exceeds maximum length of %d", maxPathLen)
	}
	if len(req.Referrer) > maxReferrerLen {
		return fmt.Errorf("referrer exceeds maximum length of %d", maxReferrerLen)
	}
	if len(req.ScreenSize) > maxScreenSizeLen {
		return fmt.Errorf("screen_size exceeds maximum length of %d", maxScreenSizeLen)
	}
	if len(req.UserAgent) > maxUserAgentLen {
		return fmt.Errorf("user_agent exceeds maximum length of %d", maxUserAgentLen)
	}
	if req.DurationSec < 0 {
		return fmt.Errorf("duration_sec must not be negative")
	}
	if req.DurationSec > maxDurationSec {
		return fmt.Errorf("duration_sec exceeds maximum of %d", maxDurationSec)
	}
	return nil
}

// Collect handles incoming analytics beacons from clients.
func (h *Handler) Collect(c echo.Context) error {
	// Rate limit by IP to prevent analytics flooding.
	if !h.collectLimiter.allow(c.RealIP()) {
		return c.NoContent(http.StatusTooManyRequests)
	}

	// Honor Do Not Track.
	if c.Request().Header.Get("DNT") == "1" {
		return c.NoContent(http.StatusNoContent)
	}

	var req CollectRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, "Invalid request")
	}
	if err := validateCollectRequest(&req); err != nil {
		return c.String(http.StatusBadRequest, "Invalid request")
	}

	userAgent := req.UserAgent
	if userAgent == "" {
		userAgent = c.Request().UserAgent()
	}
	if IsBot(userAgent) {
		return c.NoContent(http.StatusNoContent)
	}

	ip := c.RealIP()
	visitorID := GenerateVisitorID(ip, userAgent)

	// A duration > 0 means an unload beacon: update the existing visit
	// instead of creating a duplicate row.
	if req.DurationSec > 0 {
		if err := h.store.UpdateVisitDuration(visitorID, req.Path, req.DurationSec); err != nil {
			c.Logger().Errorf("Failed to update visit duration: %v", err)
		}
		return c.NoContent(http.StatusNoContent)
	}

	browser, os, device := ParseUserAgent(userAgent)

	visit := &Visit{
		VisitorID:   visitorID,
		IPHash:      HashIP(ip),
		Browser:     browser,
		OS:          os,
		Device:      device,
		Path:        req.Path,
		Referrer:    CleanReferrer(req.Referrer),
		ScreenSize:  req.ScreenSize,
		Timestamp:   time.Now().UTC(),
		DurationSec: req.DurationSec,
	}
	if err := h.store.SaveVisit(visit); err != nil {
		c.Logger().Errorf("Failed to save visit: %v", err)
	}

	return c.NoContent(http.StatusNoContent)
}

// StatsResponse is the JSON response for the stats endpoint.
type StatsResponse struct {
	Stats      *Stats `json:"stats"`
	Realtime   int    `json:"realtime_visitors"`
	PeriodDays int    `json:"period_days"`
}

// GetStats returns aggregated statistics as JSON. The period query parameter
// selects the window in days (default 30, max 365).
func (h *Handler) GetStats(c echo.Context) error {
	days := 30
	if p := c.QueryParam("period"); p != "" {
		if n, err := strconv.Atoi(p); err == nil && n > 0 && n <= 365 {
			days = n
		}
	}

	now := time.Now().UTC()
	from := now.AddDate(0, 0, -days)

	stats, err := h.store.GetStats(from, now)
	if err != nil {
		c.Logger().Errorf("Failed to get stats: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	realtime, _ := h.store.GetRealtimeVisitors()

	return c.JSON(http.StatusOK, StatsResponse{
		Stats:      stats,
		Realtime:   realtime,
		PeriodDays: days,
	})
}

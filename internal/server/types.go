package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MeKo-Tech/scandefaults/internal/augcache"
	"github.com/MeKo-Tech/scandefaults/internal/barcode"
	"github.com/MeKo-Tech/scandefaults/internal/catalog"
	"github.com/MeKo-Tech/scandefaults/internal/defaults"
	"github.com/MeKo-Tech/scandefaults/internal/version"
)

// Server holds the HTTP server state and dependencies.
type Server struct {
	registry         *defaults.Registry
	corsOrigin       string
	websocketEnabled bool
	deletionDelay    time.Duration
	cacheCapacity    int
}

// Config holds server configuration.
type Config struct {
	Host       string
	Port       int
	CORSOrigin string

	// WebSocketEnabled mounts /ws/session.
	WebSocketEnabled bool

	// DeletionDelay and CacheCapacity configure the augmentation cache
	// each WebSocket session gets.
	DeletionDelay time.Duration
	CacheCapacity int

	// Registry overrides the shared catalog.
	Registry *defaults.Registry
}

// Response types for API endpoints.
type HealthResponse struct {
	Status   string `json:"status"`
	Version  string `json:"version,omitempty"`
	Time     string `json:"time"`
	Settings int    `json:"settings"`
}

// SettingResponse describes one registered default.
type SettingResponse struct {
	Name     string `json:"name"`
	Group    string `json:"group"`
	Kind     string `json:"kind"`
	Nullable bool   `json:"nullable"`
	Value    any    `json:"value"`
}

type SettingsResponse struct {
	Settings []SettingResponse `json:"settings"`
	Count    int               `json:"count"`
}

type PresetResponse struct {
	Family string `json:"family"`
	Preset string `json:"preset"`
	Value  any    `json:"value"`
}

// HashRequest is the body of POST /barcodes/hash. The symbology is
// required; the remaining fields follow barcode.Barcode.
type HashRequest struct {
	barcode.Barcode
	Symbology *barcode.Symbology `json:"symbology"`
}

// HashResponse carries the identity of a posted barcode.
type HashResponse struct {
	Hash      string `json:"hash"`
	Symbology string `json:"symbology"`
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error     string   `json:"error"`
	Message   string   `json:"message"`
	Supported []string `json:"supported,omitempty"`
}

// Addr returns the listen address.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// NewServer creates a new defaults server instance.
func NewServer(config Config) (*Server, error) {
	if config.DeletionDelay < 0 {
		return nil, fmt.Errorf("invalid deletion delay: %s", config.DeletionDelay)
	}

	reg := config.Registry
	if reg == nil {
		reg = catalog.Default()
	}
	capacity := config.CacheCapacity
	if capacity <= 0 {
		capacity = augcache.DefaultCapacity
	}

	return &Server{
		registry:         reg,
		corsOrigin:       config.CORSOrigin,
		websocketEnabled: config.WebSocketEnabled,
		deletionDelay:    config.DeletionDelay,
		cacheCapacity:    capacity,
	}, nil
}

// Close releases server resources. Session caches are closed with their
// connections.
func (s *Server) Close() error {
	return nil
}

// SetupRoutes configures the HTTP routes.
func (s *Server) SetupRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/health", s.corsMiddleware(s.healthHandler))
	mux.HandleFunc("/defaults", s.corsMiddleware(s.documentHandler))
	mux.HandleFunc("/defaults/settings", s.corsMiddleware(s.settingsHandler))
	mux.HandleFunc("/defaults/settings/{name}", s.corsMiddleware(s.settingHandler))
	mux.HandleFunc("/defaults/presets/{family}/{preset}", s.corsMiddleware(s.presetHandler))
	mux.HandleFunc("/barcodes/hash", s.corsMiddleware(s.hashHandler))
	mux.Handle("/metrics", promhttp.Handler())
	if s.websocketEnabled {
		mux.HandleFunc("/ws/session", s.sessionWebSocketHandler)
	}
}

func versionString() string {
	v, _, _ := version.Info()
	return v
}

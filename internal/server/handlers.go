package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/MeKo-Tech/scandefaults/internal/defaults"
	"github.com/MeKo-Tech/scandefaults/internal/pickview"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"

	maxHashBodyBytes = 1 << 20
)

// healthHandler returns server health status.
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := HealthResponse{
		Status:  "healthy",
		Version: versionString(),
		Time:    time.Now().UTC().Format(time.RFC3339),
	}
	if s.registry != nil {
		response.Settings = s.registry.Len()
	}

	s.writeJSON(w, http.StatusOK, response)
}

// documentHandler renders the whole defaults document.
//
// Query parameters: format (json or yaml), locale (falls back to the
// Accept-Language header), section (repeatable) and presets=false.
func (s *Server) documentHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()
	format := q.Get("format")
	if format == "" {
		format = formatJSON
	}
	if format != formatJSON && format != formatYAML {
		s.writeErrorResponse(w, "invalid_format", fmt.Sprintf("unsupported format %q", format), http.StatusBadRequest)
		return
	}

	var opts []defaults.DocumentOption
	locale := q.Get("locale")
	if locale != "" {
		if _, err := language.Parse(locale); err != nil {
			s.writeErrorResponse(w, "invalid_locale", err.Error(), http.StatusBadRequest)
			return
		}
	} else {
		locale = r.Header.Get("Accept-Language")
	}
	if locale != "" {
		opts = append(opts, defaults.WithOverride(pickview.Localize(locale)))
	}
	if sections := q["section"]; len(sections) > 0 {
		opts = append(opts, defaults.WithSections(sections...))
	}
	if q.Get("presets") == "false" {
		opts = append(opts, defaults.WithoutPresets())
	}

	doc, err := s.registry.Document(opts...)
	if err != nil {
		s.writeErrorResponse(w, "internal_error", err.Error(), http.StatusInternalServerError)
		return
	}

	if format == formatYAML {
		out, err := yaml.Marshal(doc)
		if err != nil {
			s.writeErrorResponse(w, "internal_error", err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/yaml")
		if _, err := w.Write(out); err != nil {
			slog.Error("Failed to write YAML document", "error", err)
		}
		return
	}

	s.writeJSON(w, http.StatusOK, doc)
}

// settingsHandler lists settings, optionally restricted to one group.
func (s *Server) settingsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var settings []defaults.Setting
	if g := r.URL.Query().Get("group"); g != "" {
		settings = s.registry.InGroup(defaults.Group(g))
	} else {
		settings = s.registry.Settings()
	}

	response := SettingsResponse{
		Settings: make([]SettingResponse, 0, len(settings)),
	}
	for _, st := range settings {
		response.Settings = append(response.Settings, toSettingResponse(st))
	}
	response.Count = len(response.Settings)

	s.writeJSON(w, http.StatusOK, response)
}

// settingHandler returns a single setting by qualified name.
func (s *Server) settingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	name := r.PathValue("name")
	st, ok := s.registry.Lookup(name)
	if !ok {
		settingLookupsTotal.WithLabelValues("unknown").Inc()
		s.writeErrorResponse(w, "unknown_setting",
			fmt.Errorf("%w: %s", defaults.ErrUnknownSetting, name).Error(), http.StatusNotFound)
		return
	}
	settingLookupsTotal.WithLabelValues("found").Inc()

	s.writeJSON(w, http.StatusOK, toSettingResponse(st))
}

// presetHandler resolves one preset-parameterized default.
func (s *Server) presetHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	family, preset := r.PathValue("family"), r.PathValue("preset")
	v, err := s.registry.ForPreset(family, preset)
	if err != nil {
		var unsupported *defaults.UnsupportedPresetError
		switch {
		case errors.As(err, &unsupported):
			presetLookupsTotal.WithLabelValues(family, "unsupported").Inc()
			s.writeJSON(w, http.StatusBadRequest, ErrorResponse{
				Error:     "unsupported_preset",
				Message:   unsupported.Error(),
				Supported: unsupported.Supported,
			})
		case errors.Is(err, defaults.ErrUnknownPresetFamily):
			presetLookupsTotal.WithLabelValues("", "unknown_family").Inc()
			s.writeErrorResponse(w, "unknown_preset_family", err.Error(), http.StatusNotFound)
		default:
			s.writeErrorResponse(w, "internal_error", err.Error(), http.StatusInternalServerError)
		}
		return
	}
	presetLookupsTotal.WithLabelValues(family, "found").Inc()

	s.writeJSON(w, http.StatusOK, PresetResponse{
		Family: family,
		Preset: preset,
		Value:  defaults.EncodeValue(v),
	})
}

// hashHandler computes the identity of a posted barcode.
func (s *Server) hashHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxHashBodyBytes)
	var req HashRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeErrorResponse(w, "request_too_large", err.Error(), http.StatusRequestEntityTooLarge)
			return
		}
		s.writeErrorResponse(w, "invalid_request", fmt.Sprintf("Failed to parse barcode: %v", err), http.StatusBadRequest)
		return
	}
	if req.Symbology == nil {
		s.writeErrorResponse(w, "invalid_request", "Field 'symbology' is required", http.StatusBadRequest)
		return
	}
	b := req.Barcode
	b.Symbology = *req.Symbology

	barcodeHashesTotal.WithLabelValues("http").Inc()
	s.writeJSON(w, http.StatusOK, HashResponse{
		Hash:      b.UniqueHash(),
		Symbology: b.Symbology.String(),
	})
}

func toSettingResponse(st defaults.Setting) SettingResponse {
	return SettingResponse{
		Name:     st.Name,
		Group:    string(st.Group),
		Kind:     st.Kind.String(),
		Nullable: st.Nullable,
		Value:    st.Encoded(),
	}
}

// writeJSON writes v as a JSON response with the given status.
func (s *Server) writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Log error, but can't send another response
		slog.Error("Failed to encode JSON response", "error", err)
	}
}

// writeErrorResponse writes a JSON error response.
func (s *Server) writeErrorResponse(w http.ResponseWriter, code, message string, statusCode int) {
	s.writeJSON(w, statusCode, ErrorResponse{
		Error:   code,
		Message: message,
	})
}

package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/etnz/forecast"
	"github.com/etnz/forecast/renderer"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// maxBodySize bounds the size of a request profile.
const maxBodySize = 1 << 20

// forecastRequest is the body of every forecast route.
type forecastRequest struct {
	Profile  forecast.Profile `json:"profile"`
	Settings json.RawMessage  `json:"settings"`
}

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":  "healthy",
		"service": "forecast",
	}

	s.writeJSON(w, http.StatusOK, response)
}

// handleDefaults returns the settings used to complete requests.
func (s *Server) handleDefaults(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.settings)
}

// handleForecast runs a forecast. The optional from and years query
// parameters select a window of years, format selects json (default),
// msgpack or markdown.
func (s *Server) handleForecast(w http.ResponseWriter, r *http.Request) {
	p, settings, ok := s.decodeRequest(w, r)
	if !ok {
		return
	}
	from, err := queryInt(r, "from")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	years, err := queryInt(r, "years")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	format := forecast.JSON
	if f := r.URL.Query().Get("format"); f != "" {
		if format, err = forecast.ParseFormat(f); err != nil {
			s.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	results := renderer.Window(forecast.Forecast(p, settings), from, years)

	switch format {
	case forecast.Msgpack:
		var buf bytes.Buffer
		if err := forecast.EncodeMsgpack(&buf, results); err != nil {
			s.writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.Header().Set("Content-Type", "application/msgpack")
		w.WriteHeader(http.StatusOK)
		w.Write(buf.Bytes())
	case forecast.Markdown:
		s.writeMarkdown(w, renderer.ForecastMarkdown(p, results))
	default:
		s.writeJSON(w, http.StatusOK, results)
	}
}

// handleSummary runs a forecast and returns its summary.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	p, settings, ok := s.decodeRequest(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, forecast.Summarize(forecast.Forecast(p, settings)))
}

// handleYear runs a forecast and returns a single year with its breakdown.
func (s *Server) handleYear(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid year %q", chi.URLParam(r, "year")))
		return
	}
	p, settings, ok := s.decodeRequest(w, r)
	if !ok {
		return
	}
	result, found := forecast.FindYear(forecast.Forecast(p, settings), year)
	if !found {
		s.writeError(w, http.StatusNotFound, fmt.Sprintf("year %d is outside the forecast %d-%d", year, p.Start(), p.Start()+p.Years()-1))
		return
	}
	if r.URL.Query().Get("format") == "markdown" {
		s.writeMarkdown(w, renderer.YearMarkdown(p, result))
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

// decodeRequest reads the profile and the settings of a request. It writes
// the error response itself and returns false on failure.
func (s *Server) decodeRequest(w http.ResponseWriter, r *http.Request) (forecast.Profile, forecast.Settings, bool) {
	var req forecastRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(&req); err != nil {
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		s.writeError(w, status, fmt.Sprintf("invalid request: %v", err))
		return forecast.Profile{}, forecast.Settings{}, false
	}

	if err := forecast.CheckBounds(req.Profile); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid profile: %v", err))
		return forecast.Profile{}, forecast.Settings{}, false
	}

	settings := s.settings
	if len(req.Settings) > 0 && string(req.Settings) != "null" {
		if err := json.Unmarshal(req.Settings, &settings); err != nil {
			s.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid settings: %v", err))
			return forecast.Profile{}, forecast.Settings{}, false
		}
	}

	if err := forecast.Validate(req.Profile, settings); err != nil {
		s.log.Warn().
			Err(err).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("Incomplete profile")
	}
	return req.Profile, settings, true
}

func queryInt(r *http.Request, key string) (int, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return 0, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", key, v)
	}
	return i, nil
}

// writeJSON writes a JSON response
func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// writeMarkdown writes a markdown response
func (s *Server) writeMarkdown(w http.ResponseWriter, doc string) {
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(doc))
}

// writeError writes an error response
func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{
		"error": message,
	})
}

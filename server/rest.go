package server

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"

	"github.com/umputun/meteoscope/pkg/domain"
)

const maxAlertsLimit = 100

// regionsHandler returns all known regions
func (s *Server) regionsHandler(w http.ResponseWriter, r *http.Request) {
	regions, err := s.weather.Regions(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] failed to get regions: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, rest.JSON{"regions": regions, "count": len(regions)})
}

// searchRegionsHandler returns regions matching the q parameter
func (s *Server) searchRegionsHandler(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		renderError(w, r, errors.New("query parameter q is required"), http.StatusBadRequest)
		return
	}

	regions, err := s.weather.SearchRegions(r.Context(), query)
	if err != nil {
		lgr.Printf("[ERROR] failed to search regions for %q: %v", query, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, rest.JSON{"query": query, "regions": regions, "count": len(regions)})
}

// forecastHandler returns the recent forecast days of the region, default region if not set
func (s *Server) forecastHandler(w http.ResponseWriter, r *http.Request) {
	region := r.PathValue("region")
	forecast, err := s.weather.Forecast(r.Context(), region)
	if err != nil {
		lgr.Printf("[ERROR] failed to get forecast for %q: %v", region, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	if len(forecast.Days) == 0 {
		renderError(w, r, fmt.Errorf("no forecast found for region: %s", forecast.Region), http.StatusNotFound)
		return
	}
	renderJSON(w, r, http.StatusOK, forecast)
}

// alertsHandler returns active alerts, optionally filtered by level
func (s *Server) alertsHandler(w http.ResponseWriter, r *http.Request) {
	filter := domain.AlertFilter{Level: domain.Severity(strings.ToUpper(r.URL.Query().Get("level")))}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 || limit > maxAlertsLimit {
			renderError(w, r, fmt.Errorf("limit must be between 1 and %d", maxAlertsLimit), http.StatusBadRequest)
			return
		}
		filter.Limit = limit
	}

	list, err := s.weather.ActiveAlerts(r.Context(), filter)
	if err != nil {
		lgr.Printf("[ERROR] failed to get active alerts: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	if list.Alerts == nil {
		list.Alerts = []domain.AlertRecord{}
	}
	list.Count = len(list.Alerts)
	renderJSON(w, r, http.StatusOK, list)
}

func (s *Server) alertCountsHandler(w http.ResponseWriter, r *http.Request) {
	counts, err := s.weather.AlertCounts(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] failed to count alerts: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, counts)
}

// statusHandler returns aggregated system status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	st, err := s.weather.Status(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] failed to get status: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, st)
}

func (s *Server) sourcesHandler(w http.ResponseWriter, r *http.Request) {
	report, err := s.weather.Sources(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] failed to get sources: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, report)
}

// fetchSourceHandler triggers an immediate cycle of one source
func (s *Server) fetchSourceHandler(w http.ResponseWriter, r *http.Request) {
	source := r.PathValue("source")
	err := s.weather.TriggerFetch(source)
	switch {
	case err == nil:
		lgr.Printf("[INFO] manual fetch accepted for %s", source)
		renderJSON(w, r, http.StatusAccepted, rest.JSON{"source": source, "status": "accepted"})
	case errors.Is(err, domain.ErrUnknownSource):
		renderError(w, r, err, http.StatusNotFound)
	case errors.Is(err, domain.ErrCycleInProgress):
		renderError(w, r, err, http.StatusConflict)
	default:
		renderError(w, r, err, http.StatusServiceUnavailable)
	}
}

// fetchAllHandler triggers all sources, 202 if at least one was accepted
func (s *Server) fetchAllHandler(w http.ResponseWriter, r *http.Request) {
	results := s.weather.TriggerAll()
	accepted := []string{}
	rejected := map[string]string{}
	for name, err := range results {
		if err != nil {
			rejected[name] = err.Error()
			continue
		}
		accepted = append(accepted, name)
	}
	sort.Strings(accepted)

	code := http.StatusAccepted
	if len(accepted) == 0 {
		code = http.StatusConflict
	}
	lgr.Printf("[INFO] manual fetch of all sources, accepted %d, rejected %d", len(accepted), len(rejected))
	renderJSON(w, r, code, rest.JSON{"accepted": accepted, "rejected": rejected})
}

// fetchResultsHandler returns the last cycle result of each source
func (s *Server) fetchResultsHandler(w http.ResponseWriter, r *http.Request) {
	results := s.weather.Results()
	if results == nil {
		results = []domain.CycleResult{}
	}
	renderJSON(w, r, http.StatusOK, rest.JSON{"results": results, "count": len(results)})
}

// healthHandler reports database connectivity and scheduler state, 503 if either is down
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	report := s.weather.Health(r.Context())
	code := http.StatusOK
	if !report.OK() {
		lgr.Printf("[WARN] health check failed, database %s, scheduler %s", report.Database, report.Scheduler)
		code = http.StatusServiceUnavailable
	}
	renderJSON(w, r, code, report)
}

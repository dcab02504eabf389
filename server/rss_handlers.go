package server

import (
	"net/http"
	"strings"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/meteoscope/pkg/domain"
)

const rssAlertsLimit = 100

// rssAlertsHandler serves active alerts as RSS feed.
// Supports optional level filter, /rss/alerts?level=red
func (s *Server) rssAlertsHandler(w http.ResponseWriter, r *http.Request) {
	level := domain.Severity(strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("level"))))

	list, err := s.weather.ActiveAlerts(r.Context(), domain.AlertFilter{Level: level, Limit: rssAlertsLimit})
	if err != nil {
		lgr.Printf("[ERROR] failed to get alerts for RSS: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	rss, err := s.generator.GenerateAlertsRSS(list.Alerts, level, s.cfg.Clock.Now().UTC())
	if err != nil {
		lgr.Printf("[ERROR] failed to generate RSS feed: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	if _, err := w.Write([]byte(rss)); err != nil {
		lgr.Printf("[WARN] failed to write RSS response: %v", err)
	}
}
